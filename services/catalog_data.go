package services

// The service registry, package hierarchy and rate-table name mapping below
// are the canonical RERA Easy offering. They are fixed at compile time; the
// rate table is the only pricing input that changes at runtime.

var catalogServices = []ServiceDefinition{
	{
		ID:     "service-project-registration-1",
		Name:   "PROJECT REGISTRATION SERVICES",
		Origin: "Project Registration",
		SubServices: []CatalogSubService{
			{ID: "subservice-project-registration-1-1", Name: "Consultation and Guidance on Registration Procedures"},
			{ID: "subservice-project-registration-1-2", Name: "Assistance with Online Registration Process"},
			{ID: "subservice-project-registration-1-3", Name: "Preparation of Necessary Undertakings and Affidavits for RERA Registration"},
			{ID: "subservice-project-registration-1-4", Name: "Scrutiny Assistance till RERA Certificate is generated"},
			{ID: "subservice-project-registration-1-5", Name: "Continued support until the RERA Certificate is issued"},
			{ID: "subservice-project-registration-1-6", Name: "Procurement of CERSAI, Review of certificate as per RERA format"},
		},
	},
	{
		ID:     "service-legal-1",
		Name:   "LEGAL CONSULTATION",
		Origin: "Legal Services",
		SubServices: []CatalogSubService{
			{ID: "subservice-legal-1-1", Name: "Client Meetings: Conducting conference meetings with the client to understand objectives, clarify requirements, and gather necessary inputs"},
			{ID: "subservice-legal-1-2", Name: "Review of Agreements for Sale: Examination of the Agreements for Sale executed with existing allottees to assess contractual obligations and relevant clauses"},
			{ID: "subservice-legal-1-3", Name: "Analysis of Sanctioned Layout Plans: Detailed study of the currently sanctioned layout plans to understand the approved development framework"},
			{ID: "subservice-legal-1-4", Name: "Review of Proposed Plans: Evaluation of the proposed revised plans in context with the existing development and approvals"},
			{ID: "subservice-legal-1-5", Name: "Assessment of MahaRERA Profile: Review and analysis of the project's profile on the MahaRERA portal to verify past disclosures"},
			{ID: "subservice-legal-1-6", Name: "Legal Research on RERA Provisions: In-depth research on the applicable provisions of the Real Estate (Regulation and Development) Act, 2016"},
			{ID: "subservice-legal-1-7", Name: "Legal Consultation and Opinion: Providing a comprehensive legal opinion on the implications of 14(2) of the RERA Act"},
			{ID: "subservice-legal-1-8", Name: "Drafting of Consent Letter: Preparation of a draft consent letter for use with allottees, incorporating legal requirements"},
		},
	},
	{
		ID:     "service-compliance-1",
		Name:   "CHANGE OF PROMOTER",
		Origin: "Compliance",
		SubServices: []CatalogSubService{
			{ID: "subservice-compliance-1-1", Name: "Change of Promoters as per Section 15: Updating project promoter information in accordance with MahaRERA guidelines"},
			{ID: "subservice-compliance-1-2", Name: "Drafting of Annexure A, B, and C: Compiling project-related information into required annexures for MahaRERA submission"},
			{ID: "subservice-compliance-1-3", Name: "Drafting of Consent Letter: Formalizing stakeholders' approval for project-related changes or actions"},
			{ID: "subservice-compliance-1-4", Name: "Follow-up Till Certificate is Generated: Continuous communication with MahaRERA until project certificate issuance"},
			{ID: "subservice-compliance-1-5", Name: "Hearing at MahaRERA Office: Attending sessions at MahaRERA to address project-related queries or issues"},
			{ID: "subservice-compliance-1-6", Name: "Drafting and Uploading of Correction Application: Rectifying errors in project documentation and re-submitting to MahaRERA"},
			{ID: "subservice-compliance-1-7", Name: "Drafting of Format C: Complying with MahaRERA-prescribed document formats for reporting and compliance purposes"},
			{ID: "subservice-compliance-1-8", Name: "Scrutiny Assistance Until Certificate is Generated: Providing support during MahaRERA scrutiny process until project certificate issuance"},
		},
	},
	{
		ID:     "service-compliance-2",
		Name:   "MAHARERA PROFILE UPDATION",
		Origin: "Compliance",
		SubServices: []CatalogSubService{
			{ID: "subservice-compliance-2-1", Name: "Disclosure of Sold/Unsold Inventory: Thorough drafting and meticulous uploading of the disclosure document showcasing the status of sold and unsold inventory"},
			{ID: "subservice-compliance-2-2", Name: "Format D Drafting and Uploading: Proficient drafting and systematic uploading of Format D"},
			{ID: "subservice-compliance-2-3", Name: "CERSAI Report Submission: Facilitating the submission and generation of the CERSAI report, ensuring completeness and adherence to regulatory standards"},
			{ID: "subservice-compliance-2-4", Name: "Drafted Formats for Form 2A: Preparation and provision of meticulously drafted formats required for Form 2A"},
			{ID: "subservice-compliance-2-5", Name: "MahaRERA Profile Update: Complete and accurate updating of the MahaRERA profile, ensuring all necessary information is current and compliant pertaining to extension"},
		},
	},
	{
		ID:     "service-package-a-1",
		Name:   "CONSULTATION & ADVISORY SERVICES",
		Origin: "Package A",
		SubServices: []CatalogSubService{
			{ID: "subservice-package-a-1-1", Name: "Comprehensive consultation regarding the RERA Act & Rules"},
			{ID: "subservice-package-a-1-2", Name: "Expert Guidance and updates on MahaRERA Orders & Regulations"},
			{ID: "subservice-package-a-1-3", Name: "Detailed insight into functioning of 100, 70% and 30% Bank Accounts & Procedures for withdrawals"},
			{ID: "subservice-package-a-1-4", Name: "Advisory Services on contractual Agreements with buyers"},
			{ID: "subservice-package-a-1-5", Name: "Preventive/Proactive advice with respect to compliances"},
			{ID: "subservice-package-a-1-6", Name: "Implementation of Consents from Allottees"},
			{ID: "subservice-package-a-1-7", Name: "Advisory Services on future withdrawals and further functioning of accounts"},
		},
	},
	{
		ID:     "service-package-a-2",
		Name:   "QUARTERLY PROGRESS REPORTS",
		Origin: "Package A",
		SubServices: []CatalogSubService{
			{ID: "subservice-package-a-2-1", Name: "Vetting of Form 1 (Architect Certificate) as per Annexure A (Regulation 3)"},
			{ID: "subservice-package-a-2-2", Name: "Vetting of Form 2 (Engineer Certificate) as per Annexure B (Regulation 3)"},
			{ID: "subservice-package-a-2-3", Name: "Vetting of Form 3 (CA Certificate) as per Annexure D (Regulation 3)"},
			{ID: "subservice-package-a-2-4", Name: "Drafting of Disclosure of Sold/Unsold Inventory as per Circular 29"},
			{ID: "subservice-package-a-2-5", Name: "Updation of Work Progress and Development work"},
			{ID: "subservice-package-a-2-6", Name: "Updation of Cost details (Estimated and Incurred)"},
			{ID: "subservice-package-a-2-7", Name: "Updation of Inventory Details, Building Details, Project Details, FSI Details & Status"},
			{ID: "subservice-package-a-2-8", Name: "Updation of Professional details including Channel Partner, Contractors and others"},
			{ID: "subservice-package-a-2-9", Name: "Filing of QPR Report to MahaRERA on quarterly basis"},
		},
	},
	{
		ID:     "service-package-a-3",
		Name:   "RERA PROFILE UPDATION & COMPLIANCE",
		Origin: "Package A",
		SubServices: []CatalogSubService{
			{ID: "subservice-package-a-3-1", Name: "Updation of amended/revised permissions from the local planning authority"},
			{ID: "subservice-package-a-3-2", Name: "Updation of parking details"},
			{ID: "subservice-package-a-3-3", Name: "Updation and Amendment of Encumbrance Details (Finance/Legal)"},
			{ID: "subservice-package-a-3-4", Name: "Updation of Litigation details"},
			{ID: "subservice-package-a-3-5", Name: "Updation of Promoter and Stakeholder details"},
			{ID: "subservice-package-a-3-6", Name: "Updation of Communication and contact details"},
			{ID: "subservice-package-a-3-7", Name: "Updation of project professional details"},
			{ID: "subservice-package-a-3-8", Name: "Drafting assistance of Form 2A (Quality Assurance Certificate)"},
			{ID: "subservice-package-a-3-9", Name: "Modification & Amendment of Project Details"},
			{ID: "subservice-package-a-3-10", Name: "Obtaining CERSAI Certificate in case of financial encumbrance"},
		},
	},
	{
		ID:     "service-package-a-4",
		Name:   "MAHARERA PROCESS-LINKED APPLICATION SUPPORT",
		Origin: "Package A",
		SubServices: []CatalogSubService{
			{ID: "subservice-package-a-4-1", Name: "Project time extension under section 7(3)"},
			{ID: "subservice-package-a-4-2", Name: "Project Amendment under section 14(2)"},
			{ID: "subservice-package-a-4-3", Name: "Project Closure application on the receipt of the OC"},
		},
	},
	{
		ID:     "service-package-b-1",
		Name:   "PROFESSIONAL CERTIFICATIONS",
		Origin: "Package B",
		SubServices: []CatalogSubService{
			{ID: "subservice-package-b-1-1", Name: "Preparing/Updating estimates related to cost of construction for the project"},
			{ID: "subservice-package-b-1-2", Name: "Preparation and Certification of Form 2 (Engineers Certificate)"},
			{ID: "subservice-package-b-1-3", Name: "Cost accounting as per RERA for evaluating the expenses incurred in the project as per Books of Accounts"},
			{ID: "subservice-package-b-1-4", Name: "Preparing the detailed report of the Receipts of the Project as per RERA"},
			{ID: "subservice-package-b-1-5", Name: "Constituting the valuation of the unsold inventory"},
			{ID: "subservice-package-b-1-6", Name: "Preparation and Certification of Form 3 (CA Certificate)"},
			{ID: "subservice-package-b-1-7", Name: "Recommendations with respect to modification or amendments to Form 3 (CA Certificate)"},
			{ID: "subservice-package-b-1-8", Name: "Consultation in Compilation of Form 3 (CA Certificate)"},
			{ID: "subservice-package-b-1-9", Name: "Advise on adhering to financial reporting and management practices mandated by RERA for the project"},
		},
	},
	{
		ID:     "service-package-c-1",
		Name:   "RERA ANNUAL AUDIT CONSULTATION",
		Origin: "Package C",
		SubServices: []CatalogSubService{
			{ID: "subservice-package-c-1-1", Name: "Consultation regarding Examination of the Prescribed Registers, Books & Documents, and Relevant Records"},
			{ID: "subservice-package-c-1-2", Name: "Drafting assistance of Form 5 (Annual Report on Statement of Account) as per the Registers, Books & Documents"},
			{ID: "subservice-package-c-1-3", Name: "Certification & Submission of Form 5"},
		},
	},
	{
		ID:     "service-package-d-1",
		Name:   "BESPOKE OFFERINGS",
		Origin: "Package D",
		SubServices: []CatalogSubService{
			{ID: "subservice-package-d-1-1", Name: "Conducting one training the Internal teams - Finance, Accounts, Sales, to provide an overview and understating of the RERA Regulation for smooth operation"},
			{ID: "subservice-package-d-1-2", Name: "Dedicated Relationship Manager as one Point of Contact"},
			{ID: "subservice-package-d-1-3", Name: "Accessibility for the RERA related queries and doubts"},
			{ID: "subservice-package-d-1-4", Name: "Coordinating with various teams to gather the required information, documents, and details for compliance completion"},
		},
	},
	{
		ID:     "service-package-d-2",
		Name:   "Regulatory Hearing & Notices",
		Origin: "Package D",
		SubServices: []CatalogSubService{
			{ID: "subservice-package-d-2-1", Name: "Handling and complying to the notices issued by the MahaRERA"},
			{ID: "subservice-package-d-2-2", Name: "Replying to the notices and Suo-Moto orders being issued by MahaRERA for the particular project"},
			{ID: "subservice-package-d-2-3", Name: "Representing the Developers in front of Authorities"},
			{ID: "subservice-package-d-2-4", Name: "Appearing the Regulatory hearings imposed as Suo-Moto by the Authority"},
		},
	},
	{
		ID:     "service-addon-1",
		Name:   "LIAISONING",
		Origin: "Add ons",
		SubServices: []CatalogSubService{
			{ID: "subservice-addon-1-1", Name: "Liaising with MahaRERA authorities to ensure seamless communication between your organization and the regulatory body"},
			{ID: "subservice-addon-1-2", Name: "Managing complex documentation, addressing compliance challenges, and resolving regulatory disputes to prevent delays and ensure timely approvals"},
		},
	},
	{
		ID:     "service-addon-2",
		Name:   "Legal Documentation",
		Origin: "Add ons",
		SubServices: []CatalogSubService{
			{ID: "subservice-addon-2-1", Name: "Drafting of Agreement for Sale in Compliance with MahaRERA Regulations"},
			{ID: "subservice-addon-2-2", Name: "Drafting of Allotment Letters in Compliance with MahaRERA Regulations"},
			{ID: "subservice-addon-2-3", Name: "Preparation and Submission of Deviation Reports for Agreement for Sale"},
			{ID: "subservice-addon-2-4", Name: "Preparation and Submission of Deviation Reports for Allotment Letters"},
			{ID: "subservice-addon-2-5", Name: "Vetting of Agreement for Sale in Compliance with MahaRERA Regulations"},
			{ID: "subservice-addon-2-6", Name: "Vetting of Allotment Letters in Compliance with MahaRERA Regulations"},
			{ID: "subservice-addon-2-7", Name: "Vetting and Submission of Deviation Reports for Agreement for Sale"},
			{ID: "subservice-addon-2-8", Name: "Vetting and Submission of Deviation Reports for Allotment Letters"},
		},
	},
	{
		ID:     "service-addon-3",
		Name:   "Title Report",
		Origin: "Add ons",
		SubServices: []CatalogSubService{
			{ID: "subservice-addon-3-1", Name: "Procurement of Title Certificate"},
			{ID: "subservice-addon-3-2", Name: "Conducting Title Search and Examination"},
		},
	},
	{
		ID:      "service-addon-4",
		Name:    "Architect's Certificate as per Form 1",
		Origin:  "Add ons",
		Billing: BillPerQuarter,
		SubServices: []CatalogSubService{
			{ID: "subservice-addon-4-1", Name: "Provide duly certified Form 1 (Architect Certificate) as required under MahaRERA for project registration and milestone-based withdrawals"},
			{ID: "subservice-addon-4-2", Name: "Verify and certify the percentage of construction completed in accordance with approved plans and RERA guidelines"},
		},
	},
	{
		ID:      "service-addon-5",
		Name:    "Engineer's Certificate as per Form 2",
		Origin:  "Add ons",
		Billing: BillPerQuarter,
		SubServices: []CatalogSubService{
			{ID: "subservice-addon-5-1", Name: "Provide duly certified Form 2 (Engineer Certificate) as required under MahaRERA, certifying the actual cost incurred on construction up to a specific stage"},
			{ID: "subservice-addon-5-2", Name: "The certificate is prepared in coordination with Form 1 (Architect's Certificate) and Form 3 (CA's Certificate) to ensure consistency across physical progress and financial reporting"},
		},
	},
	{
		ID:      "service-addon-6",
		Name:    "Chartered Accountant's Certificate as per Form 3",
		Origin:  "Add ons",
		Billing: BillPerQuarter,
		SubServices: []CatalogSubService{
			{ID: "subservice-addon-6-1", Name: "Provide duly certified Form 3 (CA Certificate) as required under MahaRERA, certifying the financial aspects of the project including funds received and utilized"},
			{ID: "subservice-addon-6-2", Name: "The certificate is prepared in coordination with Form 1 (Architect's Certificate) and Form 2 (Engineer's Certificate) to ensure consistency across physical progress and financial reporting"},
		},
	},
	{
		ID:      "service-addon-7",
		Name:    "Annual Return/Report as per Form 5",
		Origin:  "Add ons",
		Billing: BillPerYear,
		SubServices: []CatalogSubService{
			{ID: "subservice-addon-7-1", Name: "Drafting assistance of Form 5 (Annual Report on Statement of Account) as per the Registers, Books & Documents"},
			{ID: "subservice-addon-7-2", Name: "Certification of Form 5"},
		},
	},
	{
		ID:     "service-addon-8",
		Name:   "Search Report",
		Origin: "Add ons",
		SubServices: []CatalogSubService{
			{ID: "subservice-addon-8-1", Name: "Conduct thorough searches of public land records for title investigation"},
			{ID: "subservice-addon-8-2", Name: "Provide details on ownership history, encumbrances, legal descriptions, and tax status"},
			{ID: "subservice-addon-8-3", Name: "Support accurate and efficient preparation of land title reports for legal or transactional use"},
		},
	},
	{
		ID:     "service-addon-9",
		Name:   "SRO Membership",
		Origin: "Add ons",
		SubServices: []CatalogSubService{
			{ID: "subservice-addon-9-1", Name: "Assist developers in obtaining SRO membership as mandated under MahaRERA guidelines for registered promoters"},
			{ID: "subservice-addon-9-2", Name: "Manage end-to-end application process, including documentation, eligibility verification, and coordination with recognized SRO bodies"},
			{ID: "subservice-addon-9-3", Name: "Ensure compliance with RERA norms by facilitating timely registration, renewals, and updates related to SRO membership"},
		},
	},
}

// Each tier bundles every lower tier's core services. The expander relies on
// the slice order when laying out package line items.
var packageHierarchy = map[PackageTier][]string{
	TierA: {
		"service-package-a-1", "service-package-a-2", "service-package-a-3", "service-package-a-4",
	},
	TierB: {
		"service-package-a-1", "service-package-a-2", "service-package-a-3", "service-package-a-4",
		"service-package-b-1",
	},
	TierC: {
		"service-package-a-1", "service-package-a-2", "service-package-a-3", "service-package-a-4",
		"service-package-b-1", "service-package-c-1",
	},
	TierD: {
		"service-package-a-1", "service-package-a-2", "service-package-a-3", "service-package-a-4",
		"service-package-b-1", "service-package-c-1", "service-package-d-1", "service-package-d-2",
	},
}

// rateNameMapping translates catalog/front-end labels to the vocabulary used
// in the rate table. Some mapped names carry trailing spaces because the
// source spreadsheet does; rate lookups compare trimmed values.
var rateNameMapping = map[string]string{
	"PROJECT REGISTRATION SERVICES": "Project Registration ",

	"CHANGE OF PROMOTER":                             "Change of Promoter (section 15)",
	"CORRECTION (CHANGE OF FSI)":                     "Project Correction - Change of FSI/ Plan",
	"MAHARERA PROFILE UPDATION":                      "Profile Updation ",
	"MAHARERA PROFILE MIGRATION":                     "Profile Migration",
	"REMOVAL FROM ABEYANCE (QPR)":                    "Removal of Abeyance - QPR, Lapsed",
	"Extension of Project Completion Date U/S 7(3)":  "Project Extension - Section 7.3",
	"PROJECT CLOSURE":                                "Project Closure ",
	"10. Extension of Project Completion Date u/s 6": "Project Extension - Section 7.3",
	"POST FACTO EXTENSION":                           "Project Extension - Post Facto",
	"EXTENSION UNDER ORDER 40":                       "Project Extension - Order No. 40",
	"Correction (Change of Bank Account)":            "Project Correction - Change of Bank Account",
	"Removal from Abeyance (Lapsed)":                 "Removal of Abeyance - QPR, Lapsed",
	"Project De-registration":                        "Deregistration ",
	"Drafting of Title Report in Format A":           "Drafting of Title Report in Format A",
	"Correction - Change of other Details":           "Project Correction - Change of Other Details",

	"LEGAL CONSULTATION": "Drafting of Legal Documents",

	"CONSULTATION & ADVISORY SERVICES":            "Package A",
	"QUATERLY PROGRESS REPORTS":                   "QPR",
	"QUARTERLY PROGRESS REPORTS":                  "QPR",
	"RERA PROFILE UPDATION & COMPLIANCE":          "Profile Updation ",
	"MAHARERA PROCESS-LINKED APPLICATION SUPPORT": "Project Extension - Section 7.3",
	"PROFESSIONAL CERTIFICATIONS":                 "Package B",
	"RERA ANNUAL AUDIT CONSULTATION":              "Package C",
	"BESPOKE OFFERINGS":                           "Package D",
	"Regulatory Hearing & Notices":                "Package D",

	"LIAISONING":                            "Liasioning ",
	"Legal Documentation":                   "Drafting of Legal Documents",
	"Title Report":                          "Title Certificate",
	"Search Report":                         "Drafting of Title Report in Format A",
	"SRO Membership":                        "SRO Membership",
	"Architect's Certificate as per Form 1": "Form 1",
	"Engineer's Certificate as per Form 2":  "Form 2 ",
	"Chartered Accountant's Certificate as per Form 3": "Form 3",
	"Annual Return/Report as per Form 5":               "Form 5",
}
