package services

import (
	"strings"
	"testing"
)

func testDocument() QuotationDocument {
	return QuotationDocument{
		ID:            "REQ 0042",
		DeveloperName: "Acme Constructions",
		ProjectName:   "Skyline Towers",
		DeveloperType: "Category 1",
		ProjectRegion: "Mumbai City",
		PlotArea:      1500,
		Validity:      "7 days",
		CreatedDate:   "15/08/2026",
		Headers: []ExpandedHeader{{
			Header: "Package A",
			Kind:   HeaderPackage,
			Services: []ExpandedService{{
				ID:   "service-package-a-1",
				Name: "CONSULTATION & ADVISORY SERVICES",
				SubServices: []SubService{
					{ID: "s1", Name: "First deliverable", Included: true},
					{ID: "s2", Name: "Suppressed deliverable", Included: false},
				},
			}},
		}, {
			Header: "Legal",
			Kind:   HeaderPlain,
			Services: []ExpandedService{{
				ID:   "service-legal-1",
				Name: "LEGAL CONSULTATION",
			}},
		}},
		Breakdown: []HeaderBreakdown{{
			Header: "Package A",
			Services: []PricedService{{
				Name: "CONSULTATION & ADVISORY SERVICES", TotalAmount: 150000,
			}},
			HeaderTotal: 150000,
		}, {
			Header: "Legal",
			Services: []PricedService{{
				Name: "LEGAL CONSULTATION", TotalAmount: 40000,
			}},
			HeaderTotal: 40000,
		}},
		TotalAmount:     190000,
		ApplicableTerms: []string{"Payment due within 30 days"},
		CustomTerms:     []string{"  ", "Site visits billed separately"},
	}
}

func TestReferenceNumber(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"REQ 0042", "REQ 0042"},
		{"0042", "REQ 0042"},
		{"", "REQ 0000"},
	}
	for _, tt := range tests {
		doc := QuotationDocument{ID: tt.id}
		if got := doc.ReferenceNumber(); got != tt.want {
			t.Errorf("ReferenceNumber(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestDocumentSections(t *testing.T) {
	sections := testDocument().Sections()
	if len(sections) != 2 {
		t.Fatalf("got %d sections", len(sections))
	}

	pkg := sections[0]
	if pkg.Header != "PACKAGE A" {
		t.Errorf("header = %q, want uppercased", pkg.Header)
	}
	if pkg.Amount != 150000 {
		t.Errorf("section amount = %v", pkg.Amount)
	}
	// Only included sub-services render as lines.
	if len(pkg.Lines) != 1 || pkg.Lines[0] != "First deliverable" {
		t.Errorf("lines = %v", pkg.Lines)
	}

	// A service without sub-services falls back to its own name.
	legal := sections[1]
	if len(legal.Lines) != 1 || legal.Lines[0] != "LEGAL CONSULTATION" {
		t.Errorf("legal lines = %v", legal.Lines)
	}
}

func TestDocumentGrandTotal(t *testing.T) {
	doc := testDocument()
	if got := doc.GrandTotal(); got != 190000 {
		t.Errorf("GrandTotal = %v, want persisted total", got)
	}

	// Unpriced drafts sum their sections.
	doc.TotalAmount = 0
	if got := doc.GrandTotal(); got != 190000 {
		t.Errorf("section-sum GrandTotal = %v", got)
	}
}

func TestDocumentTerms(t *testing.T) {
	terms := testDocument().Terms()

	if len(terms) != len(DefaultTerms)+2 {
		t.Fatalf("got %d terms, want defaults + applicable + custom", len(terms))
	}
	for i, want := range DefaultTerms {
		if terms[i] != want {
			t.Errorf("term %d = %q, want default %q", i, terms[i], want)
		}
	}
	last := terms[len(terms)-1]
	if last != "Site visits billed separately" {
		t.Errorf("last term = %q", last)
	}
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			t.Error("blank term leaked through")
		}
	}
}

func TestGeneratePDFAndExcel(t *testing.T) {
	doc := testDocument()

	pdf, err := GenerateQuotationPDF(doc)
	if err != nil {
		t.Fatalf("pdf generation failed: %v", err)
	}
	if len(pdf) == 0 || !strings.HasPrefix(string(pdf[:4]), "%PDF") {
		t.Errorf("output does not look like a PDF (%d bytes)", len(pdf))
	}

	book, err := GenerateQuotationExcel(doc)
	if err != nil {
		t.Fatalf("excel generation failed: %v", err)
	}
	// XLSX files are zip archives, "PK" magic.
	if len(book) < 2 || book[0] != 'P' || book[1] != 'K' {
		t.Errorf("output does not look like an XLSX file (%d bytes)", len(book))
	}
}
