package services

import "strings"

// DefaultTerms appear on every quotation document ahead of the applicable
// and custom terms.
var DefaultTerms = []string{
	"The above quotation is subject to this project only.",
	"The prices mentioned above DO NOT include Government Fees.",
	"18% GST Applicable on above mentioned charges.",
	"The services outlined above are included within the project scope. Any additional services not specified are excluded from this scope.",
}

// QuotationDocument is the render-ready view of a quotation, assembled by
// the handlers from the stored record. The exporters consume it without
// touching storage.
type QuotationDocument struct {
	ID              string
	DeveloperName   string
	ProjectName     string
	DeveloperType   string
	ProjectRegion   string
	PlotArea        float64
	ReraNumber      string
	Validity        string
	PaymentSchedule string
	CreatedDate     string
	CreatedBy       string

	Headers         []ExpandedHeader
	Breakdown       []HeaderBreakdown
	TotalAmount     float64
	ApplicableTerms []string
	CustomTerms     []string
}

// DocumentSection is one header block in the rendered document: the
// uppercased header title, its deliverable lines and the section amount.
type DocumentSection struct {
	Header string
	Lines  []string
	Amount float64
}

// ReferenceNumber returns the quotation id in the "REQ NNNN" display form.
func (d QuotationDocument) ReferenceNumber() string {
	ref := strings.TrimSpace(d.ID)
	if ref == "" {
		return "REQ 0000"
	}
	if !strings.HasPrefix(strings.ToUpper(ref), "REQ") {
		ref = "REQ " + ref
	}
	return ref
}

// Sections flattens headers and the priced breakdown into render-ready
// blocks. Each section lists the included sub-service lines of its services
// (falling back to the service name when a service has none), and its amount
// is the sum of the matching priced line totals, matched by service name.
func (d QuotationDocument) Sections() []DocumentSection {
	amounts := make(map[string]float64)
	for _, hb := range d.Breakdown {
		for _, svc := range hb.Services {
			if svc.Name != "" {
				amounts[svc.Name] = svc.TotalAmount
			}
		}
	}

	sections := make([]DocumentSection, 0, len(d.Headers))
	for _, header := range d.Headers {
		section := DocumentSection{Header: strings.ToUpper(header.Header)}
		for _, svc := range header.Services {
			section.Amount += amounts[svc.Name]
			if len(svc.SubServices) == 0 {
				section.Lines = append(section.Lines, svc.Name)
				continue
			}
			for _, sub := range svc.SubServices {
				if sub.Included && sub.Name != "" {
					section.Lines = append(section.Lines, sub.Name)
				}
			}
		}
		sections = append(sections, section)
	}
	return sections
}

// GrandTotal prefers the persisted total and falls back to the section sum
// for drafts that were never priced server-side.
func (d QuotationDocument) GrandTotal() float64 {
	if d.TotalAmount > 0 {
		return d.TotalAmount
	}
	var total float64
	for _, s := range d.Sections() {
		total += s.Amount
	}
	return round2(total)
}

// Terms returns the full ordered terms list for rendering.
func (d QuotationDocument) Terms() []string {
	terms := make([]string, 0, len(DefaultTerms)+len(d.ApplicableTerms)+len(d.CustomTerms))
	terms = append(terms, DefaultTerms...)
	for _, t := range d.ApplicableTerms {
		if s := strings.TrimSpace(t); s != "" {
			terms = append(terms, s)
		}
	}
	for _, t := range d.CustomTerms {
		if s := strings.TrimSpace(t); s != "" {
			terms = append(terms, s)
		}
	}
	return terms
}
