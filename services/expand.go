package services

import "strings"

// HeaderSelection is a raw header as submitted by the client: a label plus
// the chosen service references. The payload historically used either
// "header" or "name" for the label, so both are accepted.
type HeaderSelection struct {
	Header   string             `json:"header"`
	Name     string             `json:"name"`
	Services []ServiceSelection `json:"services"`
}

// Label returns the header label regardless of which key carried it.
func (h HeaderSelection) Label() string {
	if h.Header != "" {
		return h.Header
	}
	return h.Name
}

// ServiceSelection is one chosen service reference inside a header
// selection, optionally carrying time-based billing choices and sub-service
// suppressions.
type ServiceSelection struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Label            string                `json:"label"`
	QuarterCount     int                   `json:"quarterCount,omitempty"`
	SelectedQuarters []string              `json:"selectedQuarters,omitempty"`
	SelectedYears    []string              `json:"selectedYears,omitempty"`
	SubServices      []SubServiceSelection `json:"subServices,omitempty"`
}

// DisplayName returns the client's preferred name for the service.
func (s ServiceSelection) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Label
}

// SubServiceSelection lets the client suppress an individual sub-service.
// Included is a pointer so that an absent field keeps the default (included).
type SubServiceSelection struct {
	ID       string `json:"id"`
	Included *bool  `json:"included,omitempty"`
}

// SubService is a resolved sub-service line on an expanded service.
type SubService struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Included bool   `json:"included"`
}

// ExpandedService is a fully resolved service entry within a header.
type ExpandedService struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Label            string       `json:"label"`
	AddOn            bool         `json:"addOn,omitempty"`
	Billing          BillingMode  `json:"billing,omitempty"`
	QuarterCount     int          `json:"quarterCount,omitempty"`
	SelectedQuarters []string     `json:"selectedQuarters,omitempty"`
	SelectedYears    []string     `json:"selectedYears,omitempty"`
	SubServices      []SubService `json:"subServices"`
}

// ExpandedHeader is the normalized form of a header selection. It is what
// gets persisted on the quotation record and fed to pricing and approval.
type ExpandedHeader struct {
	Header   string            `json:"header"`
	Name     string            `json:"name"`
	Kind     HeaderKind        `json:"kind"`
	Services []ExpandedService `json:"services"`
}

// ExpandHeaders normalizes a client's header selections against the catalog.
//
// Package headers always receive the tier's core services in hierarchy
// order; any additionally chosen service that is not part of the core list is
// appended as an add-on in selection order. Customized and plain headers
// include exactly the chosen services. Services are deduplicated by id
// within a header, and a service id unknown to the catalog degrades to an
// entry with the client-supplied name and no sub-services rather than
// failing the expansion.
func (c *Catalog) ExpandHeaders(selections []HeaderSelection) []ExpandedHeader {
	expanded := make([]ExpandedHeader, 0, len(selections))

	for _, sel := range selections {
		label := sel.Label()
		header := ExpandedHeader{
			Header: label,
			Name:   label,
			Kind:   ClassifyHeader(label),
		}

		seen := make(map[string]bool)

		if tier, ok := PackageTierOf(label); ok {
			for _, def := range c.ServicesForPackage(tier) {
				seen[def.ID] = true
				header.Services = append(header.Services, ExpandedService{
					ID:          def.ID,
					Name:        def.Name,
					Label:       def.Name,
					Billing:     def.Billing,
					SubServices: c.resolveSubServices(def.ID, nil),
				})
			}
			for _, svc := range sel.Services {
				if seen[svc.ID] {
					continue
				}
				seen[svc.ID] = true
				addOn := c.expandService(svc)
				addOn.AddOn = true
				header.Services = append(header.Services, addOn)
			}
		} else {
			for _, svc := range sel.Services {
				if seen[svc.ID] {
					continue
				}
				seen[svc.ID] = true
				header.Services = append(header.Services, c.expandService(svc))
			}
		}

		expanded = append(expanded, header)
	}

	return expanded
}

// expandService resolves a single chosen service against the catalog,
// carrying forward its billing-mode fields.
func (c *Catalog) expandService(sel ServiceSelection) ExpandedService {
	svc := ExpandedService{
		ID:               sel.ID,
		Name:             sel.DisplayName(),
		Label:            sel.DisplayName(),
		QuarterCount:     sel.QuarterCount,
		SelectedQuarters: sel.SelectedQuarters,
		SelectedYears:    sel.SelectedYears,
		SubServices:      c.resolveSubServices(sel.ID, sel.SubServices),
	}
	if def, ok := c.LookupService(sel.ID); ok {
		svc.Name = def.Name
		svc.Label = def.Name
		svc.Billing = def.Billing
	}
	if svc.SubServices == nil {
		svc.SubServices = []SubService{}
	}
	return svc
}

// resolveSubServices returns the catalog sub-services for a service id,
// dropping blank or purely numeric names and applying any client-side
// suppressions. Unknown service ids yield an empty slice.
func (c *Catalog) resolveSubServices(id string, overrides []SubServiceSelection) []SubService {
	def, ok := c.LookupService(id)
	if !ok {
		return []SubService{}
	}

	suppressed := make(map[string]bool)
	for _, o := range overrides {
		if o.Included != nil && !*o.Included {
			suppressed[o.ID] = true
		}
	}

	subs := make([]SubService, 0, len(def.SubServices))
	for _, sub := range def.SubServices {
		name := strings.TrimSpace(sub.Name)
		if name == "" || isNumericName(name) {
			continue
		}
		subs = append(subs, SubService{
			ID:       sub.ID,
			Name:     name,
			Included: !suppressed[sub.ID],
		})
	}
	return subs
}

func isNumericName(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
