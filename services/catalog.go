// Package services implements the quotation engine: the service catalog,
// header expansion, rate resolution, pricing aggregation and the approval
// policy, plus the PDF/Excel renderers built on top of them. Everything in
// this package is a pure computation over its inputs; persistence and HTTP
// live in the handlers and collections packages.
package services

import "strings"

// PackageTier identifies one of the four cumulative service bundles.
type PackageTier string

const (
	TierA PackageTier = "package a"
	TierB PackageTier = "package b"
	TierC PackageTier = "package c"
	TierD PackageTier = "package d"
)

// PackageTiers lists the tiers in ascending order of inclusion.
var PackageTiers = []PackageTier{TierA, TierB, TierC, TierD}

// HeaderKind classifies a quotation header for expansion and approval rules.
type HeaderKind string

const (
	HeaderPackage    HeaderKind = "package"
	HeaderCustomized HeaderKind = "customized"
	HeaderPlain      HeaderKind = "plain"
)

// BillingMode describes how a service's rate is multiplied over time.
type BillingMode string

const (
	BillNone       BillingMode = ""
	BillPerQuarter BillingMode = "perQuarter"
	BillPerYear    BillingMode = "perYear"
)

// CatalogSubService is a single deliverable line under a catalog service.
type CatalogSubService struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ServiceDefinition is an immutable catalog entry.
type ServiceDefinition struct {
	ID          string
	Name        string
	Origin      string
	Billing     BillingMode
	SubServices []CatalogSubService
}

// Catalog is the read-only registry of billable services, the package
// hierarchy and the rate-table name mapping. It is built once at startup and
// safe for concurrent readers.
type Catalog struct {
	services  map[string]ServiceDefinition
	hierarchy map[PackageTier][]string
	names     map[string]string
}

var defaultCatalog = NewCatalog(catalogServices, packageHierarchy, rateNameMapping)

// DefaultCatalog returns the built-in RERA Easy catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// NewCatalog builds a catalog from explicit tables. Tests use this to supply
// small fixtures; production code uses DefaultCatalog.
func NewCatalog(defs []ServiceDefinition, hierarchy map[PackageTier][]string, names map[string]string) *Catalog {
	byID := make(map[string]ServiceDefinition, len(defs))
	for _, def := range defs {
		byID[def.ID] = def
	}
	return &Catalog{services: byID, hierarchy: hierarchy, names: names}
}

// LookupService returns the definition for a service id.
func (c *Catalog) LookupService(id string) (ServiceDefinition, bool) {
	def, ok := c.services[id]
	return def, ok
}

// ServicesForPackage returns the core service definitions of a tier in
// hierarchy order. An unknown tier yields an empty slice.
func (c *Catalog) ServicesForPackage(tier PackageTier) []ServiceDefinition {
	ids := c.hierarchy[PackageTier(strings.ToLower(string(tier)))]
	defs := make([]ServiceDefinition, 0, len(ids))
	for _, id := range ids {
		if def, ok := c.services[id]; ok {
			defs = append(defs, def)
		}
	}
	return defs
}

// CanonicalName maps a client-facing label to the rate-table vocabulary.
// Unknown labels pass through unchanged.
func (c *Catalog) CanonicalName(label string) string {
	if mapped, ok := c.names[label]; ok {
		return mapped
	}
	return label
}

// PackageTierOf extracts the tier named in a header label, if any. Labels are
// free text from the client ("Package A", "PACKAGE C - RETAINERSHIP"), so
// this is a case-insensitive substring probe over the known tiers.
func PackageTierOf(label string) (PackageTier, bool) {
	lower := strings.ToLower(label)
	// Probe highest tier first so "package d" never matches a lower tier.
	for i := len(PackageTiers) - 1; i >= 0; i-- {
		if strings.Contains(lower, string(PackageTiers[i])) {
			return PackageTiers[i], true
		}
	}
	return "", false
}

// IsPackageHeader reports whether the label names one of the four packages.
func IsPackageHeader(label string) bool {
	_, ok := PackageTierOf(label)
	return ok
}

// IsCustomizedHeader reports whether the label marks a customized header.
func IsCustomizedHeader(label string) bool {
	return strings.Contains(strings.ToLower(label), "customized")
}

// ClassifyHeader maps a raw header label to its kind. Package classification
// wins over customized when a label somehow contains both markers, matching
// the expansion order.
func ClassifyHeader(label string) HeaderKind {
	switch {
	case IsPackageHeader(label):
		return HeaderPackage
	case IsCustomizedHeader(label):
		return HeaderCustomized
	default:
		return HeaderPlain
	}
}
