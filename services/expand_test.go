package services

import "testing"

func boolPtr(v bool) *bool { return &v }

func TestExpandHeaders_PackageCoreServices(t *testing.T) {
	c := DefaultCatalog()

	expanded := c.ExpandHeaders([]HeaderSelection{{Header: "Package A"}})
	if len(expanded) != 1 {
		t.Fatalf("expected 1 header, got %d", len(expanded))
	}

	header := expanded[0]
	if header.Kind != HeaderPackage {
		t.Errorf("kind = %q, want package", header.Kind)
	}
	if len(header.Services) != 4 {
		t.Fatalf("Package A core = %d services, want 4", len(header.Services))
	}
	// Core services come in hierarchy order and are never add-ons.
	if header.Services[0].ID != "service-package-a-1" {
		t.Errorf("first core service = %q", header.Services[0].ID)
	}
	for _, svc := range header.Services {
		if svc.AddOn {
			t.Errorf("core service %q flagged as add-on", svc.ID)
		}
		if len(svc.SubServices) == 0 {
			t.Errorf("core service %q has no sub-services", svc.ID)
		}
	}
}

func TestExpandHeaders_PackageAddOns(t *testing.T) {
	c := DefaultCatalog()

	expanded := c.ExpandHeaders([]HeaderSelection{{
		Header: "Package B",
		Services: []ServiceSelection{
			// Already part of the core, must not duplicate.
			{ID: "service-package-a-1"},
			// Outside the core, becomes an add-on.
			{ID: "service-addon-1"},
		},
	}})

	header := expanded[0]
	if len(header.Services) != 6 {
		t.Fatalf("Package B + 1 add-on = %d services, want 6", len(header.Services))
	}

	last := header.Services[len(header.Services)-1]
	if last.ID != "service-addon-1" || !last.AddOn {
		t.Errorf("expected trailing add-on service-addon-1, got %q (addOn=%v)", last.ID, last.AddOn)
	}

	addOns := 0
	for _, svc := range header.Services {
		if svc.AddOn {
			addOns++
		}
	}
	if addOns != 1 {
		t.Errorf("add-on count = %d, want 1", addOns)
	}
}

func TestExpandHeaders_DeduplicatesWithinHeader(t *testing.T) {
	c := DefaultCatalog()

	expanded := c.ExpandHeaders([]HeaderSelection{{
		Header: "Customized Header",
		Services: []ServiceSelection{
			{ID: "service-legal-1"},
			{ID: "service-legal-1"},
		},
	}})

	if got := len(expanded[0].Services); got != 1 {
		t.Errorf("duplicate selection produced %d services, want 1", got)
	}
}

func TestExpandHeaders_UnknownServiceDegrades(t *testing.T) {
	c := DefaultCatalog()

	expanded := c.ExpandHeaders([]HeaderSelection{{
		Name: "Other Services",
		Services: []ServiceSelection{
			{ID: "service-made-up", Name: "Who Knows"},
		},
	}})

	header := expanded[0]
	if header.Kind != HeaderPlain {
		t.Errorf("kind = %q, want plain", header.Kind)
	}
	svc := header.Services[0]
	if svc.Name != "Who Knows" {
		t.Errorf("name = %q, want client-supplied", svc.Name)
	}
	if svc.SubServices == nil || len(svc.SubServices) != 0 {
		t.Errorf("expected empty sub-services, got %#v", svc.SubServices)
	}
}

func TestExpandHeaders_SubServiceSuppression(t *testing.T) {
	c := DefaultCatalog()

	expanded := c.ExpandHeaders([]HeaderSelection{{
		Header: "Project Registration",
		Services: []ServiceSelection{{
			ID: "service-project-registration-1",
			SubServices: []SubServiceSelection{
				{ID: "subservice-project-registration-1-2", Included: boolPtr(false)},
			},
		}},
	}})

	subs := expanded[0].Services[0].SubServices
	if len(subs) == 0 {
		t.Fatal("expected sub-services")
	}
	for _, sub := range subs {
		want := sub.ID != "subservice-project-registration-1-2"
		if sub.Included != want {
			t.Errorf("sub %q included = %v, want %v", sub.ID, sub.Included, want)
		}
	}
}

func TestExpandHeaders_BillingFieldsCarried(t *testing.T) {
	c := DefaultCatalog()

	expanded := c.ExpandHeaders([]HeaderSelection{{
		Header: "Add-on Services",
		Services: []ServiceSelection{{
			ID:               "service-addon-4",
			QuarterCount:     3,
			SelectedQuarters: []string{"Q1 2026", "Q2 2026", "Q3 2026"},
		}},
	}})

	svc := expanded[0].Services[0]
	if svc.Billing != BillPerQuarter {
		t.Errorf("billing = %q, want perQuarter", svc.Billing)
	}
	if svc.QuarterCount != 3 || len(svc.SelectedQuarters) != 3 {
		t.Errorf("quarter fields not carried: count=%d quarters=%d", svc.QuarterCount, len(svc.SelectedQuarters))
	}
}

func TestHeaderSelectionLabel(t *testing.T) {
	if got := (HeaderSelection{Header: "A", Name: "B"}).Label(); got != "A" {
		t.Errorf("Label() = %q, want header key to win", got)
	}
	if got := (HeaderSelection{Name: "B"}).Label(); got != "B" {
		t.Errorf("Label() = %q, want name fallback", got)
	}
}

func TestResolveSubServicesDropsJunkNames(t *testing.T) {
	c := NewCatalog([]ServiceDefinition{{
		ID:   "svc",
		Name: "SVC",
		SubServices: []CatalogSubService{
			{ID: "s1", Name: "Real line"},
			{ID: "s2", Name: "   "},
			{ID: "s3", Name: "12345"},
		},
	}}, nil, nil)

	subs := c.resolveSubServices("svc", nil)
	if len(subs) != 1 || subs[0].ID != "s1" {
		t.Errorf("expected only the real line, got %#v", subs)
	}
}
