package services

import (
	"math"
	"testing"
)

func pricingRates() []RateEntry {
	return []RateEntry{
		{Category: "Category 1", Region: "Mumbai City", PlotArea: "500-2000", Service: "Package A", Amount: 150000.0},
		{Category: "Category 1", Region: "Mumbai City", PlotArea: "500-2000", Service: "Liasioning ", Amount: "25,000"},
		{Category: "Category 1", Region: "Mumbai City", PlotArea: "500-2000", Service: "Form 1", Amount: 10000.0},
		{Category: "Category 1", Region: "Mumbai City", PlotArea: "500-2000", Service: "Form 5", Amount: 20000.0},
		{Category: "Category 1", Region: "Mumbai City", PlotArea: "500-2000", Service: "Drafting of Legal Documents", Amount: 40000.0},
	}
}

// A package header prices as one bundle line on the package's own name, not
// as the sum of its constituent core services.
func TestPriceQuotation_PackageCoreIsSingleLine(t *testing.T) {
	c := DefaultCatalog()

	headers := c.ExpandHeaders([]HeaderSelection{{Header: "Package A"}})
	pricing := c.PriceQuotation("Category 1", "Mumbai City", 1500, headers, pricingRates())

	if len(pricing.Breakdown) != 1 {
		t.Fatalf("breakdown has %d headers", len(pricing.Breakdown))
	}
	hb := pricing.Breakdown[0]
	if len(hb.Services) != 1 {
		t.Fatalf("package priced as %d lines, want 1 core line", len(hb.Services))
	}

	core := hb.Services[0]
	if core.ID != "package-package-a" {
		t.Errorf("core line id = %q", core.ID)
	}
	if core.Name != "Package A (Core Services)" {
		t.Errorf("core line name = %q", core.Name)
	}
	if core.TotalAmount != 150000 {
		t.Errorf("core amount = %v, want 150000", core.TotalAmount)
	}
	if pricing.Subtotal != 150000 || pricing.ServiceCount != 1 {
		t.Errorf("subtotal=%v count=%d", pricing.Subtotal, pricing.ServiceCount)
	}
}

func TestPriceQuotation_PackageAddOnLines(t *testing.T) {
	c := DefaultCatalog()

	headers := c.ExpandHeaders([]HeaderSelection{{
		Header:   "Package A",
		Services: []ServiceSelection{{ID: "service-addon-1"}},
	}})
	pricing := c.PriceQuotation("Category 1", "Mumbai City", 1500, headers, pricingRates())

	hb := pricing.Breakdown[0]
	if len(hb.Services) != 2 {
		t.Fatalf("priced %d lines, want core + add-on", len(hb.Services))
	}

	addOn := hb.Services[1]
	if addOn.Name != "LIAISONING (Add-on)" {
		t.Errorf("add-on name = %q", addOn.Name)
	}
	if addOn.TotalAmount != 25000 {
		t.Errorf("add-on amount = %v", addOn.TotalAmount)
	}
	if hb.HeaderTotal != 175000 {
		t.Errorf("header total = %v", hb.HeaderTotal)
	}
}

func TestPriceQuotation_QuarterlyMultiplier(t *testing.T) {
	c := DefaultCatalog()

	headers := c.ExpandHeaders([]HeaderSelection{{
		Header: "Add-on Services",
		Services: []ServiceSelection{{
			ID:           "service-addon-4",
			QuarterCount: 3,
		}},
	}})
	pricing := c.PriceQuotation("Category 1", "Mumbai City", 1500, headers, pricingRates())

	line := pricing.Breakdown[0].Services[0]
	if line.Multiplier != 3 || line.QuarterCount != 3 {
		t.Errorf("multiplier=%d quarterCount=%d, want 3", line.Multiplier, line.QuarterCount)
	}
	if line.TotalAmount != 30000 {
		t.Errorf("total = %v, want 10000*3", line.TotalAmount)
	}
}

func TestPriceQuotation_QuarterCountDefaultsToOne(t *testing.T) {
	c := DefaultCatalog()

	headers := c.ExpandHeaders([]HeaderSelection{{
		Header:   "Add-on Services",
		Services: []ServiceSelection{{ID: "service-addon-4"}},
	}})
	pricing := c.PriceQuotation("Category 1", "Mumbai City", 1500, headers, pricingRates())

	line := pricing.Breakdown[0].Services[0]
	if line.Multiplier != 1 || line.TotalAmount != 10000 {
		t.Errorf("multiplier=%d total=%v, want 1 and 10000", line.Multiplier, line.TotalAmount)
	}
}

func TestPriceQuotation_YearlyMultiplier(t *testing.T) {
	c := DefaultCatalog()

	headers := c.ExpandHeaders([]HeaderSelection{{
		Header: "Add-on Services",
		Services: []ServiceSelection{{
			ID:            "service-addon-7",
			SelectedYears: []string{"2026", "2027"},
		}},
	}})
	pricing := c.PriceQuotation("Category 1", "Mumbai City", 1500, headers, pricingRates())

	line := pricing.Breakdown[0].Services[0]
	if line.YearCount != 2 || line.Multiplier != 2 {
		t.Errorf("yearCount=%d multiplier=%d, want 2", line.YearCount, line.Multiplier)
	}
	if line.TotalAmount != 40000 {
		t.Errorf("total = %v, want 20000*2", line.TotalAmount)
	}
}

func TestPriceQuotation_MissingServiceFallsBack(t *testing.T) {
	c := DefaultCatalog()

	headers := c.ExpandHeaders([]HeaderSelection{{
		Header:   "Customized Header",
		Services: []ServiceSelection{{ID: "service-unknown", Name: "Bespoke Advisory"}},
	}})
	pricing := c.PriceQuotation("Category 1", "Mumbai City", 1500, headers, pricingRates())

	line := pricing.Breakdown[0].Services[0]
	if line.BaseAmount != FallbackAmount || line.RateStage != StageFallback {
		t.Errorf("fallback line = %+v", line)
	}
}

func TestPriceQuotation_SubtotalSpansHeaders(t *testing.T) {
	c := DefaultCatalog()

	headers := c.ExpandHeaders([]HeaderSelection{
		{Header: "Package A"},
		{Header: "Legal", Services: []ServiceSelection{{ID: "service-legal-1"}}},
	})
	pricing := c.PriceQuotation("Category 1", "Mumbai City", 1500, headers, pricingRates())

	if len(pricing.Breakdown) != 2 {
		t.Fatalf("breakdown has %d headers", len(pricing.Breakdown))
	}
	want := 150000.0 + 40000.0
	if pricing.Subtotal != want {
		t.Errorf("subtotal = %v, want %v", pricing.Subtotal, want)
	}
	if pricing.ServiceCount != 2 {
		t.Errorf("service count = %d, want 2", pricing.ServiceCount)
	}
}

func TestRound2(t *testing.T) {
	if got := round2(10000.0 / 3 * 3); math.Abs(got-10000) > 0.01 {
		t.Errorf("round2 drift: %v", got)
	}
	if got := round2(1.005); got != 1.0 && got != 1.01 {
		t.Errorf("round2(1.005) = %v", got)
	}
}
