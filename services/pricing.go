package services

import (
	"math"
	"strings"
)

// PricedService is a single priced line item in the quotation breakdown.
type PricedService struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	BaseAmount  float64      `json:"baseAmount"`
	Multiplier  int          `json:"multiplier"`
	TotalAmount float64      `json:"totalAmount"`
	SubServices []SubService `json:"subServices"`

	QuarterCount int        `json:"quarterCount,omitempty"`
	YearCount    int        `json:"yearCount,omitempty"`
	RateStage    MatchStage `json:"rateStage,omitempty"`
}

// HeaderBreakdown is the priced view of one expanded header.
type HeaderBreakdown struct {
	Header      string          `json:"header"`
	Services    []PricedService `json:"services"`
	HeaderTotal float64         `json:"headerTotal"`
}

// QuotationPricing is the full priced breakdown of a quotation.
type QuotationPricing struct {
	Breakdown    []HeaderBreakdown `json:"breakdown"`
	Subtotal     float64           `json:"subtotal"`
	ServiceCount int               `json:"totalServices"`
}

// PriceQuotation prices every expanded header against the supplied rate
// table. The rate table is request-scoped: callers load it fresh for each
// computation, and the engine never caches it.
//
// A package header is priced as one core line item looked up on the
// package's own name - the bundle price is not the sum of its constituent
// services' individual rates - plus one line per add-on, each resolved
// independently. All other headers price every expanded service
// independently. Per-quarter services multiply by the quarter count and
// per-year services by the number of selected years, both defaulting to 1.
// Totals are rounded to two decimals once per aggregation level.
func (c *Catalog) PriceQuotation(category, region string, plotArea float64, headers []ExpandedHeader, rates []RateEntry) QuotationPricing {
	pricing := QuotationPricing{Breakdown: make([]HeaderBreakdown, 0, len(headers))}

	var subtotal float64
	for _, header := range headers {
		breakdown := HeaderBreakdown{Header: header.Header, Services: []PricedService{}}

		var headerTotal float64
		if header.Kind == HeaderPackage {
			core := c.ResolveRate(rates, category, region, plotArea, header.Header)
			coreLine := PricedService{
				ID:          packageLineID(header.Header),
				Name:        header.Header + " (Core Services)",
				BaseAmount:  core.Amount,
				Multiplier:  1,
				TotalAmount: round2(core.Amount),
				SubServices: []SubService{},
				RateStage:   core.Stage,
			}
			breakdown.Services = append(breakdown.Services, coreLine)
			headerTotal += coreLine.TotalAmount
			pricing.ServiceCount++

			for _, svc := range header.Services {
				if !svc.AddOn {
					continue
				}
				line := c.priceService(rates, category, region, plotArea, svc)
				line.Name += " (Add-on)"
				breakdown.Services = append(breakdown.Services, line)
				headerTotal += line.TotalAmount
				pricing.ServiceCount++
			}
		} else {
			for _, svc := range header.Services {
				line := c.priceService(rates, category, region, plotArea, svc)
				breakdown.Services = append(breakdown.Services, line)
				headerTotal += line.TotalAmount
				pricing.ServiceCount++
			}
		}

		breakdown.HeaderTotal = round2(headerTotal)
		pricing.Breakdown = append(pricing.Breakdown, breakdown)
		subtotal += breakdown.HeaderTotal
	}

	pricing.Subtotal = round2(subtotal)
	return pricing
}

// priceService resolves and prices one expanded service, applying its
// time-based multiplier.
func (c *Catalog) priceService(rates []RateEntry, category, region string, plotArea float64, svc ExpandedService) PricedService {
	match := c.ResolveRate(rates, category, region, plotArea, svc.Name)

	line := PricedService{
		ID:          svc.ID,
		Name:        svc.Name,
		BaseAmount:  match.Amount,
		Multiplier:  1,
		SubServices: svc.SubServices,
		RateStage:   match.Stage,
	}
	if line.SubServices == nil {
		line.SubServices = []SubService{}
	}

	switch svc.Billing {
	case BillPerQuarter:
		line.QuarterCount = svc.QuarterCount
		if line.QuarterCount < 1 {
			line.QuarterCount = 1
		}
		line.Multiplier = line.QuarterCount
	case BillPerYear:
		line.YearCount = len(svc.SelectedYears)
		if line.YearCount < 1 {
			line.YearCount = 1
		}
		line.Multiplier = line.YearCount
	}

	line.TotalAmount = round2(match.Amount * float64(line.Multiplier))
	return line
}

func packageLineID(label string) string {
	return "package-" + strings.ReplaceAll(strings.ToLower(label), " ", "-")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
