package handlers

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"

	"github.com/ParthhMahajann/rera-easy/services"
)

const defaultRateTablePath = "pricing_data.json"

// rateTablePath returns the banded rate file location, overridable for
// deployments that mount it elsewhere.
func rateTablePath() string {
	if p := os.Getenv("RERA_PRICING_FILE"); p != "" {
		return p
	}
	return defaultRateTablePath
}

// loadRates reads the rate table fresh on every request so an admin upload
// takes effect without a restart.
func loadRates() []services.RateEntry {
	rates, err := services.LoadRateTable(rateTablePath())
	if err != nil {
		log.Printf("pricing: rate table unavailable, falling back: %v", err)
		return nil
	}
	return rates
}

type calculatePricingRequest struct {
	DeveloperType string                     `json:"developerType"`
	ProjectRegion string                     `json:"projectRegion"`
	PlotArea      any                        `json:"plotArea"`
	Headers       []services.HeaderSelection `json:"headers"`
}

// HandleCalculatePricing prices a provisional header selection without
// touching any stored quotation.
func HandleCalculatePricing(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if user, err := requireAuth(e); user == nil {
			return err
		}

		var req calculatePricingRequest
		if err := e.BindBody(&req); err != nil {
			return badRequest(e, err)
		}

		plotArea := cast.ToFloat64(req.PlotArea)
		expanded := services.DefaultCatalog().ExpandHeaders(req.Headers)
		pricing := services.DefaultCatalog().PriceQuotation(
			req.DeveloperType, req.ProjectRegion, plotArea, expanded, loadRates())

		return e.JSON(http.StatusOK, map[string]any{
			"success":   true,
			"breakdown": pricing.Breakdown,
			"summary": map[string]any{
				"subtotal":      pricing.Subtotal,
				"totalServices": pricing.ServiceCount,
			},
		})
	}
}

type updatePricingRequest struct {
	PricingBreakdown *[]services.HeaderBreakdown `json:"pricingBreakdown"`
	TotalAmount      *float64                    `json:"totalAmount"`
	DiscountAmount   *float64                    `json:"discountAmount"`
	DiscountPercent  *float64                    `json:"discountPercent"`
}

// HandleQuotationPricing stores the accepted breakdown and discount on a
// quotation, then resolves it through the approval policy: clean quotations
// complete immediately, escalated ones go to the pending queue.
func HandleQuotationPricing(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		user, err := requireAuth(e)
		if user == nil {
			return err
		}

		rec, err := findQuotation(app, e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Not found")
		}

		var req updatePricingRequest
		if err := e.BindBody(&req); err != nil {
			return badRequest(e, err)
		}

		if req.PricingBreakdown != nil {
			rec.Set("pricing_breakdown", *req.PricingBreakdown)
		}
		if req.TotalAmount != nil {
			rec.Set("total_amount", *req.TotalAmount)
		}
		if req.DiscountAmount != nil {
			rec.Set("discount_amount", *req.DiscountAmount)
		}
		if req.DiscountPercent != nil {
			rec.Set("discount_percent", *req.DiscountPercent)
		}

		verdict := applyApprovalPolicy(rec, user, "completed")

		if err := app.Save(rec); err != nil {
			log.Printf("pricing: save failed for %s: %v", rec.GetString("quote_number"), err)
			return apiError(e, http.StatusInternalServerError, "Failed to update pricing")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success":          true,
			"data":             quotationDTO(rec),
			"requiresApproval": verdict.RequiresApproval,
			"triggers":         verdict.Triggers,
		})
	}
}
