package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"github.com/ParthhMahajann/rera-easy/services"
)

type approveRequest struct {
	Action string `json:"action"` // "approve" or "reject"
}

// HandleQuotationApprove lets an admin or manager resolve a pending
// quotation. Managers cannot approve a discount above their own threshold;
// such an attempt is refused and the quotation stays in the queue.
func HandleQuotationApprove(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		user, err := requireRoles(e, "admin", "manager")
		if user == nil {
			return err
		}

		rec, err := findQuotation(app, e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Not found")
		}

		if rec.GetString("status") != "pending_approval" {
			return apiError(e, http.StatusConflict, "Quotation is not pending approval")
		}

		var req approveRequest
		if err := e.BindBody(&req); err != nil {
			return badRequest(e, err)
		}

		switch req.Action {
		case "approve":
			effective := services.EffectiveDiscountPercent(
				rec.GetFloat("discount_percent"),
				rec.GetFloat("discount_amount"),
				rec.GetFloat("total_amount"),
			)
			if user.GetString("role") == "manager" && effective > user.GetFloat("threshold") {
				// Left pending for a reviewer with a higher threshold.
				return apiError(e, http.StatusForbidden, "Discount exceeds your approval threshold")
			}
			rec.Set("status", "completed")
		case "reject":
			rec.Set("status", "rejected")
		default:
			return apiError(e, http.StatusBadRequest, "action must be approve or reject")
		}

		rec.Set("requires_approval", false)
		rec.Set("approved_by", user.GetString("username"))
		rec.Set("approved_at", types.NowDateTime())

		if err := app.Save(rec); err != nil {
			log.Printf("approval: save failed for %s: %v", rec.GetString("quote_number"), err)
			return apiError(e, http.StatusInternalServerError, "Failed to update quotation")
		}

		return apiData(e, http.StatusOK, quotationDTO(rec))
	}
}

// HandlePendingQuotations lists quotations waiting in the approval queue,
// oldest first so reviewers work in submission order.
func HandlePendingQuotations(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		user, err := requireRoles(e, "admin", "manager")
		if user == nil {
			return err
		}

		records, err := app.FindRecordsByFilter(
			"quotations", "requires_approval = true && status = 'pending_approval'",
			"created", 0, 0, nil)
		if err != nil {
			log.Printf("approval: pending list failed: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to fetch pending quotations")
		}

		dtos := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			dtos = append(dtos, quotationDTO(rec))
		}
		return apiData(e, http.StatusOK, dtos)
	}
}
