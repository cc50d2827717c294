package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type updateTermsRequest struct {
	AcceptedTerms []string `json:"acceptedTerms"`
	CustomTerms   []string `json:"customTerms"`
}

// HandleQuotationTerms records the accepted standard terms and any custom
// terms, then resolves the quotation. Custom terms always send it through
// the approval queue.
func HandleQuotationTerms(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		user, err := requireAuth(e)
		if user == nil {
			return err
		}

		rec, err := findQuotation(app, e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Not found")
		}

		var req updateTermsRequest
		if err := e.BindBody(&req); err != nil {
			return badRequest(e, err)
		}

		accepted := make([]string, 0, len(req.AcceptedTerms))
		for _, term := range req.AcceptedTerms {
			if strings.TrimSpace(term) != "" {
				accepted = append(accepted, term)
			}
		}
		custom := make([]string, 0, len(req.CustomTerms))
		for _, term := range req.CustomTerms {
			if strings.TrimSpace(term) != "" {
				custom = append(custom, term)
			}
		}

		rec.Set("applicable_terms", accepted)
		rec.Set("custom_terms", custom)
		rec.Set("terms_accepted", true)

		verdict := applyApprovalPolicy(rec, user, "completed")

		if err := app.Save(rec); err != nil {
			log.Printf("terms: save failed for %s: %v", rec.GetString("quote_number"), err)
			return apiError(e, http.StatusInternalServerError, "Failed to update terms")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success":          true,
			"data":             quotationDTO(rec),
			"requiresApproval": verdict.RequiresApproval,
			"triggers":         verdict.Triggers,
		})
	}
}
