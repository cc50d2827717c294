package handlers

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
	"github.com/spf13/cast"

	"github.com/ParthhMahajann/rera-easy/services"
)

// quotationDTO shapes a stored quotation the way the frontend consumes it,
// including the derived effective discount percent.
func quotationDTO(rec *core.Record) map[string]any {
	var headers []services.ExpandedHeader
	_ = rec.UnmarshalJSONField("headers", &headers)
	var breakdown []services.HeaderBreakdown
	_ = rec.UnmarshalJSONField("pricing_breakdown", &breakdown)
	var applicableTerms []string
	_ = rec.UnmarshalJSONField("applicable_terms", &applicableTerms)
	var customTerms []string
	_ = rec.UnmarshalJSONField("custom_terms", &customTerms)

	if headers == nil {
		headers = []services.ExpandedHeader{}
	}
	if breakdown == nil {
		breakdown = []services.HeaderBreakdown{}
	}
	if applicableTerms == nil {
		applicableTerms = []string{}
	}
	if customTerms == nil {
		customTerms = []string{}
	}

	effective := services.EffectiveDiscountPercent(
		rec.GetFloat("discount_percent"),
		rec.GetFloat("discount_amount"),
		rec.GetFloat("total_amount"),
	)

	var approvedAt any
	if dt := rec.GetDateTime("approved_at"); !dt.IsZero() {
		approvedAt = dt.Time().Format("2006-01-02T15:04:05Z07:00")
	}

	return map[string]any{
		"id":                       rec.GetString("quote_number"),
		"developerType":            rec.GetString("developer_type"),
		"projectRegion":            rec.GetString("project_region"),
		"plotArea":                 rec.GetFloat("plot_area"),
		"developerName":            rec.GetString("developer_name"),
		"projectName":              rec.GetString("project_name"),
		"contactMobile":            rec.GetString("contact_mobile"),
		"contactEmail":             rec.GetString("contact_email"),
		"validity":                 rec.GetString("validity"),
		"paymentSchedule":          rec.GetString("payment_schedule"),
		"reraNumber":               rec.GetString("rera_number"),
		"headers":                  headers,
		"pricingBreakdown":         breakdown,
		"totalAmount":              rec.GetFloat("total_amount"),
		"discountAmount":           rec.GetFloat("discount_amount"),
		"effectiveDiscountPercent": round2(effective),
		"serviceSummary":           rec.GetString("service_summary"),
		"createdBy":                rec.GetString("created_by"),
		"status":                   rec.GetString("status"),
		"createdAt":                rec.GetString("created"),
		"termsAccepted":            rec.GetBool("terms_accepted"),
		"applicableTerms":          applicableTerms,
		"customTerms":              customTerms,
		"requiresApproval":         rec.GetBool("requires_approval"),
		"approvedBy":               rec.GetString("approved_by"),
		"approvedAt":               approvedAt,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// findQuotation resolves a path id, which is the business "REQ NNNN" number
// (falling back to the raw record id for older links).
func findQuotation(app *pocketbase.PocketBase, id string) (*core.Record, error) {
	if rec, err := app.FindFirstRecordByData("quotations", "quote_number", id); err == nil {
		return rec, nil
	}
	return app.FindRecordById("quotations", id)
}

// nextQuotationNumber scans existing quote numbers and returns the next
// sequential value.
func nextQuotationNumber(app *pocketbase.PocketBase) int {
	type row struct {
		QuoteNumber string `db:"quote_number"`
	}
	var rows []row
	err := app.DB().
		Select("quote_number").
		From("quotations").
		All(&rows)
	if err != nil {
		log.Printf("quotations: could not scan quote numbers: %v", err)
		return 1
	}

	max := 0
	for _, r := range rows {
		parts := strings.SplitN(r.QuoteNumber, " ", 2)
		if len(parts) != 2 || parts[0] != "REQ" {
			continue
		}
		if n, err := strconv.Atoi(parts[1]); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

// applyApprovalPolicy re-evaluates the escalation policy against the stored
// record and the acting user, updating status and approver fields.
// resolvedStatus is what the quotation becomes when no trigger fires;
// "completed" additionally auto-attributes the acting user as approver.
func applyApprovalPolicy(rec *core.Record, user *core.Record, resolvedStatus string) services.ApprovalVerdict {
	var headers []services.ExpandedHeader
	_ = rec.UnmarshalJSONField("headers", &headers)
	var customTerms []string
	_ = rec.UnmarshalJSONField("custom_terms", &customTerms)

	verdict := services.EvaluateApproval(services.ApprovalInput{
		Headers:          headers,
		CustomTermsCount: len(customTerms),
		EffectiveDiscountPercent: services.EffectiveDiscountPercent(
			rec.GetFloat("discount_percent"),
			rec.GetFloat("discount_amount"),
			rec.GetFloat("total_amount"),
		),
		ApproverThresholdPercent: user.GetFloat("threshold"),
	})

	if verdict.RequiresApproval {
		rec.Set("requires_approval", true)
		rec.Set("status", "pending_approval")
		rec.Set("approved_by", "")
		rec.Set("approved_at", "")
	} else {
		rec.Set("requires_approval", false)
		rec.Set("status", resolvedStatus)
		if resolvedStatus == "completed" {
			rec.Set("approved_by", user.GetString("username"))
			rec.Set("approved_at", types.NowDateTime())
		}
	}
	return verdict
}

// HandleQuotationList returns all quotations, newest first.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quotations", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("quotations: list failed: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to fetch quotations")
		}

		dtos := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			dtos = append(dtos, quotationDTO(rec))
		}
		return apiData(e, http.StatusOK, dtos)
	}
}

type createQuotationRequest struct {
	DeveloperType   string                     `json:"developerType"`
	ProjectRegion   string                     `json:"projectRegion"`
	PlotArea        any                        `json:"plotArea"`
	DeveloperName   string                     `json:"developerName"`
	ProjectName     string                     `json:"projectName"`
	ContactMobile   string                     `json:"contactMobile"`
	ContactEmail    string                     `json:"contactEmail"`
	Validity        string                     `json:"validity"`
	PaymentSchedule string                     `json:"paymentSchedule"`
	ReraNumber      string                     `json:"reraNumber"`
	ServiceSummary  string                     `json:"serviceSummary"`
	TermsAccepted   bool                       `json:"termsAccepted"`
	ApplicableTerms []string                   `json:"applicableTerms"`
	Headers         []services.HeaderSelection `json:"headers"`
}

func (r createQuotationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DeveloperType, validation.Required),
		validation.Field(&r.ProjectRegion, validation.Required),
		validation.Field(&r.DeveloperName, validation.Required),
		validation.Field(&r.PlotArea, validation.Required),
	)
}

// HandleQuotationCreate expands the selected headers against the catalog and
// stores a new draft quotation with the next sequential REQ number.
func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		user, err := requireAuth(e)
		if user == nil {
			return err
		}

		var req createQuotationRequest
		if err := e.BindBody(&req); err != nil {
			return badRequest(e, err)
		}
		if err := req.Validate(); err != nil {
			return badRequest(e, err)
		}

		plotArea, err := cast.ToFloat64E(req.PlotArea)
		if err != nil {
			return apiError(e, http.StatusBadRequest, "plotArea must be numeric")
		}

		col, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Failed to create quotation")
		}

		expanded := services.DefaultCatalog().ExpandHeaders(req.Headers)

		createdBy := strings.TrimSpace(user.GetString("fname") + " " + user.GetString("lname"))
		if createdBy == "" {
			createdBy = user.GetString("username")
		}

		applicableTerms := req.ApplicableTerms
		if applicableTerms == nil {
			applicableTerms = []string{}
		}

		rec := core.NewRecord(col)
		rec.Set("quote_number", fmt.Sprintf("REQ %04d", nextQuotationNumber(app)))
		rec.Set("developer_type", req.DeveloperType)
		rec.Set("project_region", req.ProjectRegion)
		rec.Set("plot_area", plotArea)
		rec.Set("developer_name", req.DeveloperName)
		rec.Set("project_name", req.ProjectName)
		rec.Set("contact_mobile", req.ContactMobile)
		rec.Set("contact_email", req.ContactEmail)
		rec.Set("validity", defaultString(req.Validity, "7 days"))
		rec.Set("payment_schedule", defaultString(req.PaymentSchedule, "50%"))
		rec.Set("rera_number", req.ReraNumber)
		rec.Set("service_summary", req.ServiceSummary)
		rec.Set("created_by", createdBy)
		rec.Set("terms_accepted", req.TermsAccepted)
		rec.Set("applicable_terms", applicableTerms)
		rec.Set("custom_terms", []string{})
		rec.Set("headers", expanded)
		rec.Set("pricing_breakdown", []services.HeaderBreakdown{})
		rec.Set("status", "draft")

		if err := app.Save(rec); err != nil {
			log.Printf("quotations: create failed: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to create quotation")
		}

		return apiData(e, http.StatusCreated, quotationDTO(rec))
	}
}

// HandleQuotationGet returns a single quotation by its REQ number.
func HandleQuotationGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := findQuotation(app, e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Not found")
		}
		return apiData(e, http.StatusOK, quotationDTO(rec))
	}
}

type updateQuotationRequest struct {
	Headers         *[]services.HeaderSelection `json:"headers"`
	ServiceSummary  *string                     `json:"serviceSummary"`
	Status          *string                     `json:"status"`
	TermsAccepted   *bool                       `json:"termsAccepted"`
	ApplicableTerms *[]string                   `json:"applicableTerms"`
}

// HandleQuotationUpdate applies a partial update, re-expanding any supplied
// headers, then re-runs the approval policy. A quotation that no longer
// needs approval falls back to draft; finalization happens through the
// pricing and terms endpoints.
func HandleQuotationUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		user, err := requireAuth(e)
		if user == nil {
			return err
		}

		rec, err := findQuotation(app, e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Not found")
		}

		var req updateQuotationRequest
		if err := e.BindBody(&req); err != nil {
			return badRequest(e, err)
		}

		if req.Headers != nil {
			rec.Set("headers", services.DefaultCatalog().ExpandHeaders(*req.Headers))
		}
		if req.ServiceSummary != nil {
			rec.Set("service_summary", *req.ServiceSummary)
		}
		if req.Status != nil {
			rec.Set("status", *req.Status)
		}
		if req.TermsAccepted != nil {
			rec.Set("terms_accepted", *req.TermsAccepted)
		}
		if req.ApplicableTerms != nil {
			rec.Set("applicable_terms", *req.ApplicableTerms)
		}

		applyApprovalPolicy(rec, user, "draft")

		if err := app.Save(rec); err != nil {
			log.Printf("quotations: update failed: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to update quotation")
		}

		return apiData(e, http.StatusOK, quotationDTO(rec))
	}
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
