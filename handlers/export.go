package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/ParthhMahajann/rera-easy/services"
)

// buildQuotationDocument assembles the render-ready view the exporters
// consume from a stored quotation record.
func buildQuotationDocument(rec *core.Record) services.QuotationDocument {
	var headers []services.ExpandedHeader
	_ = rec.UnmarshalJSONField("headers", &headers)
	var breakdown []services.HeaderBreakdown
	_ = rec.UnmarshalJSONField("pricing_breakdown", &breakdown)
	var applicableTerms []string
	_ = rec.UnmarshalJSONField("applicable_terms", &applicableTerms)
	var customTerms []string
	_ = rec.UnmarshalJSONField("custom_terms", &customTerms)

	createdDate := ""
	if dt := rec.GetDateTime("created"); !dt.IsZero() {
		createdDate = dt.Time().Format("02/01/2006")
	}

	return services.QuotationDocument{
		ID:              rec.GetString("quote_number"),
		DeveloperName:   rec.GetString("developer_name"),
		ProjectName:     rec.GetString("project_name"),
		DeveloperType:   rec.GetString("developer_type"),
		ProjectRegion:   rec.GetString("project_region"),
		PlotArea:        rec.GetFloat("plot_area"),
		ReraNumber:      rec.GetString("rera_number"),
		Validity:        rec.GetString("validity"),
		PaymentSchedule: rec.GetString("payment_schedule"),
		CreatedDate:     createdDate,
		CreatedBy:       rec.GetString("created_by"),
		Headers:         headers,
		Breakdown:       breakdown,
		TotalAmount:     rec.GetFloat("total_amount"),
		ApplicableTerms: applicableTerms,
		CustomTerms:     customTerms,
	}
}

func exportFilename(rec *core.Record, ext string) string {
	ref := strings.ReplaceAll(rec.GetString("quote_number"), " ", "_")
	if ref == "" {
		ref = "quotation"
	}
	return fmt.Sprintf("Quotation_%s.%s", ref, ext)
}

// HandleQuotationPDF streams the quotation as a PDF document.
func HandleQuotationPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if user, err := requireAuth(e); user == nil {
			return err
		}

		rec, err := findQuotation(app, e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Not found")
		}

		pdf, err := services.GenerateQuotationPDF(buildQuotationDocument(rec))
		if err != nil {
			log.Printf("export: pdf generation failed for %s: %v", rec.GetString("quote_number"), err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate PDF")
		}

		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", exportFilename(rec, "pdf")))
		return e.Blob(http.StatusOK, "application/pdf", pdf)
	}
}

// HandleQuotationExcel streams the quotation as an Excel workbook.
func HandleQuotationExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if user, err := requireAuth(e); user == nil {
			return err
		}

		rec, err := findQuotation(app, e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Not found")
		}

		book, err := services.GenerateQuotationExcel(buildQuotationDocument(rec))
		if err != nil {
			log.Printf("export: excel generation failed for %s: %v", rec.GetString("quote_number"), err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate Excel")
		}

		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", exportFilename(rec, "xlsx")))
		return e.Blob(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
	}
}
