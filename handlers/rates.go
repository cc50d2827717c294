package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/ParthhMahajann/rera-easy/services"
)

// HandleRateImport replaces the banded rate table from an uploaded Excel
// workbook. Admin only. Rows that fail validation are reported but do not
// abort the import.
func HandleRateImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if user, err := requireRoles(e, "admin"); user == nil {
			return err
		}

		file, _, err := e.Request.FormFile("file")
		if err != nil {
			return apiError(e, http.StatusBadRequest, "Missing file upload")
		}
		defer file.Close()

		result, err := services.ParseRateWorkbook(file)
		if err != nil {
			return apiError(e, http.StatusBadRequest, "Could not read workbook: "+err.Error())
		}
		if result.ValidRows == 0 {
			return apiError(e, http.StatusBadRequest, "Workbook contains no valid rate rows")
		}

		if err := services.SaveRateTable(rateTablePath(), result.Entries); err != nil {
			log.Printf("rates: save failed: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to persist rate table")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success":   true,
			"totalRows": result.TotalRows,
			"validRows": result.ValidRows,
			"errors":    result.Errors,
		})
	}
}
