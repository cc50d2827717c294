package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/ParthhMahajann/rera-easy/services"
)

// HandleOptions returns the dropdown option sets the quotation form needs.
func HandleOptions(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return apiData(e, http.StatusOK, map[string]any{
			"developerTypes":   services.CategoryOptions,
			"projectRegions":   services.RegionOptions,
			"validity":         services.ValidityOptions,
			"paymentSchedules": services.PaymentScheduleOptions,
			"packages":         services.PackageOptions,
		})
	}
}
