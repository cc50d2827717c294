package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ParthhMahajann/rera-easy/testhelpers"
)

func TestHandleOptions(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleOptions(app)
	req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	data := decodeBody(t, rec)["data"].(map[string]any)
	for _, key := range []string{"developerTypes", "projectRegions", "validity", "paymentSchedules", "packages"} {
		list, ok := data[key].([]any)
		if !ok || len(list) == 0 {
			t.Errorf("option set %q missing or empty: %v", key, data[key])
		}
	}

	regions := data["projectRegions"].([]any)
	if regions[0] != "Mumbai City" {
		t.Errorf("first region = %v", regions[0])
	}
}
