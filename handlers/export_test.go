package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ParthhMahajann/rera-easy/testhelpers"
)

func TestHandleQuotationPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "alice", "user", 10)
	testhelpers.CreateTestQuotation(t, app, "REQ 0001")

	handler := HandleQuotationPDF(app)
	req := httptest.NewRequest(http.MethodGet, "/api/quotations/REQ%200001/download-pdf", nil)
	req.SetPathValue("id", "REQ 0001")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	e.Auth = user
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Quotation_REQ_0001.pdf") {
		t.Errorf("content disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("body is not a PDF")
	}
}

func TestHandleQuotationExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "alice", "user", 10)
	testhelpers.CreateTestQuotation(t, app, "REQ 0001")

	handler := HandleQuotationExcel(app)
	req := httptest.NewRequest(http.MethodGet, "/api/quotations/REQ%200001/download-excel", nil)
	req.SetPathValue("id", "REQ 0001")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	e.Auth = user
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Quotation_REQ_0001.xlsx") {
		t.Errorf("content disposition = %q", cd)
	}
	body := rec.Body.Bytes()
	if len(body) < 2 || body[0] != 'P' || body[1] != 'K' {
		t.Error("body is not an XLSX archive")
	}
}

func TestHandleQuotationPDF_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "alice", "user", 10)

	handler := HandleQuotationPDF(app)
	req := httptest.NewRequest(http.MethodGet, "/api/quotations/REQ%209999/download-pdf", nil)
	req.SetPathValue("id", "REQ 9999")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	e.Auth = user
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleQuotationPDF_Unauthenticated(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestQuotation(t, app, "REQ 0001")

	handler := HandleQuotationPDF(app)
	req := httptest.NewRequest(http.MethodGet, "/api/quotations/REQ%200001/download-pdf", nil)
	req.SetPathValue("id", "REQ 0001")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
