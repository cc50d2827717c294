// Package handlers implements the JSON quotation API on top of the services
// engine and PocketBase storage.
package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

// apiError writes the {"error": ...} payload the frontend expects.
func apiError(e *core.RequestEvent, status int, message string) error {
	return e.JSON(status, map[string]any{"error": message})
}

// apiData writes a {"success": true, "data": ...} payload.
func apiData(e *core.RequestEvent, status int, data any) error {
	return e.JSON(status, map[string]any{"success": true, "data": data})
}

// badRequest reports a validation failure.
func badRequest(e *core.RequestEvent, err error) error {
	return e.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
}
