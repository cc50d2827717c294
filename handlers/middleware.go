package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// LoadAuthUser resolves the bearer token from the Authorization header into
// an auth record on the request event. Missing or invalid tokens are not an
// error here; handlers that need authentication call requireAuth.
func LoadAuthUser(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		token := bearerToken(e.Request.Header.Get("Authorization"))
		if token != "" && e.Auth == nil {
			if rec, err := app.FindAuthRecordByToken(token, core.TokenTypeAuth); err == nil {
				e.Auth = rec
			}
		}
		return e.Next()
	}
}

// bearerToken strips the optional "Bearer " scheme prefix.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
		return strings.TrimSpace(parts[1])
	}
	return header
}

// requireAuth returns the authenticated user record or writes a 401.
func requireAuth(e *core.RequestEvent) (*core.Record, error) {
	if e.Auth == nil {
		return nil, apiError(e, http.StatusUnauthorized, "Token missing")
	}
	return e.Auth, nil
}

// requireRoles returns the authenticated user when its role is one of the
// allowed ones, or writes a 401/403.
func requireRoles(e *core.RequestEvent, roles ...string) (*core.Record, error) {
	user, err := requireAuth(e)
	if user == nil {
		return nil, err
	}
	role := user.GetString("role")
	for _, allowed := range roles {
		if role == allowed {
			return user, nil
		}
	}
	return nil, apiError(e, http.StatusForbidden, "Insufficient permissions")
}
