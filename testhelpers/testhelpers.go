// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"fmt"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/ParthhMahajann/rera-easy/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestUser creates an auth user with the given username, role and
// discount approval threshold, password "test1234".
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, username, role string, threshold float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("failed to find users collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("username", username)
	record.Set("email", fmt.Sprintf("%s@reraeasy.local", username))
	record.Set("fname", "Test")
	record.Set("lname", "User")
	record.Set("role", role)
	record.Set("threshold", threshold)
	record.Set("verified", true)
	record.SetPassword("test1234")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}

	return record
}

// CreateTestQuotation creates a draft quotation with the given quote number
// and project basics.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, quoteNumber string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote_number", quoteNumber)
	record.Set("developer_type", "Category 1")
	record.Set("project_region", "Mumbai City")
	record.Set("plot_area", 1500.0)
	record.Set("developer_name", "Test Developer")
	record.Set("project_name", "Test Project")
	record.Set("validity", "7 days")
	record.Set("payment_schedule", "50%")
	record.Set("status", "draft")
	record.Set("headers", []any{})
	record.Set("pricing_breakdown", []any{})
	record.Set("applicable_terms", []string{})
	record.Set("custom_terms", []string{})

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}
