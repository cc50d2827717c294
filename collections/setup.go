package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically ensures the quotations collection exists and that
// the built-in users auth collection carries the approval fields.
func Setup(app *pocketbase.PocketBase) {
	setupUserFields(app)

	ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quote_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "developer_type", Required: true})
		c.Fields.Add(&core.TextField{Name: "project_region", Required: true})
		c.Fields.Add(&core.NumberField{Name: "plot_area", Required: true})
		c.Fields.Add(&core.TextField{Name: "developer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "project_name"})
		c.Fields.Add(&core.TextField{Name: "contact_mobile"})
		c.Fields.Add(&core.TextField{Name: "contact_email"})
		c.Fields.Add(&core.TextField{Name: "validity"})
		c.Fields.Add(&core.TextField{Name: "payment_schedule"})
		c.Fields.Add(&core.TextField{Name: "rera_number"})
		c.Fields.Add(&core.JSONField{Name: "headers", MaxSize: 2 << 20})
		c.Fields.Add(&core.JSONField{Name: "pricing_breakdown", MaxSize: 2 << 20})
		c.Fields.Add(&core.JSONField{Name: "applicable_terms", MaxSize: 1 << 20})
		c.Fields.Add(&core.JSONField{Name: "custom_terms", MaxSize: 1 << 20})
		c.Fields.Add(&core.NumberField{Name: "total_amount"})
		c.Fields.Add(&core.NumberField{Name: "discount_amount"})
		c.Fields.Add(&core.NumberField{Name: "discount_percent"})
		c.Fields.Add(&core.TextField{Name: "service_summary"})
		c.Fields.Add(&core.TextField{Name: "created_by"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"draft", "pending_approval", "completed", "rejected"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.BoolField{Name: "terms_accepted"})
		c.Fields.Add(&core.BoolField{Name: "requires_approval"})
		c.Fields.Add(&core.TextField{Name: "approved_by"})
		c.Fields.Add(&core.DateField{Name: "approved_at"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// setupUserFields extends the built-in users auth collection with the
// profile and approval-threshold fields the quotation workflow needs.
func setupUserFields(app *pocketbase.PocketBase) {
	users, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		log.Fatalf("Failed to find users collection: %v", err)
	}

	changed := false
	addField := func(f core.Field) {
		if users.Fields.GetByName(f.GetName()) != nil {
			return
		}
		users.Fields.Add(f)
		changed = true
	}

	addField(&core.TextField{Name: "username"})
	addField(&core.TextField{Name: "fname"})
	addField(&core.TextField{Name: "lname"})
	addField(&core.SelectField{
		Name:      "role",
		Values:    []string{"admin", "manager", "user"},
		MaxSelect: 1,
	})
	addField(&core.NumberField{Name: "threshold"})

	if changed {
		if err := app.Save(users); err != nil {
			log.Fatalf("Failed to extend users collection: %v", err)
		}
		fmt.Printf("Extended collection %q with quotation approval fields\n", users.Name)
	}
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
