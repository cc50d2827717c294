package collections

import (
	"fmt"
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Seed ensures a default admin account exists so the instance is usable
// right after first boot. It is safe to call on every startup: it returns
// early if any admin-role user already exists.
func Seed(app *pocketbase.PocketBase) error {
	usersCol, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		return fmt.Errorf("seed: could not find users collection: %w", err)
	}

	existing, err := app.FindRecordsByFilter(usersCol.Name, "role = 'admin'", "", 1, 0, nil)
	if err != nil {
		return fmt.Errorf("seed: could not query admin users: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: no admin user found - creating default admin ...")

	password := os.Getenv("RERA_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := core.NewRecord(usersCol)
	admin.Set("username", "admin")
	admin.Set("fname", "System")
	admin.Set("lname", "Admin")
	admin.Set("role", "admin")
	admin.Set("threshold", 100)
	admin.Set("email", "admin@reraeasy.local")
	admin.Set("verified", true)
	admin.SetPassword(password)

	if err := app.Save(admin); err != nil {
		return fmt.Errorf("seed: could not create default admin: %w", err)
	}

	log.Println("seed: default admin created (username: admin)")
	return nil
}
