package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"github.com/ParthhMahajann/rera-easy/collections"
	"github.com/ParthhMahajann/rera-easy/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve the built frontend from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Resolve bearer tokens globally
		se.Router.BindFunc(handlers.LoadAuthUser(app))

		// ── Auth ─────────────────────────────────────────────────
		se.Router.POST("/api/login", handlers.HandleLogin(app))
		se.Router.POST("/api/signup", handlers.HandleSignup(app))
		se.Router.GET("/api/me", handlers.HandleMe())

		// ── Form options ─────────────────────────────────────────
		se.Router.GET("/api/options", handlers.HandleOptions(app))

		// ── Quotations ───────────────────────────────────────────
		se.Router.GET("/api/quotations", handlers.HandleQuotationList(app))
		se.Router.POST("/api/quotations", handlers.HandleQuotationCreate(app))
		se.Router.POST("/api/quotations/calculate-pricing", handlers.HandleCalculatePricing(app))
		se.Router.GET("/api/quotations/pending", handlers.HandlePendingQuotations(app))

		// Specific {id} routes before the bare one
		se.Router.PUT("/api/quotations/{id}/pricing", handlers.HandleQuotationPricing(app))
		se.Router.PUT("/api/quotations/{id}/terms", handlers.HandleQuotationTerms(app))
		se.Router.PUT("/api/quotations/{id}/approve", handlers.HandleQuotationApprove(app))
		se.Router.GET("/api/quotations/{id}/download-pdf", handlers.HandleQuotationPDF(app))
		se.Router.GET("/api/quotations/{id}/download-excel", handlers.HandleQuotationExcel(app))
		se.Router.GET("/api/quotations/{id}", handlers.HandleQuotationGet(app))
		se.Router.PUT("/api/quotations/{id}", handlers.HandleQuotationUpdate(app))

		// ── Rate table administration ────────────────────────────
		se.Router.POST("/api/rates/import", handlers.HandleRateImport(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
