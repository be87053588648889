// file: internals/route/index.go
package route

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooltrans_backend/internals/configs"
	"schooltrans_backend/internals/events"
	transportRoute "schooltrans_backend/internals/features/transport/route"
	authRoute "schooltrans_backend/internals/features/users/auth/route"
	"schooltrans_backend/internals/metrics"
)

// SetupRoutes wires the full HTTP surface: /api/auth, /api/transport,
// /health and /metrics.
func SetupRoutes(app *fiber.App, db *gorm.DB, m *metrics.Collector, ev *events.Publisher) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)
	transportRoute.TransportRoutes(api, db, configs.CurrentAcademicYear, m, ev)
}
