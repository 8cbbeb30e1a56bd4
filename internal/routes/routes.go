package routes

import (
	"github.com/arzan03/BloodDonorNepal/internal/config"
	"github.com/arzan03/BloodDonorNepal/internal/handlers"
	"github.com/arzan03/BloodDonorNepal/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber app with middleware and the full route table.
func NewApp(h *handlers.Handler, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Blood Donor Nepal API",
		ErrorHandler: middleware.ErrorHandler,
	})

	// Middleware
	app.Use(middleware.NewRequestID())
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
	}))

	Register(app, h)
	return app
}

// Register mounts the API routes on app.
func Register(app *fiber.App, h *handlers.Handler) {
	app.Get("/", h.Root)
	app.Get("/test", h.Health)

	api := app.Group("/api")

	// Donor Routes
	api.Post("/donors", h.CreateDonor)
	api.Get("/donors", h.ListDonors)

	// Request Routes
	api.Post("/requests", h.CreateRequest)
	api.Get("/requests", h.ListRequests)

	// Search Routes
	api.Get("/search/donors", h.SearchDonors)
}
