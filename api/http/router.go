package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/artem13815/atsmatch/api/http/handlers"
	"github.com/artem13815/atsmatch/api/http/presenter"
)

// AppOptions configures the Fiber application.
type AppOptions struct {
	// BodyLimit caps request bodies in bytes; multipart uploads count in full.
	BodyLimit   int
	CORSOrigins string
	// AccessLog toggles the request logger middleware.
	AccessLog bool
}

// NewApp builds a Fiber app whose errors are always rendered as JSON.
func NewApp(opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "ats-matcher",
		BodyLimit:             opts.BodyLimit,
		ErrorHandler:          presenter.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		}))
	}
	origins := opts.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, analyze *handlers.AnalyzeHandler, health *handlers.HealthHandler) {
	app.Post("/analyze", analyze.Analyze)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Post("/analyze", analyze.Analyze)
}
