package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mathquest/mathquest-api/internal/config"
	"github.com/mathquest/mathquest-api/internal/handler"
	"github.com/mathquest/mathquest-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ProblemHandler    *handler.ProblemHandler
	SubmissionHandler *handler.SubmissionHandler
	RateLimiter       fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	// Generation endpoints share one rate limiter, or a no-op if nil
	rateLimiter := deps.RateLimiter
	if rateLimiter == nil {
		rateLimiter = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.ProblemHandler != nil {
		problemGroup := api.Group("/problem", rateLimiter)
		deps.ProblemHandler.Register(problemGroup)
	}

	if deps.SubmissionHandler != nil {
		submissionGroup := api.Group("/submission", rateLimiter)
		deps.SubmissionHandler.Register(submissionGroup)
	}

	app.Get("/metrics", observability.MetricsHandler())

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}
}
