package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mathquest/mathquest-api/internal/config"
	"github.com/mathquest/mathquest-api/internal/database"
	"github.com/mathquest/mathquest-api/internal/handler"
	"github.com/mathquest/mathquest-api/internal/middleware"
	"github.com/mathquest/mathquest-api/internal/models"
	"github.com/mathquest/mathquest-api/internal/repository"
	"github.com/mathquest/mathquest-api/internal/router"
	"github.com/mathquest/mathquest-api/internal/service"
	"github.com/mathquest/mathquest-api/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.ProblemSession{}, &models.Submission{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	generator, err := ai.NewOpenAIGenerator(ai.OpenAIConfig{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.OpenAIModel,
		MaxTokens:   cfg.OpenAIMaxTokens,
		Temperature: cfg.OpenAITemperature,
		Logger:      logger,
	})
	if err != nil {
		log.Fatalf("failed to create openai generator: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	sessionRepo := repository.NewSessionRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	problemService := service.NewProblemService(sessionRepo, generator, validate, logger)
	submissionService := service.NewSubmissionService(sessionRepo, submissionRepo, generator, validate, logger)

	problemHandler := handler.NewProblemHandler(problemService, validate, logger)
	submissionHandler := handler.NewSubmissionHandler(submissionService, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ProblemHandler:    problemHandler,
		SubmissionHandler: submissionHandler,
		RateLimiter:       middleware.RateLimit("generation", cfg.RateLimitMax, cfg.RateLimitWindow),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
