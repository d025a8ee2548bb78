package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"finlit-bot/config"
	"finlit-bot/handlers"
	"finlit-bot/services"
	"finlit-bot/webhooks"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration
	cfg := config.LoadConfig()

	// Build the document store. A failed load is not fatal: the bot keeps
	// running with an empty store and serves refusals and fallbacks only.
	store := loadDocumentStore(cfg)

	retriever := services.NewRetriever(store, nil)

	// Initialize the Gemini fallback; degrade to an always-erroring
	// generator when the client cannot be constructed
	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var generator services.Generator
	gemini, err := services.NewGeminiGenerator(initCtx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		slog.Error("Failed to initialize Gemini client, fallback disabled", "error", err)
		generator = services.UnavailableGenerator{Reason: err}
	} else {
		generator = gemini
	}

	responder := services.NewResponder(retriever, generator)
	sender := services.NewWhatsAppClient(cfg.AccessToken, cfg.PhoneNumberID, cfg.GraphVersion)
	handler := handlers.NewMessageHandler(responder, sender)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	// Register webhook routes
	webhooks.RegisterRoutes(app, cfg, handler)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "finlit-bot",
			"documents": store.Len(),
		})
	})

	slog.Info("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

// loadDocumentStore tries MongoDB when configured, then the JSON data file,
// then gives up and returns an empty store
func loadDocumentStore(cfg *config.Config) *services.Store {
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		store, err := services.LoadStoreFromMongo(ctx, cfg.MongoURI, cfg.DatabaseName)
		if err == nil {
			return store
		}
		slog.Error("Failed to load documents from MongoDB, trying data file", "error", err)
	}

	store, err := services.LoadStore(cfg.DataFile)
	if err != nil {
		slog.Error("Failed to load document source, continuing with empty store", "error", err)
		return services.NewEmptyStore()
	}

	return store
}
