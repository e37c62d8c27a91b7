package routers

import (
	"time"

	"dub-translator/internal/delivery/http/handlers"
	"dub-translator/internal/usecases"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func SetupCleanupRoutes(app *fiber.App, cleanupService usecases.CleanupService, retention time.Duration, log *zap.Logger) {
	cleanupHandler := handlers.NewCleanupHandler(cleanupService, retention, log)

	app.Post("/api/archive/cleanup", cleanupHandler.Trigger)
}
