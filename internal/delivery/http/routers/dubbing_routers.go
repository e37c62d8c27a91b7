package routers

import (
	"dub-translator/internal/delivery/http/handlers"
	"dub-translator/internal/usecases"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func SetupDubbingRoutes(app *fiber.App, dubbingService usecases.DubbingService, log *zap.Logger) {
	dubbingHandler := handlers.NewDubbingHandler(dubbingService, log)

	// Routes:
	api := app.Group("/api")
	api.Post("/upload", dubbingHandler.Upload)
	api.Get("/translations", dubbingHandler.ListHistory)
	api.Get("/translations/:id", dubbingHandler.GetJob)
	api.Get("/translations/:id/status", dubbingHandler.Status)
	api.Get("/translations/:id/audio", dubbingHandler.Audio)
	api.Get("/translations/:id/download", dubbingHandler.Download)
	api.Get("/translations/:id/transcript", dubbingHandler.Transcript)
	api.Get("/translations/:id/archive", dubbingHandler.Archived)
}
