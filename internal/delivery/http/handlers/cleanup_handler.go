package handlers

import (
	"time"

	"dub-translator/internal/usecases"
	"dub-translator/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CleanupHandler struct {
	cleanupUC usecases.CleanupService
	retention time.Duration
	log       *zap.Logger
}

func NewCleanupHandler(cleanupUC usecases.CleanupService, retention time.Duration, log *zap.Logger) *CleanupHandler {
	return &CleanupHandler{
		cleanupUC: cleanupUC,
		retention: retention,
		log:       log,
	}
}

// Trigger
//
// @Summary      Run archive cleanup now
// @Description  Manuel trigger; the same job also runs on the cleanup cron
// @Tags         Archive
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /archive/cleanup [post]
func (h *CleanupHandler) Trigger(c *fiber.Ctx) error {
	removed, err := h.cleanupUC.CleanupOldArchives(h.retention)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}
