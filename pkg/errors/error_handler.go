package errors

import (
	stderrors "errors"

	"dub-translator/pkg/errors/i18n"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func HandleError(c *fiber.Ctx, log *zap.Logger, err error) error {
	if err == nil {
		return nil
	}

	var de *DubbingError
	if stderrors.As(err, &de) {
		// Orijinal hatayı logla (debug için)
		if de.Err != nil {
			log.Warn("request failed",
				zap.String("code", de.Code),
				zap.Int("upstream_status", de.Status),
				zap.String("path", c.Path()),
				zap.Error(de.Err),
			)
		}

		return c.Status(StatusFor(de)).JSON(fiber.Map{
			"error":   de.Code,
			"message": de.Message,
		})
	}

	// Yakalanmayan hatalar için fallback
	log.Error("unexpected error", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   CodeInternal,
		"message": i18n.T(CodeInternal),
	})
}

// StatusFor maps an error code to the HTTP status returned to the caller.
func StatusFor(de *DubbingError) int {
	switch de.Code {
	case CodeMissingAudio, CodeInvalidLanguage, CodeInvalidFormat:
		return fiber.StatusBadRequest
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeUpstream:
		if de.Status == fiber.StatusNotFound {
			return fiber.StatusNotFound
		}
		return fiber.StatusBadGateway
	case CodeUploadFailed:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}
