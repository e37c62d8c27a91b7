package handlers

import (
	"fmt"
	"strconv"

	"dub-translator/internal/domain/dto"
	"dub-translator/internal/usecases"
	"dub-translator/pkg/errors"
	"dub-translator/pkg/file"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DubbingHandler struct {
	service usecases.DubbingService
	log     *zap.Logger
}

func NewDubbingHandler(service usecases.DubbingService, log *zap.Logger) *DubbingHandler {
	return &DubbingHandler{
		service: service,
		log:     log,
	}
}

// Upload
//
// @Summary      Submit recording for dubbing
// @Description  Forwards recorded speech to the dubbing service and returns the job id with its expected duration
// @Tags         Dubbing
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio        formData  file    true   "Recorded audio"
// @Param        source_lang  formData  string  false  "Source language code (default en)"
// @Param        target_lang  formData  string  false  "Target language code (default es)"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse  "Missing audio or invalid language"
// @Failure      500  {object}  dto.ErrorResponse  "Dubbing service rejected the upload"
// @Router       /upload [post]
func (h *DubbingHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return errors.HandleError(c, h.log, errors.ErrMissingAudio(err))
	}

	audio, err := fileHeader.Open()
	if err != nil {
		return errors.HandleError(c, h.log, errors.ErrMissingAudio(err))
	}
	defer audio.Close()

	req := &dto.UploadRequestDTO{
		SourceLang: c.FormValue("source_lang"),
		TargetLang: c.FormValue("target_lang"),
		Filename:   fileHeader.Filename,
	}

	response, err := h.service.Upload(c.UserContext(), req, audio)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.JSON(response)
}

// Status
//
// @Summary      Dubbing status
// @Description  Returns the dubbing service status document unchanged
// @Tags         Dubbing
// @Produce      json
// @Param        id   path      string  true  "Dubbing ID"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /translations/{id}/status [get]
func (h *DubbingHandler) Status(c *fiber.Ctx) error {
	st, err := h.service.Status(c.UserContext(), c.Params("id"))
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(st.Raw)
}

// Audio
//
// @Summary      Stream dubbed audio
// @Tags         Dubbing
// @Produce      audio/mpeg
// @Param        id           path   string  true   "Dubbing ID"
// @Param        target_lang  query  string  false  "Target language code"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /translations/{id}/audio [get]
func (h *DubbingHandler) Audio(c *fiber.Ctx) error {
	return h.streamAudio(c, false)
}

// Download
//
// @Summary      Download dubbed audio
// @Description  Same stream as /audio, sent as an attachment with caching disabled
// @Tags         Dubbing
// @Produce      audio/mpeg
// @Param        id           path   string  true   "Dubbing ID"
// @Param        target_lang  query  string  false  "Target language code"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /translations/{id}/download [get]
func (h *DubbingHandler) Download(c *fiber.Ctx) error {
	return h.streamAudio(c, true)
}

func (h *DubbingHandler) streamAudio(c *fiber.Ctx, attachment bool) error {
	req := &dto.AudioRequestDTO{
		DubbingID:  c.Params("id"),
		TargetLang: c.Query("target_lang"),
	}

	stream, err := h.service.Audio(c.UserContext(), req)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}

	c.Set(fiber.HeaderContentType, stream.ContentType)
	if attachment {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.DownloadName(req.DubbingID, req.TargetLang)))
		c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
		c.Set(fiber.HeaderPragma, "no-cache")
		c.Set(fiber.HeaderExpires, "0")
	}

	// fasthttp gövdeyi gönderdikten sonra stream'i kapatır
	return c.SendStream(stream.Body, int(stream.ContentLength))
}

// Transcript
//
// @Summary      Dubbing transcript
// @Tags         Dubbing
// @Produce      plain
// @Param        id           path   string  true   "Dubbing ID"
// @Param        language     query  string  false  "source or target (default target)"
// @Param        source_lang  query  string  false  "Source language code"
// @Param        target_lang  query  string  false  "Target language code"
// @Param        format       query  string  false  "srt or webvtt (default srt)"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /translations/{id}/transcript [get]
func (h *DubbingHandler) Transcript(c *fiber.Ctx) error {
	req := &dto.TranscriptRequestDTO{
		DubbingID:  c.Params("id"),
		Language:   c.Query("language"),
		SourceLang: c.Query("source_lang"),
		TargetLang: c.Query("target_lang"),
		Format:     c.Query("format"),
	}

	text, err := h.service.Transcript(c.UserContext(), req)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}

// Archived
//
// @Summary      Download archived dub
// @Description  Serves the copy stored by the archive worker, without calling the dubbing service
// @Tags         Dubbing
// @Produce      audio/mpeg
// @Param        id   path      string  true  "Dubbing ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /translations/{id}/archive [get]
func (h *DubbingHandler) Archived(c *fiber.Ctx) error {
	id := c.Params("id")
	stream, lang, err := h.service.ArchivedAudio(c.UserContext(), id)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}

	c.Set(fiber.HeaderContentType, stream.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.DownloadName(id, lang)))
	return c.SendStream(stream.Body, int(stream.ContentLength))
}

// GetJob
//
// @Summary      Tracked dubbing job
// @Tags         Dubbing
// @Produce      json
// @Param        id   path      string  true  "Dubbing ID"
// @Success      200  {object}  dto.JobResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /translations/{id} [get]
func (h *DubbingHandler) GetJob(c *fiber.Ctx) error {
	job, err := h.service.GetJob(c.UserContext(), c.Params("id"))
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.JSON(job)
}

// ListHistory
//
// @Summary      Archived dubbings
// @Tags         Dubbing
// @Produce      json
// @Param        limit  query     int  false  "Max records (default 50)"
// @Success      200    {array}   dto.HistoryRecordResponse
// @Router       /translations [get]
func (h *DubbingHandler) ListHistory(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	records, err := h.service.ListHistory(c.UserContext(), limit)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.JSON(records)
}
