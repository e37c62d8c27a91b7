package repositories

import (
	"context"
	"io"

	"dub-translator/internal/domain/dto"
)

// AudioStream is a streamed upstream body with its content metadata.
type AudioStream struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64 // -1 bilinmiyorsa
}

type DubbingRequest struct {
	Audio      io.Reader
	Filename   string
	SourceLang string
	TargetLang string
}

// DubbingGateway is the external dubbing service.
type DubbingGateway interface {
	CreateDubbing(ctx context.Context, req DubbingRequest) (*dto.UploadResponse, error)
	GetDubbing(ctx context.Context, dubbingID string) (*dto.StatusResponse, error)
	DubbedAudio(ctx context.Context, dubbingID, lang string) (*AudioStream, error)
	Transcript(ctx context.Context, dubbingID, lang, format string) (string, error)
}
