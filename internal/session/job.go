package session

import (
	"context"
	"time"

	"dub-translator/internal/domain/dto"
)

type State string

const (
	StateIdle      State = "idle"
	StateUploading State = "uploading"
	StateWaiting   State = "waiting"
	StatePolling   State = "polling"
	StateFetching  State = "fetching"
	StateDone      State = "done"
	StateError     State = "error"
)

// Backend is the dubbing relay the session talks to.
type Backend interface {
	Upload(ctx context.Context, req UploadInput) (*dto.UploadResponse, error)
	Status(ctx context.Context, dubbingID string) (*dto.StatusResponse, error)
	Audio(ctx context.Context, dubbingID, targetLang string) ([]byte, error)
	Transcript(ctx context.Context, req dto.TranscriptRequestDTO) (string, error)
}

type UploadInput struct {
	Audio      []byte
	Filename   string
	SourceLang string
	TargetLang string
}

// Job is the single in-flight dubbing request of a session.
type Job struct {
	ID               string
	SourceLang       string
	TargetLang       string
	ExpectedDuration time.Duration
	Status           string
	Audio            []byte
	Transcript       string
	SubmittedAt      time.Time
}

// handle ties a job to the loop that drives it. gen never repeats within a session.
type handle struct {
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
}
