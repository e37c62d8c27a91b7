package repositories

import (
	"context"
	"errors"

	"dub-translator/internal/domain/entities"
)

var ErrJobNotFound = errors.New("dubbing job not found")

type JobRepository interface {
	Save(ctx context.Context, job *entities.DubbingJob) error
	Get(ctx context.Context, dubbingID string) (*entities.DubbingJob, error)
	// UpdateStatus stores the latest status and reports whether the job
	// moved into a terminal status with this call.
	UpdateStatus(ctx context.Context, dubbingID, status string) (*entities.DubbingJob, bool, error)
}
