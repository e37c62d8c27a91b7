package repositories

import (
	"context"
	"sync"
	"time"

	"dub-translator/internal/domain/entities"
	"dub-translator/internal/domain/repositories"
	consts "dub-translator/pkg/constants"
)

// InMemoryJobRepository is used when no Redis server is configured.
type InMemoryJobRepository struct {
	mu   sync.RWMutex
	data map[string]*entities.DubbingJob
}

func NewInMemoryJobRepository() *InMemoryJobRepository {
	return &InMemoryJobRepository{
		data: make(map[string]*entities.DubbingJob),
	}
}

func (r *InMemoryJobRepository) Save(_ context.Context, job *entities.DubbingJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	cp := *job
	r.data[job.DubbingID] = &cp
	return nil
}

func (r *InMemoryJobRepository) Get(_ context.Context, dubbingID string) (*entities.DubbingJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.data[dubbingID]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	cp := *job
	return &cp, nil
}

func (r *InMemoryJobRepository) UpdateStatus(_ context.Context, dubbingID, status string) (*entities.DubbingJob, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.data[dubbingID]
	if !ok {
		return nil, false, repositories.ErrJobNotFound
	}

	wasTerminal := consts.IsTerminalStatus(job.Status)
	job.Status = status
	job.UpdatedAt = time.Now().UTC()

	cp := *job
	return &cp, !wasTerminal && consts.IsTerminalStatus(status), nil
}
