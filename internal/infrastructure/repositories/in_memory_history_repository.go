package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"dub-translator/internal/domain/entities"
	"dub-translator/internal/domain/repositories"

	"github.com/google/uuid"
)

type InMemoryHistoryRepository struct {
	mu      sync.RWMutex
	records []entities.DubbingRecord
}

func NewInMemoryHistoryRepository() *InMemoryHistoryRepository {
	return &InMemoryHistoryRepository{}
}

func (r *InMemoryHistoryRepository) Create(_ context.Context, record *entities.DubbingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	r.records = append(r.records, *record)
	return nil
}

func (r *InMemoryHistoryRepository) GetByDubbingID(_ context.Context, dubbingID string) (*entities.DubbingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].DubbingID == dubbingID {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, repositories.ErrRecordNotFound
}

func (r *InMemoryHistoryRepository) List(_ context.Context, limit int) ([]entities.DubbingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.DubbingRecord, len(r.records))
	copy(out, r.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
