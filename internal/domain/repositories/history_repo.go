package repositories

import (
	"context"
	"errors"

	"dub-translator/internal/domain/entities"
)

var ErrRecordNotFound = errors.New("dubbing record not found")

type HistoryRepository interface {
	Create(ctx context.Context, record *entities.DubbingRecord) error
	GetByDubbingID(ctx context.Context, dubbingID string) (*entities.DubbingRecord, error)
	List(ctx context.Context, limit int) ([]entities.DubbingRecord, error)
}
