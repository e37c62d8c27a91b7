package repositories

import (
	"context"
	"errors"

	"dub-translator/internal/domain/entities"
	"dub-translator/internal/domain/repositories"

	"gorm.io/gorm"
)

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) repositories.HistoryRepository {
	return &historyRepository{
		db: db,
	}
}

func (r *historyRepository) Create(ctx context.Context, record *entities.DubbingRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *historyRepository) GetByDubbingID(ctx context.Context, dubbingID string) (*entities.DubbingRecord, error) {
	var record entities.DubbingRecord
	err := r.db.WithContext(ctx).
		Where("dubbing_id = ?", dubbingID).
		Order("created_at DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *historyRepository) List(ctx context.Context, limit int) ([]entities.DubbingRecord, error) {
	var records []entities.DubbingRecord
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
