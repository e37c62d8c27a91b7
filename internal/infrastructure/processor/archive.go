package processor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"dub-translator/internal/domain/entities"
	"dub-translator/internal/domain/repositories"
	"dub-translator/internal/infrastructure/queue"
	consts "dub-translator/pkg/constants"
	"dub-translator/pkg/file"

	"go.uber.org/zap"
)

// Dublajlı ses boyut sınırı (kısa konuşma kayıtları)
const maxArchiveSize = 100 * 1024 * 1024

// ArchiveProcessor stores finished dubs and records them in history.
type ArchiveProcessor struct {
	gateway repositories.DubbingGateway
	storage repositories.StorageStrategy
	history repositories.HistoryRepository
	log     *zap.Logger
}

func NewArchiveProcessor(
	gateway repositories.DubbingGateway,
	storage repositories.StorageStrategy,
	history repositories.HistoryRepository,
	log *zap.Logger,
) *ArchiveProcessor {
	return &ArchiveProcessor{
		gateway: gateway,
		storage: storage,
		history: history,
		log:     log,
	}
}

var _ queue.Processor = (*ArchiveProcessor)(nil)

func (p *ArchiveProcessor) ArchiveDub(ctx context.Context, job queue.Job) error {
	if rec, err := p.history.GetByDubbingID(ctx, job.DubbingID); err == nil && rec.TargetLang == job.TargetLang {
		p.log.Info("dub already archived", zap.String("dubbing_id", job.DubbingID))
		return nil
	} else if err != nil && !errors.Is(err, repositories.ErrRecordNotFound) {
		return fmt.Errorf("geçmiş kaydı okunamadı: %w", err)
	}

	stream, err := p.gateway.DubbedAudio(ctx, job.DubbingID, job.TargetLang)
	if err != nil {
		return fmt.Errorf("dublaj sesi alınamadı: %w", err)
	}
	defer stream.Body.Close()

	data, err := io.ReadAll(io.LimitReader(stream.Body, maxArchiveSize+1))
	if err != nil {
		return fmt.Errorf("dublaj sesi okunamadı: %w", err)
	}
	if len(data) > maxArchiveSize {
		return fmt.Errorf("dublaj sesi çok büyük: %d bayttan fazla", maxArchiveSize)
	}

	checksum, err := file.CalculateHash(bytes.NewReader(data))
	if err != nil {
		return err
	}

	key := file.ArchiveKey(job.DubbingID, job.TargetLang)
	path, err := p.storage.Save(ctx, key, bytes.NewReader(data), stream.ContentType)
	if err != nil {
		return fmt.Errorf("arşive yazılamadı: %w", err)
	}

	completedAt := time.Now().UTC()
	record := &entities.DubbingRecord{
		DubbingID:           job.DubbingID,
		SourceLang:          job.SourceLang,
		TargetLang:          job.TargetLang,
		Status:              consts.StatusArchived,
		AudioPath:           path,
		Checksum:            checksum,
		ExpectedDurationSec: job.ExpectedDurationSec,
		CompletedAt:         &completedAt,
	}
	if err := p.history.Create(ctx, record); err != nil {
		// kayıtsız dosya bırakma
		if delErr := p.storage.Delete(ctx, key); delErr != nil {
			p.log.Warn("archive rollback failed", zap.String("key", key), zap.Error(delErr))
		}
		return fmt.Errorf("geçmiş kaydı oluşturulamadı: %w", err)
	}

	p.log.Info("dub archived",
		zap.String("dubbing_id", job.DubbingID),
		zap.String("target_lang", job.TargetLang),
		zap.String("path", path),
		zap.Int("bytes", len(data)),
	)
	return nil
}
