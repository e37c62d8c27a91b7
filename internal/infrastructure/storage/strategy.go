package storage

import (
	"context"
	"fmt"

	"dub-translator/internal/domain/repositories"
	"dub-translator/internal/pkg/config"
)

// NewStrategy ARCHIVE_DRIVER'a göre local veya s3 storage döner
func NewStrategy(ctx context.Context, cfg config.ArchiveConfig) (repositories.StorageStrategy, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStorage(cfg.Dir), nil
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("ARCHIVE_S3_BUCKET boş olamaz")
		}
		s3, err := NewS3Storage(ctx, cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			return nil, err
		}
		return s3, nil
	default:
		return nil, fmt.Errorf("bilinmeyen arşiv sürücüsü: %q", cfg.Driver)
	}
}
