package repositories

import (
	"context"
	"io"
)

// StorageStrategy arşiv depolaması (local veya s3)
type StorageStrategy interface {
	Save(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
