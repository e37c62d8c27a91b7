package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dub-translator/internal/pkg/fileutils"
)

type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{BasePath: basePath}
}

// resolve anahtarı BasePath dışına çıkamayacak şekilde çözer
func (l *LocalStorage) resolve(key string) (string, error) {
	full := filepath.Join(l.BasePath, filepath.FromSlash(key))
	rel, err := filepath.Rel(l.BasePath, full)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("geçersiz anahtar: %q", key)
	}
	return full, nil
}

func (l *LocalStorage) Save(_ context.Context, key string, r io.Reader, _ string) (string, error) {
	fullPath, err := l.resolve(key)
	if err != nil {
		return "", err
	}

	if _, err := fileutils.WriteAtomic(fullPath, r); err != nil {
		return "", fmt.Errorf("dosya yazılamadı: %w", err)
	}
	return fullPath, nil
}

func (l *LocalStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	fullPath, err := l.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

func (l *LocalStorage) Delete(_ context.Context, key string) error {
	fullPath, err := l.resolve(key)
	if err != nil {
		return err
	}
	return os.Remove(fullPath)
}
