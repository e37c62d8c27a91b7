package usecases

import (
	"os"
	"path/filepath"
	"time"

	"dub-translator/pkg/errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type CleanupService interface {
	// CleanupOldArchives removes archive folders older than maxAge and
	// returns how many were removed.
	CleanupOldArchives(maxAge time.Duration) (int, error)
}

type cleanupService struct {
	archiveDir string
	log        *zap.Logger
	now        func() time.Time
}

func NewCleanupService(archiveDir string, log *zap.Logger) CleanupService {
	return &cleanupService{
		archiveDir: archiveDir,
		log:        log,
		now:        time.Now,
	}
}

func (s *cleanupService) CleanupOldArchives(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.archiveDir)
	if err != nil {
		return 0, err
	}

	var (
		removed int
		errs    error
	)
	now := s.now()
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dirPath := filepath.Join(s.archiveDir, entry.Name())
		info, err := os.Stat(dirPath)
		if err != nil {
			errs = multierr.Append(errs, errors.ErrInternal(err))
			continue
		}

		if now.Sub(info.ModTime()) > maxAge {
			if err := os.RemoveAll(dirPath); err != nil {
				errs = multierr.Append(errs, errors.ErrInternal(err))
				continue
			}
			removed++
			s.log.Info("removed old archive folder", zap.String("path", dirPath))
		}
	}
	return removed, errs
}
