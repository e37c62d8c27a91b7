package usecases

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestCleanupOldArchives(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old-dub")
	fresh := filepath.Join(dir, "fresh-dub")
	for _, d := range []string{old, fresh} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(d, "es.mp3"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	past := time.Now().Add(-100 * time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	svc := NewCleanupService(dir, zap.NewNop())
	removed, err := svc.CleanupOldArchives(72 * time.Hour)
	if err != nil {
		t.Fatalf("CleanupOldArchives: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatal("old archive should be removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatal("fresh archive should be kept")
	}
	if _, err := os.Stat(filepath.Join(dir, "stray.txt")); err != nil {
		t.Fatal("plain files are left alone")
	}
}

func TestCleanupMissingDir(t *testing.T) {
	svc := NewCleanupService(filepath.Join(t.TempDir(), "nope"), zap.NewNop())
	if _, err := svc.CleanupOldArchives(time.Hour); err == nil {
		t.Fatal("expected error for missing archive dir")
	}
}
