package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dub-translator/internal/pkg/config"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	path, err := s.Save(ctx, "abc123/es.mp3", strings.NewReader("dubbed"), "audio/mpeg")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != filepath.Join(dir, "abc123", "es.mp3") {
		t.Fatalf("path = %s", path)
	}

	rc, err := s.Open(ctx, "abc123/es.mp3")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	b, _ := io.ReadAll(rc)
	rc.Close()
	if string(b) != "dubbed" {
		t.Fatalf("content = %q", b)
	}

	if err := s.Delete(ctx, "abc123/es.mp3"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file should be gone, stat err = %v", err)
	}
}

func TestLocalStorageRejectsEscapingKeys(t *testing.T) {
	s := NewLocalStorage(t.TempDir())
	for _, key := range []string{"../outside.mp3", "a/../../b.mp3", "."} {
		if _, err := s.Save(context.Background(), key, strings.NewReader("x"), ""); err == nil {
			t.Errorf("Save(%q) should fail", key)
		}
	}
}

func TestNewStrategy(t *testing.T) {
	dir := t.TempDir()

	s, err := NewStrategy(context.Background(), config.ArchiveConfig{Driver: "local", Dir: dir})
	if err != nil {
		t.Fatalf("NewStrategy: %v", err)
	}
	if ls, ok := s.(*LocalStorage); !ok || ls.BasePath != dir {
		t.Fatalf("strategy = %#v, want local storage at %s", s, dir)
	}

	if _, err := NewStrategy(context.Background(), config.ArchiveConfig{Driver: "s3"}); err == nil {
		t.Fatal("s3 without bucket should fail")
	}
	if _, err := NewStrategy(context.Background(), config.ArchiveConfig{Driver: "ftp"}); err == nil {
		t.Fatal("unknown driver should fail")
	}
}
