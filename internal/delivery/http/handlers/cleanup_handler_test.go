package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dub-translator/internal/usecases"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func TestCleanupTrigger(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old123")
	if err := os.Mkdir(old, 0755); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-100 * time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "fresh456"), 0755); err != nil {
		t.Fatal(err)
	}

	h := NewCleanupHandler(usecases.NewCleanupService(dir, zap.NewNop()), 72*time.Hour, zap.NewNop())
	app := fiber.New()
	app.Post("/api/archive/cleanup", h.Trigger)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/archive/cleanup", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	var body map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["removed"] != 1 {
		t.Fatalf("removed = %d, want 1", body["removed"])
	}
	if _, err := os.Stat(filepath.Join(dir, "fresh456")); err != nil {
		t.Fatalf("fresh archive removed: %v", err)
	}
}
