package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ARCHIVE_DIR", t.TempDir())

	cfg := LoadConfig()

	if cfg.Server.Port != "3000" {
		t.Fatalf("server port = %q, want 3000", cfg.Server.Port)
	}
	if cfg.Poll.Interval != 3*time.Second {
		t.Fatalf("poll interval = %v, want 3s", cfg.Poll.Interval)
	}
	if cfg.Poll.FallbackDelay != 10*time.Second {
		t.Fatalf("fallback delay = %v, want 10s", cfg.Poll.FallbackDelay)
	}
	if cfg.Dubbing.BaseURL != "https://api.elevenlabs.io/v1" {
		t.Fatalf("base url = %q", cfg.Dubbing.BaseURL)
	}
	if cfg.Redis.Enabled() {
		t.Fatal("redis should be disabled without REDIS_HOST")
	}
	if cfg.Database.Driver != "memory" {
		t.Fatalf("db driver = %q, want memory", cfg.Database.Driver)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ARCHIVE_DIR", t.TempDir())
	t.Setenv("POLL_INTERVAL", "500ms")
	t.Setenv("POLL_FALLBACK_DELAY", "7")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("DUBBING_WATERMARK", "false")
	t.Setenv("UPLOAD_MAX_FILE_SIZE", "not-a-number")

	cfg := LoadConfig()

	if cfg.Poll.Interval != 500*time.Millisecond {
		t.Fatalf("poll interval = %v", cfg.Poll.Interval)
	}
	if cfg.Poll.FallbackDelay != 7*time.Second {
		t.Fatalf("fallback delay = %v", cfg.Poll.FallbackDelay)
	}
	if !cfg.Redis.Enabled() || cfg.Redis.Addr() != "cache:6379" {
		t.Fatalf("redis addr = %q", cfg.Redis.Addr())
	}
	if cfg.Dubbing.Watermark {
		t.Fatal("watermark should be disabled")
	}
	if cfg.Server.MaxUploadSize != 50*1024*1024 {
		t.Fatalf("invalid int should fall back to default, got %d", cfg.Server.MaxUploadSize)
	}
}

func TestValidateRejectsRedisWithoutSharedHistory(t *testing.T) {
	for _, tc := range []struct {
		name      string
		redisHost string
		dbDriver  string
		want      error
	}{
		{"memory only", "", "memory", nil},
		{"redis and postgres", "localhost", "postgres", nil},
		{"postgres without redis", "", "postgres", nil},
		{"redis with memory history", "localhost", "memory", ErrSplitHistory},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Redis:    RedisConfig{Host: tc.redisHost, Port: "6379"},
				Database: DatabaseConfig{Driver: tc.dbDriver},
			}
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}
