package logger

import (
	"testing"

	"dub-translator/internal/pkg/config"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		log, err := New(config.LogConfig{Level: "debug", Format: format})
		if err != nil {
			t.Fatalf("New(%s): %v", format, err)
		}
		if !log.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("debug level should be enabled for %s", format)
		}
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud"}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}
