package main

import (
	"testing"
	"time"

	"dub-translator/internal/pkg/config"
)

func TestParseFlagsPollDefaultsFromConfig(t *testing.T) {
	poll := config.PollConfig{Interval: 2 * time.Second, FallbackDelay: 7 * time.Second}

	f, err := parseFlags([]string{"a.webm", "b.mp3"}, poll)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if f.pollInterval != 2*time.Second || f.fallbackDelay != 7*time.Second {
		t.Fatalf("poll = %v / %v", f.pollInterval, f.fallbackDelay)
	}
	if len(f.files) != 2 || f.source != "en" || f.target != "es" {
		t.Fatalf("flags = %+v", f)
	}

	f, err = parseFlags([]string{"-poll-interval", "500ms", "-fallback-delay", "1s", "a.webm"}, poll)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if f.pollInterval != 500*time.Millisecond || f.fallbackDelay != time.Second {
		t.Fatalf("overridden poll = %v / %v", f.pollInterval, f.fallbackDelay)
	}
}
