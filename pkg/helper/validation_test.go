package helper

import "testing"

func TestDefaultString(t *testing.T) {
	if got := DefaultString("", "en"); got != "en" {
		t.Fatalf("DefaultString empty = %q", got)
	}
	if got := DefaultString("  ", "en"); got != "en" {
		t.Fatalf("DefaultString blank = %q", got)
	}
	if got := DefaultString("fr", "en"); got != "fr" {
		t.Fatalf("DefaultString value = %q", got)
	}
}

func TestIsValidLanguageCode(t *testing.T) {
	for _, code := range []string{"en", "es", "pt-BR", "fil", "zh-Hans"} {
		if !IsValidLanguageCode(code) {
			t.Errorf("IsValidLanguageCode(%q) = false", code)
		}
	}
	for _, code := range []string{"", "e", "english!", "en_US", "../x"} {
		if IsValidLanguageCode(code) {
			t.Errorf("IsValidLanguageCode(%q) = true", code)
		}
	}
}

func TestIsValidTranscriptFormat(t *testing.T) {
	if !IsValidTranscriptFormat("srt") || !IsValidTranscriptFormat("webvtt") {
		t.Fatal("srt and webvtt must be valid")
	}
	if IsValidTranscriptFormat("vtt") {
		t.Fatal("vtt is not a supported format name")
	}
}
