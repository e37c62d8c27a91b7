package helper

import (
	"regexp"
	"strings"
)

// ISO 639-1 kodu, isteğe bağlı bölge eki ile (en, es, pt-BR)
var langCodePattern = regexp.MustCompile(`^[a-zA-Z]{2,3}(-[a-zA-Z0-9]{2,4})?$`)

func DefaultString(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func IsValidLanguageCode(code string) bool {
	return langCodePattern.MatchString(code)
}

func IsValidTranscriptFormat(format string) bool {
	switch format {
	case "srt", "webvtt":
		return true
	default:
		return false
	}
}

func IsValidTranscriptRole(role string) bool {
	return role == "source" || role == "target"
}
