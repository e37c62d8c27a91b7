package transcript

import (
	"regexp"
	"strings"
)

var (
	cueIndex  = regexp.MustCompile(`^\d+$`)
	timestamp = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?[.,]\d{3}\s*-->`)
)

// Clean turns an SRT or WebVTT body into plain spoken text.
func Clean(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")

	var parts []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "WEBVTT"):
		case cueIndex.MatchString(line):
		case timestamp.MatchString(line):
		default:
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
