package constants

import "strings"

// IsTerminalStatus reports whether a dubbing status will no longer change.
func IsTerminalStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case StatusDone, StatusDubbed:
		return true
	default:
		return false
	}
}
