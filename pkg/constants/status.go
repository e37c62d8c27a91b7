package constants

const (
	StatusOK         = "ok"
	StatusInProgress = "in progress"
	StatusDubbing    = "dubbing"
	StatusDubbed     = "dubbed"
	StatusDone       = "done"
	StatusFailed     = "failed"
	StatusArchived   = "archived"
	StatusQueued     = "queued"
)

// Parametre varsayılanları
const (
	DefaultSourceLang       = "en"
	DefaultTargetLang       = "es"
	DefaultTranscriptFormat = "srt"
	DefaultTranscriptRole   = "target"
)
