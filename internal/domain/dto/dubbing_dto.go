package dto

import (
	"encoding/json"
	"time"
)

type UploadRequestDTO struct {
	SourceLang string `json:"source_lang" form:"source_lang"`
	TargetLang string `json:"target_lang" form:"target_lang"`
	Filename   string `json:"filename" form:"filename"`
}

type UploadResponse struct {
	DubbingID           string  `json:"dubbing_id"`
	ExpectedDurationSec float64 `json:"expected_duration_sec"`
}

// StatusResponse upstream gövdesini olduğu gibi taşır, Status ayrıca çözümlenir
type StatusResponse struct {
	DubbingID string          `json:"-"`
	Status    string          `json:"status"`
	Raw       json.RawMessage `json:"-"`
}

type TranscriptRequestDTO struct {
	DubbingID  string `json:"dubbing_id"`
	Language   string `json:"language" query:"language"` // source | target
	SourceLang string `json:"source_lang" query:"source_lang"`
	TargetLang string `json:"target_lang" query:"target_lang"`
	Format     string `json:"format" query:"format"` // srt | webvtt
}

type AudioRequestDTO struct {
	DubbingID  string `json:"dubbing_id"`
	TargetLang string `json:"target_lang" query:"target_lang"`
}

type JobResponse struct {
	DubbingID           string    `json:"dubbing_id"`
	SourceLang          string    `json:"source_lang"`
	TargetLang          string    `json:"target_lang"`
	ExpectedDurationSec float64   `json:"expected_duration_sec"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type HistoryRecordResponse struct {
	ID                  string     `json:"id"`
	DubbingID           string     `json:"dubbing_id"`
	SourceLang          string     `json:"source_lang"`
	TargetLang          string     `json:"target_lang"`
	Status              string     `json:"status"`
	AudioPath           string     `json:"audio_path,omitempty"`
	Checksum            string     `json:"checksum,omitempty"`
	ExpectedDurationSec float64    `json:"expected_duration_sec"`
	CreatedAt           time.Time  `json:"created_at"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
