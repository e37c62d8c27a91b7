package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type JobType string

const (
	JobArchiveDub JobType = "archive_dub"
)

type Job struct {
	Type                JobType   `json:"type"`
	DubbingID           string    `json:"dubbing_id"`
	SourceLang          string    `json:"source_lang"`
	TargetLang          string    `json:"target_lang"`
	ExpectedDurationSec float64   `json:"expected_duration_sec,omitempty"`
	EnqueuedAt          time.Time `json:"enqueued_at"`
}

// Publisher kuyruğa iş bırakan taraf (redis veya in-process pool)
type Publisher interface {
	Enqueue(ctx context.Context, job Job) error
}

// Processor executes one job of each supported type.
type Processor interface {
	ArchiveDub(ctx context.Context, job Job) error
}

func DeserializeJob(data string) (*Job, error) {
	var job Job
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		return nil, fmt.Errorf("failed to deserialize job: %w", err)
	}
	return &job, nil
}

func SerializeJob(job Job) (string, error) {
	bytes, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to serialize job: %w", err)
	}
	return string(bytes), nil
}
