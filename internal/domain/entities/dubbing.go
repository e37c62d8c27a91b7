package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DubbingJob is the server-side tracking record of one dubbing request.
type DubbingJob struct {
	DubbingID           string    `json:"dubbing_id"`
	SourceLang          string    `json:"source_lang"`
	TargetLang          string    `json:"target_lang"`
	ExpectedDurationSec float64   `json:"expected_duration_sec"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DubbingRecord archived result of a finished dubbing
type DubbingRecord struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	DubbingID           string    `gorm:"type:varchar(255);not null;index"`
	SourceLang          string    `gorm:"type:varchar(16);not null"`
	TargetLang          string    `gorm:"type:varchar(16);not null"`
	Status              string    `gorm:"type:varchar(50)"`
	AudioPath           string    `gorm:"type:varchar(500)"`
	Checksum            string    `gorm:"type:varchar(64)"`
	ExpectedDurationSec float64
	CreatedAt           time.Time
	CompletedAt         *time.Time
}

func (r *DubbingRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
