package models

import (
	"time"

	"gorm.io/datatypes"
)

// SubmissionDraft is the persisted, in-progress state of a submission form for one browsing session
type SubmissionDraft struct {
	SessionID string         `json:"session_id" gorm:"type:text;primaryKey;not null"`
	Payload   datatypes.JSON `json:"payload" gorm:"type:jsonb;not null"`
	SavedAt   time.Time      `json:"saved_at" gorm:"type:timestamptz;not null"`
}

func (SubmissionDraft) TableName() string { return "submission_drafts" }
