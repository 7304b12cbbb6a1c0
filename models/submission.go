package models

import (
	"time"

	"gorm.io/datatypes"
)

type SubmissionType string

const (
	SubmissionTypeProject       SubmissionType = "project"
	SubmissionTypeParticipant   SubmissionType = "participant"
	SubmissionTypeMedia         SubmissionType = "media"
	SubmissionTypePartnership   SubmissionType = "partnership"
	SubmissionTypeCollaboration SubmissionType = "collaboration"
	SubmissionTypeFeedback      SubmissionType = "feedback"
)

// SubmissionTypes lists every accepted submission type
var SubmissionTypes = []SubmissionType{
	SubmissionTypeProject,
	SubmissionTypeParticipant,
	SubmissionTypeMedia,
	SubmissionTypePartnership,
	SubmissionTypeCollaboration,
	SubmissionTypeFeedback,
}

// UploadedFile is a file staged in object storage and referenced by a submission or draft
type UploadedFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	Key  string `json:"key,omitempty"`
}

// Submission is a public form submission awaiting review
type Submission struct {
	ID                    string                            `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Type                  SubmissionType                    `json:"type" gorm:"type:text;not null;index:idx_submission_type"`
	Title                 string                            `json:"title" gorm:"type:text;not null"`
	Content               datatypes.JSONMap                 `json:"content" gorm:"type:jsonb;not null"`
	SubmittedBy           string                            `json:"submitted_by" gorm:"type:text;not null"`
	ContactEmail          string                            `json:"contact_email" gorm:"type:text;not null"`
	ContactPhone          *string                           `json:"contact_phone,omitempty" gorm:"type:text"`
	Location              *string                           `json:"location,omitempty" gorm:"type:text"`
	LanguagePreference    string                            `json:"language_preference" gorm:"type:text;not null;default:'sv'"`
	HowFoundUs            *string                           `json:"how_found_us,omitempty" gorm:"type:text"`
	PublicationPermission bool                              `json:"publication_permission" gorm:"type:boolean;not null;default:false"`
	Files                 datatypes.JSONSlice[UploadedFile] `json:"files" gorm:"type:jsonb"`
	SessionID             string                            `json:"session_id" gorm:"type:text;not null;default:''"`
	DeviceFingerprint     string                            `json:"device_fingerprint" gorm:"type:text;not null;default:''"`
	Status                string                            `json:"status" gorm:"type:text;not null;default:'pending'"`
	CreatedAt             time.Time                         `json:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (Submission) TableName() string { return "submissions" }
