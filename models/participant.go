package models

import "gorm.io/datatypes"

// SocialLink is a participant's profile on an external platform
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

// Participant represents a person taking part in one or more projects
type Participant struct {
	ID          string                          `json:"id" yaml:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string                          `json:"name" yaml:"name" gorm:"type:text;not null"`
	Slug        string                          `json:"slug" yaml:"slug" gorm:"type:text;not null;default:''"`
	Bio         *string                         `json:"bio,omitempty" yaml:"bio" gorm:"type:text"`
	AvatarPath  *string                         `json:"avatar_path,omitempty" yaml:"avatar_path" gorm:"type:text"`
	Website     *string                         `json:"website,omitempty" yaml:"website" gorm:"type:text"`
	SocialLinks datatypes.JSONSlice[SocialLink] `json:"social_links" yaml:"social_links" gorm:"type:jsonb"`
}

func (Participant) TableName() string { return "participants" }

type MediaType string

const (
	MediaTypePortfolio MediaType = "portfolio"
	MediaTypeVideo     MediaType = "video"
	MediaTypeAudio     MediaType = "audio"
	MediaTypeDocument  MediaType = "document"
	MediaTypeImage     MediaType = "image"
)

type MediaCategory string

const (
	MediaCategoryFeatured      MediaCategory = "featured"
	MediaCategoryProcess       MediaCategory = "process"
	MediaCategoryArchive       MediaCategory = "archive"
	MediaCategoryCollaboration MediaCategory = "collaboration"
)

// ParticipantMedia is a personal media item (portfolio piece, recording, document)
type ParticipantMedia struct {
	ID            string        `json:"id" yaml:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ParticipantID string        `json:"participant_id" yaml:"participant_id" gorm:"type:uuid;not null;index:idx_participant_media_participant_id"`
	Type          MediaType     `json:"type" yaml:"type" gorm:"type:text;not null"`
	Category      MediaCategory `json:"category" yaml:"category" gorm:"type:text;not null;default:'featured'"`
	URL           string        `json:"url" yaml:"url" gorm:"type:text;not null"`
	Title         string        `json:"title" yaml:"title" gorm:"type:text;not null;default:''"`
	Description   *string       `json:"description,omitempty" yaml:"description" gorm:"type:text"`
	Year          *string       `json:"year,omitempty" yaml:"year" gorm:"type:text"`
}

func (ParticipantMedia) TableName() string { return "participant_media" }
