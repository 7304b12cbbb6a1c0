package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project represents a showcased festival project
type Project struct {
	ID              string                      `json:"id" yaml:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title           string                      `json:"title" yaml:"title" gorm:"type:text;not null"`
	Description     string                      `json:"description" yaml:"description" gorm:"type:text;not null;default:''"`
	FullDescription *string                     `json:"full_description,omitempty" yaml:"full_description" gorm:"type:text"`
	ImagePath       string                      `json:"image_path" yaml:"image_path" gorm:"type:text;not null;default:''"`
	Purpose         *string                     `json:"purpose,omitempty" yaml:"purpose" gorm:"type:text"`
	ExpectedImpact  *string                     `json:"expected_impact,omitempty" yaml:"expected_impact" gorm:"type:text"`
	Associations    datatypes.JSONSlice[string] `json:"associations" yaml:"associations" gorm:"type:jsonb"`
	CreatedAt       time.Time                   `json:"created_at" yaml:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (Project) TableName() string { return "projects" }
