package models

type SponsorType string

const (
	SponsorTypeMain      SponsorType = "main"
	SponsorTypePartner   SponsorType = "partner"
	SponsorTypeSupporter SponsorType = "supporter"
)

// Sponsor represents a festival sponsor or partner organisation
type Sponsor struct {
	ID       string      `json:"id" yaml:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name     string      `json:"name" yaml:"name" gorm:"type:text;not null"`
	Type     SponsorType `json:"type" yaml:"type" gorm:"type:text;not null;default:'partner'"`
	LogoPath *string     `json:"logo_path,omitempty" yaml:"logo_path" gorm:"type:text"`
	Website  *string     `json:"website,omitempty" yaml:"website" gorm:"type:text"`
}

func (Sponsor) TableName() string { return "sponsors" }
