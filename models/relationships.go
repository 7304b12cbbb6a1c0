package models

import "gorm.io/datatypes"

// ProjectParticipant links a participant to a project with a role
type ProjectParticipant struct {
	ID            string `json:"id" yaml:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID     string `json:"project_id" yaml:"project_id" gorm:"type:uuid;not null;index:idx_project_participant_project_id"`
	ParticipantID string `json:"participant_id" yaml:"participant_id" gorm:"type:uuid;not null;index:idx_project_participant_participant_id"`
	Role          string `json:"role" yaml:"role" gorm:"type:text;not null;default:''"`
}

func (ProjectParticipant) TableName() string { return "project_participants" }

// ProjectSponsor links a sponsor to a project
type ProjectSponsor struct {
	ID        string `json:"id" yaml:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID string `json:"project_id" yaml:"project_id" gorm:"type:uuid;not null;index:idx_project_sponsor_project_id"`
	SponsorID string `json:"sponsor_id" yaml:"sponsor_id" gorm:"type:uuid;not null"`
}

func (ProjectSponsor) TableName() string { return "project_sponsors" }

type LinkType string

const (
	LinkTypeGithub  LinkType = "github"
	LinkTypeWebsite LinkType = "website"
	LinkTypeDemo    LinkType = "demo"
	LinkTypeOther   LinkType = "other"
)

// ProjectLink is an external link attached to a project
type ProjectLink struct {
	ID        string   `json:"id" yaml:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID string   `json:"project_id" yaml:"project_id" gorm:"type:uuid;not null;index:idx_project_link_project_id"`
	Type      LinkType `json:"type" yaml:"type" gorm:"type:text;not null;default:'other'"`
	URL       string   `json:"url" yaml:"url" gorm:"type:text;not null"`
}

func (ProjectLink) TableName() string { return "project_links" }

// ProjectTag represents a tag associated with a project
type ProjectTag struct {
	ID        string `json:"id" yaml:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID string `json:"project_id" yaml:"project_id" gorm:"type:uuid;not null;index:idx_project_tag_project_id;uniqueIndex:idx_project_tag_unique"`
	Tag       string `json:"tag" yaml:"tag" gorm:"type:text;not null;uniqueIndex:idx_project_tag_unique"`
}

func (ProjectTag) TableName() string { return "project_tags" }

// ProjectMedia is an image, video or document shown on a project page
type ProjectMedia struct {
	ID          string  `json:"id" yaml:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID   string  `json:"project_id" yaml:"project_id" gorm:"type:uuid;not null;index:idx_project_media_project_id"`
	Type        string  `json:"type" yaml:"type" gorm:"type:text;not null"`
	URL         string  `json:"url" yaml:"url" gorm:"type:text;not null"`
	Title       string  `json:"title" yaml:"title" gorm:"type:text;not null;default:''"`
	Description *string `json:"description,omitempty" yaml:"description" gorm:"type:text"`
}

func (ProjectMedia) TableName() string { return "project_media" }

type BudgetItem struct {
	Item string  `json:"item" yaml:"item"`
	Cost float64 `json:"cost" yaml:"cost"`
}

// ProjectBudget holds at most one budget per project
type ProjectBudget struct {
	ID        string                          `json:"id" yaml:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID string                          `json:"project_id" yaml:"project_id" gorm:"type:uuid;not null;index:idx_project_budget_project_id"`
	Amount    *float64                        `json:"amount,omitempty" yaml:"amount" gorm:"type:numeric"`
	Currency  *string                         `json:"currency,omitempty" yaml:"currency" gorm:"type:text"`
	Breakdown datatypes.JSONSlice[BudgetItem] `json:"breakdown,omitempty" yaml:"breakdown" gorm:"type:jsonb"`
}

func (ProjectBudget) TableName() string { return "project_budget" }

type Milestone struct {
	Date        string `json:"date" yaml:"date"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// ProjectTimeline holds at most one timeline per project
type ProjectTimeline struct {
	ID         string                         `json:"id" yaml:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID  string                         `json:"project_id" yaml:"project_id" gorm:"type:uuid;not null;index:idx_project_timeline_project_id"`
	StartDate  *string                        `json:"start_date,omitempty" yaml:"start_date" gorm:"type:text"`
	EndDate    *string                        `json:"end_date,omitempty" yaml:"end_date" gorm:"type:text"`
	Milestones datatypes.JSONSlice[Milestone] `json:"milestones,omitempty" yaml:"milestones" gorm:"type:jsonb"`
}

func (ProjectTimeline) TableName() string { return "project_timeline" }

// ProjectAccess describes who can attend a project and how
type ProjectAccess struct {
	ID                   string                      `json:"id" yaml:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID            string                      `json:"project_id" yaml:"project_id" gorm:"type:uuid;not null;index:idx_project_access_project_id"`
	Requirements         datatypes.JSONSlice[string] `json:"requirements,omitempty" yaml:"requirements" gorm:"type:jsonb"`
	TargetAudience       *string                     `json:"target_audience,omitempty" yaml:"target_audience" gorm:"type:text"`
	Capacity             *int                        `json:"capacity,omitempty" yaml:"capacity" gorm:"type:integer"`
	RegistrationRequired *bool                       `json:"registration_required,omitempty" yaml:"registration_required" gorm:"type:boolean"`
}

func (ProjectAccess) TableName() string { return "project_access" }

type VoteResult struct {
	Category string `json:"category" yaml:"category"`
	Votes    int    `json:"votes" yaml:"votes"`
}

// ProjectVoting holds the public voting configuration for a project
type ProjectVoting struct {
	ID         string                          `json:"id" yaml:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID  string                          `json:"project_id" yaml:"project_id" gorm:"type:uuid;not null;index:idx_project_voting_project_id"`
	Enabled    bool                            `json:"enabled" yaml:"enabled" gorm:"type:boolean;not null;default:false"`
	Categories datatypes.JSONSlice[string]     `json:"categories,omitempty" yaml:"categories" gorm:"type:jsonb"`
	Results    datatypes.JSONSlice[VoteResult] `json:"results,omitempty" yaml:"results" gorm:"type:jsonb"`
}

func (ProjectVoting) TableName() string { return "project_voting" }
