package showcase

import (
	"time"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
)

// Card is the display-ready join of a project with its relationship rows.
// Collections are nil and singular sections are nil pointers when the project
// has no matching rows, so presence means "has this data".
type Card struct {
	ID              string    `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	Description     string    `json:"description" yaml:"description"`
	FullDescription string    `json:"fullDescription,omitempty" yaml:"full_description"`
	Image           string    `json:"image" yaml:"image"`
	Purpose         string    `json:"purpose,omitempty" yaml:"purpose"`
	ExpectedImpact  string    `json:"expectedImpact,omitempty" yaml:"expected_impact"`
	Associations    []string  `json:"associations" yaml:"associations"`
	CreatedAt       time.Time `json:"createdAt" yaml:"created_at"`

	Participants []CardParticipant `json:"participants,omitempty" yaml:"participants"`
	Sponsors     []CardSponsor     `json:"sponsors,omitempty" yaml:"sponsors"`
	Links        []CardLink        `json:"links,omitempty" yaml:"links"`
	Tags         []string          `json:"tags,omitempty" yaml:"tags"`
	Media        []MediaItem       `json:"media,omitempty" yaml:"media"`
	Budget       *Budget           `json:"budget,omitempty" yaml:"budget"`
	Timeline     *Timeline         `json:"timeline,omitempty" yaml:"timeline"`
	Access       *Access           `json:"access,omitempty" yaml:"access"`
	Voting       *Voting           `json:"voting,omitempty" yaml:"voting"`
}

type CardParticipant struct {
	ID          string              `json:"id,omitempty" yaml:"id"`
	Name        string              `json:"name" yaml:"name"`
	Role        string              `json:"role" yaml:"role"`
	Bio         string              `json:"bio,omitempty" yaml:"bio"`
	Avatar      string              `json:"avatar,omitempty" yaml:"avatar"`
	Website     string              `json:"website,omitempty" yaml:"website"`
	SocialLinks []models.SocialLink `json:"socialLinks,omitempty" yaml:"social_links"`
	Media       []MediaItem         `json:"media,omitempty" yaml:"media"`
}

type CardSponsor struct {
	ID      string             `json:"id,omitempty" yaml:"id"`
	Name    string             `json:"name" yaml:"name"`
	Type    models.SponsorType `json:"type" yaml:"type"`
	Logo    string             `json:"logo,omitempty" yaml:"logo"`
	Website string             `json:"website,omitempty" yaml:"website"`
}

type CardLink struct {
	Type models.LinkType `json:"type" yaml:"type"`
	URL  string          `json:"url" yaml:"url"`
}

// MediaItem is a project or participant media entry. URL is its identity.
type MediaItem struct {
	Type        string `json:"type" yaml:"type"`
	URL         string `json:"url" yaml:"url"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description"`
	Category    string `json:"category,omitempty" yaml:"category"`
	Year        string `json:"year,omitempty" yaml:"year"`
}

type Budget struct {
	Amount    *float64            `json:"amount,omitempty" yaml:"amount"`
	Currency  string              `json:"currency,omitempty" yaml:"currency"`
	Breakdown []models.BudgetItem `json:"breakdown,omitempty" yaml:"breakdown"`
}

type Timeline struct {
	StartDate  string             `json:"startDate,omitempty" yaml:"start_date"`
	EndDate    string             `json:"endDate,omitempty" yaml:"end_date"`
	Milestones []models.Milestone `json:"milestones,omitempty" yaml:"milestones"`
}

type Access struct {
	Requirements         []string `json:"requirements,omitempty" yaml:"requirements"`
	TargetAudience       string   `json:"targetAudience,omitempty" yaml:"target_audience"`
	Capacity             *int     `json:"capacity,omitempty" yaml:"capacity"`
	RegistrationRequired *bool    `json:"registrationRequired,omitempty" yaml:"registration_required"`
}

type Voting struct {
	Enabled    bool                `json:"enabled" yaml:"enabled"`
	Categories []string            `json:"categories,omitempty" yaml:"categories"`
	Results    []models.VoteResult `json:"results,omitempty" yaml:"results"`
}

// AggregatedParticipant is one person merged across every card they appear on.
type AggregatedParticipant struct {
	Name          string               `json:"name"`
	Slug          string               `json:"slug"`
	Roles         []string             `json:"roles"`
	Bio           string               `json:"bio,omitempty"`
	Avatar        string               `json:"avatar,omitempty"`
	Website       string               `json:"website,omitempty"`
	Projects      []ParticipantProject `json:"projects"`
	Media         []MediaItem          `json:"media"`
	PersonalLinks []PersonalLink       `json:"personalLinks"`
}

type ParticipantProject struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Role  string `json:"role"`
}

type PersonalLink struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}
