package api

import (
	"time"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/drafts"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/showcase"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler      healthHandler
	projectHandler     projectHandler
	participantHandler participantHandler
	draftHandler       draftHandler
	submissionHandler  submissionHandler
	adminHandler       adminHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status      string    `json:"status" example:"ok"`
	StartupTime time.Time `json:"startupTime"`
	Uptime      string    `json:"uptime" example:"1h2m3s"`
}

// CardCollection is a filtered list of project cards
type CardCollection struct {
	Projects []showcase.Card `json:"projects"`
	Total    int             `json:"total"`
}

// ParticipantCollection is a filtered list of participants plus the role facet
type ParticipantCollection struct {
	Participants []showcase.AggregatedParticipant `json:"participants"`
	Roles        []string                         `json:"roles"`
	Total        int                              `json:"total"`
}

// TagCollection lists every tag and association
type TagCollection struct {
	Tags []string `json:"tags"`
}

// SponsorCollection lists every sponsor
type SponsorCollection struct {
	Sponsors []showcase.CardSponsor `json:"sponsors"`
}

// DraftRequest is the form state sent by the submission wizard
type DraftRequest struct {
	FormData      map[string]any        `json:"formData"`
	UploadedFiles []models.UploadedFile `json:"uploadedFiles"`
	CurrentStep   int                   `json:"currentStep"`
}

// DraftResponse describes a session's draft
type DraftResponse struct {
	Found     bool          `json:"found"`
	State     string        `json:"state"`
	Draft     *drafts.Draft `json:"draft,omitempty"`
	Scheduled bool          `json:"scheduled,omitempty"`
	LastSaved *time.Time    `json:"lastSaved,omitempty"`
}

// AdminTableResponse holds raw rows of one table
type AdminTableResponse struct {
	Table string `json:"table"`
	Rows  any    `json:"rows"`
}
