package api

import "time"

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		healthHandler:      newHealthHandler(deps.Health, startupTime),
		projectHandler:     newProjectHandler(deps.Showcase),
		participantHandler: newParticipantHandler(deps.Showcase),
		draftHandler:       newDraftHandler(deps.Drafts),
		submissionHandler:  newSubmissionHandler(deps.Submissions),
		adminHandler:       newAdminHandler(deps.Admin),
	}
}
