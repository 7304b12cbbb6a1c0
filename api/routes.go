package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the public showcase routes and the admin routes
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, requestLogging bool) {
	r.Get("/health", handlers.healthHandler.getHealth())

	// Public routes
	r.Group(func(r chi.Router) {
		if requestLogging {
			r.Use(ColoredHTTPLoggingMiddleware)
		}

		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/tags", handlers.projectHandler.getTags())
		r.Get("/sponsors", handlers.projectHandler.getSponsors())

		// Participant Handler endpoints
		r.Get("/participants", handlers.participantHandler.getAllParticipants())
		r.Get("/participants/{slug}", handlers.participantHandler.getParticipant())

		// Draft Handler endpoints
		r.Route("/drafts", func(r chi.Router) {
			r.Use(requireSession)
			r.Get("/", handlers.draftHandler.getDraft())
			r.Put("/", handlers.draftHandler.saveDraft())
			r.Delete("/", handlers.draftHandler.discardDraft())
			r.Post("/restore", handlers.draftHandler.restoreDraft())
		})

		// Submission Handler endpoints
		r.Post("/submissions", handlers.submissionHandler.createSubmission())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(authMiddleware.requireRole(adminRole))
		if requestLogging {
			r.Use(ColoredHTTPLoggingMiddleware)
		}

		r.Get("/admin/{table}", handlers.adminHandler.listTable())
	})
}
