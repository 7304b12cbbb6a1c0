package api

import (
	"net/http"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/showcase"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	showcase  *showcase.Service
}

func newProjectHandler(service *showcase.Service) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		showcase:  service,
	}
}

// getAllProjects lists project cards
// @Summary Get all projects
// @Description Joins every project with its participants, sponsors, media and other relations, then filters and sorts
// @Tags Projects
// @Produce json
// @Param search query string false "Case-insensitive text search"
// @Param tag query string false "Tag or association, 'all' for no filter"
// @Param sort query string false "newest, oldest, az or za"
// @Success 200 {object} CardCollection "List of project cards"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error loading projects"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		cards, err := h.showcase.Cards(r.Context(), showcase.CardQuery{
			Search: q.Get("search"),
			Tag:    q.Get("tag"),
			Sort:   q.Get("sort"),
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, CardCollection{Projects: nonNil(cards), Total: len(cards)})
	}
}

// getProject returns one project card
// @Summary Get a project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} showcase.Card
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		card, err := h.showcase.Card(r.Context(), chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, card)
	}
}

// getTags lists the distinct tags and associations for filtering
// @Summary Get all tags
// @Tags Projects
// @Produce json
// @Success 200 {object} TagCollection
// @Router /tags [get]
func (h projectHandler) getTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.showcase.Tags(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, TagCollection{Tags: nonNil(tags)})
	}
}

// getSponsors lists sponsors, main sponsors first
// @Summary Get all sponsors
// @Tags Sponsors
// @Produce json
// @Success 200 {object} SponsorCollection
// @Router /sponsors [get]
func (h projectHandler) getSponsors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sponsors, err := h.showcase.Sponsors(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, SponsorCollection{Sponsors: nonNil(sponsors)})
	}
}

// nonNil makes empty lists encode as [] instead of null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
