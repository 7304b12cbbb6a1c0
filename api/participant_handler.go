package api

import (
	"net/http"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/showcase"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type participantHandler struct {
	responder Responder
	logger    zerolog.Logger
	showcase  *showcase.Service
}

func newParticipantHandler(service *showcase.Service) participantHandler {
	logger := log.With().Str("handlerName", "participantHandler").Logger()

	return participantHandler{
		responder: NewResponder(logger),
		logger:    logger,
		showcase:  service,
	}
}

// getAllParticipants lists participants merged across every project
// @Summary Get all participants
// @Tags Participants
// @Produce json
// @Param search query string false "Search in name, bio, roles and project titles"
// @Param role query string false "Role, 'all' for no filter"
// @Param sort query string false "az, za or projects"
// @Success 200 {object} ParticipantCollection
// @Router /participants [get]
func (h participantHandler) getAllParticipants() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		participants, err := h.showcase.Participants(r.Context(), showcase.ParticipantQuery{
			Search: q.Get("search"),
			Role:   q.Get("role"),
			Sort:   q.Get("sort"),
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		roles, err := h.showcase.Roles(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ParticipantCollection{
			Participants: nonNil(participants),
			Roles:        nonNil(roles),
			Total:        len(participants),
		})
	}
}

// getParticipant returns one participant by slug
// @Summary Get a participant
// @Tags Participants
// @Produce json
// @Param slug path string true "Participant slug"
// @Success 200 {object} showcase.AggregatedParticipant
// @Failure 404 {object} ErrorResponse "Participant not found"
// @Router /participants/{slug} [get]
func (h participantHandler) getParticipant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := h.showcase.Participant(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, p)
	}
}
