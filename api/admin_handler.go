package api

import (
	"net/http"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     AdminStore
}

func newAdminHandler(store AdminStore) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// listTable returns the raw rows of one table
// @Summary List a table
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param table path string true "projects, participants, sponsors or submissions"
// @Success 200 {object} AdminTableResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Failure 404 {object} ErrorResponse "Unknown table"
// @Router /admin/{table} [get]
func (h adminHandler) listTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.store == nil {
			h.responder.WriteError(w, errs.NewServiceUnreachableError("admin store", nil))
			return
		}

		table := chi.URLParam(r, "table")
		rows, err := h.store.ListTable(r.Context(), table)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		userID, _ := ctxGetUserID(r.Context())
		h.logger.Info().Str("userID", userID).Str("table", table).Msg("admin table listed")
		h.responder.WriteJSON(w, AdminTableResponse{Table: table, Rows: rows})
	}
}
