package api

import (
	"encoding/json"
	"net/http"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/drafts"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxDraftBytes = 1 << 20

type draftHandler struct {
	responder Responder
	logger    zerolog.Logger
	drafts    *drafts.Manager
}

func newDraftHandler(manager *drafts.Manager) draftHandler {
	logger := log.With().Str("handlerName", "draftHandler").Logger()

	return draftHandler{
		responder: NewResponder(logger),
		logger:    logger,
		drafts:    manager,
	}
}

// getDraft loads the saved draft of the session, offering it for restore
// @Summary Get the session draft
// @Tags Drafts
// @Produce json
// @Param X-Session-ID header string true "Browsing session"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} ErrorResponse "Missing session"
// @Router /drafts [get]
func (h draftHandler) getDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, _ := ctxGetSessionID(r.Context())
		saver, d, found := h.drafts.Load(r.Context(), sessionID)
		resp := DraftResponse{Found: found, State: saver.State().String()}
		if found {
			resp.Draft = &d
		}
		h.responder.WriteJSON(w, resp)
	}
}

// saveDraft records the latest form state; the write happens after the debounce window
// @Summary Save the session draft
// @Tags Drafts
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Browsing session"
// @Param draft body DraftRequest true "Form state"
// @Success 202 {object} DraftResponse
// @Failure 400 {object} ErrorResponse "Malformed payload"
// @Router /drafts [put]
func (h draftHandler) saveDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DraftRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxDraftBytes)).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("draft", err))
			return
		}

		sessionID, _ := ctxGetSessionID(r.Context())
		saver, scheduled := h.drafts.Save(sessionID, req.FormData, req.UploadedFiles, req.CurrentStep)
		resp := DraftResponse{Found: true, State: saver.State().String(), Scheduled: scheduled}
		if last := saver.LastSaved(); !last.IsZero() {
			resp.LastSaved = &last
		}
		h.responder.WriteJSONStatus(w, http.StatusAccepted, resp)
	}
}

// restoreDraft accepts the offered draft
// @Summary Restore the offered draft
// @Tags Drafts
// @Produce json
// @Param X-Session-ID header string true "Browsing session"
// @Success 200 {object} DraftResponse
// @Failure 409 {object} ErrorResponse "No draft was offered"
// @Router /drafts/restore [post]
func (h draftHandler) restoreDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, _ := ctxGetSessionID(r.Context())
		d, ok := h.drafts.Restore(sessionID)
		if !ok {
			h.responder.WriteError(w, errs.NewConflictError("no draft offered for this session"))
			return
		}
		h.responder.WriteJSON(w, DraftResponse{Found: true, State: drafts.StateRestored.String(), Draft: &d})
	}
}

// discardDraft deletes the saved draft of the session
// @Summary Discard the session draft
// @Tags Drafts
// @Param X-Session-ID header string true "Browsing session"
// @Success 204
// @Router /drafts [delete]
func (h draftHandler) discardDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, _ := ctxGetSessionID(r.Context())
		h.drafts.Clear(r.Context(), sessionID)
		w.WriteHeader(http.StatusNoContent)
	}
}
