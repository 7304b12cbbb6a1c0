package api

import (
	"net/http"
	"time"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	pinger      Pinger
	startupTime time.Time
}

func newHealthHandler(pinger Pinger, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		pinger:      pinger,
		startupTime: startupTime,
	}
}

// getHealth reports liveness and, when configured, database reachability
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} ErrorResponse "Database unreachable"
// @Router /health [get]
func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.pinger != nil {
			if err := h.pinger.Ping(r.Context()); err != nil {
				h.responder.WriteError(w, errs.NewServiceUnreachableError("database", err))
				return
			}
		}

		h.responder.WriteJSON(w, HealthResponse{
			Status:      "ok",
			StartupTime: h.startupTime,
			Uptime:      time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
