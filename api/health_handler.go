package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/sleeklegal-backend/content"
)

// pinger is satisfied by *database.Database
type pinger interface {
	Configured() bool
	Ping(ctx context.Context) error
}

// collectionStatus is the part of a provider the health report needs
type collectionStatus interface {
	Name() string
	Summary() content.Summary
}

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	backend     pinger
	collections []collectionStatus
	startupTime time.Time
}

func newHealthHandler(backend pinger, startupTime time.Time, collections ...collectionStatus) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		backend:     backend,
		collections: collections,
		startupTime: startupTime,
	}
}

// HealthResponse reports the backend and every collection's phase
type HealthResponse struct {
	Status      string                     `json:"status"`
	Uptime      string                     `json:"uptime"`
	Backend     string                     `json:"backend"`
	Collections map[string]content.Summary `json:"collections"`
}

// check reports whether the site is serving backend data
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h healthHandler) check() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:      "ok",
			Uptime:      time.Since(h.startupTime).Round(time.Second).String(),
			Backend:     "unconfigured",
			Collections: make(map[string]content.Summary, len(h.collections)),
		}

		if h.backend != nil && h.backend.Configured() {
			ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
			defer cancel()
			if err := h.backend.Ping(ctx); err != nil {
				h.logger.Warn().Err(err).Msg("backend unreachable")
				resp.Backend = "unreachable"
				resp.Status = "degraded"
			} else {
				resp.Backend = "reachable"
			}
		}

		for _, c := range h.collections {
			summary := c.Summary()
			resp.Collections[c.Name()] = summary
			if summary.Phase == content.PhaseDegraded && summary.Remote {
				resp.Status = "degraded"
			}
		}

		h.responder.WriteJSON(w, resp)
	}
}
