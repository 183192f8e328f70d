package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chirpquiz/internal/analytics"
)

type StatsHandler struct {
	recorder *analytics.Recorder
}

func NewStatsHandler(recorder *analytics.Recorder) *StatsHandler {
	return &StatsHandler{recorder: recorder}
}

func (h *StatsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/stats", h.stats)
}

func (h *StatsHandler) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.recorder.Stats())
}
