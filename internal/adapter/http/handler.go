package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pacing-radar/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a RiskUseCase to execute business logic, a logger for structured
// logging and a clock supplying the reference date when a request omits
// as_of. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	svc    port.RiskUseCase
	logger *slog.Logger
	today  func() time.Time
	router chi.Router
}

// NewHandler creates a handler with all routes configured. today supplies
// the default reference date; nil means the current UTC date.
func NewHandler(svc port.RiskUseCase, logger *slog.Logger, today func() time.Time) *Handler {
	if today == nil {
		today = func() time.Time { return time.Now().UTC() }
	}
	h := &Handler{svc: svc, logger: logger, today: today}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/trajectory", h.handleGetTrajectory)
		r.Get("/portfolio", h.handleGetPortfolio)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
