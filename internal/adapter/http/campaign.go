package httpadapter

import (
	"net/http"
	"strconv"

	"pacing-radar/internal/core/domain"
	"pacing-radar/internal/core/port"
)

// handleListCampaigns returns the priority list. It accepts optional
// `as_of` (YYYY-MM-DD), `risk` (Red, Yellow or Green) and `within_days`
// (non-negative integer) query parameters. Invalid parameters result in
// HTTP 400. Internal errors produce HTTP 500.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		q   = r.URL.Query()
		req port.ListReq
		err error
	)

	if req.AsOf, err = h.asOf(r); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if s := q.Get("risk"); s != "" {
		tier := domain.Tier(s)
		if !tier.Valid() {
			http.Error(w, "invalid 'risk' tier", http.StatusBadRequest)
			return
		}
		req.Tier = &tier
	}

	if s := q.Get("within_days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			http.Error(w, "invalid 'within_days'", http.StatusBadRequest)
			return
		}
		req.WithinDays = &n
	}

	resp, err := h.svc.ListCampaigns(r.Context(), req)
	if err != nil {
		h.writeError(w, "list campaigns", err)
		return
	}
	h.writeJSON(w, resp)
}

// handleGetCampaign returns the deep-dive report of the campaign bound to
// the {id} path parameter.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	asOf, err := h.asOf(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.svc.GetCampaign(r.Context(), id, asOf)
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	h.writeJSON(w, report)
}

// handleGetTrajectory returns the three trajectory series of one campaign.
// A campaign without flight dates still answers 200 with skipped set.
func (h *Handler) handleGetTrajectory(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	asOf, err := h.asOf(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	traj, err := h.svc.GetTrajectory(r.Context(), id, asOf)
	if err != nil {
		h.writeError(w, "get trajectory", err)
		return
	}
	h.writeJSON(w, traj)
}
