package httpadapter

import "net/http"

// handleGetPortfolio returns portfolio totals, tier counts and the
// cumulative opportunity curve as of the optional `as_of` date.
func (h *Handler) handleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	portfolio, err := h.svc.GetPortfolio(r.Context(), asOf)
	if err != nil {
		h.writeError(w, "get portfolio", err)
		return
	}
	h.writeJSON(w, portfolio)
}
