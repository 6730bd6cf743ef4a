package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pacing-radar/internal/core/port"
)

const dateLayout = "2006-01-02"

// asOf reads the optional as_of query parameter. Without it the handler's
// clock decides the reference date.
func (h *Handler) asOf(r *http.Request) (time.Time, error) {
	s := r.URL.Query().Get("as_of")
	if s == "" {
		return h.today(), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid 'as_of' date %q", s)
	}
	return t, nil
}

func campaignID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid campaign id %q", raw)
	}
	return id, nil
}

// writeError maps use case errors onto status codes. Unknown campaigns are
// 404; anything else is logged and reported as 500.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, port.ErrCampaignNotFound) {
		http.Error(w, "campaign not found", http.StatusNotFound)
		return
	}
	h.logger.Error(op+" error", slog.Any("error", err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; headers are already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
