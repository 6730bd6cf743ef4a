package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pacing-radar/internal/core/domain"
	"pacing-radar/internal/core/port"
	"pacing-radar/internal/core/port/mocks"
)

var today = time.Date(2026, time.February, 22, 0, 0, 0, 0, time.UTC)

func setupHandler(t *testing.T) (*Handler, *mocks.MockRiskUseCase) {
	t.Helper()
	svc := mocks.NewMockRiskUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger, func() time.Time { return today }), svc
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestListCampaigns_DefaultsToClock(t *testing.T) {
	h, svc := setupHandler(t)
	svc.EXPECT().
		ListCampaigns(mock.Anything, port.ListReq{AsOf: today}).
		Return(&port.ListResp{AsOf: today, Rows: []port.ListRow{}}, nil)

	rec := serve(h, "/api/v1/campaigns")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "rows")
	assert.Contains(t, body, "totals")
}

func TestListCampaigns_Filters(t *testing.T) {
	h, svc := setupHandler(t)
	asOf := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	svc.EXPECT().
		ListCampaigns(mock.Anything, mock.MatchedBy(func(req port.ListReq) bool {
			return req.AsOf.Equal(asOf) &&
				req.Tier != nil && *req.Tier == domain.TierRed &&
				req.WithinDays != nil && *req.WithinDays == 7
		})).
		Return(&port.ListResp{AsOf: asOf}, nil)

	rec := serve(h, "/api/v1/campaigns?as_of=2026-03-01&risk=Red&within_days=7")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListCampaigns_BadParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"as_of", "/api/v1/campaigns?as_of=22-02-2026"},
		{"risk", "/api/v1/campaigns?risk=Orange"},
		{"within_days text", "/api/v1/campaigns?within_days=soon"},
		{"within_days negative", "/api/v1/campaigns?within_days=-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupHandler(t)
			rec := serve(h, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetCampaign(t *testing.T) {
	h, svc := setupHandler(t)
	report := &port.CampaignReport{
		AsOf: today,
		Evaluation: domain.Evaluation{
			Campaign:   domain.Campaign{ID: 1, Advertiser: "Airline A"},
			Assessment: domain.Assessment{Score: 6, Tier: domain.TierRed},
		},
	}
	svc.EXPECT().GetCampaign(mock.Anything, int64(1), today).Return(report, nil)

	rec := serve(h, "/api/v1/campaigns/1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "assessment")
	assert.Equal(t, "Red", body["assessment"].(map[string]any)["risk"])
	assert.Contains(t, body, "requirements")
}

func TestGetCampaign_NotFound(t *testing.T) {
	h, svc := setupHandler(t)
	svc.EXPECT().GetCampaign(mock.Anything, int64(99), today).Return(nil, port.ErrCampaignNotFound)

	rec := serve(h, "/api/v1/campaigns/99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCampaign_BadID(t *testing.T) {
	h, _ := setupHandler(t)
	for _, target := range []string{"/api/v1/campaigns/abc", "/api/v1/campaigns/0"} {
		rec := serve(h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestGetTrajectory_Skipped(t *testing.T) {
	h, svc := setupHandler(t)
	svc.EXPECT().
		GetTrajectory(mock.Anything, int64(14), today).
		Return(&domain.Trajectory{CampaignID: 14, Today: today, Skipped: true}, nil)

	rec := serve(h, "/api/v1/campaigns/14/trajectory")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["skipped"])
}

func TestGetPortfolio_InternalError(t *testing.T) {
	h, svc := setupHandler(t)
	svc.EXPECT().GetPortfolio(mock.Anything, today).Return(nil, errors.New("connection reset"))

	rec := serve(h, "/api/v1/portfolio")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
