package pacing

import (
	"testing"
	"time"

	"pacing-radar/internal/core/domain"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d := mustDate(t, s)
	return &d
}

func amount(v int64) *int64 { return &v }

// airline is the reference example: half the flight gone, 44% spent.
func airline(t *testing.T, notes string) domain.Campaign {
	t.Helper()
	return domain.Campaign{
		ID:          1,
		Advertiser:  "Airline A",
		Opportunity: amount(50000),
		SpendToDate: 22000,
		StartDate:   datePtr(t, "2026-02-01"),
		EndDate:     datePtr(t, "2026-03-15"),
		Notes:       notes,
		Status:      domain.StatusInFlight,
	}
}
