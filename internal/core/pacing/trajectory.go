package pacing

import (
	"math"
	"time"

	"pacing-radar/internal/core/domain"
)

// Project builds the daily cumulative spend curve of c from its start date
// to its end date. Days up to today carry the actual series, a linear
// interpolation of spend to date. Days from today on carry the trend
// projection at the observed average rate and the required path at the
// required daily rate, both capped at the opportunity. Campaigns without
// both flight dates yield a skipped, empty trajectory.
func Project(c domain.Campaign, m domain.Metrics, today time.Time) domain.Trajectory {
	today = Day(today)
	t := domain.Trajectory{
		CampaignID: c.ID,
		Today:      today,
		Start:      c.StartDate,
		End:        c.EndDate,
	}
	if c.StartDate == nil || c.EndDate == nil {
		t.Skipped = true
		return t
	}

	start, end := Day(*c.StartDate), Day(*c.EndDate)
	spend := float64(c.SpendToDate)
	elapsed := 0
	if m.DaysElapsed != nil {
		elapsed = *m.DaysElapsed
	}

	t.DailyTrend = spend / float64(max(elapsed, 1))
	if m.RequiredDaily != nil {
		t.RequiredDaily = float64(*m.RequiredDaily)
	}
	t.Lift = math.Max(t.RequiredDaily-t.DailyTrend, 0)

	// Without a known opportunity nothing beyond spend to date is projected.
	ceiling := spend
	if c.Opportunity != nil {
		ceiling = float64(*c.Opportunity)
	}

	if days := daysBetween(start, end); days >= 0 {
		t.Points = make([]domain.TrajectoryPoint, 0, 2*(days+1))
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !d.After(today) {
			actual := 0.0
			if elapsed > 0 {
				actual = clamp(float64(daysBetween(start, d))/float64(elapsed)*spend, 0, spend)
			}
			t.Points = append(t.Points, domain.TrajectoryPoint{Date: d, Value: actual, Series: domain.SeriesActual})
		}
		if !d.Before(today) {
			ahead := float64(daysBetween(today, d))
			t.Points = append(t.Points,
				domain.TrajectoryPoint{Date: d, Value: math.Min(spend+ahead*t.DailyTrend, ceiling), Series: domain.SeriesTrendProjection},
				domain.TrajectoryPoint{Date: d, Value: math.Min(spend+ahead*t.RequiredDaily, ceiling), Series: domain.SeriesRequiredPath},
			)
		}
	}
	return t
}
