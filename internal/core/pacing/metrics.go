package pacing

import (
	"math"
	"time"

	"pacing-radar/internal/core/domain"
)

// Derive computes the pacing metrics of c as of today. It never fails:
// ratios with a zero or unknown denominator divide by 1 instead, and a
// metric whose inputs are unknown is left nil.
func Derive(c domain.Campaign, today time.Time) domain.Metrics {
	var m domain.Metrics

	if c.StartDate != nil && c.EndDate != nil {
		total := daysBetween(*c.StartDate, *c.EndDate)
		m.DaysTotal = &total
	}
	if c.StartDate != nil {
		elapsed := max(0, daysBetween(*c.StartDate, today))
		m.DaysElapsed = &elapsed
	}
	if c.EndDate != nil {
		remaining := max(0, daysBetween(today, *c.EndDate))
		m.DaysRemaining = &remaining
	}

	if m.DaysElapsed != nil {
		pct := round2(clamp(float64(*m.DaysElapsed)/divisor(m.DaysTotal), 0, 1))
		m.PctTime = &pct
	}
	m.PctSpend = round2(clamp(float64(c.SpendToDate)/divisor64(c.Opportunity), 0, 1))

	if c.Opportunity != nil {
		opp := *c.Opportunity
		if m.PctTime != nil {
			expected := int64(math.RoundToEven(float64(opp) * *m.PctTime))
			behind := max(0, expected-c.SpendToDate)
			m.ExpectedSpend = &expected
			m.SpendBehind = &behind
		}
		remaining := max(0, opp-c.SpendToDate)
		required := int64(math.RoundToEven(float64(remaining) / divisor(m.DaysRemaining)))
		m.OpportunityRemaining = &remaining
		m.RequiredDaily = &required
	}

	m.AvgDailySpend = round2(float64(c.SpendToDate) / divisor(m.DaysElapsed))
	return m
}
