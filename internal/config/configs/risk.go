package configs

import (
	"fmt"
	"time"
)

// Risk configures the pacing engine. FeasibleDailySpend is the daily spend
// ceiling above which the required pace is flagged unrealistic, and
// PriorYearRatio scales the cumulative opportunity curve into the prior
// year baseline. Workers bounds how many campaigns are evaluated in
// parallel.
type Risk struct {
	FeasibleDailySpend int64   `env:"FEASIBLE_DAILY_SPEND" envDefault:"2000"`
	PriorYearRatio     float64 `env:"PRIOR_YEAR_RATIO" envDefault:"0.65"`
	Workers            int     `env:"WORKERS" envDefault:"4"`

	// ReferenceDate pins "today" for every evaluation. When unset the
	// current UTC date is used.
	ReferenceDate Date `env:"REFERENCE_DATE"`
}

// Today returns the pinned reference date, or the current UTC date when
// none is configured.
func (c Risk) Today() time.Time {
	if c.ReferenceDate.IsZero() {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return c.ReferenceDate.Time
}

// Date is a calendar date parsed from YYYY-MM-DD.
type Date struct {
	time.Time
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse("2006-01-02", string(text))
	if err != nil {
		return fmt.Errorf("parse date %q: %w", text, err)
	}
	d.Time = t
	return nil
}
