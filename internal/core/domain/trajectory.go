package domain

import "time"

// Series tags a trajectory point with the curve it belongs to.
type Series string

const (
	SeriesActual          Series = "actual"
	SeriesTrendProjection Series = "trend_projection"
	SeriesRequiredPath    Series = "required_path"
)

// TrajectoryPoint is a cumulative spend value on one day of one series.
type TrajectoryPoint struct {
	Date   time.Time `json:"date"`
	Value  float64   `json:"value"`
	Series Series    `json:"series"`
}

// Trajectory is the daily cumulative spend curve of a campaign. Points run
// from the start date to the end date; the reference day appears both in
// the actual series and in the two projected series. Skipped is set when
// the campaign has no flight dates and nothing was projected.
type Trajectory struct {
	CampaignID    int64             `json:"campaign_id"`
	Today         time.Time         `json:"today"`
	Start         *time.Time        `json:"start,omitempty"`
	End           *time.Time        `json:"end,omitempty"`
	Points        []TrajectoryPoint `json:"points"`
	DailyTrend    float64           `json:"daily_trend"`
	RequiredDaily float64           `json:"required_daily"`
	Lift          float64           `json:"lift"` // extra daily spend needed over the trend
	Skipped       bool              `json:"skipped"`
}

// SeriesPoints returns the points of the given series in date order.
func (t Trajectory) SeriesPoints(s Series) []TrajectoryPoint {
	var out []TrajectoryPoint
	for _, p := range t.Points {
		if p.Series == s {
			out = append(out, p)
		}
	}
	return out
}
