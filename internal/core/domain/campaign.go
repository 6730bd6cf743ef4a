package domain

import "time"

// Status is the lifecycle stage of a campaign.
type Status string

const (
	StatusPreFlight Status = "Pre-flight"
	StatusInFlight  Status = "In-flight"
	StatusCompleted Status = "Completed"
)

// Campaign is a raw campaign record as supplied by a data source.
// Amounts are whole currency units. Optional fields are nil when the
// source does not know them; spend may exceed the opportunity.
type Campaign struct {
	ID          int64      `json:"id"`
	Advertiser  string     `json:"advertiser"`
	Industry    *string    `json:"industry,omitempty"`
	Opportunity *int64     `json:"opportunity"` // committed budget
	SpendToDate int64      `json:"spend_to_date"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Notes       string     `json:"notes"`
	Status      Status     `json:"status"`
	Owner       string     `json:"owner"`
}

// HasCriticalData reports whether the opportunity and both flight dates
// are known.
func (c Campaign) HasCriticalData() bool {
	return c.Opportunity != nil && c.StartDate != nil && c.EndDate != nil
}
