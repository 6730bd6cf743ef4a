// Package dataset reads campaign records from YAML documents. It ships an
// embedded sample portfolio used by the in-memory source and by seeding.
package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"pacing-radar/internal/core/domain"
)

//go:embed campaigns.yaml
var sample []byte

// SampleReferenceDate is the "today" the sample portfolio was captured at.
var SampleReferenceDate = time.Date(2026, time.February, 22, 0, 0, 0, 0, time.UTC)

// Sample returns the embedded sample portfolio.
func Sample() ([]domain.Campaign, error) {
	return Decode(bytes.NewReader(sample))
}

// LoadFile reads a campaign YAML document from path.
func LoadFile(path string) ([]domain.Campaign, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

type document struct {
	Campaigns []record `yaml:"campaigns"`
}

type record struct {
	ID          int64   `yaml:"id"`
	Advertiser  string  `yaml:"advertiser"`
	Industry    *string `yaml:"industry"`
	Opportunity *int64  `yaml:"opportunity"`
	SpendToDate int64   `yaml:"spend_to_date"`
	StartDate   *date   `yaml:"start_date"`
	EndDate     *date   `yaml:"end_date"`
	Notes       string  `yaml:"notes"`
	Status      string  `yaml:"status"`
	Owner       string  `yaml:"owner"`
}

// date accepts YYYY-MM-DD scalars whether or not they are quoted.
type date struct{ time.Time }

func (d *date) UnmarshalYAML(n *yaml.Node) error {
	t, err := time.Parse(time.DateOnly, n.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid date %q", n.Line, n.Value)
	}
	d.Time = t
	return nil
}

func (d *date) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// Decode parses a campaign YAML document. Records with negative amounts,
// unknown statuses or duplicate IDs are rejected.
func Decode(r io.Reader) ([]domain.Campaign, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}

	seen := make(map[int64]struct{}, len(doc.Campaigns))
	out := make([]domain.Campaign, 0, len(doc.Campaigns))
	for i, rec := range doc.Campaigns {
		c, err := rec.campaign()
		if err != nil {
			return nil, fmt.Errorf("campaign #%d: %w", i+1, err)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("campaign #%d: duplicate id %d", i+1, c.ID)
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

func (r record) campaign() (domain.Campaign, error) {
	if r.ID <= 0 {
		return domain.Campaign{}, errors.New("id must be positive")
	}
	if r.Opportunity != nil && *r.Opportunity < 0 {
		return domain.Campaign{}, fmt.Errorf("id %d: negative opportunity", r.ID)
	}
	if r.SpendToDate < 0 {
		return domain.Campaign{}, fmt.Errorf("id %d: negative spend", r.ID)
	}
	status := domain.Status(r.Status)
	switch status {
	case domain.StatusPreFlight, domain.StatusInFlight, domain.StatusCompleted:
	default:
		return domain.Campaign{}, fmt.Errorf("id %d: unknown status %q", r.ID, r.Status)
	}
	return domain.Campaign{
		ID:          r.ID,
		Advertiser:  r.Advertiser,
		Industry:    r.Industry,
		Opportunity: r.Opportunity,
		SpendToDate: r.SpendToDate,
		StartDate:   r.StartDate.ptr(),
		EndDate:     r.EndDate.ptr(),
		Notes:       r.Notes,
		Status:      status,
		Owner:       r.Owner,
	}, nil
}
