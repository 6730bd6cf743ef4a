package pacing

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole number of days from one calendar day to
// another. It is negative when to precedes from.
func daysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)) / day)
}

// round2 rounds to 2 decimals, halves to even.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// divisor substitutes 1 for a zero or unknown denominator.
func divisor(n *int) float64 {
	if n == nil || *n == 0 {
		return 1
	}
	return float64(*n)
}

func divisor64(n *int64) float64 {
	if n == nil || *n == 0 {
		return 1
	}
	return float64(*n)
}
