package pacing

const (
	// DefaultFeasibleDailySpend is the daily spend a buying team can
	// realistically execute, in currency units.
	DefaultFeasibleDailySpend = 2000.0
	// DefaultPriorYearRatio scales the cumulative opportunity curve into
	// the illustrative prior-year baseline.
	DefaultPriorYearRatio = 0.65
)

// Config tunes the classifier and the portfolio aggregate. Zero values
// fall back to the defaults.
type Config struct {
	FeasibleDailySpend float64
	PriorYearRatio     float64
	Rules              []KeywordRule
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		FeasibleDailySpend: DefaultFeasibleDailySpend,
		PriorYearRatio:     DefaultPriorYearRatio,
		Rules:              DefaultRules(),
	}
}

func (c Config) withDefaults() Config {
	if c.FeasibleDailySpend <= 0 {
		c.FeasibleDailySpend = DefaultFeasibleDailySpend
	}
	if c.PriorYearRatio <= 0 {
		c.PriorYearRatio = DefaultPriorYearRatio
	}
	if c.Rules == nil {
		c.Rules = DefaultRules()
	}
	return c
}
