package pacing

import (
	"time"

	"pacing-radar/internal/core/domain"
)

// Engine runs the full per-campaign pipeline with one configuration.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cfg        Config
	classifier *Classifier
}

// NewEngine returns an engine for cfg, filling unset values with defaults.
func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{cfg: cfg, classifier: NewClassifier(cfg)}
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Evaluate derives metrics for c as of today, classifies them and fills in
// the explanation.
func (e *Engine) Evaluate(c domain.Campaign, today time.Time) domain.Evaluation {
	today = Day(today)
	m := Derive(c, today)
	a := e.classifier.Classify(c, m)
	a.WhyAtRisk, a.NextAction = Explain(a, m)
	return domain.Evaluation{Campaign: c, Metrics: m, Assessment: a}
}

// Project derives metrics for c and returns its spend trajectory.
func (e *Engine) Project(c domain.Campaign, today time.Time) domain.Trajectory {
	return Project(c, Derive(c, today), today)
}

// Summarize aggregates evaluations with the configured prior-year ratio.
func (e *Engine) Summarize(evals []domain.Evaluation) domain.Portfolio {
	return Summarize(evals, e.cfg.PriorYearRatio)
}
