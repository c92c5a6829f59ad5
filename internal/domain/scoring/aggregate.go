// Package scoring combines per-configuration weight, power, and quality
// into raw intensity and harmony totals, and normalizes those totals onto
// bounded 0-100 scales.
package scoring

import (
	"fmt"

	"github.com/okian/astroclimate/internal/domain/model"
	"github.com/okian/astroclimate/internal/domain/quality"
	"github.com/okian/astroclimate/internal/domain/transit"
	"github.com/okian/astroclimate/internal/domain/types"
	"github.com/okian/astroclimate/internal/domain/weightage"
)

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithWeightage sets the weightage calculator.
func WithWeightage(c *weightage.Calculator) Option {
	return func(a *Aggregator) {
		if c != nil {
			a.weights = c
		}
	}
}

// WithTransit sets the transit-power calculator.
func WithTransit(c *transit.Calculator) Option {
	return func(a *Aggregator) {
		if c != nil {
			a.power = c
		}
	}
}

// Aggregator scores configuration sets.
type Aggregator struct {
	weights *weightage.Calculator
	power   *transit.Calculator
}

// NewAggregator creates an Aggregator with configuration options.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		weights: weightage.New(),
		power:   transit.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate computes W, P, Q per configuration, derives the intensity
// (W*P) and harmony (W*P*Q) products, and sums both across the set.
//
// Contributions keep input order. An empty set is the defined "quiet"
// state: zero totals, empty list, no error. A record whose orb deviation
// exceeds its max orb contributes zero by construction (the orb factor
// clamps to zero) rather than failing. Contract violations abort with an
// error naming the offending record.
func (a *Aggregator) Aggregate(configs []model.Configuration, chartRuler types.Body) (model.Score, error) {
	score := model.Score{
		Contributions: make([]model.Contribution, 0, len(configs)),
	}

	for i, cfg := range configs {
		w, err := a.weights.Weight(cfg, chartRuler)
		if err != nil {
			return model.Score{}, fmt.Errorf("configuration %d (%s): %w", i, cfg.Label, err)
		}
		p, err := a.power.Power(cfg)
		if err != nil {
			return model.Score{}, fmt.Errorf("configuration %d (%s): %w", i, cfg.Label, err)
		}
		q := quality.Quality(cfg.Aspect, cfg.NatalBody, cfg.TransitBody)

		contribution := model.Contribution{
			Label:     cfg.Label,
			Weight:    w,
			Power:     p,
			Quality:   q,
			Intensity: w * p,
			Harmony:   w * p * q,
		}
		score.Contributions = append(score.Contributions, contribution)
		score.RawIntensity += contribution.Intensity
		score.RawHarmony += contribution.Harmony
	}

	return score, nil
}
