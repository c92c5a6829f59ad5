// Package weightage computes the structural weight of a configuration: how
// much the natal body's condition matters, independent of the current
// transiting influence.
package weightage

import (
	"fmt"

	"github.com/okian/astroclimate/internal/domain/catalog"
	"github.com/okian/astroclimate/internal/domain/model"
	"github.com/okian/astroclimate/internal/domain/types"
)

// Default weightage constants.
const (
	defaultRulerBonus = 1.0
	// Sensitivity is a multiplier hook centered on 1.0; it enters the
	// weight additively so a single factor can never flip the sign of
	// the overall weight.
	minSensitivityAdjust = -1.0
	maxSensitivityAdjust = 2.0
)

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithRulerBonus sets the additive bonus applied when the natal body rules
// the ascendant sign.
func WithRulerBonus(bonus float64) Option {
	return func(c *Calculator) {
		if bonus >= 0 {
			c.rulerBonus = bonus
		}
	}
}

// Calculator derives W values from configuration records.
type Calculator struct {
	rulerBonus float64
}

// New creates a Calculator with configuration options.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		rulerBonus: defaultRulerBonus,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Weight computes W for one configuration. The chart ruler is derived once
// per chart (see ChartRuler) and passed in, not recomputed per record.
//
// All factors are additive: base body weight, essential dignity, house
// bonus, ruler bonus, and the sensitivity adjustment.
func (c *Calculator) Weight(cfg model.Configuration, chartRuler types.Body) (float64, error) {
	base, ok := catalog.BaseWeight(cfg.NatalBody)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBody, cfg.NatalBody)
	}
	if cfg.NatalHouse < 1 || cfg.NatalHouse > 12 {
		return 0, fmt.Errorf("%w: got %d", ErrHouseOutOfRange, cfg.NatalHouse)
	}

	w := base
	w += catalog.Dignity(cfg.NatalBody, cfg.NatalSign)
	w += catalog.HouseBonus(cfg.NatalHouse)
	if cfg.NatalBody == chartRuler {
		w += c.rulerBonus
	}
	w += sensitivityAdjust(cfg.Sensitivity)
	return w, nil
}

// ChartRuler derives the body ruling the ascendant sign. The second return
// is false when the ascendant is unknown; no ruler bonus applies then.
func ChartRuler(ascendant types.Sign) (types.Body, bool) {
	return catalog.Ruler(ascendant)
}

// sensitivityAdjust converts the 1.0-centered sensitivity multiplier into a
// bounded additive term.
func sensitivityAdjust(sensitivity float64) float64 {
	if sensitivity == 0 {
		// Unset sensitivity means neutral, not a -1 adjustment.
		return 0
	}
	adj := sensitivity - 1.0
	if adj < minSensitivityAdjust {
		return minSensitivityAdjust
	}
	if adj > maxSensitivityAdjust {
		return maxSensitivityAdjust
	}
	return adj
}
