// Package transit computes the power of the current transiting influence:
// aspect base intensity shaped by orb closeness, approach direction, and
// retrograde stations.
package transit

import (
	"fmt"
	"math"

	"github.com/okian/astroclimate/internal/domain/catalog"
	"github.com/okian/astroclimate/internal/domain/model"
)

// Default transit-power constants.
const (
	// An applying aspect anticipates its exact pass at full strength, so
	// it carries the same peak modifier as an exact aspect. Separating
	// aspects wane.
	defaultApplyingModifier   = 1.30
	defaultExactModifier      = 1.30
	defaultSeparatingModifier = 0.85

	// Stations linger and intensify.
	defaultStationModifier = 1.40

	// Epsilon for the applying/separating comparison, in degrees. Keeps
	// repeated calls with near-identical samples from flapping.
	defaultDirectionEpsilon = 0.01
)

// Direction describes whether an aspect's orb is shrinking, growing, or
// momentarily unchanging.
type Direction string

// Direction values.
const (
	Applying   Direction = "applying"
	Separating Direction = "separating"
	Exact      Direction = "exact"
)

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithDirectionModifiers sets the applying/exact/separating modifiers.
func WithDirectionModifiers(applying, exact, separating float64) Option {
	return func(c *Calculator) {
		if applying > 0 && exact > 0 && separating > 0 {
			c.applying = applying
			c.exact = exact
			c.separating = separating
		}
	}
}

// WithStationModifier sets the boost applied near a retrograde station.
func WithStationModifier(modifier float64) Option {
	return func(c *Calculator) {
		if modifier > 0 {
			c.station = modifier
		}
	}
}

// WithDirectionEpsilon sets the tolerance for the exact-direction tie-break.
func WithDirectionEpsilon(epsilon float64) Option {
	return func(c *Calculator) {
		if epsilon > 0 {
			c.epsilon = epsilon
		}
	}
}

// Calculator derives P values from configuration records.
type Calculator struct {
	applying   float64
	exact      float64
	separating float64
	station    float64
	epsilon    float64
}

// New creates a Calculator with configuration options.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		applying:   defaultApplyingModifier,
		exact:      defaultExactModifier,
		separating: defaultSeparatingModifier,
		station:    defaultStationModifier,
		epsilon:    defaultDirectionEpsilon,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Power computes P for one configuration:
//
//	P = aspectBase * orbFactor * directionModifier * stationModifier
//
// orbFactor decays linearly from 1.0 at the exact aspect to exactly 0.0 at
// the orb boundary.
func (c *Calculator) Power(cfg model.Configuration) (float64, error) {
	if _, ok := catalog.BaseWeight(cfg.TransitBody); !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBody, cfg.TransitBody)
	}
	base, ok := catalog.AspectIntensity(cfg.Aspect)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAspect, cfg.Aspect)
	}
	if cfg.MaxOrb <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidMaxOrb, cfg.MaxOrb)
	}

	// Out-of-orb records contribute zero rather than failing.
	var orbFactor float64
	if cfg.InAspect() {
		orbFactor = 1.0 - math.Abs(cfg.OrbDeviation)/cfg.MaxOrb
	}

	direction := c.Direction(cfg.TodayDeviation, cfg.TomorrowDeviation)
	var dirMod float64
	switch direction {
	case Applying:
		dirMod = c.applying
	case Separating:
		dirMod = c.separating
	default:
		dirMod = c.exact
	}

	stationMod := 1.0
	if cfg.Stationary {
		stationMod = c.station
	}

	return base * orbFactor * dirMod * stationMod, nil
}

// Direction infers approach direction from the today/tomorrow deviation
// samples. Equality within epsilon reads as exact.
func (c *Calculator) Direction(today, tomorrow float64) Direction {
	diff := math.Abs(tomorrow) - math.Abs(today)
	switch {
	case diff < -c.epsilon:
		return Applying
	case diff > c.epsilon:
		return Separating
	default:
		return Exact
	}
}
