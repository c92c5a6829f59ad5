// Package model contains domain records passed between layers.
package model

import (
	"time"

	"github.com/okian/astroclimate/internal/domain/types"
)

// Configuration represents one detected geometric relationship between a
// natal body and a transiting body. It is produced by the upstream chart and
// aspect-detection collaborator and consumed read-only by the engine.
type Configuration struct {
	NatalBody   types.Body       // the natal body receiving the transit
	NatalSign   types.Sign       // sign the natal body occupies
	NatalHouse  int              // house placement, 1-12
	NatalDegree float64          // degree within the natal sign
	TransitBody types.Body       // the transiting body
	Aspect      types.AspectType // detected aspect type

	// OrbDeviation is the signed angular deviation from the exact aspect,
	// in degrees. MaxOrb is the widest deviation still considered in-aspect
	// for this aspect/body combination.
	OrbDeviation float64
	MaxOrb       float64

	// Ascendant is the natal chart's rising sign, needed to derive the
	// chart ruler once per chart.
	Ascendant types.Sign

	// Sensitivity is a pre-existing per-configuration weighting hook.
	// 1.0 is neutral.
	Sensitivity float64

	// TodayDeviation and TomorrowDeviation are angular-deviation samples
	// used to infer whether the aspect is applying or separating.
	TodayDeviation    float64
	TomorrowDeviation float64

	// Retrograde and Stationary describe the transiting body's motion,
	// derived externally.
	Retrograde bool
	Stationary bool

	// Label is a human-readable description, e.g. "transit saturn square natal moon".
	Label string
}

// InAspect reports whether the configuration's orb deviation is within its
// allowed maximum. Out-of-range records contribute zero rather than failing.
func (c Configuration) InAspect() bool {
	if c.MaxOrb <= 0 {
		return false
	}
	orb := c.OrbDeviation
	if orb < 0 {
		orb = -orb
	}
	return orb <= c.MaxOrb
}

// Contribution is the scored outcome of a single configuration. Immutable,
// created fresh on every scoring call.
type Contribution struct {
	Label     string  // originating configuration label
	Weight    float64 // W: structural weight of the natal body's condition
	Power     float64 // P: strength of the current transiting influence
	Quality   float64 // Q in [-1, +1]: harmonious vs discordant
	Intensity float64 // W * P
	Harmony   float64 // W * P * Q
}

// Score aggregates a configuration set: raw totals plus the per-record
// contributions in input order (not yet ranked).
type Score struct {
	RawIntensity  float64
	RawHarmony    float64
	Contributions []Contribution
}

// Reading is the externally visible result of one meter evaluation.
type Reading struct {
	MeterID  string
	Category string
	Date     time.Time

	Intensity float64 // normalized, 0-100
	Harmony   float64 // normalized, 0-100, 50 = neutral

	State     string   // classified state label
	Narrative string   // short interpretation for the state
	Advice    []string // ranked advice items

	// Raw pre-normalization totals, retained for audit.
	RawIntensity float64
	RawHarmony   float64

	// TopContributions holds up to five contributions ranked by descending
	// absolute intensity, ties resolved by input order.
	TopContributions []Contribution

	// Notes is an open side channel for meter-specific facts,
	// e.g. "mercury_retrograde": "true".
	Notes map[string]string
}
