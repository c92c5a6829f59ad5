// Package config defines engine configuration structures and loading hooks.
//
// Conventions:
// - Provide New() defaults and Load(ctx) for layered loading.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains engine tuning. All values have working defaults; nothing
// here is required for correctness, only for calibration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MeterWorkers bounds the goroutines evaluating meters in parallel.
	MeterWorkers int `koanf:"meter_workers"`

	// IntensityKnee and HarmonyKnee set the raw totals where the
	// normalizer's logarithmic compression starts.
	IntensityKnee float64 `koanf:"intensity_knee"`
	HarmonyKnee   float64 `koanf:"harmony_knee"`

	// Direction modifiers for the transit-power calculator.
	ApplyingModifier   float64 `koanf:"applying_modifier"`
	ExactModifier      float64 `koanf:"exact_modifier"`
	SeparatingModifier float64 `koanf:"separating_modifier"`

	// StationModifier boosts transits of a stationary body.
	StationModifier float64 `koanf:"station_modifier"`

	// DirectionEpsilon is the degree tolerance for the applying vs
	// separating comparison.
	DirectionEpsilon float64 `koanf:"direction_epsilon"`

	// RulerBonus is the additive weight for the chart ruler.
	RulerBonus float64 `koanf:"ruler_bonus"`
}

// New creates a Config with engine defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		MeterWorkers:       runtime.NumCPU(),
		IntensityKnee:      2.5,
		HarmonyKnee:        4.0,
		ApplyingModifier:   1.30,
		ExactModifier:      1.30,
		SeparatingModifier: 0.85,
		StationModifier:    1.40,
		DirectionEpsilon:   0.01,
		RulerBonus:         1.0,
	}
}
