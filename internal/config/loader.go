package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if ASTRO_CONFIG is set
//  3. env (prefix ASTRO_)
func Load(ctx context.Context) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	base := New()

	k := koanf.New(".")

	// Load from file if provided.
	if path := os.Getenv("ASTRO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ASTRO_LOG_LEVEL, ASTRO_INTENSITY_KNEE, ...
	// Map env keys like ASTRO_METER_WORKERS -> meter_workers (flat keys),
	// preserving underscores to match the koanf tags on the struct.
	envProvider := env.Provider("ASTRO_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "astro_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy.
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects values the engine cannot run with.
func validate(cfg *Config) error {
	switch {
	case cfg.MeterWorkers <= 0:
		return fmt.Errorf("%w: meter_workers must be positive", ErrInvalidConfig)
	case cfg.IntensityKnee <= 0 || cfg.HarmonyKnee <= 0:
		return fmt.Errorf("%w: normalizer knees must be positive", ErrInvalidConfig)
	case cfg.ApplyingModifier <= 0 || cfg.ExactModifier <= 0 || cfg.SeparatingModifier <= 0:
		return fmt.Errorf("%w: direction modifiers must be positive", ErrInvalidConfig)
	case cfg.StationModifier <= 0:
		return fmt.Errorf("%w: station_modifier must be positive", ErrInvalidConfig)
	case cfg.DirectionEpsilon <= 0:
		return fmt.Errorf("%w: direction_epsilon must be positive", ErrInvalidConfig)
	case cfg.RulerBonus < 0:
		return fmt.Errorf("%w: ruler_bonus must not be negative", ErrInvalidConfig)
	}
	return nil
}
