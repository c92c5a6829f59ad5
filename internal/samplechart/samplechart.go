// Package samplechart generates deterministic sample configuration sets
// for the demo harness and tests. Generation is seeded, never random at
// runtime: the same seed always yields byte-identical input.
package samplechart

import (
	"fmt"
	"math/rand"

	"github.com/okian/astroclimate/internal/domain/model"
	"github.com/okian/astroclimate/internal/domain/types"
)

// Generation ranges.
const (
	defaultSeed     = 42
	defaultCount    = 12
	maxOrbDegrees   = 8.0
	dailyMotionSlow = 0.05
	dailyMotionFast = 1.2
)

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed sets the deterministic seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithCount sets how many configurations to generate.
func WithCount(count int) Option {
	return func(g *Generator) {
		if count > 0 {
			g.count = count
		}
	}
}

// Generator produces sample configuration sets.
type Generator struct {
	seed  int64
	count int
}

// New creates a Generator with configuration options.
func New(opts ...Option) *Generator {
	g := &Generator{
		seed:  defaultSeed,
		count: defaultCount,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a deterministic configuration set against the given
// ascendant. Aspects, placements, and motion states are drawn from a
// seeded source so repeated calls produce identical sets.
func (g *Generator) Generate(ascendant types.Sign) []model.Configuration {
	rng := rand.New(rand.NewSource(g.seed)) //nolint:gosec // deterministic sample data, not security-sensitive

	bodies := types.Bodies()
	signs := types.Signs()
	aspects := types.Aspects()

	configs := make([]model.Configuration, 0, g.count)
	for i := 0; i < g.count; i++ {
		natal := bodies[rng.Intn(len(bodies))]
		transiting := bodies[rng.Intn(len(bodies))]
		aspect := aspects[rng.Intn(len(aspects))]

		orb := (rng.Float64()*2 - 1) * maxOrbDegrees
		motion := dailyMotionSlow + rng.Float64()*(dailyMotionFast-dailyMotionSlow)
		if rng.Intn(2) == 0 {
			motion = -motion // approaching exactness tomorrow
		}
		retro := rng.Intn(5) == 0
		stationary := retro && rng.Intn(3) == 0

		cfg := model.Configuration{
			NatalBody:         natal,
			NatalSign:         signs[rng.Intn(len(signs))],
			NatalHouse:        1 + rng.Intn(12),
			NatalDegree:       rng.Float64() * 30,
			TransitBody:       transiting,
			Aspect:            aspect,
			OrbDeviation:      orb,
			MaxOrb:            maxOrbDegrees,
			Ascendant:         ascendant,
			Sensitivity:       1.0,
			TodayDeviation:    orb,
			TomorrowDeviation: orb + motion,
			Retrograde:        retro,
			Stationary:        stationary,
		}
		cfg.Label = fmt.Sprintf("transit %s %s natal %s", transiting, aspect, natal)
		configs = append(configs, cfg)
	}
	return configs
}
