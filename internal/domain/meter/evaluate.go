package meter

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/okian/astroclimate/internal/domain/model"
	"github.com/okian/astroclimate/internal/domain/scoring"
	"github.com/okian/astroclimate/internal/domain/types"
	"github.com/okian/astroclimate/pkg/metrics"
)

// topContributionCount is how many ranked contributions each reading keeps
// for explainability.
const topContributionCount = 5

const millisecondsPerNanosecond = 1e-6

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithAggregator sets the contribution aggregator.
func WithAggregator(a *scoring.Aggregator) Option {
	return func(e *Engine) {
		if a != nil {
			e.agg = a
		}
	}
}

// WithNormalizer sets the normalizer.
func WithNormalizer(n *scoring.Normalizer) Option {
	return func(e *Engine) {
		if n != nil {
			e.norm = n
		}
	}
}

// WithWorkerCount bounds the goroutines used by EvaluateAll. Parallelism is
// a performance optimization only; results are identical at any count.
func WithWorkerCount(count int) Option {
	return func(e *Engine) {
		if count > 0 {
			e.workers = count
		}
	}
}

// WithDefinitions overrides the meter registry, mainly for tests.
func WithDefinitions(defs []Definition) Option {
	return func(e *Engine) {
		if len(defs) > 0 {
			e.defs = defs
		}
	}
}

// Engine evaluates meter definitions against configuration sets. It holds
// no per-request state; every call re-derives everything from its inputs.
type Engine struct {
	agg     *scoring.Aggregator
	norm    *scoring.Normalizer
	workers int
	defs    []Definition
}

// New creates an Engine with configuration options.
func New(opts ...Option) *Engine {
	e := &Engine{
		agg:     scoring.NewAggregator(),
		norm:    scoring.NewNormalizer(),
		workers: runtime.NumCPU(),
		defs:    Definitions(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Meters returns the registry this engine evaluates, in evaluation order.
func (e *Engine) Meters() []Definition {
	return e.defs
}

// Evaluate runs one meter against the full configuration set:
// filter -> aggregate -> normalize -> classify -> rank top contributions.
// An empty filtered subset yields the canonical quiet reading.
func (e *Engine) Evaluate(def Definition, configs []model.Configuration, chartRuler types.Body, date time.Time) (model.Reading, error) {
	return e.evaluate(def, def.Filter.Apply(configs), chartRuler, date)
}

// evaluate scores an already-filtered subset for one meter.
func (e *Engine) evaluate(def Definition, filtered []model.Configuration, chartRuler types.Body, date time.Time) (model.Reading, error) {
	start := time.Now()
	defer func() {
		metrics.RecordMeterDuration(float64(time.Since(start).Nanoseconds()) * millisecondsPerNanosecond)
	}()

	reading := model.Reading{
		MeterID:  def.ID,
		Category: string(def.Category),
		Date:     date,
		Notes:    map[string]string{},
	}

	if len(filtered) == 0 {
		reading.Harmony = scoring.NeutralHarmony
		reading.State = QuietOutcome.State
		reading.Narrative = QuietOutcome.Narrative
		reading.Advice = append([]string(nil), QuietOutcome.Advice...)
		return reading, nil
	}

	score, err := e.agg.Aggregate(filtered, chartRuler)
	if err != nil {
		return model.Reading{}, fmt.Errorf("meter %s: %w", def.ID, err)
	}

	rawHarmony := score.RawHarmony
	if def.Retro != nil && anyRetrograde(filtered, def.Retro.Body) {
		rawHarmony /= 2
		reading.Notes[string(def.Retro.Body)+"_retrograde"] = "true"
		reading.Notes["harmony_adjustment"] = "halved"
	}

	reading.RawIntensity = score.RawIntensity
	reading.RawHarmony = rawHarmony
	reading.Intensity = e.norm.Intensity(score.RawIntensity)
	reading.Harmony = e.norm.Harmony(rawHarmony)

	outcome := tables[def.Category].Classify(reading.Intensity, reading.Harmony)
	reading.State = outcome.State
	reading.Narrative = outcome.Narrative
	reading.Advice = append([]string(nil), outcome.Advice...)

	reading.TopContributions = topContributions(score.Contributions)
	return reading, nil
}

// EvaluateAll evaluates every registered meter against the same immutable
// configuration set. Filtered subsets are memoized per call, keyed by
// filter identity, and the meters are scored by a bounded worker set. The
// result order is always the registry order.
func (e *Engine) EvaluateAll(ctx context.Context, configs []model.Configuration, chartRuler types.Body, date time.Time) ([]model.Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("meter evaluation aborted: %w", err)
	}

	// Request-scoped memoization: meters sharing a filter share one subset.
	subsets := make(map[string][]model.Configuration, len(e.defs))
	for _, def := range e.defs {
		key := def.Filter.Key()
		if _, ok := subsets[key]; !ok {
			subsets[key] = def.Filter.Apply(configs)
		}
	}

	readings := make([]model.Reading, len(e.defs))
	errs := make([]error, len(e.defs))

	workers := e.workers
	if workers > len(e.defs) {
		workers = len(e.defs)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				def := e.defs[i]
				readings[i], errs[i] = e.evaluate(def, subsets[def.Filter.Key()], chartRuler, date)
			}
		}()
	}

	for i := range e.defs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("evaluating %s: %w", e.defs[i].ID, err)
		}
	}
	return readings, nil
}

// topContributions ranks by descending absolute intensity, ties broken by
// original input order, and keeps the strongest five.
func topContributions(contributions []model.Contribution) []model.Contribution {
	ranked := append([]model.Contribution(nil), contributions...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].Intensity) > math.Abs(ranked[j].Intensity)
	})
	if len(ranked) > topContributionCount {
		ranked = ranked[:topContributionCount]
	}
	return ranked
}

// anyRetrograde reports whether the filtered subset contains the body
// transiting retrograde.
func anyRetrograde(configs []model.Configuration, body types.Body) bool {
	for _, cfg := range configs {
		if cfg.TransitBody == body && cfg.Retrograde {
			return true
		}
	}
	return false
}
