// Package app provides the scoring service facade that ties the
// calculators, the meter engine, logging, and metrics together for one
// evaluation request.
package app

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/okian/astroclimate/internal/domain/meter"
	"github.com/okian/astroclimate/internal/domain/model"
	"github.com/okian/astroclimate/internal/domain/scoring"
	"github.com/okian/astroclimate/internal/domain/transit"
	"github.com/okian/astroclimate/internal/domain/types"
	"github.com/okian/astroclimate/internal/domain/weightage"
	"github.com/okian/astroclimate/pkg/logger"
	"github.com/okian/astroclimate/pkg/metrics"
)

const millisecondsPerNanosecond = 1e-6

// GlobalScore is the unfiltered score over the whole configuration set:
// raw totals, normalized values, labels, and the ranked top contributions.
type GlobalScore struct {
	RawIntensity float64
	RawHarmony   float64

	Intensity float64
	Harmony   float64

	IntensityLabel string
	HarmonyLabel   string

	Contributions []model.Contribution
}

// Result is the full outcome of one evaluation request: the global score
// plus one reading per registered meter, in registry order.
type Result struct {
	RequestID  string
	Date       time.Time
	Ascendant  types.Sign
	ChartRuler types.Body

	Global   GlobalScore
	Readings []model.Reading
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWorkerCount bounds the goroutines used for parallel meter evaluation.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithNormalizerKnees sets the raw totals where normalization compression
// starts, for intensity and harmony respectively.
func WithNormalizerKnees(intensity, harmony float64) Option {
	return func(s *Service) {
		s.normOpts = append(s.normOpts,
			scoring.WithIntensityKnee(intensity),
			scoring.WithHarmonyKnee(harmony),
		)
	}
}

// WithDirectionModifiers sets the applying/exact/separating power modifiers.
func WithDirectionModifiers(applying, exact, separating float64) Option {
	return func(s *Service) {
		s.transitOpts = append(s.transitOpts,
			transit.WithDirectionModifiers(applying, exact, separating))
	}
}

// WithStationModifier sets the boost for stationary transiting bodies.
func WithStationModifier(modifier float64) Option {
	return func(s *Service) {
		s.transitOpts = append(s.transitOpts, transit.WithStationModifier(modifier))
	}
}

// WithDirectionEpsilon sets the applying/separating comparison tolerance.
func WithDirectionEpsilon(epsilon float64) Option {
	return func(s *Service) {
		s.transitOpts = append(s.transitOpts, transit.WithDirectionEpsilon(epsilon))
	}
}

// WithRulerBonus sets the additive chart-ruler weight bonus.
func WithRulerBonus(bonus float64) Option {
	return func(s *Service) {
		s.weightOpts = append(s.weightOpts, weightage.WithRulerBonus(bonus))
	}
}

// Service evaluates configuration sets into climate scores and meter
// readings. It is stateless per call: all mutable data lives in the request.
type Service struct {
	workerCount int
	normOpts    []scoring.NormalizerOption
	transitOpts []transit.Option
	weightOpts  []weightage.Option

	aggregator *scoring.Aggregator
	normalizer *scoring.Normalizer
	meters     *meter.Engine

	logger logger.Logger
}

// New creates a Service with configuration options.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU(),
		logger:      logger.Get().Named("engine"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.aggregator = scoring.NewAggregator(
		scoring.WithWeightage(weightage.New(s.weightOpts...)),
		scoring.WithTransit(transit.New(s.transitOpts...)),
	)
	s.normalizer = scoring.NewNormalizer(s.normOpts...)
	s.meters = meter.New(
		meter.WithAggregator(s.aggregator),
		meter.WithNormalizer(s.normalizer),
		meter.WithWorkerCount(s.workerCount),
	)

	return s
}

// Evaluate scores the configuration set for one person and date: the global
// unfiltered score plus one reading per meter. The input is read-only; the
// returned Result is owned by the caller.
func (s *Service) Evaluate(ctx context.Context, date time.Time, ascendant types.Sign, configs []model.Configuration) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluation aborted: %w", err)
	}

	start := time.Now()
	requestID := uuid.NewString()

	chartRuler, hasRuler := weightage.ChartRuler(ascendant)
	if !hasRuler {
		s.logger.Warn(ctx, "unknown ascendant, no chart ruler applies",
			logger.String("request_id", requestID),
			logger.String("ascendant", string(ascendant)))
	}

	global, err := s.aggregator.Aggregate(configs, chartRuler)
	if err != nil {
		metrics.RecordContractViolation()
		return nil, fmt.Errorf("global score: %w", err)
	}

	readings, err := s.meters.EvaluateAll(ctx, configs, chartRuler, date)
	if err != nil {
		metrics.RecordContractViolation()
		return nil, err
	}

	result := &Result{
		RequestID:  requestID,
		Date:       date,
		Ascendant:  ascendant,
		ChartRuler: chartRuler,
		Global: GlobalScore{
			RawIntensity:   global.RawIntensity,
			RawHarmony:     global.RawHarmony,
			Intensity:      s.normalizer.Intensity(global.RawIntensity),
			Harmony:        s.normalizer.Harmony(global.RawHarmony),
			IntensityLabel: scoring.IntensityLabel(s.normalizer.Intensity(global.RawIntensity)),
			HarmonyLabel:   scoring.HarmonyLabel(s.normalizer.Harmony(global.RawHarmony)),
			Contributions:  global.Contributions,
		},
		Readings: readings,
	}

	s.observe(ctx, result, configs, time.Since(start))
	return result, nil
}

// Meters exposes the meter registry in evaluation order.
func (s *Service) Meters() []meter.Definition {
	return s.meters.Meters()
}

// observe emits metrics and a summary log line for one evaluation.
func (s *Service) observe(ctx context.Context, result *Result, configs []model.Configuration, elapsed time.Duration) {
	metrics.RecordEvaluation()
	metrics.RecordConfigurationsScored(len(configs))
	metrics.RecordEvaluationDuration(float64(elapsed.Nanoseconds()) * millisecondsPerNanosecond)

	var strongest float64
	for _, c := range result.Global.Contributions {
		if abs := math.Abs(c.Intensity); abs > strongest {
			strongest = abs
		}
	}
	if strongest > 0 {
		metrics.RecordTopContributorIntensity(strongest)
	}

	for _, r := range result.Readings {
		metrics.RecordMeterEvaluation(r.MeterID, r.State)
		if r.State == meter.QuietOutcome.State {
			metrics.RecordQuietReading()
		}
		if r.Notes["harmony_adjustment"] != "" {
			metrics.RecordRetroAdjustment()
		}
	}

	s.logger.Info(ctx, "evaluation complete",
		logger.String("request_id", result.RequestID),
		logger.Time("date", result.Date),
		logger.Int("configurations", len(configs)),
		logger.Float64("intensity", result.Global.Intensity),
		logger.Float64("harmony", result.Global.Harmony),
		logger.String("intensity_label", result.Global.IntensityLabel),
		logger.String("harmony_label", result.Global.HarmonyLabel),
		logger.Duration("elapsed", elapsed))
}
