// Demo harness: evaluates a deterministic sample chart and logs every
// meter reading. The engine itself has no transport or CLI surface; this
// binary exists to exercise it end to end.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/astroclimate/internal/app"
	"github.com/okian/astroclimate/internal/config"
	"github.com/okian/astroclimate/internal/domain/types"
	"github.com/okian/astroclimate/internal/samplechart"
	"github.com/okian/astroclimate/pkg/logger"
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since the logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithWorkerCount(cfg.MeterWorkers),
		app.WithNormalizerKnees(cfg.IntensityKnee, cfg.HarmonyKnee),
		app.WithDirectionModifiers(cfg.ApplyingModifier, cfg.ExactModifier, cfg.SeparatingModifier),
		app.WithStationModifier(cfg.StationModifier),
		app.WithDirectionEpsilon(cfg.DirectionEpsilon),
		app.WithRulerBonus(cfg.RulerBonus),
	)

	ascendant := types.Leo
	configs := samplechart.New().Generate(ascendant)

	result, err := svc.Evaluate(ctx, time.Now().UTC(), ascendant, configs)
	if err != nil {
		log.Error(ctx, "evaluation failed", logger.Error(err))
		return
	}

	log.Info(ctx, "global climate",
		logger.String("request_id", result.RequestID),
		logger.String("chart_ruler", string(result.ChartRuler)),
		logger.Float64("intensity", result.Global.Intensity),
		logger.String("intensity_label", result.Global.IntensityLabel),
		logger.Float64("harmony", result.Global.Harmony),
		logger.String("harmony_label", result.Global.HarmonyLabel))

	for _, reading := range result.Readings {
		log.Info(ctx, "meter reading",
			logger.String("meter", reading.MeterID),
			logger.String("category", reading.Category),
			logger.Float64("intensity", reading.Intensity),
			logger.Float64("harmony", reading.Harmony),
			logger.String("state", reading.State),
			logger.String("narrative", reading.Narrative))
	}
}
