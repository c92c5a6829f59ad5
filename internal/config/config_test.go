package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/astroclimate/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		cfg := config.New()

		Convey("Then every tunable has a working value", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.MeterWorkers, ShouldBeGreaterThan, 0)
			So(cfg.IntensityKnee, ShouldEqual, 2.5)
			So(cfg.HarmonyKnee, ShouldEqual, 4.0)
			So(cfg.ApplyingModifier, ShouldEqual, 1.30)
			So(cfg.ExactModifier, ShouldEqual, 1.30)
			So(cfg.SeparatingModifier, ShouldEqual, 0.85)
			So(cfg.StationModifier, ShouldEqual, 1.40)
			So(cfg.DirectionEpsilon, ShouldEqual, 0.01)
			So(cfg.RulerBonus, ShouldEqual, 1.0)
		})

		Convey("Then applying is never weaker than separating", func() {
			So(cfg.ApplyingModifier, ShouldBeGreaterThanOrEqualTo, cfg.SeparatingModifier)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		t.Setenv("ASTRO_CONFIG", "")

		Convey("When loading with no overrides", func() {
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the defaults come through", func() {
				So(cfg, ShouldResemble, config.New())
			})
		})

		Convey("When environment variables override defaults", func() {
			t.Setenv("ASTRO_LOG_LEVEL", "debug")
			t.Setenv("ASTRO_METER_WORKERS", "3")
			t.Setenv("ASTRO_INTENSITY_KNEE", "5.0")

			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)

			Convey("Then only the named keys change", func() {
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.MeterWorkers, ShouldEqual, 3)
				So(cfg.IntensityKnee, ShouldEqual, 5.0)
				So(cfg.HarmonyKnee, ShouldEqual, 4.0)
			})
		})

		Convey("When a YAML file is layered under the environment", func() {
			path := filepath.Join(t.TempDir(), "engine.yaml")
			So(os.WriteFile(path, []byte("log_level: warn\nruler_bonus: 0.5\n"), 0o600), ShouldBeNil)
			t.Setenv("ASTRO_CONFIG", path)
			t.Setenv("ASTRO_LOG_LEVEL", "error")

			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)

			Convey("Then env wins over file, file wins over defaults", func() {
				So(cfg.LogLevel, ShouldEqual, "error")
				So(cfg.RulerBonus, ShouldEqual, 0.5)
			})
		})

		Convey("When the configured file does not exist", func() {
			t.Setenv("ASTRO_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load(context.Background())

			Convey("Then the load error sentinel is preserved", func() {
				So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
			})
		})

		Convey("When a tunable is out of range", func() {
			t.Setenv("ASTRO_METER_WORKERS", "0")

			_, err := config.Load(context.Background())

			Convey("Then validation rejects it", func() {
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := config.Load(ctx)
			So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
		})
	})
}
