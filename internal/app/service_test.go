package app_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/okian/astroclimate/internal/app"
	"github.com/okian/astroclimate/internal/domain/model"
	"github.com/okian/astroclimate/internal/domain/scoring"
	"github.com/okian/astroclimate/internal/domain/types"
	"github.com/okian/astroclimate/internal/domain/weightage"
	"github.com/okian/astroclimate/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

var testDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func beneficTrine() model.Configuration {
	return model.Configuration{
		NatalBody:         types.Venus,
		NatalSign:         types.Taurus,
		NatalHouse:        7,
		TransitBody:       types.Jupiter,
		Aspect:            types.Trine,
		OrbDeviation:      0,
		MaxOrb:            6,
		Ascendant:         types.Taurus,
		Sensitivity:       1.0,
		TodayDeviation:    0,
		TomorrowDeviation: 0,
		Label:             "transit jupiter trine natal venus",
	}
}

func maleficSquare() model.Configuration {
	return model.Configuration{
		NatalBody:         types.Moon,
		NatalSign:         types.Gemini,
		NatalHouse:        12,
		TransitBody:       types.Saturn,
		Aspect:            types.Square,
		OrbDeviation:      0,
		MaxOrb:            6,
		Ascendant:         types.Taurus,
		Sensitivity:       1.0,
		TodayDeviation:    0,
		TomorrowDeviation: 0,
		Label:             "transit saturn square natal moon",
	}
}

func TestServiceEvaluate(t *testing.T) {
	Convey("Given a service with default options", t, func() {
		svc := app.New()

		Convey("When evaluating a harmonious configuration set", func() {
			result, err := svc.Evaluate(context.Background(), testDate, types.Taurus, []model.Configuration{beneficTrine()})
			So(err, ShouldBeNil)

			Convey("Then the result carries the request identity", func() {
				So(result.RequestID, ShouldNotBeEmpty)
				So(result.Date.Equal(testDate), ShouldBeTrue)
				So(result.Ascendant, ShouldEqual, types.Taurus)
				So(result.ChartRuler, ShouldEqual, types.Venus)
			})

			Convey("Then the global score is intense and harmonious", func() {
				So(result.Global.Intensity, ShouldBeGreaterThan, 76)
				So(result.Global.Harmony, ShouldBeGreaterThan, 61)
				So(result.Global.HarmonyLabel, ShouldBeIn, "supportive", "flowing")
				So(result.Global.Contributions, ShouldHaveLength, 1)
			})

			Convey("Then one reading per registered meter is returned, in order", func() {
				defs := svc.Meters()
				So(result.Readings, ShouldHaveLength, len(defs))
				for i, def := range defs {
					So(result.Readings[i].MeterID, ShouldEqual, def.ID)
				}
			})
		})

		Convey("When evaluating a discordant configuration set", func() {
			result, err := svc.Evaluate(context.Background(), testDate, types.Taurus, []model.Configuration{maleficSquare()})
			So(err, ShouldBeNil)

			Convey("Then harmony lands below neutral", func() {
				So(result.Global.Harmony, ShouldBeLessThan, 50)
				So(scoring.HarmonyBand(result.Global.Harmony), ShouldNotEqual, scoring.High)
			})
		})

		Convey("When evaluating an empty configuration set", func() {
			result, err := svc.Evaluate(context.Background(), testDate, types.Taurus, nil)
			So(err, ShouldBeNil)

			Convey("Then the global score is neutral and every meter is quiet", func() {
				So(result.Global.Intensity, ShouldEqual, 0)
				So(result.Global.Harmony, ShouldEqual, 50)
				for _, reading := range result.Readings {
					So(reading.State, ShouldEqual, "Quiet")
				}
			})
		})

		Convey("When evaluating the same input twice", func() {
			configs := []model.Configuration{beneficTrine(), maleficSquare()}
			first, err := svc.Evaluate(context.Background(), testDate, types.Taurus, configs)
			So(err, ShouldBeNil)
			second, err := svc.Evaluate(context.Background(), testDate, types.Taurus, configs)
			So(err, ShouldBeNil)

			Convey("Then everything but the request id is identical", func() {
				So(second.RequestID, ShouldNotEqual, first.RequestID)
				second.RequestID = first.RequestID
				So(second, ShouldResemble, first)
			})
		})

		Convey("When a configuration violates its contract", func() {
			bad := beneficTrine()
			bad.NatalHouse = 13
			_, err := svc.Evaluate(context.Background(), testDate, types.Taurus, []model.Configuration{bad})

			Convey("Then the error names the offender and keeps the sentinel", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, weightage.ErrHouseOutOfRange), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "configuration 0")
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := svc.Evaluate(ctx, testDate, types.Taurus, []model.Configuration{beneficTrine()})
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a service with tuned options", t, func() {
		svc := app.New(
			app.WithWorkerCount(2),
			app.WithNormalizerKnees(10, 10),
			app.WithRulerBonus(0),
		)

		Convey("When evaluating a strong single configuration", func() {
			result, err := svc.Evaluate(context.Background(), testDate, types.Taurus, []model.Configuration{beneficTrine()})
			So(err, ShouldBeNil)

			Convey("Then the higher knee keeps the score in the linear region", func() {
				// Raw intensity stays well below 10, so intensity = raw/10*70.
				So(result.Global.RawIntensity, ShouldBeLessThan, 10)
				So(result.Global.Intensity, ShouldAlmostEqual, result.Global.RawIntensity/10*70, 1e-9)
			})
		})
	})
}
