package scoring_test

import (
	"errors"
	"testing"

	"github.com/okian/astroclimate/internal/domain/model"
	"github.com/okian/astroclimate/internal/domain/scoring"
	"github.com/okian/astroclimate/internal/domain/transit"
	"github.com/okian/astroclimate/internal/domain/types"
	"github.com/okian/astroclimate/internal/domain/weightage"
	. "github.com/smartystreets/goconvey/convey"
)

// beneficTrine is an exact trine from transiting Jupiter to a dignified
// natal Venus in an angular house, with Venus as chart ruler.
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

// maleficSquare is an exact square from transiting Saturn to a natal Moon
// in detriment.
func maleficSquare() model.Configuration {
	return model.Configuration{
		NatalBody:         types.Moon,
		NatalSign:         types.Capricorn,
		NatalHouse:        8,
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

func TestAggregate(t *testing.T) {
	Convey("Given a contribution aggregator", t, func() {
		agg := scoring.NewAggregator()
		ruler, _ := weightage.ChartRuler(types.Taurus)

		Convey("When the configuration set is empty", func() {
			score, err := agg.Aggregate(nil, ruler)
			So(err, ShouldBeNil)

			Convey("Then the result is the defined quiet state", func() {
				So(score.RawIntensity, ShouldEqual, 0)
				So(score.RawHarmony, ShouldEqual, 0)
				So(score.Contributions, ShouldBeEmpty)
			})
		})

		Convey("When scoring a single exact benefic trine", func() {
			score, err := agg.Aggregate([]model.Configuration{beneficTrine()}, ruler)
			So(err, ShouldBeNil)

			Convey("Then the contribution products match W, P, Q", func() {
				So(score.Contributions, ShouldHaveLength, 1)
				c := score.Contributions[0]
				// W = 3.0 base + 1.0 domicile + 1.5 angular + 1.0 ruler.
				So(c.Weight, ShouldAlmostEqual, 6.5)
				// P = 0.7 trine base * 1.0 orb factor * 1.30 peak modifier.
				So(c.Power, ShouldAlmostEqual, 0.91)
				So(c.Quality, ShouldAlmostEqual, 0.8)
				So(c.Intensity, ShouldAlmostEqual, c.Weight*c.Power)
				So(c.Harmony, ShouldAlmostEqual, c.Weight*c.Power*c.Quality)
			})

			Convey("Then the raw harmony is strongly positive", func() {
				So(score.RawHarmony, ShouldBeGreaterThan, 4)
				So(score.RawIntensity, ShouldAlmostEqual, score.Contributions[0].Intensity)
			})
		})

		Convey("When scoring an exact malefic square in detriment", func() {
			score, err := agg.Aggregate([]model.Configuration{maleficSquare()}, ruler)
			So(err, ShouldBeNil)

			Convey("Then intensity is high while harmony is strongly negative", func() {
				So(score.RawIntensity, ShouldBeGreaterThan, 4)
				So(score.RawHarmony, ShouldBeLessThan, -3)
			})
		})

		Convey("When a record's orb exceeds its max orb", func() {
			wide := beneficTrine()
			wide.OrbDeviation = 7.5
			wide.TodayDeviation = 7.5
			wide.TomorrowDeviation = 7.5

			score, err := agg.Aggregate([]model.Configuration{wide}, ruler)
			So(err, ShouldBeNil)

			Convey("Then it contributes exactly zero instead of failing", func() {
				So(score.RawIntensity, ShouldEqual, 0)
				So(score.RawHarmony, ShouldEqual, 0)
				So(score.Contributions, ShouldHaveLength, 1)
				So(score.Contributions[0].Intensity, ShouldEqual, 0)
			})
		})

		Convey("When the input order changes", func() {
			forward := []model.Configuration{beneficTrine(), maleficSquare()}
			backward := []model.Configuration{maleficSquare(), beneficTrine()}

			a, err := agg.Aggregate(forward, ruler)
			So(err, ShouldBeNil)
			b, err := agg.Aggregate(backward, ruler)
			So(err, ShouldBeNil)

			Convey("Then the raw totals are identical", func() {
				So(a.RawIntensity, ShouldAlmostEqual, b.RawIntensity)
				So(a.RawHarmony, ShouldAlmostEqual, b.RawHarmony)
			})

			Convey("And contributions keep their respective input order", func() {
				So(a.Contributions[0].Label, ShouldEqual, "transit jupiter trine natal venus")
				So(b.Contributions[0].Label, ShouldEqual, "transit saturn square natal moon")
			})
		})

		Convey("When a record violates the input contract", func() {
			bad := beneficTrine()
			bad.NatalHouse = 13

			_, err := agg.Aggregate([]model.Configuration{beneficTrine(), bad}, ruler)

			Convey("Then the error names the offending record", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, weightage.ErrHouseOutOfRange), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "configuration 1")
			})
		})

		Convey("When a record carries an unknown transiting body", func() {
			bad := beneficTrine()
			bad.TransitBody = types.Body("chiron")

			_, err := agg.Aggregate([]model.Configuration{bad}, ruler)

			Convey("Then it fails fast instead of scoring like a known body", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, transit.ErrUnknownBody), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "chiron")
			})
		})

		Convey("When a record carries an unknown natal body", func() {
			bad := beneficTrine()
			bad.NatalBody = types.Body("vesta")

			_, err := agg.Aggregate([]model.Configuration{bad}, ruler)

			Convey("Then it fails fast with the weightage sentinel", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, weightage.ErrUnknownBody), ShouldBeTrue)
			})
		})
	})
}
