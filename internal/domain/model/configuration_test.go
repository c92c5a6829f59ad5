package model_test

import (
	"testing"

	"github.com/okian/astroclimate/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInAspect(t *testing.T) {
	Convey("Given a configuration with an 8-degree max orb", t, func() {
		cfg := model.Configuration{MaxOrb: 8}

		Convey("Then deviations inside the orb are in aspect, sign ignored", func() {
			cfg.OrbDeviation = 3
			So(cfg.InAspect(), ShouldBeTrue)
			cfg.OrbDeviation = -3
			So(cfg.InAspect(), ShouldBeTrue)
		})

		Convey("Then the boundary itself is still in aspect", func() {
			cfg.OrbDeviation = 8
			So(cfg.InAspect(), ShouldBeTrue)
		})

		Convey("Then deviations beyond the orb are not", func() {
			cfg.OrbDeviation = 8.01
			So(cfg.InAspect(), ShouldBeFalse)
		})
	})

	Convey("Given a configuration with a non-positive max orb", t, func() {
		cfg := model.Configuration{MaxOrb: 0, OrbDeviation: 0}

		Convey("Then nothing is in aspect", func() {
			So(cfg.InAspect(), ShouldBeFalse)
		})
	})
}
