package logger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/astroclimate/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFields(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		Convey("Then each carries its key and value", func() {
			So(logger.String("k", "v"), ShouldResemble, logger.Field{Key: "k", Value: "v"})
			So(logger.Int("n", 7), ShouldResemble, logger.Field{Key: "n", Value: 7})
			So(logger.Float64("f", 1.5), ShouldResemble, logger.Field{Key: "f", Value: 1.5})
			So(logger.Bool("b", true), ShouldResemble, logger.Field{Key: "b", Value: true})
			So(logger.Duration("d", time.Second), ShouldResemble, logger.Field{Key: "d", Value: time.Second})
		})

		Convey("Then the error field uses the fixed key", func() {
			err := errors.New("boom")
			So(logger.Error(err).Key, ShouldEqual, "error")
			So(logger.Error(err).Value, ShouldEqual, err)
		})
	})
}

func TestGlobalLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then Get returns a usable logger", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)
			So(func() {
				l.Info(context.Background(), "hello", logger.Int("n", 1))
			}, ShouldNotPanic)
		})

		Convey("Then Named yields an independent child", func() {
			child := logger.Named("engine")
			So(child, ShouldNotBeNil)
			So(child, ShouldNotEqual, logger.Get())
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given the level parser", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then known names parse, case-insensitively", func() {
			for _, level := range []string{"debug", "info", "WARN", "warning", "Error", ""} {
				So(logger.SetLevelString(level), ShouldBeNil)
			}
		})

		Convey("Then unknown names are rejected", func() {
			So(logger.SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}
