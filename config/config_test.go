package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/key"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("The default theme should be the dark built-in", func() {
			_ = Setup()
			So(viper.GetString(key.ThemeDefault), ShouldEqual, "dark")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace(key.ContrastMinimumRatio), ShouldEqual, "contrast_minimum_ratio")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field metadata", t, func() {
		field := Default[key.ThemeDefault]

		Convey("Env names carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "TINCT_THEME_DEFAULT")
		})

		Convey("Pretty output includes the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.ThemeDefault)
		})
	})
}
