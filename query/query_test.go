package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.ResolveShowSuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given selector history", t, func() {
		s1 := "Label#fileCounterLabel"
		s2 := "Button#startButton:hover"

		Convey("When remembering selectors", func() {
			err := Remember(s1, 1)
			So(err, ShouldBeNil)
			err = Remember(s2, 10) // Higher weight
			So(err, ShouldBeNil)

			Convey("Then suggestions should be sorted by rank", func() {
				// Clear memory cache to force read from file
				suggestionCache = make(map[string][]*selectorRecord)

				s := SuggestMany("button")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 1)
				So(s[0], ShouldEqual, s2)
			})

			Convey("It preserves selector casing", func() {
				So(sanitize("  Button#startButton  "), ShouldEqual, "Button#startButton")
			})
		})

		Convey("Suggestions can be disabled", func() {
			viper.Set(key.ResolveShowSuggestions, false)
			defer viper.Set(key.ResolveShowSuggestions, true)

			So(SuggestMany("button"), ShouldBeEmpty)
		})
	})
}
