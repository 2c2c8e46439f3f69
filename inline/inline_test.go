package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/theme"
)

func TestRun(t *testing.T) {
	Convey("Given the built-in dark theme", t, func() {
		var buf bytes.Buffer

		Convey("Resolving a pinned state emits a single resolution", func() {
			opts := &Options{
				Out:      &buf,
				Theme:    theme.Dark,
				Selector: cascade.Selector{Class: "Button", ID: "startButton", State: cascade.StateDefault},
				Json:     true,
			}

			So(Run(opts), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Theme, ShouldEqual, "dark")
			So(output.Selector, ShouldEqual, "Button#startButton:default")
			So(output.Result, ShouldHaveLength, 1)
			So(output.Result[0].Attributes["background"], ShouldEqual, "#00B894")
		})

		Convey("A state-agnostic selector resolves every concrete state", func() {
			opts := &Options{
				Out:      &buf,
				Theme:    theme.Dark,
				Selector: cascade.Selector{Class: "Button", State: cascade.StateAny},
				Json:     true,
			}

			So(Run(opts), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, len(cascade.States()))
		})

		Convey("A states filter narrows the output", func() {
			filter, err := ParseStatesFilter("hover,pressed")
			So(err, ShouldBeNil)

			opts := &Options{
				Out:      &buf,
				Theme:    theme.Dark,
				Selector: cascade.Selector{Class: "Button", State: cascade.StateAny},
				States:   filter,
				Json:     true,
			}

			So(Run(opts), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 2)
			So(output.Result[0].State, ShouldEqual, "hover")
		})

		Convey("Text output lists attributes under the selector", func() {
			opts := &Options{
				Out:      &buf,
				Theme:    theme.Dark,
				Selector: cascade.Selector{Class: "Tooltip", State: cascade.StateDefault},
			}

			So(Run(opts), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Tooltip:default")
			So(buf.String(), ShouldContainSubstring, "background:")
		})
	})
}

func TestParseStatesFilter(t *testing.T) {
	Convey("Parsing states filters", t, func() {
		Convey("all keeps everything", func() {
			filter, err := ParseStatesFilter("all")
			So(err, ShouldBeNil)
			So(filter(cascade.States()), ShouldHaveLength, len(cascade.States()))
		})

		Convey("default keeps only the default state", func() {
			filter, err := ParseStatesFilter("default")
			So(err, ShouldBeNil)
			So(filter(cascade.States()), ShouldResemble, []cascade.State{cascade.StateDefault})
		})

		Convey("Unknown state names are rejected", func() {
			_, err := ParseStatesFilter("hover,glowing")
			So(err, ShouldNotBeNil)
		})
	})
}
