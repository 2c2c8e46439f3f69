package mini

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/theme"
)

func TestRun(t *testing.T) {
	Convey("The static gallery lists every widget class", t, func() {
		var buf bytes.Buffer

		err := Run(&Options{
			Out:    &buf,
			Theme:  theme.Dark,
			States: []cascade.State{cascade.StateDefault},
		})

		So(err, ShouldBeNil)

		out := buf.String()
		So(out, ShouldContainSubstring, "dark")
		So(out, ShouldContainSubstring, "Button")
		So(out, ShouldContainSubstring, "#startButton")
		So(out, ShouldContainSubstring, "ProgressBar")
	})
}
