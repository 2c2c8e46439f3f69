package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tinct-cli/tinct/cascade"
)

func TestStyle(t *testing.T) {
	Convey("Given resolved widget attributes", t, func() {
		Convey("Colors map onto foreground and background", func() {
			style := Style(cascade.Attributes{
				"color":      "#DFE6E9",
				"background": "#2D3436",
			})

			So(style.GetForeground(), ShouldNotBeNil)
			So(style.GetBackground(), ShouldNotBeNil)
		})

		Convey("Bold font weight is honored", func() {
			style := Style(cascade.Attributes{"font-weight": "bold"})
			So(style.GetBold(), ShouldBeTrue)
		})

		Convey("A border color with a radius draws a rounded border", func() {
			style := Style(cascade.Attributes{
				"border-color":  "#636E72",
				"border-radius": "8px",
			})

			So(style.GetBorderStyle(), ShouldResemble, lipgloss.RoundedBorder())
		})

		Convey("border-style none suppresses the border", func() {
			style := Style(cascade.Attributes{
				"border-color": "#636E72",
				"border-style": "none",
			})

			So(style.GetBorderTop(), ShouldBeFalse)
		})

		Convey("Pixel padding becomes cell padding", func() {
			h, v := paddingCells("16px")
			So(h, ShouldEqual, 2)
			So(v, ShouldEqual, 1)

			h, v = paddingCells("8px 16px")
			So(h, ShouldEqual, 1)
			So(v, ShouldEqual, 0)
		})

		Convey("Invalid values are ignored", func() {
			style := Style(cascade.Attributes{
				"color":   "not a color",
				"padding": "wide",
			})

			So(style.GetBold(), ShouldBeFalse)
		})
	})
}

func TestRender(t *testing.T) {
	Convey("Rendering wraps the text in the derived style", t, func() {
		out := Render(cascade.Attributes{}, "Start Recording")
		So(out, ShouldContainSubstring, "Start Recording")
	})
}
