package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given textual color values", t, func() {
		Convey("Hex values should round-trip", func() {
			v, err := Parse("#6C5CE7")
			So(err, ShouldBeNil)
			So(v.Hex(), ShouldEqual, "#6C5CE7")
			So(v.Alpha, ShouldEqual, 1)
		})

		Convey("Shorthand hex should expand", func() {
			v, err := Parse("#fff")
			So(err, ShouldBeNil)
			So(v.Hex(), ShouldEqual, "#FFFFFF")
		})

		Convey("rgba() should carry alpha", func() {
			v, err := Parse("rgba(108, 92, 231, 0.1)")
			So(err, ShouldBeNil)
			So(v.Alpha, ShouldAlmostEqual, 0.1)
			So(v.Hex(), ShouldEqual, "#6C5CE7")
		})

		Convey("Keywords should resolve", func() {
			v, err := Parse("white")
			So(err, ShouldBeNil)
			So(v.Hex(), ShouldEqual, "#FFFFFF")

			v, err = Parse("transparent")
			So(err, ShouldBeNil)
			So(v.Alpha, ShouldEqual, 0)
		})

		Convey("Out-of-range components should fail", func() {
			_, err := Parse("rgba(300, 0, 0, 1)")
			So(err, ShouldNotBeNil)
		})

		Convey("Garbage should fail", func() {
			_, err := Parse("qlineargradient(x1:0)")
			So(err, ShouldNotBeNil)
			So(IsColor("not-a-color"), ShouldBeFalse)
		})
	})
}

func TestContrast(t *testing.T) {
	Convey("Given the WCAG contrast model", t, func() {
		white, _ := Parse("#FFFFFF")
		black, _ := Parse("#000000")

		Convey("Black on white should be maximal", func() {
			So(ContrastRatio(black, white), ShouldAlmostEqual, 21, 0.01)
		})

		Convey("The ratio should be symmetric", func() {
			a, _ := Parse("#6C5CE7")
			b, _ := Parse("#2D3436")
			So(ContrastRatio(a, b), ShouldAlmostEqual, ContrastRatio(b, a))
		})

		Convey("Identical colors should have ratio 1", func() {
			v, _ := Parse("#00B894")
			So(ContrastRatio(v, v), ShouldAlmostEqual, 1)
		})

		Convey("The original light-on-dark text pairing should pass AA", func() {
			text, _ := Parse("#DFE6E9")
			bg, _ := Parse("#2D3436")
			So(ContrastRatio(text, bg), ShouldBeGreaterThan, 4.5)
		})
	})
}
