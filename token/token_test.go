package token

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseValue(t *testing.T) {
	Convey("Given raw token values", t, func() {
		Convey("Hex colors should classify as KindColor", func() {
			v := ParseValue("#6C5CE7")
			So(v.Kind, ShouldEqual, KindColor)
			So(v.Color().IsPresent(), ShouldBeTrue)
			So(v.Color().MustGet().Hex(), ShouldEqual, "#6C5CE7")
		})

		Convey("rgba values should classify as KindColor", func() {
			v := ParseValue("rgba(108, 92, 231, 0.1)")
			So(v.Kind, ShouldEqual, KindColor)
		})

		Convey("Pixel dimensions should classify as KindMetric", func() {
			v := ParseValue("14px")
			So(v.Kind, ShouldEqual, KindMetric)
			So(v.Pixels().MustGet(), ShouldEqual, 14)
		})

		Convey("Font stacks should classify as KindText", func() {
			v := ParseValue("'Segoe UI', Arial, sans-serif")
			So(v.Kind, ShouldEqual, KindText)
			So(v.Color().IsAbsent(), ShouldBeTrue)
		})

		Convey("Scaling should multiply metric values and leave others alone", func() {
			So(ParseValue("10px").Scaled(1.5).Raw, ShouldEqual, "15px")
			So(ParseValue("10px").Scaled(1).Raw, ShouldEqual, "10px")
			So(ParseValue("#FFFFFF").Scaled(2).Raw, ShouldEqual, "#FFFFFF")
		})
	})
}

func TestPalette(t *testing.T) {
	Convey("Given a palette", t, func() {
		palette := NewPalette(map[string]string{
			"primary":      "#6C5CE7",
			"success":      "#00B894",
			"padding-s":    "6px",
			"font-primary": "monospace",
		})

		Convey("Resolve should return the exact configured value", func() {
			v, err := palette.Resolve("primary")
			So(err, ShouldBeNil)
			So(v.Raw, ShouldEqual, "#6C5CE7")

			// Pure lookup: a second call yields the identical result.
			again, err := palette.Resolve("primary")
			So(err, ShouldBeNil)
			So(again, ShouldResemble, v)
		})

		Convey("Undefined names should fail with UnknownTokenError", func() {
			_, err := palette.Resolve("tertiary")
			So(err, ShouldNotBeNil)

			var unknown *UnknownTokenError
			So(func() { unknown = err.(*UnknownTokenError) }, ShouldNotPanic)
			So(unknown.Name, ShouldEqual, "tertiary")
		})

		Convey("Names should be sorted and complete", func() {
			So(palette.Names(), ShouldResemble, []string{"font-primary", "padding-s", "primary", "success"})
			So(palette.Len(), ShouldEqual, 4)
		})
	})

	Convey("Token reference helpers", t, func() {
		So(IsRef("$primary"), ShouldBeTrue)
		So(IsRef("#6C5CE7"), ShouldBeFalse)
		So(RefName("$primary"), ShouldEqual, "primary")
		So(Ref("primary"), ShouldEqual, "$primary")
	})
}
