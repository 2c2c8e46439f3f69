package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackendSwap(t *testing.T) {
	Convey("Given the virtualized filesystem", t, func() {
		SetMemMapFs()
		defer SetOsFs()

		Convey("Writes against the in-memory backend should not touch the OS", func() {
			err := API().WriteFile("/tinct/test.txt", []byte("swatch"), 0644)
			So(err, ShouldBeNil)

			data, err := API().ReadFile("/tinct/test.txt")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "swatch")
		})

		Convey("The gache adapter should route through the same backend", func() {
			So(GacheFs{}.MkdirAll("/tinct/cache", 0755), ShouldBeNil)

			exists, err := API().DirExists("/tinct/cache")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}
