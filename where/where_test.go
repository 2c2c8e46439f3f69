package where

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tinct-cli/tinct/constant"
)

func TestConfig(t *testing.T) {
	Convey("Given a custom config path override", t, func() {
		custom := filepath.Join(os.TempDir(), "tinct-test-config")
		So(os.Setenv(EnvConfigPath, custom), ShouldBeNil)
		defer func() { _ = os.Unsetenv(EnvConfigPath) }()

		Convey("Config should resolve to the override", func() {
			So(Config(), ShouldEqual, custom)
		})

		Convey("Themes should nest under the override", func() {
			So(Themes(), ShouldEqual, filepath.Join(custom, "themes"))
		})

		Convey("Logs should nest under the override", func() {
			So(Logs(), ShouldEqual, filepath.Join(custom, "logs"))
		})
	})

	Convey("Without an override, paths should carry the application identifier", t, func() {
		_ = os.Unsetenv(EnvConfigPath)

		So(strings.Contains(Config(), constant.Tinct), ShouldBeTrue)
		So(strings.Contains(Cache(), constant.Tinct), ShouldBeTrue)
		So(Queries(), ShouldEqual, filepath.Join(Cache(), "queries.json"))
	})
}
