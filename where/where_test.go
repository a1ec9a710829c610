package where

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stax-cli/stax/filesystem"
)

func TestWhere(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	Convey("Config", t, func() {
		Convey("Should honor the environment override", func() {
			custom := filepath.Join(os.TempDir(), "stax-test-config")
			So(os.Setenv(EnvConfigPath, custom), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, custom)

			exists, err := filesystem.API().DirExists(custom)
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})

	Convey("Logs", t, func() {
		Convey("Should live under the config directory", func() {
			So(os.Setenv(EnvConfigPath, filepath.Join(os.TempDir(), "stax-test-config")), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Logs(), ShouldEqual, filepath.Join(Config(), "logs"))
		})
	})

	Convey("VersionCache", t, func() {
		Convey("Should live under the cache directory", func() {
			So(VersionCache(), ShouldEqual, filepath.Join(Cache(), "version.json"))
		})
	})
}
