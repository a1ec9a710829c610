package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stax-cli/stax/filesystem"
	"github.com/stax-cli/stax/key"
)

func TestSetup(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("play.transcript_size"), ShouldEqual, "play_transcript_size")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		f := Default[key.EvalFormat]

		Convey("Env should carry the application prefix", func() {
			So(f.Env(), ShouldEqual, "STAX_EVAL_FORMAT")
		})

		Convey("Pretty should mention key and description", func() {
			So(f.Pretty(), ShouldContainSubstring, key.EvalFormat)
		})
	})
}
