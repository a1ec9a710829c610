package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stax-cli/stax/filesystem"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "check", "checks"), ShouldEqual, "1 check")
		So(Quantify(2, "check", "checks"), ShouldEqual, "2 checks")
		So(Quantify(0, "check", "checks"), ShouldEqual, "0 checks")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	Convey("Delete", t, func() {
		Convey("Should remove a file", func() {
			So(filesystem.API().WriteFile("/tmp-file", []byte("x"), 0o644), ShouldBeNil)
			So(Delete("/tmp-file"), ShouldBeNil)

			exists, err := filesystem.API().Exists("/tmp-file")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
		Convey("Should remove a directory recursively", func() {
			So(filesystem.API().MkdirAll("/tmp-dir/sub", 0o755), ShouldBeNil)
			So(Delete("/tmp-dir"), ShouldBeNil)

			exists, err := filesystem.API().DirExists("/tmp-dir")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
		Convey("Should fail for a missing path", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
