package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stax-cli/stax/key"
)

func TestGet(t *testing.T) {
	Convey("Get", t, func() {
		Convey("Should honor the configured variant", func() {
			viper.Set(key.IconsVariant, "plain")
			defer viper.Set(key.IconsVariant, nil)

			So(Get(Success), ShouldEqual, "+")
			So(Get(Fail), ShouldEqual, "x")
		})
		Convey("Should fall back to plain for an unknown variant", func() {
			viper.Set(key.IconsVariant, "banana")
			defer viper.Set(key.IconsVariant, nil)

			So(Get(Success), ShouldEqual, "+")
		})
	})
}

func TestAvailableVariants(t *testing.T) {
	Convey("AvailableVariants", t, func() {
		So(AvailableVariants(), ShouldContain, "emoji")
		So(AvailableVariants(), ShouldHaveLength, 5)
	})
}
