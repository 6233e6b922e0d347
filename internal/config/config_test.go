package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/okian/scoutboard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.PlayersPath, convey.ShouldEqual, "data/players.csv")
			convey.So(cfg.ReportsPath, convey.ShouldEqual, "data/reports.csv")
			convey.So(cfg.ShortlistPath, convey.ShouldEqual, "data/shortlist.csv")
			convey.So(cfg.MaxCards, convey.ShouldEqual, 0)
			convey.So(cfg.MetricsEnabled, convey.ShouldBeTrue)
			convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "scoutboard")
			convey.So(cfg.MetricsSubsystem, convey.ShouldEqual, "dashboard")
			convey.So(cfg.MetricsRefreshInterval, convey.ShouldEqual, 10*time.Second)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
