package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating a manager with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_ns"),
				WithSubsystem("test_sub"),
				WithMetricPrefix("pfx"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithRefreshInterval(5*time.Second),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the options should be applied", func() {
				So(manager.RefreshInterval(), ShouldEqual, 5*time.Second)
				manager.RecordRender(2, 3, 1)

				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make(map[string]bool)
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["test_ns_test_sub_pfx_renders_total"], ShouldBeTrue)
			})
		})

		Convey("When zero values are passed", func() {
			manager := NewManager(
				WithNamespace(""),
				WithRefreshInterval(0),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then defaults should be kept", func() {
				So(manager.namespace, ShouldEqual, "scoutboard")
				So(manager.RefreshInterval(), ShouldEqual, defaultRefreshInterval)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		manager := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("When recording render passes", func() {
			manager.RecordRender(1.5, 10, 2)
			manager.RecordRender(2.5, 5, 0)

			Convey("Then counters should accumulate", func() {
				So(testutil.ToFloat64(manager.renders), ShouldEqual, 2)
				So(testutil.ToFloat64(manager.cardsFormatted), ShouldEqual, 15)
				So(testutil.ToFloat64(manager.invalidRecords), ShouldEqual, 2)
			})
		})

		Convey("When recording loads", func() {
			manager.RecordLoad(3, nil)
			manager.RecordLoad(4, errors.New("boom"))

			Convey("Then results should be split by label", func() {
				So(testutil.ToFloat64(manager.loads.WithLabelValues("success")), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.loads.WithLabelValues("error")), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.lastLoadUnix), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When updating dataset gauges", func() {
			manager.UpdateRecordsLoaded(TablePlayers, 12)
			manager.UpdateRecordsLoaded(TablePlayers, 8)
			manager.UpdateDanglingReferences(TableReports, 3)

			Convey("Then gauges should hold the last value", func() {
				So(testutil.ToFloat64(manager.recordsLoaded.WithLabelValues(TablePlayers)), ShouldEqual, 8)
				So(testutil.ToFloat64(manager.danglingReferences.WithLabelValues(TableReports)), ShouldEqual, 3)
			})
		})

		Convey("When recording HTTP requests and errors", func() {
			manager.RecordHTTPRequest("summary", "GET", "200", 1)
			manager.RecordError("cards", "GET", "not_found", "medium")

			Convey("Then they should be counted", func() {
				So(testutil.ToFloat64(manager.httpRequests.WithLabelValues("summary", "GET", "200")), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.errorRateByType.WithLabelValues("not_found", "medium")), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a disabled manager", t, func() {
		manager := NewManager(WithMetricsEnabled(false), WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("Then recording should be a no-op", func() {
			manager.RecordRender(1, 1, 1)
			manager.UpdateSystem(100, 4, 0.5)
			So(testutil.ToFloat64(manager.renders), ShouldEqual, 0)
			So(testutil.ToFloat64(manager.systemGoroutineCount), ShouldEqual, 0)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then package helpers should not panic", func() {
			So(func() {
				RecordRender(1, 2, 0)
				RecordLoad(1, nil)
				UpdateRecordsLoaded(TableShortlist, 1)
				UpdateDanglingReferences(TableShortlist, 0)
				RecordHTTPRequest("healthz", "GET", "200", 0.1)
				RecordError("healthz", "GET", "server_error", "high")
				UpdateSystem(1024, 10, 0.2)
			}, ShouldNotPanic)
		})

		Convey("And the registry should expose them", func() {
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
			So(RefreshInterval(), ShouldEqual, defaultRefreshInterval)
		})
	})
}

func TestConfigure(t *testing.T) {
	Convey("Given the global manager is reconfigured", t, func() {
		previous := GetRegistry()
		m := Configure(WithNamespace("scouting"), WithRefreshInterval(2*time.Second))
		Reset(func() { Configure() })

		Convey("Then the package helpers should use the new manager", func() {
			So(m, ShouldEqual, globalManager)
			So(RefreshInterval(), ShouldEqual, 2*time.Second)
			So(GetRegistry(), ShouldNotEqual, previous)

			RecordRender(1, 2, 0)
			n, err := testutil.GatherAndCount(GetRegistry(), "scouting_dashboard_renders_total")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)
		})

		Convey("Then a second Configure should not panic on duplicate registration", func() {
			So(func() { Configure(WithNamespace("scouting")) }, ShouldNotPanic)
		})
	})
}
