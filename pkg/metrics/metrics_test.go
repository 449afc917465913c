package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			customLabelsOpt := WithCustomLabels(map[string]string{"env": "test"})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(customLabelsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithCustomLabels(map[string]string{"env": "test", "version": "1.0"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording engine metrics", func() {
			Convey("Then it should record modifier computations", func() {
				So(func() {
					RecordModifierComputation()
					RecordModifierComputation()
					RecordModifierLatency(1.5)
				}, ShouldNotPanic)
			})

			Convey("And it should record neutral fallbacks per component", func() {
				So(func() {
					RecordNeutralFallback("modifiers")
					RecordNeutralFallback("band")
					RecordNeutralFallback("genre")
				}, ShouldNotPanic)
			})

			Convey("And it should record band aggregations", func() {
				So(func() {
					RecordBandAggregation()
					RecordBandAggregationTime(12.0)
					RecordTouringMemberRoll()
				}, ShouldNotPanic)
			})

			Convey("And it should record bonus calculations by kind", func() {
				So(func() {
					RecordBonusCalculation("genre")
					RecordBonusCalculation("recording")
					RecordBonusCalculation("rehearsal")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording reference and store metrics", func() {
			Convey("Then it should update catalog gauges", func() {
				So(func() {
					UpdateSkillDefinitions(70)
					UpdateSkillRelationships(53)
				}, ShouldNotPanic)
			})

			Convey("And it should record store operation latency", func() {
				So(func() {
					RecordStoreOpLatency("progress", "levels", 0.2)
					RecordStoreOpLatency("roster", "members", 0.4)
				}, ShouldNotPanic)
			})

			Convey("And it should update population gauges", func() {
				So(func() {
					UpdateProfilesTotal(3)
					UpdateBandsTotal(1)
					UpdateWorkerCount(8)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP and error metrics", func() {
			Convey("Then it should record HTTP requests", func() {
				So(func() {
					RecordHTTPRequest("modifiers", "GET", "200")
					RecordHTTPRequestDuration("modifiers", "GET", "200", 3.5)
				}, ShouldNotPanic)
			})

			Convey("And it should record errors", func() {
				So(func() {
					RecordErrorByComponent("band", "store_error")
					RecordErrorByEndpoint("bands", "GET", "not_found")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording system metrics", func() {
			So(func() {
				UpdateSystemMemoryUsage(1024 * 1024)
				UpdateSystemGoroutineCount(42)
			}, ShouldNotPanic)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the custom registry", t, func() {
		registry := GetRegistry()

		Convey("Then it should be usable for gathering", func() {
			So(registry, ShouldNotBeNil)

			families, err := registry.Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
