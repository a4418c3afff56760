package calculator

import (
	"fmt"

	"cutdata/internal/process"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	calcCounter    metric.Int64Counter
	calcHistogram  metric.Float64Histogram
	errorCounter   metric.Int64Counter
	warningCounter metric.Int64Counter
	cappedCounter  metric.Int64Counter
	spindleGauge   metric.Float64Gauge
)

// InitMetrics registers the OTel instruments of the cutting data endpoints.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("cutdata")

	var err error

	calcCounter, err = meter.Int64Counter("cutdata.calculations.total",
		metric.WithDescription("Total number of cutting data calculations"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculation counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("cutdata.calculation.duration",
		metric.WithDescription("Duration of cutting data calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("cutdata.errors.total",
		metric.WithDescription("Total number of rejected or failed requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	warningCounter, err = meter.Int64Counter("cutdata.warnings.total",
		metric.WithDescription("Advisory warnings attached to results, by code"),
		metric.WithUnit("{warning}"),
	)
	if err != nil {
		return fmt.Errorf("creating warning counter: %w", err)
	}

	cappedCounter, err = meter.Int64Counter("cutdata.spindle.capped.total",
		metric.WithDescription("Calculations whose spindle speed hit the machine limit"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating capped counter: %w", err)
	}

	spindleGauge, err = meter.Float64Gauge("cutdata.last_spindle_speed",
		metric.WithDescription("Spindle speed of the last calculation"),
		metric.WithUnit("{rpm}"),
	)
	if err != nil {
		return fmt.Errorf("creating spindle gauge: %w", err)
	}

	return nil
}

// CatalogCollector exposes the number of materials in every catalog on the
// Prometheus endpoint.
func CatalogCollector() prometheus.Collector {
	g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cutdata_catalog_materials",
		Help: "Number of materials per calculator catalog.",
	}, []string{"process", "variant"})

	for _, grp := range process.Groups() {
		g.WithLabelValues(string(grp.Process), grp.Variant).Set(float64(len(grp.Materials)))
	}
	return g
}
