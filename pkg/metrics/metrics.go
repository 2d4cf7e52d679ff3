// Package metrics sets up the OpenTelemetry meter provider exported through
// the Prometheus registry scraped at the server's metrics path.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides histogram buckets in seconds for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Namespace prefixes instrument names registered by this service.
const Namespace = "library"

// NewMeterProvider creates a meter provider whose readings are registered
// with registerer. A nil registerer uses prometheus.DefaultRegisterer.
func NewMeterProvider(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel prometheus exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exp),
		sdkmetric.WithView(sdkmetric.NewView(
			sdkmetric.Instrument{Kind: sdkmetric.InstrumentKindHistogram},
			sdkmetric.Stream{Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
				Boundaries: DefaultBuckets,
			}},
		)),
	), nil
}

// Meter returns the named meter of provider.
func Meter(provider metric.MeterProvider, name string) metric.Meter {
	return provider.Meter(name)
}
