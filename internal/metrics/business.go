package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records what the application did, labelled by domain ("keys",
// "pipeline") and operation ("key_create", "run", "restore").
type BusinessMetrics interface {
	// RecordOperation counts one operation. Status is "success", "warning" or "error".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration observes how long an operation took, in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordCells adds count dataset cells with the given outcome ("scanned", "matched",
	// "transformed", "failed"). Non-positive counts are ignored.
	RecordCells(ctx context.Context, domain, operation, outcome string, count int64)
}

type businessMetrics struct {
	operations metric.Int64Counter
	durations  metric.Float64Histogram
	cells      metric.Int64Counter
}

// durationBuckets covers a single key operation (milliseconds) up to a large file (minutes).
var durationBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300}

// NewBusinessMetrics creates the business instruments on a meter named after namespace.
// namespace prefixes every metric name (e.g., "datamask").
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operations, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of business operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durations, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of business operations in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	cells, err := meter.Int64Counter(
		fmt.Sprintf("%s_cells_total", namespace),
		metric.WithDescription("Total number of dataset cells by processing outcome"),
		metric.WithUnit("{cell}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cell counter: %w", err)
	}

	return &businessMetrics{operations: operations, durations: durations, cells: cells}, nil
}

func labels(domain, operation, key, value string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String(key, value),
	)
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, labels(domain, operation, "status", status))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durations.Record(ctx, duration.Seconds(), labels(domain, operation, "status", status))
}

func (b *businessMetrics) RecordCells(ctx context.Context, domain, operation, outcome string, count int64) {
	if count <= 0 {
		return
	}
	b.cells.Add(ctx, count, labels(domain, operation, "outcome", outcome))
}

// NoOpBusinessMetrics discards everything. Used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

func (n *NoOpBusinessMetrics) RecordCells(ctx context.Context, domain, operation, outcome string, count int64) {
}
