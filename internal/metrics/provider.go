// Package metrics records business metrics through OpenTelemetry and exports them in the
// Prometheus format. A batch run has no scrape window, so the registry is pushed to a
// Pushgateway or written to a node exporter textfile when the run ends.
package metrics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Provider owns the meter provider and the private Prometheus registry it exports to.
type Provider struct {
	meterProvider *metric.MeterProvider
	registry      *prometheus.Registry
	lastRun       prometheus.Gauge
}

// NewProvider creates a Provider. namespace prefixes every metric name (e.g., "datamask").
func NewProvider(namespace string) (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	// Pushed metrics outlive the process; the timestamp tells stale pushes apart.
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(namespace, "", "last_run_timestamp_seconds"),
		Help: "Unix time at which the last run finished.",
	})
	if err := registry.Register(lastRun); err != nil {
		return nil, fmt.Errorf("failed to register last run gauge: %w", err)
	}

	return &Provider{
		meterProvider: metric.NewMeterProvider(metric.WithReader(exporter)),
		registry:      registry,
		lastRun:       lastRun,
	}, nil
}

// MeterProvider returns the meter provider business metrics are created from.
func (p *Provider) MeterProvider() *metric.MeterProvider {
	return p.meterProvider
}

// MarkRunFinished sets the last run timestamp to t.
func (p *Provider) MarkRunFinished(t time.Time) {
	p.lastRun.Set(float64(t.Unix()))
}

// Push replaces the metrics stored by the Pushgateway at url for job and grouping.
// Grouping labels (e.g., instance) keep concurrent hosts from overwriting each other.
func (p *Provider) Push(ctx context.Context, url, job string, grouping map[string]string) error {
	pusher := push.New(url, job).Gatherer(p.registry)

	names := make([]string, 0, len(grouping))
	for name := range grouping {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		pusher = pusher.Grouping(name, grouping[name])
	}

	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}
	return nil
}

// WriteTextfile writes the registry to path in the Prometheus text format.
// The file is replaced atomically, as the node exporter textfile collector expects.
func (p *Provider) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

// Shutdown stops the meter provider. Metrics are no longer collected afterwards.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
