// Package observability records domain metrics via OpenTelemetry.
package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records event-management metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordResolve records an identity resolution attempt.
	RecordResolve(ctx context.Context, err error)

	// RecordRegistration records an attendee registration attempt.
	RecordRegistration(ctx context.Context, err error)

	// RecordInsightQuery records an insight aggregation with its duration.
	RecordInsightQuery(ctx context.Context, duration time.Duration, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	resolves       metric.Int64Counter
	registrations  metric.Int64Counter
	storeErrors    metric.Int64Counter
	insightQueries metric.Int64Counter
	insightLatency metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("eventmgmt")

	resolves, err := meter.Int64Counter("eventmgmt.user.resolves",
		metric.WithDescription("Number of identity resolution attempts"),
	)
	if err != nil {
		return nil, err
	}

	registrations, err := meter.Int64Counter("eventmgmt.attendee.registrations",
		metric.WithDescription("Number of attendee registration attempts"),
	)
	if err != nil {
		return nil, err
	}

	storeErrors, err := meter.Int64Counter("eventmgmt.store.errors",
		metric.WithDescription("Number of failed store operations"),
	)
	if err != nil {
		return nil, err
	}

	insightQueries, err := meter.Int64Counter("eventmgmt.insights.queries",
		metric.WithDescription("Number of insight aggregation queries"),
	)
	if err != nil {
		return nil, err
	}

	insightLatency, err := meter.Float64Histogram("eventmgmt.insights.latency_ms",
		metric.WithDescription("Insight aggregation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		resolves:       resolves,
		registrations:  registrations,
		storeErrors:    storeErrors,
		insightQueries: insightQueries,
		insightLatency: insightLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider; configure the
// provider before calling this function.
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordResolve records an identity resolution attempt.
func (m *otelMetrics) RecordResolve(ctx context.Context, err error) {
	m.resolves.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", err == nil)))
	if err != nil {
		m.storeErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("op", "resolve_user")))
	}
}

// RecordRegistration records an attendee registration attempt.
func (m *otelMetrics) RecordRegistration(ctx context.Context, err error) {
	m.registrations.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", err == nil)))
	if err != nil {
		m.storeErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("op", "register_attendee")))
	}
}

// RecordInsightQuery records an insight aggregation.
func (m *otelMetrics) RecordInsightQuery(ctx context.Context, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.Bool("success", err == nil))
	m.insightQueries.Add(ctx, 1, attrs)
	m.insightLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		m.storeErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("op", "event_insights")))
	}
}
