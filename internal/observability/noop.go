package observability

import (
	"context"
	"time"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordResolve does nothing.
func (NoopMetrics) RecordResolve(_ context.Context, _ error) {}

// RecordRegistration does nothing.
func (NoopMetrics) RecordRegistration(_ context.Context, _ error) {}

// RecordInsightQuery does nothing.
func (NoopMetrics) RecordInsightQuery(_ context.Context, _ time.Duration, _ error) {}
