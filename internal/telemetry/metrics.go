package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ToolMetrics instruments tool invocations: a counter partitioned by
// tool name and error state, and a duration histogram. With OTEL
// disabled the global meter is a no-op, so recording is always safe.
type ToolMetrics struct {
	calls    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewToolMetrics registers the tool invocation instruments.
func NewToolMetrics() (*ToolMetrics, error) {
	meter := Meter("github.com/ashita-ai/soroban")

	calls, err := meter.Int64Counter("soroban.tool.calls",
		metric.WithDescription("Number of tool invocations"),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create call counter: %w", err)
	}

	duration, err := meter.Float64Histogram("soroban.tool.duration",
		metric.WithDescription("Tool invocation duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create duration histogram: %w", err)
	}

	return &ToolMetrics{calls: calls, duration: duration}, nil
}

// Record notes one completed tool invocation.
func (m *ToolMetrics) Record(ctx context.Context, tool string, elapsed time.Duration, isError bool) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.Bool("error", isError),
	)
	m.calls.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(elapsed.Milliseconds()), attrs)
}
