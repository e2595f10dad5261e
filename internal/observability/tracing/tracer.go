// Package tracing exposes the tracer used across the collector. Spans are
// no-ops unless the host process installs an SDK trace provider.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("cryptonews-collector")

// Tracer returns the collector's tracer.
func Tracer() trace.Tracer {
	return tracer
}
