// Package tracing wires OpenTelemetry into identifier generation. Spans are
// no-ops until Init or InitWithExporter installs a tracer provider.
package tracing
