package uuidgen

import (
	"io"
	"log"

	"github.com/viant/uuidgen/random"
	"github.com/viant/uuidgen/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option configures a Service.
type Option func(s *Service)

// WithMode sets the random source selection mode.
func WithMode(mode random.Mode) Option {
	return func(s *Service) {
		s.mode = mode
	}
}

// WithSources replaces the preferred (host) and fallback (runtime) sources.
// A nil source keeps the default.
func WithSources(preferred, fallback random.Source) Option {
	return func(s *Service) {
		if preferred != nil {
			s.preferred = preferred
		}
		if fallback != nil {
			s.fallback = fallback
		}
	}
}

// WithUpperCase renders identifiers in upper case.
func WithUpperCase(upper bool) Option {
	return func(s *Service) {
		s.upperCase = upper
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise spans are written to the supplied file path. The first
// successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		if err := tracing.Init(serviceName, serviceVersion, outputFile); err != nil {
			log.Printf("uuidgen: failed to initialise tracing: %v", err)
		}
	}
}

// WithTracingWriter configures stdout-format tracing written to w.
func WithTracingWriter(serviceName, serviceVersion string, w io.Writer) Option {
	return func(s *Service) {
		if err := tracing.InitWithWriter(serviceName, serviceVersion, w); err != nil {
			log.Printf("uuidgen: failed to initialise tracing: %v", err)
		}
	}
}

// WithTracingExporter configures OpenTelemetry tracing with a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		if err := tracing.InitWithExporter(serviceName, serviceVersion, exporter); err != nil {
			log.Printf("uuidgen: failed to initialise tracing: %v", err)
		}
	}
}
