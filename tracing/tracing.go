package tracing

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/viant/uuidgen"

// Span names and attribute keys recorded by uuidgen.
const (
	GenerateSpanName = "uuid.generate"
	ExportSpanName   = "uuid.export"

	SourceKey    = attribute.Key("uuid.source")
	ModeKey      = attribute.Key("uuid.mode")
	ExportURLKey = attribute.Key("uuid.export.url")
	CountKey     = attribute.Key("uuid.count")
)

type exporterFactory func() (sdktrace.SpanExporter, error)

// Init configures OpenTelemetry with the stdout exporter writing to outputFile, or to os.Stdout
// when outputFile is empty. Only the first call installs a provider; the file is not touched by
// later calls.
func Init(serviceName, serviceVersion, outputFile string) error {
	return installProvider(serviceName, serviceVersion, func() (sdktrace.SpanExporter, error) {
		var w io.Writer = os.Stdout
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return nil, err
			}
			w = f
		}
		return stdouttrace.New(stdouttrace.WithWriter(w))
	})
}

// InitWithWriter configures the stdout exporter writing to w.
func InitWithWriter(serviceName, serviceVersion string, w io.Writer) error {
	return installProvider(serviceName, serviceVersion, func() (sdktrace.SpanExporter, error) {
		return stdouttrace.New(stdouttrace.WithWriter(w))
	})
}

// InitWithExporter configures OpenTelemetry using the supplied SpanExporter (OTLP, Zipkin, ...).
// A nil exporter leaves tracing disabled.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return nil
	}
	return installProvider(serviceName, serviceVersion, func() (sdktrace.SpanExporter, error) {
		return exporter, nil
	})
}

var (
	providerOnce sync.Once
	providerErr  error
)

func installProvider(serviceName, serviceVersion string, newExporter exporterFactory) error {
	providerOnce.Do(func() {
		exporter, err := newExporter()
		if err != nil {
			providerErr = err
			return
		}
		res, err := resource.New(context.Background(),
			resource.WithAttributes(
				attribute.String("service.name", serviceName),
				attribute.String("service.version", serviceVersion),
			),
		)
		if err != nil {
			providerErr = err
			return
		}
		otel.SetTracerProvider(sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
			sdktrace.WithResource(res),
		))
	})
	return providerErr
}

// Span is a uuidgen operation in flight.
type Span struct {
	span trace.Span
}

// StartGenerateSpan starts the span covering a single identifier.
func StartGenerateSpan(ctx context.Context, mode string) (context.Context, *Span) {
	return start(ctx, GenerateSpanName, ModeKey.String(mode))
}

// StartExportSpan starts the span covering an export of count identifiers to URL.
func StartExportSpan(ctx context.Context, URL string, count int) (context.Context, *Span) {
	return start(ctx, ExportSpanName, ExportURLKey.String(URL), CountKey.Int(count))
}

func start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, *Span) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...))
	return ctx, &Span{span: span}
}

// RecordSource records the random source that produced the identifier bytes.
func (s *Span) RecordSource(name string) {
	if s == nil || name == "" {
		return
	}
	s.span.SetAttributes(SourceKey.String(name))
}

// End records err (or OK) and ends the span.
func (s *Span) End(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}
