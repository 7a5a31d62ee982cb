package uuidgen

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/uuidgen/internal/idgen"
	"github.com/viant/uuidgen/random"
	"github.com/viant/uuidgen/tracing"
)

const (
	// Version is reported as the tracing service version by default.
	Version = "0.1.0"
	// MaxCount bounds the number of identifiers a single Generate or Export call produces.
	MaxCount = 1_000_000
)

// Service generates identifiers with a configured random source.
type Service struct {
	mode      random.Mode
	preferred random.Source
	fallback  random.Source
	upperCase bool
	selector  *random.Selector
	fs        afs.Service
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.selector = random.NewSelector(
		random.WithMode(s.mode),
		random.WithPreferred(s.preferred),
		random.WithFallback(s.fallback))
	if s.fs == nil {
		s.fs = afs.New()
	}
}

// Selector returns the random source selector.
func (s *Service) Selector() *random.Selector {
	return s.selector
}

// UUID returns a single version 4 UUID.
func (s *Service) UUID(ctx context.Context) (id string, err error) {
	_, span := tracing.StartGenerateSpan(ctx, s.selector.Mode().String())
	defer func() { span.End(err) }()
	id, source, err := newWith(s.selector)
	if source != nil {
		span.RecordSource(source.Name())
	}
	if err != nil {
		return "", err
	}
	if s.upperCase {
		id = strings.ToUpper(id)
	}
	return id, nil
}

// Generate returns count identifiers. It stops at the first failure or when
// ctx is done.
func (s *Service) Generate(ctx context.Context, count int) ([]string, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}
	ret := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		id, err := s.UUID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to generate uuid %d/%d: %w", i+1, count, err)
		}
		ret = append(ret, id)
	}
	return ret, nil
}

// Export generates count identifiers and uploads them, one per line, to URL.
func (s *Service) Export(ctx context.Context, URL string, count int) error {
	if URL == "" {
		return fmt.Errorf("export URL cannot be empty")
	}
	ctx, span := tracing.StartExportSpan(ctx, URL, count)
	ids, err := s.Generate(ctx, count)
	if err == nil {
		buffer := bytes.Buffer{}
		buffer.Grow(count * (idgen.StringLen + 1))
		for _, id := range ids {
			buffer.WriteString(id)
			buffer.WriteByte('\n')
		}
		if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, &buffer); err != nil {
			err = fmt.Errorf("failed to upload uuids to %v: %w", URL, err)
		}
	}
	span.End(err)
	return err
}

func validateCount(count int) error {
	if count <= 0 || count > MaxCount {
		return fmt.Errorf("invalid count: %d, expected 1..%d", count, MaxCount)
	}
	return nil
}

// NewService creates a Service; without options it behaves like New.
func NewService(options ...Option) *Service {
	ret := &Service{preferred: random.Host(), fallback: random.Runtime()}
	ret.init(options)
	return ret
}

// NewServiceFromConfig creates a Service from cfg; options are applied after
// the config derived ones.
func NewServiceFromConfig(cfg *Config, options ...Option) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, _ := random.ParseMode(cfg.Source)
	opts := []Option{WithMode(mode), WithUpperCase(cfg.UpperCase)}
	if cfg.Tracing.Enabled {
		opts = append(opts, WithTracing(cfg.Tracing.ServiceName, cfg.Tracing.ServiceVersion, cfg.Tracing.OutputFile))
	}
	return NewService(append(opts, options...)...), nil
}
