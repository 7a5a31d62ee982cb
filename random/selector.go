package random

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
)

// ErrUnavailable is returned when a required source cannot serve.
var ErrUnavailable = errors.New("random source unavailable")

// Mode controls which source a Selector reads from.
type Mode int

const (
	// ModeAuto prefers the preferred source and falls back when it is unavailable.
	ModeAuto Mode = iota
	// ModeHost reads from the preferred source only.
	ModeHost
	// ModeRuntime reads from the fallback source only.
	ModeRuntime
)

func (m Mode) String() string {
	switch m {
	case ModeHost:
		return "host"
	case ModeRuntime:
		return "runtime"
	default:
		return "auto"
	}
}

// ParseMode parses auto, host or runtime; empty means auto.
func ParseMode(text string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "auto":
		return ModeAuto, nil
	case "host":
		return ModeHost, nil
	case "runtime":
		return ModeRuntime, nil
	}
	return ModeAuto, fmt.Errorf("unsupported random source mode: %q", text)
}

// Selector picks between a preferred and a fallback Source.
type Selector struct {
	mode      Mode
	preferred Source
	fallback  Source
	warnOnce  sync.Once
}

// Option configures a Selector.
type Option func(s *Selector)

// WithMode sets the selection mode.
func WithMode(mode Mode) Option {
	return func(s *Selector) {
		s.mode = mode
	}
}

// WithPreferred replaces the preferred (host) source. A nil source keeps the default.
func WithPreferred(source Source) Option {
	return func(s *Selector) {
		if source != nil {
			s.preferred = source
		}
	}
}

// WithFallback replaces the fallback (runtime) source. A nil source keeps the default.
func WithFallback(source Source) Option {
	return func(s *Selector) {
		if source != nil {
			s.fallback = source
		}
	}
}

// NewSelector creates a Selector over Host and Runtime unless overridden.
func NewSelector(opts ...Option) *Selector {
	ret := &Selector{preferred: Host(), fallback: Runtime()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Mode returns the selection mode.
func (s *Selector) Mode() Mode { return s.mode }

// Source returns the source the next read will use.
func (s *Selector) Source() (Source, error) {
	switch s.mode {
	case ModeRuntime:
		return required(s.fallback, "runtime")
	case ModeHost:
		return required(s.preferred, "host")
	}
	if s.preferred != nil && s.preferred.Available() {
		return s.preferred, nil
	}
	return required(s.fallback, "runtime")
}

func required(source Source, role string) (Source, error) {
	if source == nil {
		return nil, fmt.Errorf("%s: %w", role, ErrUnavailable)
	}
	if !source.Available() {
		return nil, fmt.Errorf("%s: %w", source.Name(), ErrUnavailable)
	}
	return source, nil
}

// Bytes returns count bytes read from the selected source. Failures are
// returned as is; the other source is not tried.
func (s *Selector) Bytes(count int) ([]byte, error) {
	ret, _, err := s.Read(count)
	return ret, err
}

// Read is like Bytes but also returns the source that filled the bytes.
func (s *Selector) Read(count int) ([]byte, Source, error) {
	if count < 0 {
		return nil, nil, fmt.Errorf("invalid random byte count: %d", count)
	}
	source, err := s.Source()
	if err != nil {
		return nil, nil, err
	}
	ret := make([]byte, count)
	if err = source.Fill(ret); err != nil {
		if s.mode == ModeAuto && source == s.preferred {
			s.warnOnce.Do(func() {
				log.Printf("random: %s source reported available but failed: %v", source.Name(), err)
			})
		}
		return nil, source, err
	}
	return ret, source, nil
}

var defaultSelector = NewSelector()

// Bytes returns count secure random bytes, preferring the host source.
func Bytes(count int) ([]byte, error) {
	return defaultSelector.Bytes(count)
}
