package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Source fills byte slices with secure random data.
type Source interface {
	Name() string
	// Available reports whether the source can serve in the current process.
	Available() bool
	Fill(p []byte) error
}

type runtimeSource struct {
	reader io.Reader
}

func (s *runtimeSource) Name() string { return "runtime" }

func (s *runtimeSource) Available() bool { return true }

func (s *runtimeSource) Fill(p []byte) error {
	if _, err := io.ReadFull(s.reader, p); err != nil {
		return fmt.Errorf("failed to read %d bytes from runtime source: %w", len(p), err)
	}
	return nil
}

var runtimeSrc Source = &runtimeSource{reader: rand.Reader}

// Runtime returns the runtime general-purpose secure source (crypto/rand).
func Runtime() Source { return runtimeSrc }
