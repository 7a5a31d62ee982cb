//go:build !linux

package random

type hostSource struct{}

func (s *hostSource) Name() string { return "host" }

func (s *hostSource) Available() bool { return false }

func (s *hostSource) Fill(p []byte) error { return ErrUnavailable }

var host Source = &hostSource{}

// Host returns the host-integrated secure source. It is never available on
// this platform.
func Host() Source { return host }
