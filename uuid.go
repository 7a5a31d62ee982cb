package uuidgen

import (
	"github.com/viant/uuidgen/internal/idgen"
	"github.com/viant/uuidgen/random"
)

// New returns a random version 4 UUID sourced from random.Bytes.
func New() (string, error) {
	data, err := random.Bytes(idgen.Size)
	if err != nil {
		return "", err
	}
	return idgen.Format(data)
}

// NewWith returns a random version 4 UUID sourced from selector.
func NewWith(selector *random.Selector) (string, error) {
	id, _, err := newWith(selector)
	return id, err
}

// newWith also returns the source that supplied the random bytes.
func newWith(selector *random.Selector) (string, random.Source, error) {
	data, source, err := selector.Read(idgen.Size)
	if err != nil {
		return "", source, err
	}
	id, err := idgen.Format(data)
	return id, source, err
}

// MustNew is like New but panics when no random bytes can be read.
func MustNew() string {
	id, err := New()
	if err != nil {
		panic("uuidgen: " + err.Error())
	}
	return id
}
