package idgen

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

const (
	// Size is the number of random bytes a UUID consumes.
	Size = 16
	// StringLen is the length of the canonical string form.
	StringLen = 36
)

// Format sets the version 4 and RFC 4122 variant bits on random and returns
// the canonical hyphenated lower-case form.
func Format(random []byte) (string, error) {
	if len(random) != Size {
		return "", fmt.Errorf("invalid uuid random length: %d, expected %d", len(random), Size)
	}
	id, err := uuid.NewRandomFromReader(bytes.NewReader(random))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
