// Package random provides cryptographically secure random bytes.
//
// A host-integrated generator (getrandom(2) on Linux) is preferred; the
// runtime generator (crypto/rand) is used when the host one is not
// available in the current execution context.
//
//	buf, err := random.Bytes(16)
package random
