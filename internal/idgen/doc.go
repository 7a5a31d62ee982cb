// Package idgen renders random bytes as version 4 UUID strings. It lives
// under `internal` because callers should treat identifiers as opaque
// strings and obtain them through the root package.
package idgen
