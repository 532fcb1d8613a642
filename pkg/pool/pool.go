// Package pool helps share a single randomness source between goroutines.
package pool

import (
	"io"
	"sync"
)

// LockedReader wraps an io.Reader so that it can be read concurrently.
//
// Every operation in this library that consumes randomness takes an
// io.Reader. When several goroutines re-encrypt or generate fragments at
// the same time, they can share one source through a LockedReader instead
// of each opening their own.
type LockedReader struct {
	reader io.Reader
	m      sync.Mutex
}

// NewLockedReader wraps an underlying reader.
func NewLockedReader(r io.Reader) *LockedReader {
	return &LockedReader{reader: r}
}

// Read implements io.Reader.
//
// Concurrent callers race for which bytes they end up with, but no two
// callers ever observe the same bytes, and the state of the underlying
// reader is never corrupted.
func (r *LockedReader) Read(p []byte) (int, error) {
	r.m.Lock()
	defer r.m.Unlock()
	return r.reader.Read(p)
}
