// Package hash provides the domain-separated transcript hash used for
// challenges, commitments and signature messages.
package hash

import (
	"fmt"
	"io"

	"github.com/rodrigodg1/umbral-go/internal/params"
	"github.com/zeebo/blake3"
)

// DigestLengthBytes is the number of bytes returned by Sum.
const DigestLengthBytes = params.SecBytes * 2 // 64

// Hash is an extendable transcript hash.
//
// Internally, this is a wrapper around blake3, but any hash function with
// an easily extendable output would work as well.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash whose state is initialized with the given domain
// separation tag. Transcripts started with different tags are guaranteed
// to produce unrelated outputs for identical inputs.
func New(tag string) *Hash {
	hash := &Hash{h: blake3.New()}
	_ = writeWithDomain(hash.h, &BytesWithDomain{
		TheDomain: "DST",
		Bytes:     []byte(tag),
	})
	return hash
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state of the hash, and returns what's
// essentially a stream of random bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length DigestLengthBytes resulting from the current hash state.
// If a different length is required, use io.ReadFull(hash.Digest(), out) instead.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny takes many different data types and writes them to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - hash.WriterToWithDomain
//
// This function applies its own domain separation for raw byte strings.
// The second type already carries its domain, and this function respects it.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			err := writeWithDomain(hash.h, &BytesWithDomain{
				TheDomain: "[]byte",
				Bytes:     t,
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write []byte: %w", err)
			}
		case WriterToWithDomain:
			if err := writeWithDomain(hash.h, t); err != nil {
				return fmt.Errorf("hash.Hash: write %s: %w", t.Domain(), err)
			}
		default:
			panic("hash.Hash: unsupported type")
		}
	}
	return nil
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}
