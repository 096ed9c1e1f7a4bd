// Package hash wraps blake3 as the domain-separated transcript hash of
// the module. Its extendable output doubles as a randomness stream, so
// challenge coefficients can be sampled straight from Digest().
package hash

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/mpcforge/spdz-online/pkg/math/field"
	"github.com/mpcforge/spdz-online/pkg/party"
	"github.com/zeebo/blake3"
)

const DigestLengthBytes = 32

type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash whose state is initialized with the given domain.
func New(domain string) *Hash {
	hash := &Hash{h: blake3.New()}
	writeWithLength(hash.h, []byte(domain))
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
//   - field.Element
//   - party.ID
//
// Each write is length-prefixed so adjacent values cannot collide.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			writeWithLength(hash.h, t)
		case field.Element:
			writeWithLength(hash.h, t.Bytes())
		case party.ID:
			writeWithLength(hash.h, t.Bytes())
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

func writeWithLength(w io.Writer, data []byte) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(data)))
	// blake3's Write never returns an error
	_, _ = w.Write(length[:])
	_, _ = w.Write(data)
}
