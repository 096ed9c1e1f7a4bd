// Package test holds fixtures shared by the package tests: deterministic
// randomness and the two fields everything is exercised over.
package test

import (
	"io"

	"github.com/mpcforge/spdz-online/pkg/math/field"
	"github.com/mpcforge/spdz-online/pkg/preprocess"
	"golang.org/x/crypto/sha3"
)

// NewRand returns a deterministic randomness stream derived from seed,
// so failures reproduce. Never use outside tests.
func NewRand(seed string) io.Reader {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte(seed))
	return h
}

// SmallField is F₉₇, the field of the worked scenario.
func SmallField() *field.Field {
	f, err := field.NewUint64(97)
	if err != nil {
		panic(err)
	}
	return f
}

// LargeField is F_{2⁶¹−1}, big enough that random collisions never
// muddy a property test.
func LargeField() *field.Field {
	f, err := field.NewUint64(1<<61 - 1)
	if err != nil {
		panic(err)
	}
	return f
}

// NewDealer builds a deterministic dealer for n parties over f.
func NewDealer(f *field.Field, n int, seed string) *preprocess.Dealer {
	d, err := preprocess.NewDealer(f, n, NewRand(seed))
	if err != nil {
		panic(err)
	}
	return d
}
