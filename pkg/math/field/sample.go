package field

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
)

const maxIterations = 255

// ErrMaxIterations is thrown when the sampler keeps failing to read
// randomness, which only happens with a broken source.
var ErrMaxIterations = fmt.Errorf("field: failed to sample after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// Sample returns a uniform element of ℤₚ by rejection sampling.
// Callers must pass a cryptographically secure source outside of tests.
func (f *Field) Sample(rand io.Reader) Element {
	out := new(saferith.Nat)
	buf := make([]byte, (f.p.BitLen()+7)/8)
	for {
		mustReadBits(rand, buf)
		out.SetBytes(buf)
		if _, _, lt := out.CmpMod(f.p); lt == 1 {
			return Element{n: out, f: f}
		}
	}
}
