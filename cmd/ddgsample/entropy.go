package main

import (
	"io"

	"github.com/pkg/errors"

	"github.com/realForbis/ddgsampler/internal/entropy"
)

// newEntropySource selects one of the three entropy sources the library
// supports: "crypto" (crypto/rand, non-reproducible), "math-rand" (seeded,
// reproducible, for tests and demos), and "shake" (a SHAKE256 XOF seeded
// from a byte string, for reproducible runs that still look like real
// random bits to statistical tests).
func newEntropySource(name string, seed int64) (io.Reader, error) {
	switch name {
	case "crypto":
		return entropy.NewCryptoSource(), nil
	case "math-rand":
		return entropy.NewMathRandSource(seed), nil
	case "shake":
		seedBytes := make([]byte, 8)
		for i := 0; i < 8; i++ {
			seedBytes[i] = byte(seed >> (8 * i))
		}
		return entropy.NewShakeSource(seedBytes), nil
	default:
		return nil, errors.Errorf("ddgsample: unknown entropy source %q (want crypto, math-rand, or shake)", name)
	}
}
