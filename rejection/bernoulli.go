package rejection

import (
	"math/big"

	"github.com/realForbis/ddgsampler/bitstream"
)

// SampleInversionBernoulli returns 1 with probability exactly a/m using
// an expected <= 2 bits: it repeatedly doubles a running value
// v starting from a, folding in m each time v grows past it, and reads
// one fresh bit per iteration to decide whether to commit to the
// outcome computed by that fold.
func SampleInversionBernoulli(a, m *big.Int, bs *bitstream.BitStream) (bool, error) {
	v := new(big.Int).Set(a)
	for {
		v.Lsh(v, 1)
		var x bool
		if m.Cmp(v) <= 0 {
			v.Sub(v, m)
			x = true
		}
		b, err := bs.NextBit()
		if err != nil {
			return false, err
		}
		if b == 1 {
			return x, nil
		}
	}
}
