package rejection

import (
	"math/big"

	"github.com/realForbis/ddgsampler/bitstream"
	"github.com/realForbis/ddgsampler/rational"
)

// readBits draws k fresh bits MSB-first and returns them as an integer
// in [0, 2^k).
func readBits(k int, bs *bitstream.BitStream) (*big.Int, error) {
	w := big.NewInt(0)
	for i := 0; i < k; i++ {
		b, err := bs.NextBit()
		if err != nil {
			return nil, err
		}
		w.Lsh(w, 1)
		if b == 1 {
			w.SetBit(w, 0, 1)
		}
	}
	return w, nil
}

// ceilLog2 returns k = ceil(log2(z)) for z >= 1.
func ceilLog2(z *big.Int) int {
	return rational.CeilLog2(z)
}
