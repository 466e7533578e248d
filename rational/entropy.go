package rational

import (
	"math"
	"math/big"
)

// Entropy returns the Shannon entropy of p, in bits, using the
// convention 0*log2(0) = 0.
func Entropy(p []*big.Rat) float64 {
	h := 0.0
	for _, pi := range p {
		f, _ := pi.Float64()
		if f <= 0 {
			continue
		}
		h -= f * math.Log2(f)
	}
	return h
}
