package interval

import (
	"math/big"

	"github.com/realForbis/ddgsampler/bitstream"
	"github.com/realForbis/ddgsampler/cdf"
)

// CDFIntervalSampler is the rejection-free integer-CDF refinement
// sampler: it narrows a dyadic rational [alpha/den, beta/den] bit by
// bit and looks up a matching CDF bucket after every bit via a
// division-free cross-multiplied search, so it never wastes entropy
// on a reject.
type CDFIntervalSampler struct {
	Z   *big.Int
	Cdf []*big.Int
}

// NewCDFIntervalSampler builds the prefix-sum Cdf array from m.
func NewCDFIntervalSampler(m []*big.Int) *CDFIntervalSampler {
	cum := make([]*big.Int, len(m)+1)
	cum[0] = big.NewInt(0)
	for i, mi := range m {
		cum[i+1] = new(big.Int).Add(cum[i], mi)
	}
	return &CDFIntervalSampler{Z: cum[len(m)], Cdf: cum}
}

// Sample narrows (alpha, beta)/den one bit at a time, checking after
// each bit whether the interval now sits entirely inside one outcome's
// CDF bucket.
func (s *CDFIntervalSampler) Sample(bs *bitstream.BitStream) (int, error) {
	alpha := big.NewInt(0)
	beta := big.NewInt(1)
	den := big.NewInt(1)

	for {
		bit, err := bs.NextBit()
		if err != nil {
			return 0, err
		}
		width := new(big.Int).Sub(beta, alpha)
		newAlpha := new(big.Int).Mul(alpha, big.NewInt(2))
		newBeta := new(big.Int).Add(newAlpha, width)
		if bit == 1 {
			newAlpha.Add(newAlpha, width)
			newBeta.Add(newBeta, width)
		}
		alpha, beta = newAlpha, newBeta

		if alpha.Bit(0) == 0 && beta.Bit(0) == 0 {
			alpha = new(big.Int).Rsh(alpha, 1)
			beta = new(big.Int).Rsh(beta, 1)
		} else {
			den = new(big.Int).Lsh(den, 1)
		}

		if j := cdf.CrossMultipliedSearch(s.Cdf, s.Z, alpha, beta, den); j >= 0 {
			return j + 1, nil
		}
	}
}
