// Package interval implements the arithmetic-coding style samplers of
// a preprocessed bit-interval refinement sampler and a
// rejection-free integer-CDF refinement sampler. Both consume bits one
// at a time and narrow a candidate sub-interval (of [0, 2^(k-1)] for the
// bit-interval sampler, of [0, 1] for the integer-CDF sampler) until it
// falls inside the target outcome's slice.
package interval

import (
	"math/big"

	"github.com/realForbis/ddgsampler/bitstream"
)

// span is the closed integer interval [Lo, Hi]; Sample tests
// containment against both endpoints inclusively.
type span struct {
	Lo *big.Int
	Hi *big.Int
}

// BitIntervalSampler is the preprocessed bit-interval refinement
// sampler: J[i] = (F[i], F[i+1]) where F are integer endpoints of the
// cumulative distribution scaled to u = 2^(k-1).
type BitIntervalSampler struct {
	K int
	U *big.Int
	J []span
}

// NewBitIntervalSampler precomputes F and J from the numerators m
// (common denominator implied by sum(m)) at k bits of precision.
func NewBitIntervalSampler(m []*big.Int, k int) *BitIntervalSampler {
	z := new(big.Int)
	for _, mi := range m {
		z.Add(z, mi)
	}
	u := new(big.Int).Lsh(big.NewInt(1), uint(k-1))

	f := make([]*big.Int, len(m)+1)
	f[0] = big.NewInt(0)
	cum := big.NewInt(0)
	two := big.NewInt(2)
	for i, mi := range m {
		cum = new(big.Int).Add(cum, mi)
		// round(u*cum/z) = floor((2*u*cum + z) / (2*z)), round-half-up.
		num := new(big.Int).Mul(u, cum)
		num.Mul(num, two)
		num.Add(num, z)
		den := new(big.Int).Mul(two, z)
		f[i+1] = new(big.Int).Quo(num, den)
	}

	j := make([]span, len(m))
	for i := range m {
		j[i] = span{Lo: f[i], Hi: f[i+1]}
	}
	return &BitIntervalSampler{K: k, U: u, J: j}
}

// NewBitIntervalSamplerFromCDF rebuilds a BitIntervalSampler from its
// already-computed (k, u, cdf) triple, where cdf holds the n+1 integer
// endpoints F[0..n] with F[0]=0 and F[n]=u; used to reload a
// preprocessed sampler from its serialized form.
func NewBitIntervalSamplerFromCDF(k int, u *big.Int, cdf []*big.Int) *BitIntervalSampler {
	j := make([]span, len(cdf)-1)
	for i := range j {
		j[i] = span{Lo: cdf[i], Hi: cdf[i+1]}
	}
	return &BitIntervalSampler{K: k, U: u, J: j}
}

// Sample narrows (alpha, beta) bit by bit until it falls inside some
// J[b], returning 1+b. It consumes at most k-1 bits with probability 1;
// exceeding that budget returns a *PrecisionExhaustedError.
func (s *BitIntervalSampler) Sample(bs *bitstream.BitStream) (int, error) {
	alpha := big.NewInt(0)
	beta := new(big.Int).Set(s.U)
	r := new(big.Int).Set(s.U)

	for flips := 0; flips < s.K-1; flips++ {
		bit, err := bs.NextBit()
		if err != nil {
			return 0, err
		}
		a := 1 + bit
		half := new(big.Int).Rsh(r, 1)
		if a == 2 {
			alpha = new(big.Int).Add(alpha, half)
		}
		beta = new(big.Int).Add(alpha, half)
		r = half

		for b, iv := range s.J {
			if iv.Lo.Cmp(alpha) <= 0 && alpha.Cmp(beta) <= 0 && beta.Cmp(iv.Hi) <= 0 {
				return b + 1, nil
			}
		}
	}
	return 0, &PrecisionExhaustedError{K: s.K}
}
