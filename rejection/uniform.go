package rejection

import (
	"math/big"

	"github.com/realForbis/ddgsampler/bitstream"
)

// max returns the largest element of m.
func max(m []*big.Int) *big.Int {
	best := m[0]
	for _, x := range m[1:] {
		if x.Cmp(best) > 0 {
			best = x
		}
	}
	return best
}

// Uniform is the preprocessed form for the uniform/fdr rejection
// sampler, holding the numerator vector whose maximum bounds the
// Bernoulli acceptance step.
type Uniform struct {
	M []*big.Int
}

// PreprocessUniform wraps m for repeated uniform/fdr sampling.
func PreprocessUniform(m []*big.Int) *Uniform {
	return &Uniform{M: m}
}

// Sample draws a candidate outcome via SampleUniform.
func (u *Uniform) Sample(bs *bitstream.BitStream) (int, error) {
	return SampleUniform(u.M, bs)
}

// SampleUniform implements the uniform/fdr rejection sampler: it
// draws a candidate outcome uniformly via SampleFDR and independently
// accepts it with probability M[j-1]/max(M), redrawing on reject.
func SampleUniform(m []*big.Int, bs *bitstream.BitStream) (int, error) {
	n := len(m)
	mx := max(m)
	for {
		j, err := SampleFDR(n, bs)
		if err != nil {
			return 0, err
		}
		accept, err := SampleInversionBernoulli(m[j-1], mx, bs)
		if err != nil {
			return 0, err
		}
		if accept {
			return j, nil
		}
	}
}
