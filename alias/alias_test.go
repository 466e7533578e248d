package alias

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realForbis/ddgsampler/bitstream"
	"github.com/realForbis/ddgsampler/internal/entropy"
)

func rats(pairs ...[2]int64) []*big.Rat {
	out := make([]*big.Rat, len(pairs))
	for i, pr := range pairs {
		out[i] = big.NewRat(pr[0], pr[1])
	}
	return out
}

func TestPreprocessMassInvariant(t *testing.T) {
	p := rats([2]int64{1, 19}, [2]int64{6, 19}, [2]int64{10, 19}, [2]int64{2, 19})
	s, err := Preprocess(p)
	require.NoError(t, err)

	one := big.NewRat(1, 1)
	total := new(big.Rat)
	mass := make([]*big.Rat, s.N)
	for i := range mass {
		mass[i] = new(big.Rat)
	}
	for i := 0; i < s.N; i++ {
		qi := new(big.Rat).SetFrac(s.Qs[i], s.Ms[i])
		total.Add(total, qi)
		mass[i].Add(mass[i], qi)
		if qi.Cmp(one) < 0 {
			// Column i hands its leftover 1-q_i to its alias outcome J[i].
			rest := new(big.Rat).Sub(one, qi)
			total.Add(total, rest)
			mass[s.J[i]].Add(mass[s.J[i]], rest)
		}
	}
	assert.Equal(t, big.NewRat(int64(s.N), 1), total)
	for i, pi := range p {
		want := new(big.Rat).Mul(big.NewRat(int64(s.N), 1), pi)
		assert.Equalf(t, want.RatString(), mass[i].RatString(), "mass of outcome %d", i+1)
	}
}

func TestSampleConvergesToTargetDistribution(t *testing.T) {
	p := rats([2]int64{10, 15}, [2]int64{1, 15}, [2]int64{4, 15})
	s, err := Preprocess(p)
	require.NoError(t, err)
	bs := bitstream.New(1, entropy.NewMathRandSource(42))
	hist := make([]int, 3)
	const n = 9000
	for i := 0; i < n; i++ {
		r, err := s.Sample(bs)
		require.NoError(t, err)
		hist[r-1]++
	}
	assert.InDelta(t, 10.0/15*n, float64(hist[0]), float64(n)*0.05)
	assert.InDelta(t, 1.0/15*n, float64(hist[1]), float64(n)*0.05)
	assert.InDelta(t, 4.0/15*n, float64(hist[2]), float64(n)*0.05)
}

func TestPreprocessTwoOutcomeUniform(t *testing.T) {
	p := rats([2]int64{1, 2}, [2]int64{1, 2})
	s, err := Preprocess(p)
	require.NoError(t, err)
	for i := 0; i < s.N; i++ {
		assert.Equal(t, big.NewRat(1, 1), new(big.Rat).SetFrac(s.Qs[i], s.Ms[i]))
	}
}
