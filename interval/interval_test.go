package interval

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realForbis/ddgsampler/bitstream"
	"github.com/realForbis/ddgsampler/internal/entropy"
)

func bigs(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

func TestBitIntervalEndpointsCoverFullRange(t *testing.T) {
	s := NewBitIntervalSampler(bigs(1, 1, 1), 10)
	require.Len(t, s.J, 3)
	assert.Equal(t, big.NewInt(0), s.J[0].Lo)
	assert.Equal(t, s.U, s.J[2].Hi)
	for i := 1; i < len(s.J); i++ {
		assert.Equal(t, s.J[i-1].Hi, s.J[i].Lo)
	}
}

func TestBitIntervalSampleConvergesToUniformThirds(t *testing.T) {
	s := NewBitIntervalSampler(bigs(1, 1, 1), 10)
	bs := bitstream.New(1, entropy.NewMathRandSource(11))
	hist := make([]int, 3)
	const n = 6000
	for i := 0; i < n; i++ {
		r, err := s.Sample(bs)
		require.NoError(t, err)
		hist[r-1]++
	}
	for _, h := range hist {
		assert.InDelta(t, float64(n)/3, float64(h), float64(n)*0.05)
	}
}

func TestBitIntervalSkewedDistribution(t *testing.T) {
	s := NewBitIntervalSampler(bigs(1, 3), 8)
	bs := bitstream.New(1, entropy.NewMathRandSource(12))
	hist := make([]int, 2)
	const n = 6000
	for i := 0; i < n; i++ {
		r, err := s.Sample(bs)
		require.NoError(t, err)
		hist[r-1]++
	}
	assert.InDelta(t, float64(n)/4, float64(hist[0]), float64(n)*0.05)
	assert.InDelta(t, 3*float64(n)/4, float64(hist[1]), float64(n)*0.05)
}

func TestCDFIntervalPreprocessCdf(t *testing.T) {
	s := NewCDFIntervalSampler(bigs(3, 2, 3))
	assert.Equal(t, []int64{0, 3, 5, 8}, toInt64s(s.Cdf))
	assert.Equal(t, int64(8), s.Z.Int64())
}

func TestCDFIntervalSampleConvergesToProportions(t *testing.T) {
	s := NewCDFIntervalSampler(bigs(1, 3))
	bs := bitstream.New(1, entropy.NewMathRandSource(13))
	hist := make([]int, 2)
	const n = 6000
	for i := 0; i < n; i++ {
		r, err := s.Sample(bs)
		require.NoError(t, err)
		hist[r-1]++
	}
	assert.InDelta(t, float64(n)/4, float64(hist[0]), float64(n)*0.05)
	assert.InDelta(t, 3*float64(n)/4, float64(hist[1]), float64(n)*0.05)
}

func toInt64s(xs []*big.Int) []int64 {
	out := make([]int64, len(xs))
	for i, x := range xs {
		out[i] = x.Int64()
	}
	return out
}
