package rational

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratVec(nums []int64, den int64) []*big.Rat {
	out := make([]*big.Rat, len(nums))
	for i, n := range nums {
		out[i] = big.NewRat(n, den)
	}
	return out
}

func TestNumeratorsSumToZ(t *testing.T) {
	p := []*big.Rat{big.NewRat(1, 19), big.NewRat(6, 19), big.NewRat(10, 19), big.NewRat(2, 19)}
	require.NoError(t, Validate(p))
	z := CommonDenominator(p)
	assert.Equal(t, big.NewInt(19), z)
	m := Numerators(z, p)
	assert.Equal(t, z, Sum(m))
}

func TestValidateRejectsBadVectors(t *testing.T) {
	assert.Equal(t, ErrEmptyDistribution, Validate(nil))
	assert.Equal(t, ErrNegativeProbability, Validate([]*big.Rat{big.NewRat(-1, 2), big.NewRat(3, 2)}))
	assert.Equal(t, ErrNotNormalized, Validate([]*big.Rat{big.NewRat(1, 3), big.NewRat(1, 3)}))
}

func TestBinaryExpansionLengthTable(t *testing.T) {
	cases := []struct {
		m    int64
		k, l int
	}{
		{2, 1, 1}, {3, 2, 0}, {4, 2, 2}, {5, 4, 0}, {6, 3, 1}, {7, 3, 0},
		{8, 3, 3}, {9, 6, 0}, {10, 5, 1}, {11, 10, 0}, {12, 4, 2},
		{13, 12, 0}, {14, 4, 1}, {15, 4, 0}, {16, 4, 4},
	}
	for _, c := range cases {
		k, l := BinaryExpansionLength(big.NewInt(c.m))
		assert.Equalf(t, c.k, k, "k for M=%d", c.m)
		assert.Equalf(t, c.l, l, "l for M=%d", c.m)
	}
}

func TestFracBitsRoundTrip(t *testing.T) {
	for k := 1; k <= 12; k++ {
		for l := 0; l <= k; l++ {
			zkl := Zkl(k, l)
			if !zkl.IsInt64() || zkl.Int64() > 4096 {
				continue // keep the sweep cheap; still covers k up to 12
			}
			n := zkl.Int64()
			for mi := int64(0); mi < n; mi++ {
				m := big.NewInt(mi)
				bits := FracToBits(m, k, l)
				got := BitsToFrac(bits, k, l)
				require.Equalf(t, m, got, "k=%d l=%d M=%d", k, l, mi)
			}
		}
	}
}

func TestFracToBitsDyadicAgreesWhenKEqualsL(t *testing.T) {
	for k := 1; k <= 8; k++ {
		zkl := Zkl(k, k)
		for mi := int64(0); mi < zkl.Int64(); mi++ {
			a := FracToBits(big.NewInt(mi), k, k)
			b := FracToBits(big.NewInt(mi), k, 0)
			_ = b // dyadic (k=l) form is the k-bit binary of M; compare directly below
			assert.Equal(t, a, intToBits(big.NewInt(mi), k))
		}
	}
}

func TestBinaryExpansionAgreesWithDoubleMethod(t *testing.T) {
	for bi := int64(1); bi < 40; bi++ {
		for ai := int64(0); ai <= bi; ai++ {
			g := gcd(big.NewInt(ai), big.NewInt(bi))
			a2 := new(big.Int).Div(big.NewInt(ai), g)
			b2 := new(big.Int).Div(big.NewInt(bi), g)
			if b2.Sign() == 0 {
				continue
			}
			pp1, per1 := BinaryExpansion(big.NewInt(ai), big.NewInt(bi))
			pp2, per2 := BinaryExpansionDouble(big.NewInt(ai), big.NewInt(bi))
			assert.Equalf(t, pp1, pp2, "preperiod a=%d b=%d", ai, bi)
			assert.Equalf(t, per1, per2, "period a=%d b=%d", ai, bi)
			_ = a2
		}
	}
}

func TestReduceFractionsCases(t *testing.T) {
	m, k, l := ReduceFractions([]*big.Int{big.NewInt(2), big.NewInt(2)}, 2, 2)
	assert.Equal(t, []*big.Int{big.NewInt(1), big.NewInt(1)}, m)
	assert.Equal(t, 1, k)
	assert.Equal(t, 1, l)

	m, k, l = ReduceFractions([]*big.Int{big.NewInt(4), big.NewInt(8), big.NewInt(4)}, 4, 4)
	assert.Equal(t, []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(1)}, m)
	assert.Equal(t, 2, k)
	assert.Equal(t, 2, l)

	k4 := 4
	zkl := Zkl(k4, 0)
	one := new(big.Int).Sub(zkl, big.NewInt(0))
	_ = one
	m, k, l = ReduceFractions([]*big.Int{new(big.Int).Sub(zkl, big.NewInt(0)), big.NewInt(0), big.NewInt(0), big.NewInt(0)}, k4, 0)
	assert.Equal(t, []*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(0), big.NewInt(0)}, m)
	assert.Equal(t, 1, k)
	assert.Equal(t, 0, l)

	m, k, l = ReduceFractions([]*big.Int{big.NewInt(3), big.NewInt(1)}, 2, 2)
	assert.Equal(t, []*big.Int{big.NewInt(3), big.NewInt(1)}, m)
	assert.Equal(t, 2, k)
	assert.Equal(t, 2, l)
}

func TestDyadicApproximationWidthIsUniform(t *testing.T) {
	rows, k := DyadicApproximation([]float64{0.5, 0.25, 0.25})
	for _, row := range rows {
		assert.Len(t, row, k)
	}
}

func TestEntropyUniform(t *testing.T) {
	p := ratVec([]int64{1, 1}, 2)
	h := Entropy(p)
	assert.InDelta(t, 1.0, h, 1e-9)
}
