// Package rational implements the exact rational arithmetic and binary
// (k,l) number-system substrate shared by every sampler family: greatest
// common denominators, numerator extraction, binary expansions of a/b
// (including the eventually-periodic preperiod/period split), reduction
// of (M,k,l) triples to lowest terms, and dyadic approximation of a
// floating-point distribution.
package rational

import (
	"errors"
	"math/big"
)

// ErrNotNormalized is returned when a probability vector's entries do
// not sum to exactly 1.
var ErrNotNormalized = errors.New("rational: probabilities do not sum to 1")

// ErrEmptyDistribution is returned for a zero-length probability vector.
var ErrEmptyDistribution = errors.New("rational: empty probability vector")

// ErrNegativeProbability is returned when an entry of p is negative.
var ErrNegativeProbability = errors.New("rational: negative probability")

// Validate checks the invariants required of a probability vector: non
// empty, every entry non-negative, and the entries sum to exactly 1.
func Validate(p []*big.Rat) error {
	if len(p) == 0 {
		return ErrEmptyDistribution
	}
	sum := new(big.Rat)
	for _, pi := range p {
		if pi.Sign() < 0 {
			return ErrNegativeProbability
		}
		sum.Add(sum, pi)
	}
	if sum.Cmp(big.NewRat(1, 1)) != 0 {
		return ErrNotNormalized
	}
	return nil
}

// CommonDenominator returns Z, the least common multiple of the
// denominators of p.
func CommonDenominator(p []*big.Rat) *big.Int {
	z := big.NewInt(1)
	for _, pi := range p {
		z = lcm(z, pi.Denom())
	}
	return z
}

// Numerators returns M_i = Z * p_i for every entry of p. Z must be a
// common denominator of p (as returned by CommonDenominator); every
// M_i is then an exact integer.
func Numerators(z *big.Int, p []*big.Rat) []*big.Int {
	out := make([]*big.Int, len(p))
	for i, pi := range p {
		m := new(big.Int).Mul(z, pi.Num())
		m.Div(m, pi.Denom())
		out[i] = m
	}
	return out
}

// Sum returns the sum of a slice of integers.
func Sum(xs []*big.Int) *big.Int {
	s := new(big.Int)
	for _, x := range xs {
		s.Add(s, x)
	}
	return s
}

func gcd(a, b *big.Int) *big.Int {
	g := new(big.Int)
	g.GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	return g
}

func lcm(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return big.NewInt(0)
	}
	g := gcd(a, b)
	l := new(big.Int).Div(a, g)
	l.Mul(l, b)
	return l
}

// IntegerRatio decomposes an IEEE-754 float64 into an exact (numerator,
// denominator) pair using its mantissa and binary exponent, i.e. the
// rational value the float actually represents (not a decimal
// approximation of it).
func IntegerRatio(f float64) *big.Rat {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		// f is NaN or +-Inf; no exact rational exists.
		panic("rational: no exact ratio for non-finite float")
	}
	return r
}
