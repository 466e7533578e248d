package rational

import "math/big"

// DyadicApproximation reads each p_i's IEEE-754 value as an exact
// rational (via IntegerRatio), renormalizes the vector to sum to
// exactly 1 (adding any underflow to the first component, or
// subtracting overflow from the first component whose value exceeds
// it), then expands each entry to its preperiod bit-tuple (its exact
// dyadic expansion) and right-pads every row to the common width
// k = max row length. The result is an n x k bit matrix, usable
// directly as an approximate-KY DDG matrix with k = l.
func DyadicApproximation(p []float64) (matrix [][]int, k int) {
	rats := make([]*big.Rat, len(p))
	sum := new(big.Rat)
	for i, pi := range p {
		rats[i] = IntegerRatio(pi)
		sum.Add(sum, rats[i])
	}
	one := big.NewRat(1, 1)
	diff := new(big.Rat).Sub(one, sum)
	if diff.Sign() > 0 {
		rats[0].Add(rats[0], diff)
	} else if diff.Sign() < 0 {
		overflow := new(big.Rat).Neg(diff)
		for i := range rats {
			if rats[i].Cmp(overflow) >= 0 {
				rats[i].Sub(rats[i], overflow)
				break
			}
		}
	}

	rows := make([][]int, len(rats))
	maxLen := 0
	for i, r := range rats {
		bits := dyadicBits(r)
		rows[i] = bits
		if len(bits) > maxLen {
			maxLen = len(bits)
		}
	}
	for i, bits := range rows {
		if len(bits) < maxLen {
			padded := make([]int, maxLen)
			copy(padded, bits)
			rows[i] = padded
		}
	}
	return rows, maxLen
}

// dyadicBits returns the exact binary expansion of r, which must have a
// power-of-two denominator (as every IEEE-754 float64 does).
func dyadicBits(r *big.Rat) []int {
	num := new(big.Int).Set(r.Num())
	den := r.Denom()
	if den.Cmp(big.NewInt(1)) == 0 {
		if num.Sign() == 0 {
			return []int{0}
		}
		// A ratio of exactly 1 (this outcome holds the entire mass) needs
		// no bits to resolve, matching get_binary_expansion(a,a)'s empty
		// prefix; padding to the common row width right-fills it with
		// zeros like every other row.
		return []int{}
	}
	k := 0
	t := new(big.Int).Set(den)
	one := big.NewInt(1)
	two := big.NewInt(2)
	for t.Cmp(one) != 0 {
		t.Div(t, two)
		k++
	}
	return intToBits(num, k)
}
