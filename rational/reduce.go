package rational

import "math/big"

// ReduceFractions applies the (k,l)-system simplification rules until
// stable: (a) any M_i = Zkl(k,l) collapses to the trivial one-bit
// sampler ([1,0,...], k=1, l=0); (b) when l>0 and every M_i is even,
// halve all M_i and decrement both k and l; (c) when every M_i is equal
// and Zkl/M_0 is a power of two 2^b, collapse M to all-ones with
// (k,l)=(b,b). Any input not matching these rules is returned
// unchanged.
func ReduceFractions(m []*big.Int, k, l int) ([]*big.Int, int, int) {
	for {
		zkl := Zkl(k, l)

		if i := indexOfEqual(m, zkl); i >= 0 {
			out := make([]*big.Int, len(m))
			for j := range out {
				if j == i {
					out[j] = big.NewInt(1)
				} else {
					out[j] = big.NewInt(0)
				}
			}
			return out, 1, 0
		}

		if l == 0 {
			return m, k, l
		}

		if allEven(m) {
			out := make([]*big.Int, len(m))
			two := big.NewInt(2)
			for j, mi := range m {
				out[j] = new(big.Int).Div(mi, two)
			}
			m, k, l = out, k-1, l-1
			continue
		}

		if b, ok := uniformPowerOfTwoRatio(m, zkl); ok {
			out := make([]*big.Int, len(m))
			for j := range out {
				out[j] = big.NewInt(1)
			}
			return out, b, b
		}

		return m, k, l
	}
}

func indexOfEqual(m []*big.Int, target *big.Int) int {
	for i, mi := range m {
		if mi.Cmp(target) == 0 {
			return i
		}
	}
	return -1
}

func allEven(m []*big.Int) bool {
	two := big.NewInt(2)
	for _, mi := range m {
		if new(big.Int).Mod(mi, two).Sign() != 0 {
			return false
		}
	}
	return true
}

// uniformPowerOfTwoRatio reports whether every entry of m equals m[0]
// (and m[0] > 0) and Zkl/m[0] is a power of two 2^b, returning b.
func uniformPowerOfTwoRatio(m []*big.Int, zkl *big.Int) (int, bool) {
	if len(m) == 0 || m[0].Sign() <= 0 {
		return 0, false
	}
	for _, mi := range m[1:] {
		if mi.Cmp(m[0]) != 0 {
			return 0, false
		}
	}
	q, r := new(big.Int).QuoRem(zkl, m[0], new(big.Int))
	if r.Sign() != 0 {
		return 0, false
	}
	return powerOfTwoExponent(q)
}

// powerOfTwoExponent reports whether q is a power of two and, if so,
// its exponent.
func powerOfTwoExponent(q *big.Int) (int, bool) {
	if q.Sign() <= 0 {
		return 0, false
	}
	b := 0
	t := new(big.Int).Set(q)
	one := big.NewInt(1)
	two := big.NewInt(2)
	for t.Cmp(one) != 0 {
		if new(big.Int).Mod(t, two).Sign() != 0 {
			return 0, false
		}
		t.Div(t, two)
		b++
	}
	return b, true
}
