package rational

import "math/big"

// FracToBits returns the k-bit expansion of M / Zkl(k,l) in the
// l-bit-preperiod ‖ (k-l)-bit-period layout: x = M div Zb, y = M - Zb*x,
// with Zb = 2^(k-l) - [l<k]. The l-bit binary of x is concatenated with
// the (k-l)-bit binary of y.
func FracToBits(m *big.Int, k, l int) []int {
	var x, y *big.Int
	switch {
	case l == k:
		x, y = m, big.NewInt(0)
	case l == 0:
		x, y = big.NewInt(0), m
	default:
		zb := Zb(k, l)
		x, y = new(big.Int), new(big.Int)
		x.DivMod(m, zb, y)
	}
	bits := make([]int, 0, k)
	bits = append(bits, intToBits(x, l)...)
	bits = append(bits, intToBits(y, k-l)...)
	return bits
}

// BitsToFrac is the inverse of FracToBits: given the k-bit expansion and
// (k,l), it reconstructs the exact numerator M (over denominator
// Zkl(k,l)).
func BitsToFrac(bits []int, k, l int) *big.Int {
	x := bitsToInt(bits[:l])
	y := bitsToInt(bits[l:k])
	zb := Zb(k, l)
	m := new(big.Int).Mul(x, zb)
	m.Add(m, y)
	return m
}

func intToBits(v *big.Int, n int) []int {
	bits := make([]int, n)
	t := new(big.Int).Set(v)
	one := big.NewInt(1)
	for i := n - 1; i >= 0; i-- {
		bit := new(big.Int).And(t, one)
		bits[i] = int(bit.Int64())
		t.Rsh(t, 1)
	}
	return bits
}

func bitsToInt(bits []int) *big.Int {
	v := new(big.Int)
	for _, b := range bits {
		v.Lsh(v, 1)
		if b != 0 {
			v.Or(v, big.NewInt(1))
		}
	}
	return v
}

// BinaryExpansion returns the preperiod and period bit-tuples of a/b for
// 0 <= a <= b: a=b yields ((), (1,)); a=0 yields ((0,), ()); otherwise a/b
// is reduced to lowest terms a'/b', (k,l) is derived from b', and the
// numerator is evaluated in the (k,l) system and split into its l-bit
// preperiod and (k-l)-bit period.
func BinaryExpansion(a, b *big.Int) (preperiod, period []int) {
	if a.Cmp(b) == 0 {
		return []int{}, []int{1}
	}
	if a.Sign() == 0 {
		return []int{0}, []int{}
	}
	g := gcd(a, b)
	ap := new(big.Int).Div(a, g)
	bp := new(big.Int).Div(b, g)
	k, l := BinaryExpansionLength(bp)
	zkl := Zkl(k, l)
	// ap/bp == M/zkl for some integer M, since bp | zkl.
	m := new(big.Int).Mul(ap, zkl)
	m.Div(m, bp)
	bits := FracToBits(m, k, l)
	return bits[:l], bits[l:]
}

// BinaryExpansionDouble computes the same preperiod/period split via the
// classic double-and-detect-cycle method: repeatedly double the
// remainder mod b, recording the output bit and the remainder seen,
// until a remainder repeats or reaches zero (a terminating expansion,
// which gets an empty period). Kept as an independent implementation so
// tests can assert it agrees with BinaryExpansion.
func BinaryExpansionDouble(a, b *big.Int) (preperiod, period []int) {
	if a.Cmp(b) == 0 {
		return []int{}, []int{1}
	}
	if a.Sign() == 0 {
		return []int{0}, []int{}
	}
	g := gcd(a, b)
	r := new(big.Int).Div(a, g)
	bp := new(big.Int).Div(b, g)

	seen := make(map[string]int)
	bits := make([]int, 0)
	two := big.NewInt(2)
	for {
		if idx, ok := seen[r.String()]; ok {
			return bits[:idx], bits[idx:]
		}
		seen[r.String()] = len(bits)
		r.Mul(r, two)
		bit := new(big.Int).Div(r, bp)
		bits = append(bits, int(bit.Int64()))
		r.Mod(r, bp)
		if r.Sign() == 0 {
			return bits, []int{}
		}
	}
}
