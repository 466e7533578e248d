package rational

import (
	"math/big"
	"sync"
)

// CeilLog2 returns k = ceil(log2(z)) for z >= 1; CeilLog2(1) is 0.
func CeilLog2(z *big.Int) int {
	if z.Cmp(big.NewInt(1)) <= 0 {
		return 0
	}
	return new(big.Int).Sub(z, big.NewInt(1)).BitLen()
}

// Zkl returns 2^k - 2^l for l < k, else 2^k, the denominator of the
// mixed-radix (k,l) number system.
func Zkl(k, l int) *big.Int {
	twoK := new(big.Int).Lsh(big.NewInt(1), uint(k))
	if l >= k {
		return twoK
	}
	twoL := new(big.Int).Lsh(big.NewInt(1), uint(l))
	return twoK.Sub(twoK, twoL)
}

// Zb returns 2^(k-l) minus one if l < k, else 2^(k-l); the base used to
// split a numerator into its l-bit preperiod half and (k-l)-bit period
// half (see FracToBits).
func Zb(k, l int) *big.Int {
	b := new(big.Int).Lsh(big.NewInt(1), uint(k-l))
	if l < k {
		b.Sub(b, big.NewInt(1))
	}
	return b
}

var orderCache sync.Map // map[string]int, keyed by M.String()

// MultiplicativeOrder returns the multiplicative order of 2 modulo the
// odd integer m (the least r > 0 with 2^r ≡ 1 mod m), computed
// in-process rather than shelling out to an external helper program.
// Results are cached by decimal string of m.
func MultiplicativeOrder(m *big.Int) int {
	key := m.String()
	if v, ok := orderCache.Load(key); ok {
		return v.(int)
	}
	one := big.NewInt(1)
	two := big.NewInt(2)
	r := 0
	v := big.NewInt(1)
	for {
		v = new(big.Int).Mul(v, two)
		v.Mod(v, m)
		r++
		if v.Cmp(one) == 0 {
			break
		}
	}
	orderCache.Store(key, r)
	return r
}

// BinaryExpansionLength computes (k,l) for the integer M:
// if M is odd, k is the multiplicative order of 2 mod M and l = 0; else
// writing M = 2^w * M' with M' odd, (k,l) = (w,w) when M'=1, else
// k = order(M') + w, l = w.
func BinaryExpansionLength(m *big.Int) (k, l int) {
	w := 0
	mp := new(big.Int).Set(m)
	zero := new(big.Int)
	two := big.NewInt(2)
	for new(big.Int).Mod(mp, two).Cmp(zero) == 0 {
		mp.Div(mp, two)
		w++
	}
	if mp.Cmp(big.NewInt(1)) == 0 {
		return w, w
	}
	ord := MultiplicativeOrder(mp)
	return ord + w, w
}
