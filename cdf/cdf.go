// Package cdf implements the integer-endpoint binary searches shared by
// the rejection binary-search sampler and the integer-CDF interval
// sampler: a plain search over a monotone integer array, and a
// division-free cross-multiplied search over two fractions.
package cdf

import "math/big"

// BinarySearchInterval returns the index j such that arr[j] <= x <
// arr[j+1], or -1 if no such j exists (x is outside [arr[0], arr[len-1])).
func BinarySearchInterval(arr []*big.Int, x *big.Int) int {
	l, r := 0, len(arr)-1
	for l <= r {
		mid := l + (r-l)/2
		if mid == 0 {
			if x.Cmp(arr[0]) < 0 {
				r = mid - 1
				continue
			}
		} else if arr[mid-1].Cmp(x) <= 0 && x.Cmp(arr[mid]) < 0 {
			return mid - 1
		}
		if arr[mid].Cmp(x) <= 0 {
			l = mid + 1
		} else {
			r = mid - 1
		}
	}
	return -1
}

// CrossMultipliedSearch finds the index j such that
// cdf[j-1]/z <= a/den  and  b/den <= cdf[j]/z
// without ever dividing, by cross-multiplying every comparison, and
// returns j-1 (the 0-based index of that bucket). Returns -1 if no such
// j is found.
func CrossMultipliedSearch(arrCdf []*big.Int, z *big.Int, a, b, den *big.Int) int {
	l, r := 0, len(arrCdf)-1
	commonA := new(big.Int).Mul(a, z)
	commonB := new(big.Int).Mul(b, z)
	for l <= r {
		mid := l + (r-l)/2
		lhs := new(big.Int).Mul(arrCdf[mid], den)
		if mid > 0 {
			prevLhs := new(big.Int).Mul(arrCdf[mid-1], den)
			if prevLhs.Cmp(commonA) <= 0 && commonB.Cmp(lhs) <= 0 {
				return mid - 1
			}
		}
		if lhs.Cmp(commonA) <= 0 {
			l = mid + 1
		} else {
			r = mid - 1
		}
	}
	return -1
}
