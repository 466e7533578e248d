package rejection

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/realForbis/ddgsampler/bitstream"
	"github.com/realForbis/ddgsampler/cdf"
)

// BinarySearch is the preprocessed form for the binary-search-on-CDF
// rejection sampler: Cdf[0]=0, Cdf[i] = sum(m[:i]), so outcome
// i occupies [Cdf[i], Cdf[i+1]).
type BinarySearch struct {
	K   int
	Z   *big.Int
	Cdf []*big.Int
}

// PreprocessBinarySearch builds the prefix-sum Cdf array from m.
func PreprocessBinarySearch(m []*big.Int) *BinarySearch {
	cum := make([]*big.Int, len(m)+1)
	cum[0] = big.NewInt(0)
	for i, mi := range m {
		cum[i+1] = new(big.Int).Add(cum[i], mi)
	}
	return &BinarySearch{K: ceilLog2(cum[len(m)]), Z: cum[len(m)], Cdf: cum}
}

// Sample draws W uniformly in [0, 2^k), rejecting until W < Z, then
// returns 1 + the index j such that Cdf[j] <= W < Cdf[j+1].
func (bsr *BinarySearch) Sample(bs *bitstream.BitStream) (int, error) {
	for {
		w, err := readBits(bsr.K, bs)
		if err != nil {
			return 0, errors.Wrap(err, "rejection: binary search sample")
		}
		if w.Cmp(bsr.Z) < 0 {
			j := cdf.BinarySearchInterval(bsr.Cdf, w)
			if j < 0 {
				return 0, errors.New("rejection: binary search sample: w outside cdf range")
			}
			return j + 1, nil
		}
	}
}
