package rejection

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/realForbis/ddgsampler/bitstream"
)

// HashTable is the preprocessed form for the hash-table rejection
// sampler: T[w] is the 0-based outcome for every integer
// 0 <= w < Z, indexed directly by a k = ceil(log2 Z) bit draw.
type HashTable struct {
	K int
	Z *big.Int
	T []int
}

// PreprocessHashTable lays out T by walking the cumulative sums of m:
// outcome i occupies the m[i] consecutive slots starting at sum(m[:i]).
func PreprocessHashTable(m []*big.Int) *HashTable {
	z := new(big.Int)
	for _, mi := range m {
		z.Add(z, mi)
	}
	k := ceilLog2(z)
	t := make([]int, z.Int64())
	pos := int64(0)
	for i, mi := range m {
		for j := int64(0); j < mi.Int64(); j++ {
			t[pos] = i
			pos++
		}
	}
	return &HashTable{K: k, Z: z, T: t}
}

// Sample draws W uniformly in [0, 2^k) and rejects until W < Z,
// returning 1 + T[W].
func (h *HashTable) Sample(bs *bitstream.BitStream) (int, error) {
	for {
		w, err := readBits(h.K, bs)
		if err != nil {
			return 0, errors.Wrap(err, "rejection: hash table sample")
		}
		if w.Cmp(h.Z) < 0 {
			return h.T[w.Int64()] + 1, nil
		}
	}
}
