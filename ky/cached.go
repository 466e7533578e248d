package ky

import (
	"github.com/realForbis/ddgsampler/bitstream"
	"github.com/realForbis/ddgsampler/ddg"
)

// CachedSampler is the Hamming-compressed matrix form: semantically
// equivalent to MatrixSampler but it consults the per-column Hamming
// weight and row-index table instead of scanning every row of P.
type CachedSampler struct {
	H []int
	T [][]int
	K int
	L int
}

// NewCachedSampler derives the Hamming cache from p.
func NewCachedSampler(p *ddg.Matrix) *CachedSampler {
	return &CachedSampler{
		H: ddg.HammingVector(p),
		T: ddg.HammingMatrix(p),
		K: p.K,
		L: p.L,
	}
}

// Sample draws one outcome, 1-based.
func (s *CachedSampler) Sample(bs *bitstream.BitStream) (int, error) {
	d := 0
	c := 0
	for {
		b, err := bs.NextBit()
		if err != nil {
			return 0, err
		}
		d = 2*d + (1 - b)
		if d < s.H[c] {
			return s.T[d][c] + 1, nil
		}
		d -= s.H[c]
		if c == s.K-1 {
			c = s.L
		} else {
			c++
		}
	}
}
