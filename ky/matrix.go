package ky

import (
	"github.com/realForbis/ddgsampler/bitstream"
	"github.com/realForbis/ddgsampler/ddg"
)

// MatrixSampler walks the DDG matrix directly, without precomputing a
// tree: d accumulates the unsigned value of the
// bits read so far (inverted, MSB-first) and is reduced by each row's
// bit at the current column until it goes negative, at which point the
// row that caused it is the outcome.
type MatrixSampler struct {
	P *ddg.Matrix
}

// NewMatrixSampler wraps an already-built DDG matrix.
func NewMatrixSampler(p *ddg.Matrix) *MatrixSampler {
	return &MatrixSampler{P: p}
}

// Sample draws one outcome, 1-based.
func (s *MatrixSampler) Sample(bs *bitstream.BitStream) (int, error) {
	d := 0
	c := 0
	for {
		b, err := bs.NextBit()
		if err != nil {
			return 0, err
		}
		d = 2*d + (1 - b)
		for r := 0; r < s.P.N; r++ {
			d -= s.P.Rows[r][c]
			if d == -1 {
				return r + 1, nil
			}
		}
		if c == s.P.K-1 {
			c = s.P.L
		} else {
			c++
		}
	}
}
