// Package ky implements the three Knuth-Yao discrete distribution
// generator sample forms sharing the same underlying DDG structure:
// the packed tree encoding, the raw matrix walk, and the
// Hamming-cached matrix walk.
package ky

import (
	"github.com/realForbis/ddgsampler/bitstream"
	"github.com/realForbis/ddgsampler/ddg"
)

// EncodingSampler walks a packed DDG tree encoding: at each step it
// reads a bit, follows the corresponding offset, and stops when it
// lands on a negative (leaf) entry.
type EncodingSampler struct {
	Enc []int
}

// NewEncodingSampler builds the DDG tree for p and packs it.
func NewEncodingSampler(p *ddg.Matrix) (*EncodingSampler, error) {
	root, err := ddg.MakeDDGTree(p)
	if err != nil {
		return nil, err
	}
	return &EncodingSampler{Enc: ddg.PackTree(root)}, nil
}

// Sample draws one outcome, 1-based.
func (s *EncodingSampler) Sample(bs *bitstream.BitStream) (int, error) {
	if len(s.Enc) == 1 && s.Enc[0] < 0 {
		return -s.Enc[0], nil
	}
	c := 0
	for {
		b, err := bs.NextBit()
		if err != nil {
			return 0, err
		}
		c = s.Enc[c+b]
		if c < 0 {
			return -c, nil
		}
	}
}
