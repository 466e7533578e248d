// Package rejection implements the rejection-based sampler family:
// uniform/fdr with exact Bernoulli acceptance, a hash-table sampler, a
// binary-search-on-CDF sampler, and KY-over-an-augmented-distribution
// variants. The hash-table, binary-search and KY-over-augmented variants
// reject with probability 1 - Z/2^k per trial, where k = ceil(log2 Z);
// the uniform/fdr variant rejects with probability 1 - Z/(n*max(M)).
// Either way the trial count is geometrically bounded.
package rejection

import "github.com/realForbis/ddgsampler/bitstream"

// SampleFDR draws a uniform outcome in {1,...,n} using Lumbroso's
// entropy-optimal algorithm: it doubles a running (v,c) pair
// per bit until v >= n, accepting c+1 if it falls within [0,n) and
// otherwise "folding" the excess back for the next round.
func SampleFDR(n int, bs *bitstream.BitStream) (int, error) {
	v, c := 1, 0
	for {
		b, err := bs.NextBit()
		if err != nil {
			return 0, err
		}
		v = 2 * v
		c = 2*c + b
		if n <= v {
			if c < n {
				return c + 1, nil
			}
			v -= n
			c -= n
		}
	}
}
