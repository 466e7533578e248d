// Package alias implements the exact alias method (Walker/Devroye,
// O(1) sampling after an O(n) preprocessing pass, with exact
// per-column acceptance computed via rational arithmetic rather than
// floating-point q values.
package alias

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/realForbis/ddgsampler/bitstream"
	"github.com/realForbis/ddgsampler/rejection"
)

// Sampler holds the preprocessed alias table: Qs[l]/Ms[l] is the exact
// acceptance probability for column l, and J[l] is the alias outcome
// to return on rejection.
type Sampler struct {
	N  int
	Qs []*big.Int
	Ms []*big.Int
	J  []int
}

// Preprocess runs the alias preprocessing pass: q[l] = n*p[l]; indices with
// q<1 are paired against indices with q>=1, donating mass 1-q[l] from
// the greater bucket until every column has been resolved. Columns are
// processed via explicit LIFO worklists rather than Python's
// nondeterministic set.pop(), so construction is reproducible.
func Preprocess(p []*big.Rat) (*Sampler, error) {
	n := len(p)
	q := make([]*big.Rat, n)
	j := make([]int, n)
	var smaller, greater []int
	one := big.NewRat(1, 1)
	for l, pl := range p {
		q[l] = new(big.Rat).Mul(big.NewRat(int64(n), 1), pl)
		if q[l].Cmp(one) < 0 {
			smaller = append(smaller, l)
		} else {
			greater = append(greater, l)
		}
	}

	for len(smaller) > 0 {
		if len(greater) == 0 {
			return nil, errors.New("alias: preprocess: greater bucket exhausted with smaller non-empty")
		}
		k := greater[len(greater)-1]
		greater = greater[:len(greater)-1]
		l := smaller[len(smaller)-1]
		smaller = smaller[:len(smaller)-1]

		j[l] = k
		q[k] = new(big.Rat).Sub(q[k], new(big.Rat).Sub(one, q[l]))
		if q[k].Cmp(one) < 0 {
			smaller = append(smaller, k)
		} else {
			greater = append(greater, k)
		}
	}

	qs := make([]*big.Int, n)
	ms := make([]*big.Int, n)
	for l, ql := range q {
		qs[l] = new(big.Int).Set(ql.Num())
		ms[l] = new(big.Int).Set(ql.Denom())
	}
	return &Sampler{N: n, Qs: qs, Ms: ms, J: j}, nil
}

// Sample draws a uniform column via rejection.SampleFDR, then accepts
// it with its exact probability Qs[r-1]/Ms[r-1] via
// rejection.SampleInversionBernoulli; on reject it returns the alias
// outcome J[r-1]+1.
func (s *Sampler) Sample(bs *bitstream.BitStream) (int, error) {
	r, err := rejection.SampleFDR(s.N, bs)
	if err != nil {
		return 0, err
	}
	accept, err := rejection.SampleInversionBernoulli(s.Qs[r-1], s.Ms[r-1], bs)
	if err != nil {
		return 0, err
	}
	if accept {
		return r, nil
	}
	return s.J[r-1] + 1, nil
}
