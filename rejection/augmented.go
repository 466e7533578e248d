package rejection

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/realForbis/ddgsampler/bitstream"
	"github.com/realForbis/ddgsampler/ddg"
	"github.com/realForbis/ddgsampler/ky"
	"github.com/realForbis/ddgsampler/rational"
)

// kySampler is satisfied by any of the three ky sampler forms.
type kySampler interface {
	Sample(bs *bitstream.BitStream) (int, error)
}

// Augmented wraps a KY sampler built over m with one extra "reject"
// outcome of mass Zkl(k,l) - sum(m) appended: any draw of the
// extra outcome triggers a redraw, so the distribution seen by callers
// is exactly m/sum(m) with no approximation.
type Augmented struct {
	inner  kySampler
	reject int
}

// NewAugmentedMatrix builds the augmented distribution and wraps it in
// a ky.MatrixSampler.
func NewAugmentedMatrix(m []*big.Int, k, l int) (*Augmented, error) {
	p, reject, err := BuildAugmented(m, k, l)
	if err != nil {
		return nil, err
	}
	return &Augmented{inner: ky.NewMatrixSampler(p), reject: reject}, nil
}

// NewAugmentedCached builds the augmented distribution and wraps it in
// a ky.CachedSampler.
func NewAugmentedCached(m []*big.Int, k, l int) (*Augmented, error) {
	p, reject, err := BuildAugmented(m, k, l)
	if err != nil {
		return nil, err
	}
	return &Augmented{inner: ky.NewCachedSampler(p), reject: reject}, nil
}

// NewAugmentedEncoding builds the augmented distribution and wraps it
// in a ky.EncodingSampler.
func NewAugmentedEncoding(m []*big.Int, k, l int) (*Augmented, error) {
	p, reject, err := BuildAugmented(m, k, l)
	if err != nil {
		return nil, err
	}
	enc, err := ky.NewEncodingSampler(p)
	if err != nil {
		return nil, errors.Wrap(err, "rejection: augmented encoding")
	}
	return &Augmented{inner: enc, reject: reject}, nil
}

// WrapAugmented wraps an already-constructed KY sampler (e.g. one
// reloaded from disk) as an Augmented sampler that redraws on reject.
func WrapAugmented(inner kySampler, reject int) *Augmented {
	return &Augmented{inner: inner, reject: reject}
}

// BuildAugmented appends a synthetic reject outcome of mass Zkl(k,l) -
// sum(m) and returns the resulting DDG matrix, for serialization or for
// wrapping in a KY sampler; the reject outcome is always the last row.
func BuildAugmented(m []*big.Int, k, l int) (*ddg.Matrix, int, error) {
	z := new(big.Int)
	for _, mi := range m {
		z.Add(z, mi)
	}
	zkl := rational.Zkl(k, l)
	mReject := new(big.Int).Sub(zkl, z)
	if mReject.Sign() < 0 {
		return nil, 0, errors.New("rejection: augmented: sum(m) exceeds Zkl(k,l)")
	}
	augmented := make([]*big.Int, len(m)+1)
	copy(augmented, m)
	augmented[len(m)] = mReject
	p := ddg.MakeDDGMatrix(augmented, k, l)
	return p, len(m) + 1, nil
}

// Sample redraws from the augmented KY sampler until it returns an
// outcome other than the synthetic reject outcome.
func (a *Augmented) Sample(bs *bitstream.BitStream) (int, error) {
	for {
		r, err := a.inner.Sample(bs)
		if err != nil {
			return 0, err
		}
		if r != a.reject {
			return r, nil
		}
	}
}
