package ddgsampler

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/realForbis/ddgsampler/alias"
	"github.com/realForbis/ddgsampler/bitstream"
	"github.com/realForbis/ddgsampler/ddg"
	"github.com/realForbis/ddgsampler/interval"
	"github.com/realForbis/ddgsampler/ky"
	"github.com/realForbis/ddgsampler/rational"
	"github.com/realForbis/ddgsampler/rejection"
)

// Sampler is satisfied by every construction this package returns:
// one Sample call draws a single 1-based outcome from a single
// BitStream.
type Sampler interface {
	Sample(bs *bitstream.BitStream) (int, error)
}

// intervalBitExtraBits is the slack added on top of ceil(log2 Z) when
// sizing the preprocessed bit-interval sampler's precision: since that
// variant is an approximation (rounded integer endpoints) rather than
// an exact construction, a handful of extra bits keeps the rounding
// error far below the target distribution's own granularity.
const intervalBitExtraBits = 16

// Construct validates p and builds the requested sampler Family.
func Construct(p []*big.Rat, family Family) (Sampler, error) {
	if err := rational.Validate(p); err != nil {
		return nil, errors.Wrap(err, "ddgsampler: construct")
	}
	z := rational.CommonDenominator(p)

	switch family {
	case KYEncoding, KYMatrix, KYMatrixCached:
		matrix := dyadicMatrix(p, z)
		switch family {
		case KYEncoding:
			s, err := ky.NewEncodingSampler(matrix)
			if err != nil {
				return nil, errors.Wrap(err, "ddgsampler: construct ky-encoding")
			}
			return s, nil
		case KYMatrixCached:
			return ky.NewCachedSampler(matrix), nil
		default:
			return ky.NewMatrixSampler(matrix), nil
		}

	case KYApproxEncoding, KYApproxMatrix, KYApproxMatrixCached:
		matrix := approxMatrix(p)
		switch family {
		case KYApproxEncoding:
			s, err := ky.NewEncodingSampler(matrix)
			if err != nil {
				return nil, errors.Wrap(err, "ddgsampler: construct ky-approx-encoding")
			}
			return s, nil
		case KYApproxMatrixCached:
			return ky.NewCachedSampler(matrix), nil
		default:
			return ky.NewMatrixSampler(matrix), nil
		}

	case RejectionUniform:
		m := rational.Numerators(z, p)
		return rejection.PreprocessUniform(m), nil

	case RejectionHash:
		m := rational.Numerators(z, p)
		return rejection.PreprocessHashTable(m), nil

	case RejectionBinary:
		m := rational.Numerators(z, p)
		return rejection.PreprocessBinarySearch(m), nil

	case RejectionEncoding, RejectionMatrix, RejectionMatrixCached:
		m := rational.Numerators(z, p)
		k := rational.CeilLog2(z)
		switch family {
		case RejectionEncoding:
			return rejection.NewAugmentedEncoding(m, k, k)
		case RejectionMatrixCached:
			return rejection.NewAugmentedCached(m, k, k)
		default:
			return rejection.NewAugmentedMatrix(m, k, k)
		}

	case IntervalBit:
		m := rational.Numerators(z, p)
		k := rational.CeilLog2(z) + intervalBitExtraBits
		return interval.NewBitIntervalSampler(m, k), nil

	case IntervalCDF:
		m := rational.Numerators(z, p)
		return interval.NewCDFIntervalSampler(m), nil

	case Alias:
		return alias.Preprocess(p)

	default:
		return nil, errors.Errorf("ddgsampler: construct: unknown family %d", family)
	}
}

// dyadicMatrix builds the (M,k,l)-system DDG matrix shared by the
// three KY sampler forms: k,l come from Z's binary expansion length,
// and the numerators are scaled to Zkl(k,l) rather than Z itself so
// every row is an exact (k,l)-system bit pattern.
func dyadicMatrix(p []*big.Rat, z *big.Int) *ddg.Matrix {
	k, l := rational.BinaryExpansionLength(z)
	zkl := rational.Zkl(k, l)
	m := rational.Numerators(zkl, p)
	return ddg.MakeDDGMatrix(m, k, l)
}

// approxMatrix builds the dyadic-approximation DDG matrix shared by
// the three approximate-KY sampler forms: p is rounded to its nearest
// IEEE-754 float64 representation first (the approximation this family
// trades exactness for), then expanded to a pure power-of-two (k = l)
// bit matrix by rational.DyadicApproximation.
func approxMatrix(p []*big.Rat) *ddg.Matrix {
	floats := make([]float64, len(p))
	for i, pi := range p {
		floats[i], _ = pi.Float64()
	}
	rows, k := rational.DyadicApproximation(floats)
	return &ddg.Matrix{Rows: rows, N: len(rows), K: k, L: k}
}
