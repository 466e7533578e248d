package main

import (
	"io"
	"math/big"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/realForbis/ddgsampler/alias"
	"github.com/realForbis/ddgsampler/ddg"
	"github.com/realForbis/ddgsampler/ddgsampler"
	"github.com/realForbis/ddgsampler/interval"
	"github.com/realForbis/ddgsampler/ky"
	"github.com/realForbis/ddgsampler/rational"
	"github.com/realForbis/ddgsampler/rejection"
	"github.com/realForbis/ddgsampler/serialize"
)

var (
	constructP      string
	constructFamily string
	constructOut    string
)

func newConstructCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "construct",
		Short: "Preprocess a distribution into a sampler file",
		Long: "construct reads a distribution as comma-separated fractions (--p), " +
			"builds the requested sampler family (--family), and writes its " +
			"preprocessed form to --out in the matching on-disk format.",
		RunE: runConstruct,
	}
	cmd.Flags().StringVar(&constructP, "p", "", "distribution, e.g. \"1/7,6/7\" (required)")
	cmd.Flags().StringVar(&constructFamily, "family", "ky-matrix", "sampler family")
	cmd.Flags().StringVar(&constructOut, "out", "-", "output file (- for stdout)")
	cmd.MarkFlagRequired("p")
	return cmd
}

func runConstruct(cmd *cobra.Command, args []string) error {
	p, err := parseDistribution(constructP)
	if err != nil {
		return err
	}
	if err := rational.Validate(p); err != nil {
		return errors.Wrap(err, "ddgsample: construct")
	}
	family, err := ddgsampler.ByName(constructFamily)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if constructOut != "-" {
		f, err := os.Create(constructOut)
		if err != nil {
			return errors.Wrapf(err, "ddgsample: construct: create %s", constructOut)
		}
		defer f.Close()
		out = f
	}

	logger.Info("constructing sampler",
		zap.String("family", family.String()),
		zap.Int("outcomes", len(p)))

	return writeSampler(out, p, family)
}

// writeSampler builds the requested family from p and serializes the
// preprocessed structure in its on-disk format.
func writeSampler(out io.Writer, p []*big.Rat, family ddgsampler.Family) error {
	z := rational.CommonDenominator(p)

	switch family {
	case ddgsampler.KYEncoding, ddgsampler.KYMatrix, ddgsampler.KYMatrixCached:
		k, l := rational.BinaryExpansionLength(z)
		zkl := rational.Zkl(k, l)
		m := rational.Numerators(zkl, p)
		matrix := ddg.MakeDDGMatrix(m, k, l)
		switch family {
		case ddgsampler.KYEncoding:
			s, err := ky.NewEncodingSampler(matrix)
			if err != nil {
				return errors.Wrap(err, "ddgsample: construct ky-encoding")
			}
			return serialize.WriteKYEncoding(out, s, matrix.N, matrix.K)
		case ddgsampler.KYMatrixCached:
			return serialize.WriteKYMatrixCached(out, ky.NewCachedSampler(matrix))
		default:
			return serialize.WriteKYMatrix(out, matrix)
		}

	case ddgsampler.KYApproxEncoding, ddgsampler.KYApproxMatrix, ddgsampler.KYApproxMatrixCached:
		matrix := approxMatrix(p)
		switch family {
		case ddgsampler.KYApproxEncoding:
			s, err := ky.NewEncodingSampler(matrix)
			if err != nil {
				return errors.Wrap(err, "ddgsample: construct ky-approx-encoding")
			}
			return serialize.WriteKYEncoding(out, s, matrix.N, matrix.K)
		case ddgsampler.KYApproxMatrixCached:
			return serialize.WriteKYMatrixCached(out, ky.NewCachedSampler(matrix))
		default:
			return serialize.WriteKYMatrix(out, matrix)
		}

	case ddgsampler.RejectionUniform:
		m := rational.Numerators(z, p)
		return serialize.WriteRejectionUniform(out, m, maxBig(m))

	case ddgsampler.RejectionHash:
		m := rational.Numerators(z, p)
		h := rejection.PreprocessHashTable(m)
		return serialize.WriteRejectionHashTable(out, h)

	case ddgsampler.RejectionBinary:
		m := rational.Numerators(z, p)
		b := rejection.PreprocessBinarySearch(m)
		return serialize.WriteRejectionBinarySearch(out, b.K, b.Z, b.Cdf)

	case ddgsampler.RejectionEncoding, ddgsampler.RejectionMatrix, ddgsampler.RejectionMatrixCached:
		m := rational.Numerators(z, p)
		k := rational.CeilLog2(z)
		matrix, _, err := rejection.BuildAugmented(m, k, k)
		if err != nil {
			return errors.Wrap(err, "ddgsample: construct rejection-ky")
		}
		switch family {
		case ddgsampler.RejectionEncoding:
			s, err := ky.NewEncodingSampler(matrix)
			if err != nil {
				return errors.Wrap(err, "ddgsample: construct rejection-encoding")
			}
			return serialize.WriteKYEncoding(out, s, matrix.N, matrix.K)
		case ddgsampler.RejectionMatrixCached:
			// CachedSampler carries no outcome count of its own, so the
			// reject row index (always the augmented matrix's last row)
			// is written ahead of the ky_matrix_cached body.
			if _, err := io.WriteString(out, strconv.Itoa(matrix.N)+"\n"); err != nil {
				return errors.Wrap(err, "ddgsample: construct rejection-matrix-cached")
			}
			return serialize.WriteKYMatrixCached(out, ky.NewCachedSampler(matrix))
		default:
			return serialize.WriteKYMatrix(out, matrix)
		}

	case ddgsampler.IntervalBit:
		m := rational.Numerators(z, p)
		k := rational.CeilLog2(z) + intervalBitExtraBits
		s := interval.NewBitIntervalSampler(m, k)
		cdf := make([]*big.Int, len(s.J)+1)
		cdf[0] = big.NewInt(0)
		for i, iv := range s.J {
			cdf[i+1] = iv.Hi
		}
		return serialize.WriteRejectionBinarySearch(out, s.K, s.U, cdf)

	case ddgsampler.IntervalCDF:
		m := rational.Numerators(z, p)
		s := interval.NewCDFIntervalSampler(m)
		return serialize.WriteRejectionBinarySearch(out, rational.CeilLog2(s.Z), s.Z, s.Cdf)

	case ddgsampler.Alias:
		s, err := alias.Preprocess(p)
		if err != nil {
			return errors.Wrap(err, "ddgsample: construct alias")
		}
		return serialize.WriteAlias(out, s)

	default:
		return errors.Errorf("ddgsample: construct: unknown family %q", family)
	}
}

// intervalBitExtraBits mirrors ddgsampler's slack above ceil(log2 Z) when
// sizing the preprocessed bit-interval sampler's precision.
const intervalBitExtraBits = 16

// approxMatrix mirrors ddgsampler's unexported helper of the same name:
// it rounds p to float64 and expands the result to a pure power-of-two
// (k = l) DDG matrix via rational.DyadicApproximation.
func approxMatrix(p []*big.Rat) *ddg.Matrix {
	floats := make([]float64, len(p))
	for i, pi := range p {
		floats[i], _ = pi.Float64()
	}
	rows, k := rational.DyadicApproximation(floats)
	return &ddg.Matrix{Rows: rows, N: len(rows), K: k, L: k}
}

func maxBig(xs []*big.Int) *big.Int {
	best := xs[0]
	for _, x := range xs[1:] {
		if x.Cmp(best) > 0 {
			best = x
		}
	}
	return best
}
