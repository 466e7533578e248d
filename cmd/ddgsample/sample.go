package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/realForbis/ddgsampler/bitstream"
	"github.com/realForbis/ddgsampler/ddgsampler"
	"github.com/realForbis/ddgsampler/interval"
	"github.com/realForbis/ddgsampler/ky"
	"github.com/realForbis/ddgsampler/rejection"
	"github.com/realForbis/ddgsampler/serialize"
)

var (
	sampleFamily  string
	sampleIn      string
	sampleOut     string
	sampleCount   int
	sampleEntropy string
	sampleSeed    int64
)

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw outcomes from a preprocessed sampler file",
		Long: "sample reloads a sampler preprocessed by construct (--in, --family) " +
			"and draws --count outcomes from it, one bitstream shared across " +
			"all draws, using the chosen --entropy source.",
		RunE: runSample,
	}
	cmd.Flags().StringVar(&sampleFamily, "family", "ky-matrix", "sampler family")
	cmd.Flags().StringVar(&sampleIn, "in", "-", "input file (- for stdin)")
	cmd.Flags().StringVar(&sampleOut, "out", "-", "output file (- for stdout)")
	cmd.Flags().IntVar(&sampleCount, "count", 1, "number of outcomes to draw")
	cmd.Flags().StringVar(&sampleEntropy, "entropy", "math-rand", "entropy source: crypto, math-rand, or shake")
	cmd.Flags().Int64Var(&sampleSeed, "seed", 1, "seed for math-rand/shake entropy sources")
	return cmd
}

func runSample(cmd *cobra.Command, args []string) error {
	family, err := ddgsampler.ByName(sampleFamily)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if sampleIn != "-" {
		f, err := os.Open(sampleIn)
		if err != nil {
			return errors.Wrapf(err, "ddgsample: sample: open %s", sampleIn)
		}
		defer f.Close()
		in = f
	}

	s, err := loadSampler(family, in)
	if err != nil {
		return errors.Wrap(err, "ddgsample: sample: load")
	}

	src, err := newEntropySource(sampleEntropy, sampleSeed)
	if err != nil {
		return err
	}
	bs := bitstream.New(1, src)

	out := cmd.OutOrStdout()
	if sampleOut != "-" {
		f, err := os.Create(sampleOut)
		if err != nil {
			return errors.Wrapf(err, "ddgsample: sample: create %s", sampleOut)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	logger.Info("sampling",
		zap.String("family", family.String()),
		zap.Int("count", sampleCount),
		zap.String("entropy", sampleEntropy))

	for i := 0; i < sampleCount; i++ {
		r, err := s.Sample(bs)
		if err != nil {
			return errors.Wrap(err, "ddgsample: sample")
		}
		if _, err := fmt.Fprintln(w, r); err != nil {
			return errors.Wrap(err, "ddgsample: sample: write")
		}
	}
	return nil
}

// loadSampler reconstructs a Sampler from the on-disk format matching
// family, as produced by construct for the same family.
func loadSampler(family ddgsampler.Family, r io.Reader) (ddgsampler.Sampler, error) {
	switch family {
	case ddgsampler.KYEncoding, ddgsampler.KYApproxEncoding:
		s, _, _, err := serialize.ReadKYEncoding(r)
		return s, err

	case ddgsampler.KYMatrix, ddgsampler.KYApproxMatrix:
		m, err := serialize.ReadKYMatrix(r)
		if err != nil {
			return nil, err
		}
		return ky.NewMatrixSampler(m), nil

	case ddgsampler.KYMatrixCached, ddgsampler.KYApproxMatrixCached:
		s, _, err := serialize.ReadKYMatrixCached(r)
		return s, err

	case ddgsampler.RejectionUniform:
		m, _, err := serialize.ReadRejectionUniform(r)
		if err != nil {
			return nil, err
		}
		return rejection.PreprocessUniform(m), nil

	case ddgsampler.RejectionHash:
		return serialize.ReadRejectionHashTable(r)

	case ddgsampler.RejectionBinary:
		k, z, cdf, err := serialize.ReadRejectionBinarySearch(r)
		if err != nil {
			return nil, err
		}
		return &rejection.BinarySearch{K: k, Z: z, Cdf: cdf}, nil

	case ddgsampler.RejectionEncoding:
		s, n, _, err := serialize.ReadKYEncoding(r)
		if err != nil {
			return nil, err
		}
		return rejection.WrapAugmented(s, n), nil

	case ddgsampler.RejectionMatrix:
		m, err := serialize.ReadKYMatrix(r)
		if err != nil {
			return nil, err
		}
		return rejection.WrapAugmented(ky.NewMatrixSampler(m), m.N), nil

	case ddgsampler.RejectionMatrixCached:
		t := newIntLineReader(r)
		n, err := t.int()
		if err != nil {
			return nil, err
		}
		s, _, err := serialize.ReadKYMatrixCached(t.br)
		if err != nil {
			return nil, err
		}
		return rejection.WrapAugmented(s, n), nil

	case ddgsampler.IntervalBit:
		k, u, cdf, err := serialize.ReadRejectionBinarySearch(r)
		if err != nil {
			return nil, err
		}
		return interval.NewBitIntervalSamplerFromCDF(k, u, cdf), nil

	case ddgsampler.IntervalCDF:
		_, z, cdf, err := serialize.ReadRejectionBinarySearch(r)
		if err != nil {
			return nil, err
		}
		return &interval.CDFIntervalSampler{Z: z, Cdf: cdf}, nil

	case ddgsampler.Alias:
		return serialize.ReadAlias(r)

	default:
		return nil, errors.Errorf("ddgsample: sample: unknown family %q", family)
	}
}

// intLineReader reads a single whitespace-delimited integer off the
// front of r, leaving the rest of the stream for a further reader; used
// to peel the reject-index line construct prepends ahead of a
// ky_matrix_cached body for the rejection-matrix-cached family.
type intLineReader struct {
	br *bufio.Reader
}

func newIntLineReader(r io.Reader) *intLineReader {
	return &intLineReader{br: bufio.NewReader(r)}
}

func (t *intLineReader) int() (int, error) {
	var n int
	if _, err := fmt.Fscan(t.br, &n); err != nil {
		return 0, errors.Wrap(err, "ddgsample: read reject index")
	}
	return n, nil
}
