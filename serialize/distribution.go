package serialize

import (
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// WriteDistribution writes the distribution file format: `Z\n`,
// `n M_0 … M_{n−1}\n`, `entropy\n`.
func WriteDistribution(w io.Writer, z *big.Int, m []*big.Int, entropyBits float64) error {
	if _, err := fmt.Fprintf(w, "%s\n", z.String()); err != nil {
		return errors.Wrap(err, "serialize: write distribution Z")
	}
	if err := writeBigIntArray(w, m); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%g\n", entropyBits); err != nil {
		return errors.Wrap(err, "serialize: write distribution entropy")
	}
	return nil
}

// ReadDistribution reads a distribution file back into its common
// denominator, numerator vector, and entropy in bits.
func ReadDistribution(r io.Reader) (z *big.Int, m []*big.Int, entropyBits float64, err error) {
	t := newTokenReader(r)
	if z, err = t.bigInt(); err != nil {
		return nil, nil, 0, err
	}
	if m, err = t.bigIntArray(); err != nil {
		return nil, nil, 0, err
	}
	if entropyBits, err = t.float(); err != nil {
		return nil, nil, 0, err
	}
	return z, m, entropyBits, nil
}
