// Package serialize reads and writes the whitespace-separated text
// formats: one format per sampler family, plus a distribution
// file capturing a normalized target and its entropy. Every format is
// plain ASCII, base-10 integers, one section per line.
package serialize

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// tokenReader pulls whitespace-separated tokens across line
// boundaries, matching the loose layout the formats use in practice.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return &tokenReader{sc: sc}
}

func (t *tokenReader) next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", errors.Wrap(err, "serialize: read token")
		}
		return "", errors.New("serialize: unexpected end of input")
	}
	return t.sc.Text(), nil
}

func (t *tokenReader) int() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(err, "serialize: parse int %q", tok)
	}
	return v, nil
}

func (t *tokenReader) bigInt() (*big.Int, error) {
	tok, err := t.next()
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(tok, 10)
	if !ok {
		return nil, errors.Errorf("serialize: parse big.Int %q", tok)
	}
	return v, nil
}

func (t *tokenReader) float() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "serialize: parse float %q", tok)
	}
	return v, nil
}

// writeIntArray writes `len(xs) xs[0] xs[1] ... \n`: a leading count,
// then the elements, all on one line.
func writeIntArray(w io.Writer, xs []int) error {
	if _, err := fmt.Fprintf(w, "%d", len(xs)); err != nil {
		return errors.Wrap(err, "serialize: write array length")
	}
	for _, x := range xs {
		if _, err := fmt.Fprintf(w, " %d", x); err != nil {
			return errors.Wrap(err, "serialize: write array element")
		}
	}
	_, err := fmt.Fprint(w, "\n")
	return errors.Wrap(err, "serialize: write array newline")
}

func writeBigIntArray(w io.Writer, xs []*big.Int) error {
	if _, err := fmt.Fprintf(w, "%d", len(xs)); err != nil {
		return errors.Wrap(err, "serialize: write array length")
	}
	for _, x := range xs {
		if _, err := fmt.Fprintf(w, " %s", x.String()); err != nil {
			return errors.Wrap(err, "serialize: write array element")
		}
	}
	_, err := fmt.Fprint(w, "\n")
	return errors.Wrap(err, "serialize: write array newline")
}

func (t *tokenReader) intArray() ([]int, error) {
	n, err := t.int()
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i := range out {
		if out[i], err = t.int(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// writeLine writes a sequence of ints as a single space-separated line.
func writeLine(w io.Writer, xs ...int) error {
	for i, x := range xs {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%d", sep, x); err != nil {
			return errors.Wrap(err, "serialize: write line")
		}
	}
	_, err := fmt.Fprint(w, "\n")
	return errors.Wrap(err, "serialize: write line newline")
}

// writeIntRow writes a bare row of ints (no leading length), used for
// the fixed-width matrix rows of the ky_matrix/ky_matrix_cached formats.
func writeIntRow(w io.Writer, row []int) error {
	for i, x := range row {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%d", sep, x); err != nil {
			return errors.Wrap(err, "serialize: write row element")
		}
	}
	_, err := fmt.Fprint(w, "\n")
	return errors.Wrap(err, "serialize: write row newline")
}

// writeBigLine writes a sequence of big.Ints as a single
// space-separated line.
func writeBigLine(w io.Writer, xs ...*big.Int) error {
	for i, x := range xs {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%s", sep, x.String()); err != nil {
			return errors.Wrap(err, "serialize: write line")
		}
	}
	_, err := fmt.Fprint(w, "\n")
	return errors.Wrap(err, "serialize: write line newline")
}

func (t *tokenReader) bigIntArray() ([]*big.Int, error) {
	n, err := t.int()
	if err != nil {
		return nil, err
	}
	out := make([]*big.Int, n)
	for i := range out {
		if out[i], err = t.bigInt(); err != nil {
			return nil, err
		}
	}
	return out, nil
}
