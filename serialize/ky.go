package serialize

import (
	"io"

	"github.com/pkg/errors"

	"github.com/realForbis/ddgsampler/ddg"
	"github.com/realForbis/ddgsampler/ky"
)

// WriteKYEncoding writes the ky_encoding format: `n k\n` then the
// packed encoding array.
func WriteKYEncoding(w io.Writer, s *ky.EncodingSampler, n, k int) error {
	if err := writeLine(w, n, k); err != nil {
		return err
	}
	return writeIntArray(w, s.Enc)
}

// ReadKYEncoding reads a ky_encoding file back into an EncodingSampler
// plus its (n, k) metadata.
func ReadKYEncoding(r io.Reader) (s *ky.EncodingSampler, n, k int, err error) {
	t := newTokenReader(r)
	if n, err = t.int(); err != nil {
		return nil, 0, 0, err
	}
	if k, err = t.int(); err != nil {
		return nil, 0, 0, err
	}
	enc, err := t.intArray()
	if err != nil {
		return nil, 0, 0, err
	}
	return &ky.EncodingSampler{Enc: enc}, n, k, nil
}

// WriteKYMatrix writes the ky_matrix format: `k l\n` then `n k\n`,
// then n rows of k bits each.
func WriteKYMatrix(w io.Writer, p *ddg.Matrix) error {
	if err := writeLine(w, p.K, p.L); err != nil {
		return err
	}
	if err := writeLine(w, p.N, p.K); err != nil {
		return err
	}
	for _, row := range p.Rows {
		if err := writeIntRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// ReadKYMatrix reads a ky_matrix file back into a ddg.Matrix.
func ReadKYMatrix(r io.Reader) (*ddg.Matrix, error) {
	t := newTokenReader(r)
	k, err := t.int()
	if err != nil {
		return nil, err
	}
	l, err := t.int()
	if err != nil {
		return nil, err
	}
	n, err := t.int()
	if err != nil {
		return nil, err
	}
	kAgain, err := t.int()
	if err != nil {
		return nil, err
	}
	if kAgain != k {
		return nil, errors.Errorf("serialize: ky_matrix k mismatch: %d vs %d", k, kAgain)
	}
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, k)
		for j := range rows[i] {
			if rows[i][j], err = t.int(); err != nil {
				return nil, err
			}
		}
	}
	return &ddg.Matrix{Rows: rows, N: n, K: k, L: l}, nil
}

// WriteKYMatrixCached writes the ky_matrix_cached format: `k l\n` then
// `len h_0 … h_{k−1}\n`, then `rows k\n`, then rows lines of k
// integers (T); rows is the Hamming table's row count (max column
// weight), not the outcome count.
func WriteKYMatrixCached(w io.Writer, s *ky.CachedSampler) error {
	if err := writeLine(w, s.K, s.L); err != nil {
		return err
	}
	if err := writeIntArray(w, s.H); err != nil {
		return err
	}
	if err := writeLine(w, len(s.T), s.K); err != nil {
		return err
	}
	for _, row := range s.T {
		if err := writeIntRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// ReadKYMatrixCached reads a ky_matrix_cached file back into a
// CachedSampler plus T's row count.
func ReadKYMatrixCached(r io.Reader) (s *ky.CachedSampler, rows int, err error) {
	t := newTokenReader(r)
	k, err := t.int()
	if err != nil {
		return nil, 0, err
	}
	l, err := t.int()
	if err != nil {
		return nil, 0, err
	}
	h, err := t.intArray()
	if err != nil {
		return nil, 0, err
	}
	if rows, err = t.int(); err != nil {
		return nil, 0, err
	}
	kAgain, err := t.int()
	if err != nil {
		return nil, 0, err
	}
	if kAgain != k {
		return nil, 0, errors.Errorf("serialize: ky_matrix_cached k mismatch: %d vs %d", k, kAgain)
	}
	tbl := make([][]int, rows)
	for i := range tbl {
		tbl[i] = make([]int, k)
		for j := range tbl[i] {
			if tbl[i][j], err = t.int(); err != nil {
				return nil, 0, err
			}
		}
	}
	return &ky.CachedSampler{H: h, T: tbl, K: k, L: l}, rows, nil
}
