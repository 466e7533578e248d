package serialize

import (
	"io"
	"math/big"

	"github.com/realForbis/ddgsampler/rejection"
)

// WriteRejectionUniform writes the rejection_uniform format: `n M\n`
// then `n M_0 … M_{n−1}\n`.
func WriteRejectionUniform(w io.Writer, m []*big.Int, max *big.Int) error {
	if err := writeBigLine(w, big.NewInt(int64(len(m))), max); err != nil {
		return err
	}
	return writeBigIntArray(w, m)
}

// ReadRejectionUniform reads a rejection_uniform file back into its
// numerator vector and max value.
func ReadRejectionUniform(r io.Reader) (m []*big.Int, max *big.Int, err error) {
	t := newTokenReader(r)
	if _, err = t.int(); err != nil { // n (redundant with the array length)
		return nil, nil, err
	}
	if max, err = t.bigInt(); err != nil {
		return nil, nil, err
	}
	if m, err = t.bigIntArray(); err != nil {
		return nil, nil, err
	}
	return m, max, nil
}

// WriteRejectionHashTable writes the rejection_hash_table format:
// `k Z\n` then `Z T_0 … T_{Z−1}\n`.
func WriteRejectionHashTable(w io.Writer, h *rejection.HashTable) error {
	if err := writeBigLine(w, big.NewInt(int64(h.K)), h.Z); err != nil {
		return err
	}
	return writeIntArray(w, h.T)
}

// ReadRejectionHashTable reads a rejection_hash_table file back into a
// HashTable.
func ReadRejectionHashTable(r io.Reader) (*rejection.HashTable, error) {
	t := newTokenReader(r)
	k, err := t.int()
	if err != nil {
		return nil, err
	}
	z, err := t.bigInt()
	if err != nil {
		return nil, err
	}
	tbl, err := t.intArray()
	if err != nil {
		return nil, err
	}
	return &rejection.HashTable{K: k, Z: z, T: tbl}, nil
}

// WriteRejectionBinarySearch writes the shared rejection_binary_search
// / interval format: `k Z\n` then `n+1 cdf_0 … cdf_n\n`. The same
// writer serves rejection.BinarySearch and the integer-CDF interval
// sampler, since both carry just (k, Z, cdf).
func WriteRejectionBinarySearch(w io.Writer, k int, z *big.Int, cdf []*big.Int) error {
	if err := writeBigLine(w, big.NewInt(int64(k)), z); err != nil {
		return err
	}
	return writeBigIntArray(w, cdf)
}

// ReadRejectionBinarySearch reads the shared rejection_binary_search /
// interval format back into its (k, Z, cdf) triple.
func ReadRejectionBinarySearch(r io.Reader) (k int, z *big.Int, cdf []*big.Int, err error) {
	t := newTokenReader(r)
	if k, err = t.int(); err != nil {
		return 0, nil, nil, err
	}
	if z, err = t.bigInt(); err != nil {
		return 0, nil, nil, err
	}
	if cdf, err = t.bigIntArray(); err != nil {
		return 0, nil, nil, err
	}
	return k, z, cdf, nil
}
