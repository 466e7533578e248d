// Package ddg builds the Knuth-Yao discrete distribution generator
// matrix and tree from a reduced (M, k, l) triple, plus their packed
// and Hamming-compressed derived forms.
package ddg

import (
	"math/big"

	"github.com/realForbis/ddgsampler/rational"
)

// Matrix is the n x K bit matrix P where row i is the (k,l)-system
// binary expansion of M_i; row i also serves as the outcome label for
// row i (1-based in every exported sample API).
type Matrix struct {
	Rows [][]int
	N    int
	K    int
	L    int
}

// MakeDDGMatrix applies rational.ReduceFractions to (M,k,l) and emits
// the resulting n x k bit matrix.
func MakeDDGMatrix(m []*big.Int, k, l int) *Matrix {
	rm, rk, rl := rational.ReduceFractions(m, k, l)
	rows := make([][]int, len(rm))
	for i, mi := range rm {
		rows[i] = rational.FracToBits(mi, rk, rl)
	}
	return &Matrix{Rows: rows, N: len(rm), K: rk, L: rl}
}

// Column returns the j-th column of P as a slice of n bits.
func (p *Matrix) Column(j int) []int {
	col := make([]int, p.N)
	for i, row := range p.Rows {
		col[i] = row[j]
	}
	return col
}
