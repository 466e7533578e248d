package ddg

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigs(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

func TestMakeDDGMatrixShape(t *testing.T) {
	p := MakeDDGMatrix(bigs(3, 2, 1, 7, 2, 1), 4, 4)
	require.Equal(t, 6, p.N)
	require.Equal(t, 4, p.K)
	for _, row := range p.Rows {
		require.Len(t, row, p.K)
	}
}

func TestHammingVectorMatchesColumnSums(t *testing.T) {
	p := MakeDDGMatrix(bigs(3, 2, 1, 7, 2, 1), 4, 4)
	h := HammingVector(p)
	for j := 0; j < p.K; j++ {
		sum := 0
		for i := 0; i < p.N; i++ {
			sum += p.Rows[i][j]
		}
		assert.Equal(t, sum, h[j])
	}
}

func TestHammingMatrixIndexesSetRows(t *testing.T) {
	p := MakeDDGMatrix(bigs(3, 2, 1, 7, 2, 1), 4, 4)
	h := HammingVector(p)
	tbl := HammingMatrix(p)
	for j := 0; j < p.K; j++ {
		var want []int
		for i := 0; i < p.N; i++ {
			if p.Rows[i][j] == 1 {
				want = append(want, i)
			}
		}
		require.Equal(t, h[j], len(want))
		for d := 0; d < h[j]; d++ {
			assert.Equal(t, want[d], tbl[d][j])
		}
	}
}

func TestMakeDDGTreeSingleOutcome(t *testing.T) {
	p := MakeDDGMatrix(bigs(1), 1, 1)
	root, err := MakeDDGTree(p)
	require.NoError(t, err)
	assert.True(t, root.Leaf)
	assert.Equal(t, 1, root.Label)
	enc := PackTree(root)
	assert.Equal(t, []int{-1}, enc)
}

func TestMakeDDGTreeDyadicLeafHistogram(t *testing.T) {
	p := MakeDDGMatrix(bigs(3, 2, 1, 7, 2, 1), 4, 4)
	root, err := MakeDDGTree(p)
	require.NoError(t, err)
	hist := make([]int, p.N)
	walkAll(root, 0, 4, &hist)
	assert.Equal(t, []int{3, 2, 1, 7, 2, 1}, hist)
}

func TestMakeDDGTreePeriodicClosesCycle(t *testing.T) {
	// p = [1/7, 6/7]: Z=7 is odd, so k=3, l=0 (the multiplicative order
	// of 2 mod 7). P = [[0,0,1],[1,1,0]].
	p := MakeDDGMatrix(bigs(1, 6), 3, 0)
	require.Equal(t, 3, p.K)
	require.Equal(t, 0, p.L)

	root, err := MakeDDGTree(p)
	require.NoError(t, err)
	require.False(t, root.Leaf)

	n1 := root.Left
	require.False(t, n1.Leaf)
	n2 := n1.Left
	require.False(t, n2.Leaf)
	// The closing column wires its leftover child back onto the node
	// that entered column l, rather than onto a freshly built node.
	assert.Same(t, root, n2.Left)

	enc := PackTree(root)
	assert.Equal(t, []int{2, -2, 4, -2, 0, -1}, enc)
}

// walkAll exhaustively enumerates every k-bit path and tallies which
// leaf label it reaches, to check the tree's shape directly without
// needing a bit source.
func walkAll(root *Node, prefix uint, depth int, hist *[]int) {
	if root.Leaf {
		(*hist)[root.Label-1] += 1 << (depth)
		return
	}
	if depth == 0 {
		return
	}
	walkAll(root.Left, prefix<<1, depth-1, hist)
	walkAll(root.Right, (prefix<<1)|1, depth-1, hist)
}
