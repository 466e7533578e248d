package ddg

import "github.com/pkg/errors"

// ErrTreeDidNotClose is returned when the DDG tree construction fails
// to fully resolve its frontier within the matrix's own column count;
// this indicates an internal consistency failure in the reduced
// (M,k,l) triple (the construction is guaranteed to terminate for any
// valid triple, since the total resolved mass is exactly Zkl).
var ErrTreeDidNotClose = errors.New("ddg: tree construction did not converge")

// Node is an internal or leaf node of a DDG tree. Leaves carry a
// 1-based outcome label; internal nodes have two children. When l < k
// the tree is eventually periodic, so a node's children may point back
// to a node built earlier in the same construction — the tree is then
// really a graph with one back-edge, not acyclic.
type Node struct {
	Leaf  bool
	Label int
	Left  *Node
	Right *Node
}

// MakeDDGTree performs the iterative Huffman-like construction: for
// each column j it gathers the rows with a set bit as fresh leaves
// (lower row index before higher) and pairs them against the frontier
// of internal nodes left over from earlier columns, propagating any
// leftover to column j+1. Each parent's Right child is filled before its
// Left child, so leaves take the rightmost positions of a level and are
// reached on bit 1 first, the same order the matrix walk resolves them.
//
// When l < k, columns l..k-1 repeat forever (p.Column(j) for j >= k
// equals p.Column(l + (j-k) mod (k-l))), so rather than unrolling that
// tail, the frontier entering column l is saved as cycleEntry; column
// k-1's leftover children are then wired directly back onto
// cycleEntry's nodes instead of onto freshly allocated ones, closing
// the walk into a finite graph with a single back-edge. The frontier
// entering the closing column is guaranteed by the (k,l) system to have
// exactly the same size as cycleEntry; any mismatch means P is not a
// valid reduced (k,l)-system matrix.
func MakeDDGTree(p *Matrix) (*Node, error) {
	if p.N == 1 {
		// A single-outcome distribution needs no bits: it always resolves
		// to outcome 1.
		return &Node{Leaf: true, Label: 1}, nil
	}
	root := &Node{}
	frontier := []*Node{root}
	periodic := p.L < p.K
	var cycleEntry []*Node

	for col := 0; len(frontier) > 0; col++ {
		if col >= p.K {
			return nil, ErrTreeDidNotClose
		}
		if periodic && col == p.L {
			cycleEntry = append([]*Node(nil), frontier...)
		}
		closing := periodic && col == p.K-1

		var setRows []int
		for i := 0; i < p.N; i++ {
			if p.Rows[i][col] == 1 {
				setRows = append(setRows, i)
			}
		}

		newFrontier := make([]*Node, 0, 2*len(frontier))
		ri, ci := 0, 0
		for _, parent := range frontier {
			parent.Right = nextChild(setRows, &ri, cycleEntry, closing, &ci, &newFrontier)
			parent.Left = nextChild(setRows, &ri, cycleEntry, closing, &ci, &newFrontier)
		}
		if closing {
			if ci != len(cycleEntry) {
				return nil, ErrTreeDidNotClose
			}
			return root, nil
		}
		frontier = newFrontier
	}
	return root, nil
}

// nextChild returns the next child for a frontier parent: a fresh leaf
// if a row is still waiting to be placed in this column, otherwise an
// internal node — freshly allocated mid-tree, or, on the closing
// column of a periodic tree, pulled from cycleEntry in order so the
// walk cycles back instead of growing another column.
func nextChild(setRows []int, ri *int, cycleEntry []*Node, closing bool, ci *int, frontier *[]*Node) *Node {
	if *ri < len(setRows) {
		n := &Node{Leaf: true, Label: setRows[*ri] + 1}
		*ri++
		return n
	}
	if closing {
		var n *Node
		if *ci < len(cycleEntry) {
			n = cycleEntry[*ci]
		} else {
			n = &Node{}
		}
		*ci++
		return n
	}
	n := &Node{}
	*frontier = append(*frontier, n)
	return n
}
