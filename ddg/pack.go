package ddg

// PackTree lays out a DDG tree (or, for a periodic (k,l), the cyclic
// graph MakeDDGTree produces) depth-first into a flat integer array:
// for an internal node at offset c, enc[c] holds the left child's
// offset (or, if that child is a leaf, its negative 1-based label) and
// enc[c+1] holds the right child's offset (or negative label)
// analogously. The root is always at offset 0. Each internal node is
// assigned an offset before its children are visited, so a back-edge
// to an already-offset node (the periodic case) is packed as an
// ordinary offset reference back to that node's lower offset rather
// than walked again.
func PackTree(root *Node) []int {
	if root.Leaf {
		// A single-outcome distribution collapses to a 1-element array
		// whose sole entry is a leaf sentinel; the KY encoding sampler
		// special-cases this to avoid consuming any bits.
		return []int{-root.Label}
	}
	offsets := make(map[*Node]int)
	var order []*Node
	var assign func(n *Node)
	assign = func(n *Node) {
		if _, seen := offsets[n]; seen {
			return
		}
		offsets[n] = 2 * len(order)
		order = append(order, n)
		if !n.Left.Leaf {
			assign(n.Left)
		}
		if !n.Right.Leaf {
			assign(n.Right)
		}
	}
	assign(root)

	enc := make([]int, 2*len(order))
	for _, n := range order {
		c := offsets[n]
		enc[c] = childRef(n.Left, offsets)
		enc[c+1] = childRef(n.Right, offsets)
	}
	return enc
}

func childRef(n *Node, offsets map[*Node]int) int {
	if n.Leaf {
		return -n.Label
	}
	return offsets[n]
}
