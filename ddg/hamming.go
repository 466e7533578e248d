package ddg

// HammingVector returns h, where h[j] is the Hamming weight (number of
// set bits) of column j of P.
func HammingVector(p *Matrix) []int {
	h := make([]int, p.K)
	for j := 0; j < p.K; j++ {
		for i := 0; i < p.N; i++ {
			h[j] += p.Rows[i][j]
		}
	}
	return h
}

// HammingMatrix returns T, where T[d][j] is the row index of the d-th
// set bit (0-based, in ascending row order) of column j of P, for
// 0 <= d < h[j]. Entries with d >= h[j] are unused and left at -1.
func HammingMatrix(p *Matrix) [][]int {
	h := HammingVector(p)
	maxH := 0
	for _, hj := range h {
		if hj > maxH {
			maxH = hj
		}
	}
	t := make([][]int, maxH)
	for d := range t {
		t[d] = make([]int, p.K)
		for j := range t[d] {
			t[d][j] = -1
		}
	}
	for j := 0; j < p.K; j++ {
		d := 0
		for i := 0; i < p.N; i++ {
			if p.Rows[i][j] == 1 {
				t[d][j] = i
				d++
			}
		}
	}
	return t
}
