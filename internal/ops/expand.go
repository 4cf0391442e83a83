package ops

import (
	"fmt"

	"github.com/amitjansc/pennylane/internal/qmath"
)

// ExpandMatrix embeds an operator matrix, given over opWires, into the
// larger computational basis defined by order (acting as identity on the
// extra wires). Both wire sequences are most-significant-first; every
// operator wire must appear in order.
func ExpandMatrix(m *qmath.Matrix, opWires, order Wires) *qmath.Matrix {
	n := len(order)
	if m.Dim() != 1<<len(opWires) {
		panic(fmt.Sprintf("ops: matrix dimension %d does not match %d wires", m.Dim(), len(opWires)))
	}
	pos := make([]int, len(opWires))
	isOp := make([]bool, n)
	for k, w := range opWires {
		i := order.IndexOf(w)
		if i < 0 {
			panic(fmt.Sprintf("ops: wire %d not in wire order %v", w, order))
		}
		pos[k] = i
		isOp[i] = true
	}

	dim := 1 << n
	bit := func(idx, p int) int { return (idx >> (n - 1 - p)) & 1 }

	out := qmath.Zeros(dim)
	if m.DType().IsComplex() {
		out = out.AsComplex()
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			identity := true
			for p := 0; p < n; p++ {
				if !isOp[p] && bit(i, p) != bit(j, p) {
					identity = false
					break
				}
			}
			if !identity {
				continue
			}
			row, col := 0, 0
			for _, p := range pos {
				row = row<<1 | bit(i, p)
				col = col<<1 | bit(j, p)
			}
			if v := m.At(row, col); v != 0 {
				out = out.ScatterAdd(i, j, v)
			}
		}
	}
	return out
}
