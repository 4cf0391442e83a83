package ops

import "fmt"

// Wires is an ordered, duplicate-free sequence of site identifiers. The
// order is significant: a gate's matrix treats its first wire as the most
// significant bit of the computational basis index.
type Wires []int

// NewWires builds a wire sequence, panicking on duplicates. Operator
// constructors funnel through this so a malformed wire list fails at the
// call site rather than deep inside a matrix build.
func NewWires(ws ...int) Wires {
	w := make(Wires, len(ws))
	copy(w, ws)
	for i := 0; i < len(w); i++ {
		for j := i + 1; j < len(w); j++ {
			if w[i] == w[j] {
				panic(fmt.Sprintf("ops: duplicate wire %d in %v", w[i], ws))
			}
		}
	}
	return w
}

// Contains reports whether the sequence includes wire w.
func (ws Wires) Contains(w int) bool {
	return ws.IndexOf(w) >= 0
}

// IndexOf returns the position of wire w, or -1 if absent.
func (ws Wires) IndexOf(w int) int {
	for i, x := range ws {
		if x == w {
			return i
		}
	}
	return -1
}

// Equal reports whether two wire sequences are identical, including order.
func (ws Wires) Equal(other Wires) bool {
	if len(ws) != len(other) {
		return false
	}
	for i := range ws {
		if ws[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the sequence.
func (ws Wires) Clone() Wires {
	c := make(Wires, len(ws))
	copy(c, ws)
	return c
}

// Union appends the wires of other that are not already present,
// preserving first-appearance order.
func (ws Wires) Union(other Wires) Wires {
	out := ws.Clone()
	for _, w := range other {
		if !out.Contains(w) {
			out = append(out, w)
		}
	}
	return out
}
