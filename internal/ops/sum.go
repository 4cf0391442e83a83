package ops

import (
	"fmt"
	"strings"

	"github.com/amitjansc/pennylane/internal/qmath"
)

// Sum is the arithmetic operator representing the sum of two or more
// operators over their combined wires. It has no closed-form adjoint, so
// the adjoint transform wraps it in an AdjointOp.
type Sum struct {
	summands []Operator
	wires    Wires
}

// NewSum builds the sum of the given operators, records it on q and
// returns it. At least two summands are required.
func NewSum(q Queue, summands ...Operator) *Sum {
	if len(summands) < 2 {
		panic(fmt.Sprintf("ops: sum requires at least two operators, got %d", len(summands)))
	}
	wires := Wires{}
	for _, op := range summands {
		wires = wires.Union(op.Wires())
	}
	s := &Sum{summands: summands, wires: wires}
	Apply(q, s)
	return s
}

// Summands returns the summed operators in declaration order.
func (s *Sum) Summands() []Operator {
	return s.summands
}

// Name returns "Sum".
func (s *Sum) Name() string {
	return "Sum"
}

// Wires returns the combined duplicate-free wire sequence, in first
// appearance order.
func (s *Sum) Wires() Wires {
	return s.wires
}

// Parameters concatenates the summands' parameters.
func (s *Sum) Parameters() []float64 {
	var out []float64
	for _, op := range s.summands {
		out = append(out, op.Parameters()...)
	}
	return out
}

// Terms returns unit coefficients alongside the summands.
func (s *Sum) Terms() ([]float64, []Operator) {
	coeffs := make([]float64, len(s.summands))
	for i := range coeffs {
		coeffs[i] = 1.0
	}
	return coeffs, s.summands
}

// IsHermitian reports whether every summand is Hermitian; a sum of
// Hermitian operators is Hermitian.
func (s *Sum) IsHermitian() bool {
	for _, op := range s.summands {
		h, ok := op.(Hermitian)
		if !ok || !h.IsHermitian() {
			return false
		}
	}
	return true
}

// Matrix expands each summand to the combined wire order and adds them.
func (s *Sum) Matrix() *qmath.Matrix {
	var total *qmath.Matrix
	for _, op := range s.summands {
		m := ExpandMatrix(op.Matrix(), op.Wires(), s.wires)
		if total == nil {
			total = m
		} else {
			total = total.Add(m)
		}
	}
	return total
}

// Decomposition is undefined: a sum is not a product of gates.
func (s *Sum) Decomposition() ([]Operator, error) {
	return nil, fmt.Errorf("%w for Sum", ErrDecompositionUndefined)
}

// Generator is undefined for a sum.
func (s *Sum) Generator() (Generator, error) {
	return nil, fmt.Errorf("%w for Sum", ErrGeneratorUndefined)
}

// Label joins the summand labels with plus signs.
func (s *Sum) Label(decimals int, base string) string {
	if base != "" {
		return formatLabel(base, s.Parameters(), decimals)
	}
	parts := make([]string, len(s.summands))
	for i, op := range s.summands {
		parts[i] = op.Label(decimals, "")
	}
	return strings.Join(parts, "+")
}

// String joins the summands constructor-call style.
func (s *Sum) String() string {
	parts := make([]string, len(s.summands))
	for i, op := range s.summands {
		parts[i] = fmt.Sprint(op)
	}
	return strings.Join(parts, " + ")
}
