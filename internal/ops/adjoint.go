package ops

import "github.com/amitjansc/pennylane/internal/qmath"

// AdjointOp represents the conjugate transpose of a base operator
// structurally, for operators without a closed-form adjoint. It is a
// first-class operator: tapes and transforms treat it like any gate.
type AdjointOp struct {
	base Operator
}

// NewAdjointOp wraps base in an adjoint, records the wrapper on q and
// returns it. Wrapping an existing wrapper collapses to the base
// operator instead of double-wrapping.
func NewAdjointOp(q Queue, base Operator) Operator {
	if w, ok := base.(*AdjointOp); ok {
		return Apply(q, w.base)
	}
	a := &AdjointOp{base: base}
	Apply(q, a)
	return a
}

// Base returns the wrapped operator.
func (a *AdjointOp) Base() Operator {
	return a.base
}

// Name returns "Adjoint(<base>)".
func (a *AdjointOp) Name() string {
	return "Adjoint(" + a.base.Name() + ")"
}

// Wires returns the base operator's wires.
func (a *AdjointOp) Wires() Wires {
	return a.base.Wires()
}

// Parameters returns the base operator's parameters.
func (a *AdjointOp) Parameters() []float64 {
	return a.base.Parameters()
}

// Matrix returns the conjugate transpose of the base matrix.
func (a *AdjointOp) Matrix() *qmath.Matrix {
	return a.base.Matrix().ConjTranspose()
}

// Adjoint undoes the wrapper: the adjoint of an adjoint is the base
// operator itself.
func (a *AdjointOp) Adjoint() Operator {
	return a.base
}

// Decomposition reverses the base decomposition and maps each factor to
// its adjoint, since (O1 O2 ... On)^dagger = On^dagger ... O1^dagger.
func (a *AdjointOp) Decomposition() ([]Operator, error) {
	base, err := a.base.Decomposition()
	if err != nil {
		return nil, err
	}
	out := make([]Operator, 0, len(base))
	for i := len(base) - 1; i >= 0; i-- {
		out = append(out, ApplyAdjoint(nil, base[i]))
	}
	return out, nil
}

// Generator negates the base generator: exp(-i*phi*G/2)^dagger equals
// exp(-i*phi*(-G)/2) as a function of the same parameter.
func (a *AdjointOp) Generator() (Generator, error) {
	g, err := a.base.Generator()
	if err != nil {
		return nil, err
	}
	return g.Neg(), nil
}

// IsHermitian reports the base operator's hermiticity; conjugate
// transposition preserves it.
func (a *AdjointOp) IsHermitian() bool {
	if h, ok := a.base.(Hermitian); ok {
		return h.IsHermitian()
	}
	return false
}

// Label returns the base label with a dagger suffix.
func (a *AdjointOp) Label(decimals int, base string) string {
	return a.base.Label(decimals, base) + "†"
}

// String renders the wrapper constructor-call style.
func (a *AdjointOp) String() string {
	return "Adjoint(" + a.base.Name() + ", " + formatWires(a.Wires()) + ")"
}
