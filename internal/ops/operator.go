// Package ops implements the quantum operator family: a closed set of
// gate kinds with exact matrices, generators, decomposition rewrite rules
// and closed-form adjoints, plus the structural Adjoint wrapper and the
// Sum arithmetic operator.
//
// Operators are immutable values. Construction optionally reports to a
// Queue (the recording context); passing a nil queue produces a
// standalone operator owned by nobody.
package ops

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/amitjansc/pennylane/internal/qmath"
)

// Errors surfaced by capability queries. Both indicate the capability is
// intentionally undefined for the kind, not a transient failure.
var (
	// ErrDecompositionUndefined is returned by Decomposition when the
	// operator has no rewrite rule into simpler gates.
	ErrDecompositionUndefined = errors.New("ops: decomposition undefined")

	// ErrGeneratorUndefined is returned by Generator when the operator is
	// not generated by a Hermitian observable.
	ErrGeneratorUndefined = errors.New("ops: generator undefined")
)

// Operator is the capability set shared by every gate, wrapper and
// arithmetic operator in this module.
type Operator interface {
	// Name identifies the operator family, e.g. "SingleExcitation".
	Name() string

	// Wires returns the ordered sites the operator acts on.
	Wires() Wires

	// Parameters returns the real-valued parameters, in declaration order.
	Parameters() []float64

	// Matrix returns the operator's action in the computational basis,
	// ordered by the operator's own wire order (first wire = most
	// significant bit). The matrix is exact closed form.
	Matrix() *qmath.Matrix

	// Decomposition rewrites the operator into an ordered product of
	// simpler operators, first-applied first. Returns
	// ErrDecompositionUndefined when no rewrite rule exists.
	Decomposition() ([]Operator, error)

	// Generator returns the Hermitian observable G satisfying
	// Matrix() == exp(-i*theta*G/2) up to global phase, or
	// ErrGeneratorUndefined.
	Generator() (Generator, error)

	// Label returns a display token, e.g. "G(1.23)". decimals < 0 omits
	// the parameters; an empty base uses the kind's default symbol.
	Label(decimals int, base string) string
}

// Adjointable marks operators with a cheap closed-form adjoint. The
// adjoint transform prefers this shortcut over the generic wrapper; the
// capability is fixed per concrete kind, never probed at runtime.
type Adjointable interface {
	Operator

	// Adjoint returns the conjugate transpose as a standalone operator
	// (not recorded on any queue).
	Adjoint() Operator
}

// Hermitian marks operators that can report whether they equal their own
// conjugate transpose.
type Hermitian interface {
	IsHermitian() bool
}

// GradMethod tags how an operator's parameters can be differentiated.
type GradMethod int

// Differentiation methods.
const (
	GradNone GradMethod = iota
	GradAnalytic
	GradFinite
)

// ShiftTerm is one (coefficient, multiplier, shift) triple of a
// parameter-shift rule. The recipe is consumed by downstream gradient
// code, never evaluated here.
type ShiftTerm struct {
	Coeff float64
	Mult  float64
	Shift float64
}

// GradRecipe is an ordered parameter-shift rule, fixed per kind.
type GradRecipe []ShiftTerm

// Queue receives operator-construction notifications. *queuing.Context
// and *queuing.Tape both implement it; a nil Queue is always valid and
// means standalone construction.
type Queue interface {
	Record(op Operator)
}

// Apply records op on q (when q is non-nil) and returns it. It is how
// the adjoint transform re-emits mapped operators into the ambient
// context.
func Apply(q Queue, op Operator) Operator {
	if q != nil {
		q.Record(op)
	}
	return op
}

// ApplyAdjoint maps op to its adjoint and records the result on q. Kinds
// with a closed-form shortcut are mapped through it; everything else is
// wrapped in an AdjointOp.
func ApplyAdjoint(q Queue, op Operator) Operator {
	if a, ok := op.(Adjointable); ok {
		return Apply(q, a.Adjoint())
	}
	return NewAdjointOp(q, op)
}

// Equal reports whether two operators agree in name, wires and exact
// parameter values.
func Equal(a, b Operator) bool {
	if a.Name() != b.Name() || !a.Wires().Equal(b.Wires()) {
		return false
	}
	pa, pb := a.Parameters(), b.Parameters()
	if len(pa) != len(pb) {
		return false
	}
	for i := range pa {
		if pa[i] != pb[i] {
			return false
		}
	}
	return true
}

// formatLabel renders "base" or "base(p1,p2)" depending on decimals.
func formatLabel(base string, params []float64, decimals int) string {
	if decimals < 0 || len(params) == 0 {
		return base
	}
	out := base + "("
	for i, p := range params {
		if i > 0 {
			out += ","
		}
		out += strconv.FormatFloat(p, 'f', decimals, 64)
	}
	return out + ")"
}

func formatWires(ws Wires) string {
	return fmt.Sprintf("wires=%v", []int(ws))
}
