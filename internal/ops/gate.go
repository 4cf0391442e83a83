package ops

import (
	"fmt"

	"github.com/amitjansc/pennylane/internal/qmath"
)

// Gate is a concrete operator of one of the registered kinds. Behavior
// dispatches through the kind's registry entry; the instance only carries
// the kind tag, wires and parameter values.
type Gate struct {
	kind   Kind
	wires  Wires
	params []float64
}

// newGate validates arity against the kind registry, records the gate on
// q and returns it. Arity violations are programmer errors.
func newGate(q Queue, k Kind, params []float64, wires ...int) *Gate {
	info := k.info()
	if len(wires) != info.numWires {
		panic(fmt.Sprintf("ops: %s acts on %d wires, got %v", info.name, info.numWires, wires))
	}
	if len(params) != info.numParams {
		panic(fmt.Sprintf("ops: %s takes %d parameters, got %d", info.name, info.numParams, len(params)))
	}
	g := &Gate{kind: k, wires: NewWires(wires...), params: params}
	Apply(q, g)
	return g
}

// Kind returns the gate's kind tag.
func (g *Gate) Kind() Kind {
	return g.kind
}

// Name returns the kind name, e.g. "SingleExcitation".
func (g *Gate) Name() string {
	return g.kind.info().name
}

// Wires returns the ordered sites the gate acts on.
func (g *Gate) Wires() Wires {
	return g.wires
}

// Parameters returns the gate's parameter values.
func (g *Gate) Parameters() []float64 {
	return g.params
}

// GradMethod returns the kind's differentiation method tag.
func (g *Gate) GradMethod() GradMethod {
	return g.kind.info().gradMethod
}

// GradRecipe returns the kind's parameter-shift rule, or nil.
func (g *Gate) GradRecipe() GradRecipe {
	return g.kind.info().gradRecipe
}

// Matrix returns the gate's exact matrix in its own wire order.
func (g *Gate) Matrix() *qmath.Matrix {
	return g.kind.info().matrix(g.params)
}

// Decomposition rewrites the gate into simpler gates, first-applied
// first. The produced operators are standalone (not recorded anywhere).
func (g *Gate) Decomposition() ([]Operator, error) {
	return ComputeDecomposition(g.kind, g.params, g.wires)
}

// Generator returns the Hermitian observable generating the gate, or
// ErrGeneratorUndefined.
func (g *Gate) Generator() (Generator, error) {
	info := g.kind.info()
	if info.generator == nil {
		return nil, fmt.Errorf("%w for %s", ErrGeneratorUndefined, info.name)
	}
	return info.generator(g.wires), nil
}

// Adjoint returns the closed-form adjoint: the gate itself for
// self-inverse kinds, otherwise the kind with its parameter negated. The
// result is standalone.
func (g *Gate) Adjoint() Operator {
	info := g.kind.info()
	if info.numParams == 0 {
		return &Gate{kind: g.kind, wires: g.wires, params: nil}
	}
	neg := make([]float64, len(g.params))
	for i, p := range g.params {
		neg[i] = -p
	}
	return &Gate{kind: g.kind, wires: g.wires, params: neg}
}

// IsHermitian reports whether the gate equals its own conjugate
// transpose for all parameter values.
func (g *Gate) IsHermitian() bool {
	return g.kind.info().hermitian
}

// Label returns the display token, e.g. "G²₊(1.23)".
func (g *Gate) Label(decimals int, base string) string {
	if base == "" {
		base = g.kind.info().label
	}
	return formatLabel(base, g.params, decimals)
}

// String renders the gate constructor-call style.
func (g *Gate) String() string {
	if len(g.params) == 0 {
		return fmt.Sprintf("%s(%s)", g.Name(), formatWires(g.wires))
	}
	return fmt.Sprintf("%s(%v, %s)", g.Name(), g.params, formatWires(g.wires))
}

// ComputeDecomposition is the static rewrite rule of a kind: a pure
// function of the parameter and wire values, independent of any
// instance. Kinds without a rule return ErrDecompositionUndefined.
func ComputeDecomposition(k Kind, params []float64, wires Wires) ([]Operator, error) {
	info := k.info()
	if info.decompose == nil {
		return nil, fmt.Errorf("%w for %s", ErrDecompositionUndefined, info.name)
	}
	if len(wires) != info.numWires {
		panic(fmt.Sprintf("ops: %s acts on %d wires, got %v", info.name, info.numWires, wires))
	}
	phi := 0.0
	if info.numParams > 0 {
		phi = params[0]
	}
	return info.decompose(phi, wires), nil
}
