package ops

import (
	"math"

	"github.com/amitjansc/pennylane/internal/qmath"
)

// Kind tags a gate family. The set is closed: every kind registers its
// matrix, decomposition, generator and adjoint behavior in one table,
// and a single dispatch on the tag selects it.
type Kind int

// Registered gate kinds.
const (
	KindPauliX Kind = iota
	KindPauliY
	KindPauliZ
	KindHadamard
	KindRY
	KindCNOT
	KindCRY
	KindControlledPhaseShift
	KindSingleExcitation
	KindSingleExcitationMinus
	KindSingleExcitationPlus
	KindDoubleExcitation
	KindDoubleExcitationMinus
	KindDoubleExcitationPlus
	KindOrbitalRotation
)

// Four-term parameter-shift rule for controlled and excitation
// rotations (Appendix F of arXiv:2104.05695).
var fourTermRecipe = func() GradRecipe {
	invSqrt2 := 1 / math.Sqrt2
	c1 := invSqrt2 * (math.Sqrt2 + 1) / 4
	c2 := invSqrt2 * (math.Sqrt2 - 1) / 4
	return GradRecipe{
		{Coeff: c1, Mult: 1, Shift: math.Pi / 2},
		{Coeff: -c1, Mult: 1, Shift: -math.Pi / 2},
		{Coeff: -c2, Mult: 1, Shift: 3 * math.Pi / 2},
		{Coeff: c2, Mult: 1, Shift: -3 * math.Pi / 2},
	}
}()

// Standard two-term parameter-shift rule.
var twoTermRecipe = GradRecipe{
	{Coeff: 0.5, Mult: 1, Shift: math.Pi / 2},
	{Coeff: -0.5, Mult: 1, Shift: -math.Pi / 2},
}

type kindInfo struct {
	name       string
	label      string
	numWires   int
	numParams  int
	hermitian  bool
	gradMethod GradMethod
	gradRecipe GradRecipe
	matrix     func(params []float64) *qmath.Matrix
	decompose  func(phi float64, w Wires) []Operator
	generator  func(w Wires) Generator
}

var kinds map[Kind]*kindInfo

func init() {
	kinds = map[Kind]*kindInfo{
		KindPauliX: {
			name: "PauliX", label: "X", numWires: 1, hermitian: true,
			matrix: pauliXMatrix,
		},
		KindPauliY: {
			name: "PauliY", label: "Y", numWires: 1, hermitian: true,
			matrix: pauliYMatrix,
		},
		KindPauliZ: {
			name: "PauliZ", label: "Z", numWires: 1, hermitian: true,
			matrix: pauliZMatrix,
		},
		KindHadamard: {
			name: "Hadamard", label: "H", numWires: 1, hermitian: true,
			matrix: hadamardMatrix,
		},
		KindRY: {
			name: "RY", label: "RY", numWires: 1, numParams: 1,
			gradMethod: GradAnalytic, gradRecipe: twoTermRecipe,
			matrix: ryMatrix,
		},
		KindCNOT: {
			name: "CNOT", label: "X", numWires: 2, hermitian: true,
			matrix: cnotMatrix,
		},
		KindCRY: {
			name: "CRY", label: "RY", numWires: 2, numParams: 1,
			gradMethod: GradAnalytic, gradRecipe: fourTermRecipe,
			matrix: cryMatrix,
		},
		KindControlledPhaseShift: {
			name: "ControlledPhaseShift", label: "Rϕ", numWires: 2, numParams: 1,
			gradMethod: GradAnalytic, gradRecipe: fourTermRecipe,
			matrix: controlledPhaseShiftMatrix,
		},
		KindSingleExcitation: {
			name: "SingleExcitation", label: "G", numWires: 2, numParams: 1,
			gradMethod: GradAnalytic, gradRecipe: fourTermRecipe,
			matrix:    singleExcitationMatrix,
			decompose: singleExcitationDecomposition,
			generator: singleExcitationGenerator,
		},
		KindSingleExcitationMinus: {
			name: "SingleExcitationMinus", label: "G₋", numWires: 2, numParams: 1,
			gradMethod: GradAnalytic, gradRecipe: twoTermRecipe,
			matrix:    singleExcitationMinusMatrix,
			decompose: singleExcitationMinusDecomposition,
			generator: singleExcitationMinusGenerator,
		},
		KindSingleExcitationPlus: {
			name: "SingleExcitationPlus", label: "G₊", numWires: 2, numParams: 1,
			gradMethod: GradAnalytic, gradRecipe: twoTermRecipe,
			matrix:    singleExcitationPlusMatrix,
			decompose: singleExcitationPlusDecomposition,
			generator: singleExcitationPlusGenerator,
		},
		KindDoubleExcitation: {
			name: "DoubleExcitation", label: "G²", numWires: 4, numParams: 1,
			gradMethod: GradAnalytic, gradRecipe: fourTermRecipe,
			matrix:    doubleExcitationMatrix,
			decompose: doubleExcitationDecomposition,
			generator: doubleExcitationGenerator,
		},
		KindDoubleExcitationMinus: {
			name: "DoubleExcitationMinus", label: "G²₋", numWires: 4, numParams: 1,
			gradMethod: GradAnalytic, gradRecipe: twoTermRecipe,
			matrix:    doubleExcitationMinusMatrix,
			generator: doubleExcitationMinusGenerator,
		},
		KindDoubleExcitationPlus: {
			name: "DoubleExcitationPlus", label: "G²₊", numWires: 4, numParams: 1,
			gradMethod: GradAnalytic, gradRecipe: twoTermRecipe,
			matrix:    doubleExcitationPlusMatrix,
			generator: doubleExcitationPlusGenerator,
		},
		KindOrbitalRotation: {
			name: "OrbitalRotation", label: "G(φ)", numWires: 4, numParams: 1,
			gradMethod: GradAnalytic, gradRecipe: fourTermRecipe,
			matrix:    orbitalRotationMatrix,
			decompose: orbitalRotationDecomposition,
			generator: orbitalRotationGenerator,
		},
	}
}

func (k Kind) info() *kindInfo {
	info, ok := kinds[k]
	if !ok {
		panic("ops: unknown gate kind")
	}
	return info
}

// String returns the kind name.
func (k Kind) String() string {
	return k.info().name
}

// Kinds returns every registered kind, for property sweeps.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	return out
}

// NumWires returns the fixed wire arity of the kind.
func (k Kind) NumWires() int { return k.info().numWires }

// NumParams returns the fixed parameter arity of the kind.
func (k Kind) NumParams() int { return k.info().numParams }
