package ops

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitjansc/pennylane/internal/qmath"
)

// productMatrix multiplies a decomposition (first-applied first) into a
// single matrix over the given wire order.
func productMatrix(decomp []Operator, order Wires) *qmath.Matrix {
	total := qmath.Identity(1 << len(order))
	for _, op := range decomp {
		total = ExpandMatrix(op.Matrix(), op.Wires(), order).MatMul(total)
	}
	return total
}

var decomposableKinds = []Kind{
	KindSingleExcitation,
	KindSingleExcitationMinus,
	KindSingleExcitationPlus,
	KindDoubleExcitation,
	KindOrbitalRotation,
}

func TestDecompositionMatchesMatrix(t *testing.T) {
	for _, k := range decomposableKinds {
		for _, phi := range []float64{1.23, 0} {
			g := gateFor(k, phi)
			decomp, err := g.Decomposition()
			require.NoError(t, err, "%s", k)
			require.NotEmpty(t, decomp, "%s", k)

			got := productMatrix(decomp, g.Wires())
			assert.True(t, qmath.EqualUpToGlobalPhase(got, g.Matrix(), 1e-10),
				"%s(phi=%v): decomposition product does not reproduce the matrix", k, phi)
		}
	}
}

func TestSingleExcitationMinusDecompositionSequence(t *testing.T) {
	decomp, err := ComputeDecomposition(KindSingleExcitationMinus, []float64{1.23}, Wires{0, 1})
	require.NoError(t, err)
	require.Len(t, decomp, 9)

	expected := []struct {
		name   string
		wires  Wires
		params []float64
	}{
		{"PauliX", Wires{0}, nil},
		{"PauliX", Wires{1}, nil},
		{"ControlledPhaseShift", Wires{1, 0}, []float64{-0.615}},
		{"PauliX", Wires{0}, nil},
		{"PauliX", Wires{1}, nil},
		{"ControlledPhaseShift", Wires{0, 1}, []float64{-0.615}},
		{"CNOT", Wires{0, 1}, nil},
		{"CRY", Wires{1, 0}, []float64{1.23}},
		{"CNOT", Wires{0, 1}, nil},
	}
	for i, want := range expected {
		op := decomp[i]
		assert.Equal(t, want.name, op.Name(), "op %d", i)
		assert.True(t, op.Wires().Equal(want.wires), "op %d wires: %v", i, op.Wires())
		if want.params == nil {
			assert.Empty(t, op.Parameters(), "op %d params", i)
		} else {
			require.Len(t, op.Parameters(), len(want.params), "op %d", i)
			for j := range want.params {
				assert.InDelta(t, want.params[j], op.Parameters()[j], 1e-12, "op %d param %d", i, j)
			}
		}
	}
}

func TestDoubleExcitationDecompositionShape(t *testing.T) {
	decomp, err := ComputeDecomposition(KindDoubleExcitation, []float64{1.23}, Wires{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, decomp, 28)
	assert.Equal(t, "CNOT", decomp[0].Name())
	assert.True(t, decomp[0].Wires().Equal(Wires{2, 3}))
	assert.Equal(t, "RY", decomp[6].Name())
	assert.InDelta(t, 1.23/8, decomp[6].Parameters()[0], 1e-12)
}

func TestDecompositionUndefined(t *testing.T) {
	for _, k := range []Kind{KindDoubleExcitationMinus, KindDoubleExcitationPlus, KindPauliX, KindCNOT} {
		g := gateFor(k, 0.5)
		decomp, err := g.Decomposition()
		assert.Nil(t, decomp, "%s", k)
		require.Error(t, err, "%s", k)
		assert.True(t, errors.Is(err, ErrDecompositionUndefined), "%s: %v", k, err)
	}
}

func TestComputeDecompositionIsPure(t *testing.T) {
	a, err := ComputeDecomposition(KindOrbitalRotation, []float64{0.77}, Wires{4, 5, 6, 7})
	require.NoError(t, err)
	b, err := ComputeDecomposition(KindOrbitalRotation, []float64{0.77}, Wires{4, 5, 6, 7})
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.True(t, Equal(a[i], b[i]), "op %d differs between calls", i)
	}
}

func TestDecompositionOpsAreStandalone(t *testing.T) {
	// Decomposition is a static rewrite: it must not report to any queue.
	rec := &recordingQueue{}
	g := SingleExcitation(rec, 1.23, 0, 1)
	require.Len(t, rec.ops, 1)

	_, err := g.Decomposition()
	require.NoError(t, err)
	assert.Len(t, rec.ops, 1, "decomposition leaked operators into the queue")
}

type recordingQueue struct {
	ops []Operator
}

func (r *recordingQueue) Record(op Operator) {
	r.ops = append(r.ops, op)
}
