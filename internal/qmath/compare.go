package qmath

import (
	"math"
	"math/cmplx"
)

// Allclose reports whether every entry of a and b agrees within tol.
func Allclose(a, b *Matrix, tol float64) bool {
	if a.n != b.n {
		return false
	}
	for i := range a.data {
		if cmplx.Abs(a.data[i]-b.data[i]) > tol {
			return false
		}
	}
	return true
}

// EqualUpToGlobalPhase reports whether a == e^{i alpha} * b for some real
// alpha, within tol. The phase is read off the first entry of b whose
// magnitude exceeds tol.
func EqualUpToGlobalPhase(a, b *Matrix, tol float64) bool {
	if a.n != b.n {
		return false
	}
	phase := complex(1, 0)
	for i := range b.data {
		if cmplx.Abs(b.data[i]) > tol {
			if cmplx.Abs(a.data[i]) <= tol {
				return false
			}
			phase = a.data[i] / b.data[i]
			break
		}
	}
	if math.Abs(cmplx.Abs(phase)-1) > tol {
		return false
	}
	return Allclose(a, b.Scale(phase), tol)
}

// IsUnitary reports whether m * m^dagger is the identity within tol.
func IsUnitary(m *Matrix, tol float64) bool {
	return Allclose(m.MatMul(m.ConjTranspose()), Identity(m.n), tol)
}

// IsHermitian reports whether m equals its own conjugate transpose
// within tol.
func IsHermitian(m *Matrix, tol float64) bool {
	return Allclose(m, m.ConjTranspose(), tol)
}
