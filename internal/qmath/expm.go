package qmath

import "math"

// Expm computes the matrix exponential exp(m) by scaling and squaring
// with a Taylor series. The matrices in this module are tiny and
// well-conditioned (anti-Hermitian arguments of modest norm), so the
// plain series converges quickly after scaling.
func Expm(m *Matrix) *Matrix {
	// Scale so the max-abs norm is below 1/2.
	norm := 0.0
	for _, v := range m.data {
		if a := math.Hypot(real(v), imag(v)); a > norm {
			norm = a
		}
	}
	norm *= float64(m.n)
	squarings := 0
	for norm > 0.5 {
		norm /= 2
		squarings++
	}
	scaled := m.Scale(complex(math.Ldexp(1, -squarings), 0))

	// Taylor series: sum_k scaled^k / k!.
	result := Identity(m.n).AsComplex()
	term := Identity(m.n).AsComplex()
	for k := 1; k <= 24; k++ {
		term = term.MatMul(scaled).Scale(complex(1/float64(k), 0))
		result = result.Add(term)
		if maxAbs(term) < 1e-17 {
			break
		}
	}

	for i := 0; i < squarings; i++ {
		result = result.MatMul(result)
	}
	return result
}

func maxAbs(m *Matrix) float64 {
	max := 0.0
	for _, v := range m.data {
		if a := math.Hypot(real(v), imag(v)); a > max {
			max = a
		}
	}
	return max
}
