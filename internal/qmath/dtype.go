package qmath

// DataType tags the numeric interface a matrix was built against.
//
// Matrices start out Float64 when every entry is real and are promoted to
// Complex128 as soon as an operation introduces an imaginary component.
// Builders that know they will multiply by an imaginary scalar should
// upcast proactively with AsComplex rather than rely on promotion.
type DataType int

// Supported data types.
const (
	Float64 DataType = iota
	Complex128
)

// IsComplex reports whether the data type carries an imaginary part.
func (d DataType) IsComplex() bool {
	return d == Complex128
}

// String returns a human-readable type name.
func (d DataType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// Promote returns the wider of two data types.
func Promote(a, b DataType) DataType {
	if a.IsComplex() || b.IsComplex() {
		return Complex128
	}
	return Float64
}
