package backend

import "errors"

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary.
var ErrNotBuilt = errors.New("quest/internal/backend: native bindings not built")

// Matrix2 mirrors ComplexMatrix2.
type Matrix2 struct {
	Real, Imag [2][2]float64
}

// Matrix4 mirrors ComplexMatrix4.
type Matrix4 struct {
	Real, Imag [4][4]float64
}

// Vector mirrors Vector.
type Vector struct {
	X, Y, Z float64
}

// EnvironmentStringCap is the buffer size getEnvironmentString writes into.
const EnvironmentStringCap = 200
