package quest

import (
	"runtime"
	"strconv"

	"github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"
)

// Vector is a real 3-vector, used as a rotation axis.
type Vector struct {
	X, Y, Z float64
}

// ComplexMatrix2 is a 2x2 complex matrix stored as separate real and
// imaginary parts, row-major.
type ComplexMatrix2 struct {
	Real, Imag [2][2]float64
}

// ComplexMatrix4 is a 4x4 complex matrix stored as separate real and
// imaginary parts, row-major.
type ComplexMatrix4 struct {
	Real, Imag [4][4]float64
}

// NewComplexMatrix2 builds a ComplexMatrix2 from complex entries.
func NewComplexMatrix2(m [2][2]complex128) ComplexMatrix2 {
	var out ComplexMatrix2
	for i := range m {
		for j, c := range m[i] {
			out.Real[i][j], out.Imag[i][j] = real(c), imag(c)
		}
	}
	return out
}

// NewComplexMatrix4 builds a ComplexMatrix4 from complex entries.
func NewComplexMatrix4(m [4][4]complex128) ComplexMatrix4 {
	var out ComplexMatrix4
	for i := range m {
		for j, c := range m[i] {
			out.Real[i][j], out.Imag[i][j] = real(c), imag(c)
		}
	}
	return out
}

// At returns entry (i, j).
func (m ComplexMatrix2) At(i, j int) complex128 { return complex(m.Real[i][j], m.Imag[i][j]) }

// At returns entry (i, j).
func (m ComplexMatrix4) At(i, j int) complex128 { return complex(m.Real[i][j], m.Imag[i][j]) }

// ComplexMatrixN is a natively allocated 2^n by 2^n complex matrix.
//
// Call Close when done; a finalizer frees forgotten matrices.
type ComplexMatrixN struct {
	handle    backend.MatrixN
	open      bool
	numQubits int
}

// NewComplexMatrixN allocates a zero matrix acting on numQubits qubits.
func NewComplexMatrixN(numQubits int) (*ComplexMatrixN, error) {
	h, err := callValue("NewComplexMatrixN", func() (backend.MatrixN, error) {
		return backend.CreateMatrixN(numQubits)
	})
	if err != nil {
		return nil, err
	}
	m := &ComplexMatrixN{handle: h, open: true, numQubits: backend.MatrixNQubits(h)}
	runtime.SetFinalizer(m, (*ComplexMatrixN).Close)
	return m, nil
}

// Close frees the matrix. It is safe to call more than once. A native failure
// while freeing is unrecoverable and panics.
func (m *ComplexMatrixN) Close() {
	if m == nil || !m.open {
		return
	}
	h := m.handle
	if err := call("ComplexMatrixN.Close", func() error { return backend.DestroyMatrixN(h) }); err != nil {
		panic(err)
	}
	m.open = false
	m.handle = backend.MatrixN{}
	runtime.SetFinalizer(m, nil)
}

// NumQubits is n for a 2^n by 2^n matrix.
func (m *ComplexMatrixN) NumQubits() int { return m.numQubits }

// Init overwrites every element. re and im must each have 2^n rows of 2^n
// entries.
func (m *ComplexMatrixN) Init(re, im [][]float64) error {
	const op = "ComplexMatrixN.Init"
	if err := m.usable(); err != nil {
		return err
	}
	d := int(dim(m.numQubits))
	flatRe, err := flatten(op, "re", re, d)
	if err != nil {
		return err
	}
	flatIm, err := flatten(op, "im", im, d)
	if err != nil {
		return err
	}
	return call(op, func() error { return backend.InitMatrixN(m.handle, flatRe, flatIm) })
}

func (m *ComplexMatrixN) usable() error {
	if m == nil || !m.open {
		return ErrClosed
	}
	return nil
}

// flatten copies a d x d matrix into row-major order.
func flatten(op, arg string, rows [][]float64, d int) ([]float64, error) {
	if len(rows) != d {
		return nil, lengthError(op, arg, len(rows), strconv.Itoa(d)+" rows")
	}
	out := make([]float64, 0, d*d)
	for i, row := range rows {
		if len(row) != d {
			return nil, lengthError(op, arg+"["+strconv.Itoa(i)+"]", len(row), strconv.Itoa(d))
		}
		out = append(out, row...)
	}
	return out, nil
}

// matrixFor checks that u is open and acts on exactly as many qubits as
// targets lists.
func matrixFor(op string, u *ComplexMatrixN, targets int) error {
	if err := u.usable(); err != nil {
		return err
	}
	if u.numQubits != targets {
		return lengthError(op, "targets", targets, strconv.Itoa(u.numQubits)+" (matrix qubits)")
	}
	return nil
}

func (m ComplexMatrix2) native() backend.Matrix2 { return backend.Matrix2(m) }
func (m ComplexMatrix4) native() backend.Matrix4 { return backend.Matrix4(m) }
func (v Vector) native() backend.Vector          { return backend.Vector(v) }
