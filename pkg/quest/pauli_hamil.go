package quest

import (
	"runtime"
	"strconv"

	"github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"
)

// PauliOp identifies a Pauli operator. The values match QuEST's pauliOpType.
type PauliOp int32

const (
	PauliI PauliOp = iota
	PauliX
	PauliY
	PauliZ
)

func (p PauliOp) String() string {
	switch p {
	case PauliI:
		return "I"
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	case PauliZ:
		return "Z"
	}
	return "PauliOp(" + strconv.Itoa(int(p)) + ")"
}

func pauliCodes(ops []PauliOp) []int32 {
	out := make([]int32, len(ops))
	for i, p := range ops {
		out[i] = int32(p)
	}
	return out
}

// PauliHamil is a real-weighted sum of Pauli products over NumQubits qubits.
type PauliHamil struct {
	handle      backend.PauliHamil
	open        bool
	numQubits   int
	numSumTerms int
}

// NewPauliHamil allocates a Hamiltonian of numSumTerms terms with all
// coefficients zero and all operators PauliI.
func NewPauliHamil(numQubits, numSumTerms int) (*PauliHamil, error) {
	h, err := callValue("NewPauliHamil", func() (backend.PauliHamil, error) {
		return backend.CreatePauliHamil(numQubits, numSumTerms)
	})
	if err != nil {
		return nil, err
	}
	return adoptPauliHamil(h), nil
}

// NewPauliHamilFromFile loads a Hamiltonian from a plain-text file. Each line
// holds one term: the real coefficient followed by one Pauli code (0 to 3) per
// qubit, for example
//
//	0.31 1 0 1 2
//	-0.2 3 2 0 0
//
// A file that cannot be opened is reported as a NativeError. QuEST does not
// validate the file's contents: a malformed file is undefined behaviour in the
// native library and may crash the process.
func NewPauliHamilFromFile(path string) (*PauliHamil, error) {
	const op = "NewPauliHamilFromFile"
	if err := checkPath(op, path); err != nil {
		return nil, err
	}
	h, err := callValue(op, func() (backend.PauliHamil, error) {
		return backend.CreatePauliHamilFromFile(path)
	})
	if err != nil {
		return nil, err
	}
	return adoptPauliHamil(h), nil
}

func adoptPauliHamil(h backend.PauliHamil) *PauliHamil {
	n, terms := backend.PauliHamilShape(h)
	ph := &PauliHamil{handle: h, open: true, numQubits: n, numSumTerms: terms}
	runtime.SetFinalizer(ph, (*PauliHamil).Close)
	return ph
}

// Close frees the Hamiltonian. It is safe to call more than once. A native
// failure while freeing is unrecoverable and panics.
func (h *PauliHamil) Close() {
	if h == nil || !h.open {
		return
	}
	handle := h.handle
	if err := call("PauliHamil.Close", func() error { return backend.DestroyPauliHamil(handle) }); err != nil {
		panic(err)
	}
	h.open = false
	h.handle = backend.PauliHamil{}
	runtime.SetFinalizer(h, nil)
}

func (h *PauliHamil) NumQubits() int   { return h.numQubits }
func (h *PauliHamil) NumSumTerms() int { return h.numSumTerms }

// Init overwrites every term. coeffs holds one weight per term and codes holds
// NumQubits operators per term, term after term.
func (h *PauliHamil) Init(coeffs []float64, codes []PauliOp) error {
	const op = "PauliHamil.Init"
	if err := h.usable(); err != nil {
		return err
	}
	if err := checkExactLength(op, "coeffs", len(coeffs), int64(h.numSumTerms)); err != nil {
		return err
	}
	if err := checkExactLength(op, "codes", len(codes), int64(h.numSumTerms)*int64(h.numQubits)); err != nil {
		return err
	}
	cc := pauliCodes(codes)
	return call(op, func() error { return backend.InitPauliHamil(h.handle, coeffs, cc) })
}

// Report prints every term to standard output.
func (h *PauliHamil) Report() error {
	if err := h.usable(); err != nil {
		return err
	}
	return call("PauliHamil.Report", func() error { return backend.ReportPauliHamil(h.handle) })
}

func (h *PauliHamil) usable() error {
	if h == nil || !h.open {
		return ErrClosed
	}
	return nil
}
