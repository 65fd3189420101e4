package quest

import (
	"context"
	"runtime"

	"github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"
)

// DiagonalOp is a diagonal operator on the full Hilbert space of a register,
// stored as 2^n complex elements distributed like a state vector.
type DiagonalOp struct {
	env       *Env
	handle    backend.DiagonalOp
	open      bool
	numQubits int
}

// NewDiagonalOp allocates a zero operator on numQubits qubits.
func NewDiagonalOp(env *Env, numQubits int) (*DiagonalOp, error) {
	if err := env.usable(); err != nil {
		return nil, err
	}
	h, err := callValue("NewDiagonalOp", func() (backend.DiagonalOp, error) {
		return backend.CreateDiagonalOp(numQubits, env.env)
	})
	if err != nil {
		return nil, err
	}
	return env.adoptDiagonalOp(h), nil
}

// NewDiagonalOpFromPauliHamilFile builds an operator from a Hamiltonian file
// containing only PauliI and PauliZ terms. The file format is the one read by
// NewPauliHamilFromFile. A file that cannot be opened, or that holds X or Y
// terms, is reported as a NativeError; any other malformed content is
// undefined behaviour in the native library and may crash the process.
func NewDiagonalOpFromPauliHamilFile(env *Env, path string) (*DiagonalOp, error) {
	const op = "NewDiagonalOpFromPauliHamilFile"
	if err := env.usable(); err != nil {
		return nil, err
	}
	if err := checkPath(op, path); err != nil {
		return nil, err
	}
	h, err := callValue(op, func() (backend.DiagonalOp, error) {
		return backend.CreateDiagonalOpFromPauliHamilFile(path, env.env)
	})
	if err != nil {
		return nil, err
	}
	return env.adoptDiagonalOp(h), nil
}

func (e *Env) adoptDiagonalOp(h backend.DiagonalOp) *DiagonalOp {
	d := &DiagonalOp{env: e, handle: h, open: true, numQubits: backend.DiagonalOpQubits(h)}
	e.acquire()
	runtime.SetFinalizer(d, (*DiagonalOp).Close)
	e.log.Debug(context.Background(), "diagonal operator created", "qubits", d.numQubits)
	return d
}

// Close frees the operator. It is safe to call more than once. A native
// failure while freeing is unrecoverable and panics.
func (d *DiagonalOp) Close() {
	if d == nil || !d.open {
		return
	}
	h := d.handle
	if err := call("DiagonalOp.Close", func() error { return backend.DestroyDiagonalOp(h, d.env.env) }); err != nil {
		panic(err)
	}
	d.open = false
	d.handle = backend.DiagonalOp{}
	d.env.release()
	runtime.SetFinalizer(d, nil)
}

// NumQubits is the number of qubits the operator acts on.
func (d *DiagonalOp) NumQubits() int { return d.numQubits }

// Init overwrites all 2^n elements.
func (d *DiagonalOp) Init(re, im []float64) error {
	const op = "DiagonalOp.Init"
	if err := d.usable(); err != nil {
		return err
	}
	if err := checkExactLength(op, "re", len(re), dim(d.numQubits)); err != nil {
		return err
	}
	if err := checkSameLength(op, "re", len(re), "im", len(im)); err != nil {
		return err
	}
	return call(op, func() error { return backend.InitDiagonalOp(d.handle, re, im) })
}

// InitFromPauliHamil sets the operator to h, which must contain only PauliI
// and PauliZ terms on the same number of qubits.
func (d *DiagonalOp) InitFromPauliHamil(h *PauliHamil) error {
	const op = "DiagonalOp.InitFromPauliHamil"
	if err := d.usable(); err != nil {
		return err
	}
	if err := h.usable(); err != nil {
		return err
	}
	return call(op, func() error { return backend.InitDiagonalOpFromPauliHamil(d.handle, h.handle) })
}

// SetElems overwrites len(re) elements starting at index start.
func (d *DiagonalOp) SetElems(start int64, re, im []float64) error {
	const op = "DiagonalOp.SetElems"
	if err := d.usable(); err != nil {
		return err
	}
	if err := checkSameLength(op, "re", len(re), "im", len(im)); err != nil {
		return err
	}
	return call(op, func() error { return backend.SetDiagonalOpElems(d.handle, start, re, im) })
}

// Sync copies the host elements to the GPU. It is a no-op on CPU builds; Init
// and SetElems already sync.
func (d *DiagonalOp) Sync() error {
	if err := d.usable(); err != nil {
		return err
	}
	return call("DiagonalOp.Sync", func() error { return backend.SyncDiagonalOp(d.handle) })
}

func (d *DiagonalOp) usable() error {
	if d == nil || !d.open {
		return ErrClosed
	}
	return nil
}
