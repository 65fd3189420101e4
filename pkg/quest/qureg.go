package quest

import (
	"context"
	"fmt"
	"runtime"

	"github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"
	"github.com/hsiuhsiu/quest-go/pkg/quest/logging"
)

// Qureg is a register of qubits: a state vector of 2^n amplitudes or, for a
// density matrix, 2^n by 2^n amplitudes.
//
// A Qureg is not safe for concurrent mutation. Native calls from all
// goroutines are serialized process-wide, but the order of operations on a
// shared register is up to the caller.
type Qureg struct {
	env       *Env
	handle    backend.Qureg
	open      bool
	numQubits int
	density   bool
	poisoned  bool
	log       logging.Logger
}

// NewQureg creates a state-vector register of numQubits qubits, initialised to
// the zero state.
func NewQureg(env *Env, numQubits int) (*Qureg, error) {
	return newQureg(env, "NewQureg", numQubits, backend.CreateQureg)
}

// NewDensityQureg creates a density-matrix register of numQubits qubits,
// initialised to the zero state.
func NewDensityQureg(env *Env, numQubits int) (*Qureg, error) {
	return newQureg(env, "NewDensityQureg", numQubits, backend.CreateDensityQureg)
}

func newQureg(env *Env, op string, numQubits int, create func(int, backend.Env) (backend.Qureg, error)) (*Qureg, error) {
	if err := env.usable(); err != nil {
		return nil, err
	}
	h, err := callValue(op, func() (backend.Qureg, error) { return create(numQubits, env.env) })
	if err != nil {
		return nil, err
	}
	return env.adopt(h), nil
}

// adopt wraps a freshly created native register.
func (e *Env) adopt(h backend.Qureg) *Qureg {
	q := &Qureg{
		env:       e,
		handle:    h,
		open:      true,
		numQubits: backend.QubitsRepresented(h),
		density:   backend.IsDensity(h),
	}
	q.log = e.log.With("qureg", fmt.Sprintf("%p", q))
	e.acquire()
	runtime.SetFinalizer(q, (*Qureg).Close)
	q.log.Debug(context.Background(), "register created", "qubits", q.numQubits, "density", q.density)
	return q
}

// Clone creates a new register in the same environment holding a copy of q's
// state.
func (q *Qureg) Clone() (*Qureg, error) {
	const op = "Qureg.Clone"
	if err := q.usable(); err != nil {
		return nil, err
	}
	if err := q.env.usable(); err != nil {
		return nil, err
	}
	h, err := callValue(op, func() (backend.Qureg, error) { return backend.CreateCloneQureg(q.handle, q.env.env) })
	if err = q.settle(op, err); err != nil {
		return nil, err
	}
	return q.env.adopt(h), nil
}

// Close destroys the register. It is safe to call more than once. A native
// failure while destroying is unrecoverable and panics.
func (q *Qureg) Close() {
	if q == nil || !q.open {
		return
	}
	h := q.handle
	if err := call("Qureg.Close", func() error { return backend.DestroyQureg(h, q.env.env) }); err != nil {
		panic(err)
	}
	q.open = false
	q.handle = backend.Qureg{}
	q.env.release()
	runtime.SetFinalizer(q, nil)
	q.log.Debug(context.Background(), "register destroyed")
}

// NumQubits is the number of qubits the register represents.
func (q *Qureg) NumQubits() int { return q.numQubits }

// IsDensityMatrix reports whether q is a density matrix.
func (q *Qureg) IsDensityMatrix() bool { return q.density }

// Poisoned reports whether q was marked unusable after a native error. It is
// only ever true when Config.PoisonOnNativeError is set.
func (q *Qureg) Poisoned() bool { return q.poisoned }

// NumAmps is the number of amplitudes in a state-vector register. QuEST
// rejects the call for density matrices.
func (q *Qureg) NumAmps() (int64, error) {
	return quregValue(q, "Qureg.NumAmps", func() (int64, error) { return backend.NumAmps(q.handle) })
}

func (q *Qureg) usable() error {
	switch {
	case q == nil || !q.open:
		return ErrClosed
	case q.poisoned:
		return ErrPoisoned
	}
	return nil
}

// settle remaps err and applies the poisoning policy.
func (q *Qureg) settle(op string, err error) error {
	if err == nil {
		return nil
	}
	if ne, ok := err.(*NativeError); ok {
		q.log.Debug(context.Background(), "native input error",
			"op", op, "function", ne.Function, "message", ne.Message)
		if q.env != nil && q.env.cfg.PoisonOnNativeError {
			q.poisoned = true
		}
	}
	return err
}

// do runs a single native call on q after checking q is usable.
func (q *Qureg) do(op string, fn func() error) error {
	if err := q.usable(); err != nil {
		return err
	}
	return q.settle(op, call(op, fn))
}

func quregValue[T any](q *Qureg, op string, fn func() (T, error)) (T, error) {
	var zero T
	if err := q.usable(); err != nil {
		return zero, err
	}
	v, err := callValue(op, fn)
	if err = q.settle(op, err); err != nil {
		return zero, err
	}
	return v, nil
}

// pair runs a native call involving two registers and applies the poisoning
// policy to both.
func pair(op string, a, b *Qureg, fn func() error) error {
	if err := a.usable(); err != nil {
		return err
	}
	if err := b.usable(); err != nil {
		return err
	}
	err := call(op, fn)
	_ = b.settle(op, err)
	return a.settle(op, err)
}

func pairValue[T any](op string, a, b *Qureg, fn func() (T, error)) (T, error) {
	var zero T
	if err := a.usable(); err != nil {
		return zero, err
	}
	if err := b.usable(); err != nil {
		return zero, err
	}
	v, err := callValue(op, fn)
	_ = b.settle(op, err)
	if err = a.settle(op, err); err != nil {
		return zero, err
	}
	return v, nil
}
