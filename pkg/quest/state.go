package quest

import "github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"

// InitBlankState sets every amplitude to zero, an unphysical state.
func (q *Qureg) InitBlankState() error {
	return q.do("Qureg.InitBlankState", func() error { return backend.InitBlankState(q.handle) })
}

// InitZeroState sets q to |0...0>.
func (q *Qureg) InitZeroState() error {
	return q.do("Qureg.InitZeroState", func() error { return backend.InitZeroState(q.handle) })
}

// InitPlusState sets q to the uniform superposition |+...+>.
func (q *Qureg) InitPlusState() error {
	return q.do("Qureg.InitPlusState", func() error { return backend.InitPlusState(q.handle) })
}

// InitDebugState sets amplitude k to (2k + (2k+1)i)/10, an unnormalised
// state useful for checking amplitude layout.
func (q *Qureg) InitDebugState() error {
	return q.do("Qureg.InitDebugState", func() error { return backend.InitDebugState(q.handle) })
}

// InitClassicalState sets q to the computational basis state with index ind.
func (q *Qureg) InitClassicalState(ind int64) error {
	return q.do("Qureg.InitClassicalState", func() error { return backend.InitClassicalState(q.handle, ind) })
}

// InitPureState sets q to the pure state held by the state-vector pure. q may
// be a density matrix, in which case it becomes |pure><pure|.
func (q *Qureg) InitPureState(pure *Qureg) error {
	return pair("Qureg.InitPureState", q, pure, func() error { return backend.InitPureState(q.handle, pure.handle) })
}

// InitStateFromAmps overwrites the whole state vector. Both slices must hold
// exactly 2^n entries.
func (q *Qureg) InitStateFromAmps(reals, imags []float64) error {
	const op = "Qureg.InitStateFromAmps"
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkExactLength(op, "reals", len(reals), dim(q.numQubits)); err != nil {
		return err
	}
	if err := checkSameLength(op, "reals", len(reals), "imags", len(imags)); err != nil {
		return err
	}
	return q.do(op, func() error { return backend.InitStateFromAmps(q.handle, reals, imags) })
}

// SetAmps overwrites len(reals) consecutive amplitudes of a state vector,
// starting at index start.
func (q *Qureg) SetAmps(start int64, reals, imags []float64) error {
	const op = "Qureg.SetAmps"
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkSameLength(op, "reals", len(reals), "imags", len(imags)); err != nil {
		return err
	}
	return q.do(op, func() error { return backend.SetAmps(q.handle, start, reals, imags) })
}

// SetDensityAmps overwrites len(reals) consecutive elements of a density
// matrix, starting at (row, col) and proceeding down columns.
func (q *Qureg) SetDensityAmps(row, col int64, reals, imags []float64) error {
	const op = "Qureg.SetDensityAmps"
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkSameLength(op, "reals", len(reals), "imags", len(imags)); err != nil {
		return err
	}
	return q.do(op, func() error { return backend.SetDensityAmps(q.handle, row, col, reals, imags) })
}

// CloneFrom overwrites q with the state of src. Both registers must have the
// same type and size.
func (q *Qureg) CloneFrom(src *Qureg) error {
	return pair("Qureg.CloneFrom", q, src, func() error { return backend.CloneQureg(q.handle, src.handle) })
}

// SetWeightedQureg sets out to f1*q1 + f2*q2 + fOut*out. All three registers
// must have the same type and size; out may alias q1 or q2.
func SetWeightedQureg(f1 complex128, q1 *Qureg, f2 complex128, q2 *Qureg, fOut complex128, out *Qureg) error {
	const op = "SetWeightedQureg"
	for _, q := range []*Qureg{q1, q2, out} {
		if err := q.usable(); err != nil {
			return err
		}
	}
	err := call(op, func() error {
		return backend.SetWeightedQureg(f1, q1.handle, f2, q2.handle, fOut, out.handle)
	})
	_ = q1.settle(op, err)
	_ = q2.settle(op, err)
	return out.settle(op, err)
}

// Amp returns amplitude ind of a state vector.
func (q *Qureg) Amp(ind int64) (complex128, error) {
	return quregValue(q, "Qureg.Amp", func() (complex128, error) { return backend.Amp(q.handle, ind) })
}

// RealAmp returns the real part of amplitude ind of a state vector.
func (q *Qureg) RealAmp(ind int64) (float64, error) {
	return quregValue(q, "Qureg.RealAmp", func() (float64, error) { return backend.RealAmp(q.handle, ind) })
}

// ImagAmp returns the imaginary part of amplitude ind of a state vector.
func (q *Qureg) ImagAmp(ind int64) (float64, error) {
	return quregValue(q, "Qureg.ImagAmp", func() (float64, error) { return backend.ImagAmp(q.handle, ind) })
}

// ProbAmp returns |amplitude ind|^2 of a state vector.
func (q *Qureg) ProbAmp(ind int64) (float64, error) {
	return quregValue(q, "Qureg.ProbAmp", func() (float64, error) { return backend.ProbAmp(q.handle, ind) })
}

// DensityAmp returns element (row, col) of a density matrix.
func (q *Qureg) DensityAmp(row, col int64) (complex128, error) {
	return quregValue(q, "Qureg.DensityAmp", func() (complex128, error) { return backend.DensityAmp(q.handle, row, col) })
}

// TotalProb is the norm of a state vector or the trace of a density matrix.
func (q *Qureg) TotalProb() (float64, error) {
	return quregValue(q, "Qureg.TotalProb", func() (float64, error) { return backend.TotalProb(q.handle) })
}

// The GPU copies are no-ops unless QuEST was built with GPU acceleration.

func (q *Qureg) CopyStateToGPU() error {
	return q.do("Qureg.CopyStateToGPU", func() error { return backend.CopyStateToGPU(q.handle) })
}

func (q *Qureg) CopyStateFromGPU() error {
	return q.do("Qureg.CopyStateFromGPU", func() error { return backend.CopyStateFromGPU(q.handle) })
}

func (q *Qureg) CopySubstateToGPU(start, numAmps int64) error {
	return q.do("Qureg.CopySubstateToGPU", func() error { return backend.CopySubstateToGPU(q.handle, start, numAmps) })
}

func (q *Qureg) CopySubstateFromGPU(start, numAmps int64) error {
	return q.do("Qureg.CopySubstateFromGPU", func() error { return backend.CopySubstateFromGPU(q.handle, start, numAmps) })
}
