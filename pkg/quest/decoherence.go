package quest

import "github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"

// Decoherence channels act on density matrices only; QuEST rejects state
// vectors and out-of-range probabilities.

func (q *Qureg) MixDephasing(t int, prob float64) error {
	return q.single("Qureg.MixDephasing", t, func() error { return backend.MixDephasing(q.handle, t, prob) })
}

func (q *Qureg) MixTwoQubitDephasing(a, b int, prob float64) error {
	return q.controlled("Qureg.MixTwoQubitDephasing", []int{a, b}, func() error {
		return backend.MixTwoQubitDephasing(q.handle, a, b, prob)
	})
}

func (q *Qureg) MixDepolarising(t int, prob float64) error {
	return q.single("Qureg.MixDepolarising", t, func() error { return backend.MixDepolarising(q.handle, t, prob) })
}

// MixDamping applies amplitude damping towards |0>.
func (q *Qureg) MixDamping(t int, prob float64) error {
	return q.single("Qureg.MixDamping", t, func() error { return backend.MixDamping(q.handle, t, prob) })
}

func (q *Qureg) MixTwoQubitDepolarising(a, b int, prob float64) error {
	return q.controlled("Qureg.MixTwoQubitDepolarising", []int{a, b}, func() error {
		return backend.MixTwoQubitDepolarising(q.handle, a, b, prob)
	})
}

// MixPauli applies X, Y and Z errors on qubit t with the given probabilities.
func (q *Qureg) MixPauli(t int, probX, probY, probZ float64) error {
	return q.single("Qureg.MixPauli", t, func() error { return backend.MixPauli(q.handle, t, probX, probY, probZ) })
}

// MixDensityMatrix sets q to (1-prob)*q + prob*other.
func (q *Qureg) MixDensityMatrix(prob float64, other *Qureg) error {
	return pair("Qureg.MixDensityMatrix", q, other, func() error { return backend.MixDensityMatrix(q.handle, prob, other.handle) })
}

// MixKrausMap applies the channel given by ops (1 to 4 Kraus operators) on
// qubit t. QuEST checks the map is completely positive and trace preserving.
func (q *Qureg) MixKrausMap(t int, ops []ComplexMatrix2) error {
	return q.mixKraus1("Qureg.MixKrausMap", t, ops, false)
}

// MixNonTPKrausMap is MixKrausMap without the trace-preserving check.
func (q *Qureg) MixNonTPKrausMap(t int, ops []ComplexMatrix2) error {
	return q.mixKraus1("Qureg.MixNonTPKrausMap", t, ops, true)
}

func (q *Qureg) mixKraus1(op string, t int, ops []ComplexMatrix2, nonTP bool) error {
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkNonEmpty(op, "ops", len(ops)); err != nil {
		return err
	}
	native := make([]backend.Matrix2, len(ops))
	for i, m := range ops {
		native[i] = m.native()
	}
	return q.single(op, t, func() error { return backend.MixKrausMap(q.handle, t, native, nonTP) })
}

// MixTwoQubitKrausMap applies 1 to 16 Kraus operators on (t1, t2).
func (q *Qureg) MixTwoQubitKrausMap(t1, t2 int, ops []ComplexMatrix4) error {
	return q.mixKraus2("Qureg.MixTwoQubitKrausMap", t1, t2, ops, false)
}

func (q *Qureg) MixNonTPTwoQubitKrausMap(t1, t2 int, ops []ComplexMatrix4) error {
	return q.mixKraus2("Qureg.MixNonTPTwoQubitKrausMap", t1, t2, ops, true)
}

func (q *Qureg) mixKraus2(op string, t1, t2 int, ops []ComplexMatrix4, nonTP bool) error {
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkNonEmpty(op, "ops", len(ops)); err != nil {
		return err
	}
	native := make([]backend.Matrix4, len(ops))
	for i, m := range ops {
		native[i] = m.native()
	}
	return q.controlled(op, []int{t1, t2}, func() error { return backend.MixTwoQubitKrausMap(q.handle, t1, t2, native, nonTP) })
}

// MixMultiQubitKrausMap applies Kraus operators on targs. Every operator must
// act on len(targs) qubits.
func (q *Qureg) MixMultiQubitKrausMap(targs []int, ops []*ComplexMatrixN) error {
	return q.mixKrausN("Qureg.MixMultiQubitKrausMap", targs, ops, false)
}

func (q *Qureg) MixNonTPMultiQubitKrausMap(targs []int, ops []*ComplexMatrixN) error {
	return q.mixKrausN("Qureg.MixNonTPMultiQubitKrausMap", targs, ops, true)
}

func (q *Qureg) mixKrausN(op string, targs []int, ops []*ComplexMatrixN, nonTP bool) error {
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkNonEmpty(op, "ops", len(ops)); err != nil {
		return err
	}
	native := make([]backend.MatrixN, len(ops))
	for i, m := range ops {
		if err := matrixFor(op, m, len(targs)); err != nil {
			return err
		}
		native[i] = m.handle
	}
	return q.multi(op, []qubitList{{"targs", targs}}, nil, func() error {
		return backend.MixMultiQubitKrausMap(q.handle, targs, native, nonTP)
	})
}
