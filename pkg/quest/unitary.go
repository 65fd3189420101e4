package quest

import "github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"

// CompactUnitary applies [[alpha, -conj(beta)], [beta, conj(alpha)]] to
// qubit t. QuEST requires |alpha|^2 + |beta|^2 = 1.
func (q *Qureg) CompactUnitary(t int, alpha, beta complex128) error {
	return q.single("Qureg.CompactUnitary", t, func() error { return backend.CompactUnitary(q.handle, t, alpha, beta) })
}

// Unitary applies u, which QuEST checks is unitary, to qubit t.
func (q *Qureg) Unitary(t int, u ComplexMatrix2) error {
	return q.single("Qureg.Unitary", t, func() error { return backend.Unitary(q.handle, t, u.native()) })
}

func (q *Qureg) ControlledCompactUnitary(c, t int, alpha, beta complex128) error {
	return q.controlled("Qureg.ControlledCompactUnitary", []int{c, t}, func() error {
		return backend.ControlledCompactUnitary(q.handle, c, t, alpha, beta)
	})
}

func (q *Qureg) ControlledUnitary(c, t int, u ComplexMatrix2) error {
	return q.controlled("Qureg.ControlledUnitary", []int{c, t}, func() error {
		return backend.ControlledUnitary(q.handle, c, t, u.native())
	})
}

func (q *Qureg) MultiControlledUnitary(ctrls []int, t int, u ComplexMatrix2) error {
	return q.multi("Qureg.MultiControlledUnitary", []qubitList{{"ctrls", ctrls}}, []int{t}, func() error {
		return backend.MultiControlledUnitary(q.handle, ctrls, t, u.native())
	})
}

// MultiStateControlledUnitary applies u to t when each ctrls[k] is in state
// states[k] (0 or 1).
func (q *Qureg) MultiStateControlledUnitary(ctrls, states []int, t int, u ComplexMatrix2) error {
	const op = "Qureg.MultiStateControlledUnitary"
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkSameLength(op, "ctrls", len(ctrls), "states", len(states)); err != nil {
		return err
	}
	return q.multi(op, []qubitList{{"ctrls", ctrls}}, []int{t}, func() error {
		return backend.MultiStateControlledUnitary(q.handle, ctrls, states, t, u.native())
	})
}

// TwoQubitUnitary applies u to (t1, t2); t1 is the least significant qubit of
// u's basis.
func (q *Qureg) TwoQubitUnitary(t1, t2 int, u ComplexMatrix4) error {
	return q.controlled("Qureg.TwoQubitUnitary", []int{t1, t2}, func() error {
		return backend.TwoQubitUnitary(q.handle, t1, t2, u.native())
	})
}

func (q *Qureg) ControlledTwoQubitUnitary(c, t1, t2 int, u ComplexMatrix4) error {
	return q.controlled("Qureg.ControlledTwoQubitUnitary", []int{c, t1, t2}, func() error {
		return backend.ControlledTwoQubitUnitary(q.handle, c, t1, t2, u.native())
	})
}

func (q *Qureg) MultiControlledTwoQubitUnitary(ctrls []int, t1, t2 int, u ComplexMatrix4) error {
	return q.multi("Qureg.MultiControlledTwoQubitUnitary", []qubitList{{"ctrls", ctrls}}, []int{t1, t2}, func() error {
		return backend.MultiControlledTwoQubitUnitary(q.handle, ctrls, t1, t2, u.native())
	})
}

// MultiQubitUnitary applies u to targs. u must act on len(targs) qubits.
func (q *Qureg) MultiQubitUnitary(targs []int, u *ComplexMatrixN) error {
	const op = "Qureg.MultiQubitUnitary"
	if err := q.usable(); err != nil {
		return err
	}
	if err := matrixFor(op, u, len(targs)); err != nil {
		return err
	}
	return q.multi(op, []qubitList{{"targs", targs}}, nil, func() error {
		return backend.MultiQubitUnitary(q.handle, targs, u.handle)
	})
}

func (q *Qureg) ControlledMultiQubitUnitary(c int, targs []int, u *ComplexMatrixN) error {
	const op = "Qureg.ControlledMultiQubitUnitary"
	if err := q.usable(); err != nil {
		return err
	}
	if err := matrixFor(op, u, len(targs)); err != nil {
		return err
	}
	return q.multi(op, []qubitList{{"targs", targs}}, []int{c}, func() error {
		return backend.ControlledMultiQubitUnitary(q.handle, c, targs, u.handle)
	})
}

func (q *Qureg) MultiControlledMultiQubitUnitary(ctrls, targs []int, u *ComplexMatrixN) error {
	const op = "Qureg.MultiControlledMultiQubitUnitary"
	if err := q.usable(); err != nil {
		return err
	}
	if err := matrixFor(op, u, len(targs)); err != nil {
		return err
	}
	return q.multi(op, []qubitList{{"ctrls", ctrls}, {"targs", targs}}, nil, func() error {
		return backend.MultiControlledMultiQubitUnitary(q.handle, ctrls, targs, u.handle)
	})
}

// The ApplyMatrix family left-multiplies the state by an arbitrary matrix,
// without checking unitarity. On a density matrix only the left side is
// applied.

func (q *Qureg) ApplyMatrix2(t int, u ComplexMatrix2) error {
	return q.single("Qureg.ApplyMatrix2", t, func() error { return backend.ApplyMatrix2(q.handle, t, u.native()) })
}

func (q *Qureg) ApplyMatrix4(t1, t2 int, u ComplexMatrix4) error {
	return q.controlled("Qureg.ApplyMatrix4", []int{t1, t2}, func() error {
		return backend.ApplyMatrix4(q.handle, t1, t2, u.native())
	})
}

func (q *Qureg) ApplyMatrixN(targs []int, u *ComplexMatrixN) error {
	const op = "Qureg.ApplyMatrixN"
	if err := q.usable(); err != nil {
		return err
	}
	if err := matrixFor(op, u, len(targs)); err != nil {
		return err
	}
	return q.multi(op, []qubitList{{"targs", targs}}, nil, func() error {
		return backend.ApplyMatrixN(q.handle, targs, u.handle)
	})
}

func (q *Qureg) ApplyMultiControlledMatrixN(ctrls, targs []int, u *ComplexMatrixN) error {
	const op = "Qureg.ApplyMultiControlledMatrixN"
	if err := q.usable(); err != nil {
		return err
	}
	if err := matrixFor(op, u, len(targs)); err != nil {
		return err
	}
	return q.multi(op, []qubitList{{"ctrls", ctrls}, {"targs", targs}}, nil, func() error {
		return backend.ApplyMultiControlledMatrixN(q.handle, ctrls, targs, u.handle)
	})
}
