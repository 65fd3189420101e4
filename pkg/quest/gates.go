package quest

import "github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"

// single runs a one-target operation after checking the index.
func (q *Qureg) single(op string, t int, fn func() error) error {
	if err := q.ready(op, t); err != nil {
		return err
	}
	return q.do(op, fn)
}

// controlled runs an operation addressing a fixed set of qubit indices.
func (q *Qureg) controlled(op string, qubits []int, fn func() error) error {
	if err := q.ready(op, qubits...); err != nil {
		return err
	}
	return q.do(op, fn)
}

type qubitList struct {
	arg    string
	qubits []int
}

// multi runs an operation taking qubit lists, each of which is validated, plus
// any fixed single-qubit indices.
func (q *Qureg) multi(op string, lists []qubitList, fixed []int, fn func() error) error {
	if err := q.usable(); err != nil {
		return err
	}
	for _, l := range lists {
		if err := q.checkQubitList(op, l.arg, l.qubits); err != nil {
			return err
		}
	}
	if err := q.checkQubits(op, fixed...); err != nil {
		return err
	}
	return q.do(op, fn)
}

// PhaseShift multiplies the |1> amplitude of qubit t by exp(i*angle).
func (q *Qureg) PhaseShift(t int, angle float64) error {
	return q.single("Qureg.PhaseShift", t, func() error { return backend.PhaseShift(q.handle, t, angle) })
}

// ControlledPhaseShift applies exp(i*angle) to states where both qubits are 1.
func (q *Qureg) ControlledPhaseShift(a, b int, angle float64) error {
	return q.controlled("Qureg.ControlledPhaseShift", []int{a, b}, func() error {
		return backend.ControlledPhaseShift(q.handle, a, b, angle)
	})
}

// MultiControlledPhaseShift applies exp(i*angle) to states where every qubit
// in ctrls is 1.
func (q *Qureg) MultiControlledPhaseShift(ctrls []int, angle float64) error {
	return q.multi("Qureg.MultiControlledPhaseShift", []qubitList{{"ctrls", ctrls}}, nil, func() error {
		return backend.MultiControlledPhaseShift(q.handle, ctrls, angle)
	})
}

// ControlledPhaseFlip negates states where both qubits are 1.
func (q *Qureg) ControlledPhaseFlip(a, b int) error {
	return q.controlled("Qureg.ControlledPhaseFlip", []int{a, b}, func() error {
		return backend.ControlledPhaseFlip(q.handle, a, b)
	})
}

// MultiControlledPhaseFlip negates states where every qubit in ctrls is 1.
func (q *Qureg) MultiControlledPhaseFlip(ctrls []int) error {
	return q.multi("Qureg.MultiControlledPhaseFlip", []qubitList{{"ctrls", ctrls}}, nil, func() error {
		return backend.MultiControlledPhaseFlip(q.handle, ctrls)
	})
}

func (q *Qureg) SGate(t int) error {
	return q.single("Qureg.SGate", t, func() error { return backend.SGate(q.handle, t) })
}

func (q *Qureg) TGate(t int) error {
	return q.single("Qureg.TGate", t, func() error { return backend.TGate(q.handle, t) })
}

func (q *Qureg) PauliX(t int) error {
	return q.single("Qureg.PauliX", t, func() error { return backend.PauliX(q.handle, t) })
}

func (q *Qureg) PauliY(t int) error {
	return q.single("Qureg.PauliY", t, func() error { return backend.PauliY(q.handle, t) })
}

func (q *Qureg) PauliZ(t int) error {
	return q.single("Qureg.PauliZ", t, func() error { return backend.PauliZ(q.handle, t) })
}

func (q *Qureg) Hadamard(t int) error {
	return q.single("Qureg.Hadamard", t, func() error { return backend.Hadamard(q.handle, t) })
}

func (q *Qureg) ControlledNot(c, t int) error {
	return q.controlled("Qureg.ControlledNot", []int{c, t}, func() error { return backend.ControlledNot(q.handle, c, t) })
}

func (q *Qureg) ControlledPauliY(c, t int) error {
	return q.controlled("Qureg.ControlledPauliY", []int{c, t}, func() error { return backend.ControlledPauliY(q.handle, c, t) })
}

// MultiQubitNot flips every qubit in targs.
func (q *Qureg) MultiQubitNot(targs []int) error {
	return q.multi("Qureg.MultiQubitNot", []qubitList{{"targs", targs}}, nil, func() error {
		return backend.MultiQubitNot(q.handle, targs)
	})
}

// MultiControlledMultiQubitNot flips every qubit in targs when every qubit in
// ctrls is 1.
func (q *Qureg) MultiControlledMultiQubitNot(ctrls, targs []int) error {
	return q.multi("Qureg.MultiControlledMultiQubitNot", []qubitList{{"ctrls", ctrls}, {"targs", targs}}, nil, func() error {
		return backend.MultiControlledMultiQubitNot(q.handle, ctrls, targs)
	})
}

func (q *Qureg) SwapGate(a, b int) error {
	return q.controlled("Qureg.SwapGate", []int{a, b}, func() error { return backend.SwapGate(q.handle, a, b) })
}

func (q *Qureg) SqrtSwapGate(a, b int) error {
	return q.controlled("Qureg.SqrtSwapGate", []int{a, b}, func() error { return backend.SqrtSwapGate(q.handle, a, b) })
}

func (q *Qureg) RotateX(t int, angle float64) error {
	return q.single("Qureg.RotateX", t, func() error { return backend.RotateX(q.handle, t, angle) })
}

func (q *Qureg) RotateY(t int, angle float64) error {
	return q.single("Qureg.RotateY", t, func() error { return backend.RotateY(q.handle, t, angle) })
}

func (q *Qureg) RotateZ(t int, angle float64) error {
	return q.single("Qureg.RotateZ", t, func() error { return backend.RotateZ(q.handle, t, angle) })
}

// RotateAroundAxis rotates qubit t by angle around axis, which QuEST
// normalises and rejects if zero.
func (q *Qureg) RotateAroundAxis(t int, angle float64, axis Vector) error {
	return q.single("Qureg.RotateAroundAxis", t, func() error {
		return backend.RotateAroundAxis(q.handle, t, angle, axis.native())
	})
}

func (q *Qureg) ControlledRotateX(c, t int, angle float64) error {
	return q.controlled("Qureg.ControlledRotateX", []int{c, t}, func() error {
		return backend.ControlledRotateX(q.handle, c, t, angle)
	})
}

func (q *Qureg) ControlledRotateY(c, t int, angle float64) error {
	return q.controlled("Qureg.ControlledRotateY", []int{c, t}, func() error {
		return backend.ControlledRotateY(q.handle, c, t, angle)
	})
}

func (q *Qureg) ControlledRotateZ(c, t int, angle float64) error {
	return q.controlled("Qureg.ControlledRotateZ", []int{c, t}, func() error {
		return backend.ControlledRotateZ(q.handle, c, t, angle)
	})
}

func (q *Qureg) ControlledRotateAroundAxis(c, t int, angle float64, axis Vector) error {
	return q.controlled("Qureg.ControlledRotateAroundAxis", []int{c, t}, func() error {
		return backend.ControlledRotateAroundAxis(q.handle, c, t, angle, axis.native())
	})
}

// MultiRotateZ applies exp(-i*angle/2 * Z⊗...⊗Z) on qubits.
func (q *Qureg) MultiRotateZ(qubits []int, angle float64) error {
	return q.multi("Qureg.MultiRotateZ", []qubitList{{"qubits", qubits}}, nil, func() error {
		return backend.MultiRotateZ(q.handle, qubits, angle)
	})
}

// MultiRotatePauli applies exp(-i*angle/2 * P) where P is the product of
// paulis[k] acting on targs[k].
func (q *Qureg) MultiRotatePauli(targs []int, paulis []PauliOp, angle float64) error {
	const op = "Qureg.MultiRotatePauli"
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkSameLength(op, "targs", len(targs), "paulis", len(paulis)); err != nil {
		return err
	}
	codes := pauliCodes(paulis)
	return q.multi(op, []qubitList{{"targs", targs}}, nil, func() error {
		return backend.MultiRotatePauli(q.handle, targs, codes, angle)
	})
}

func (q *Qureg) MultiControlledMultiRotateZ(ctrls, targs []int, angle float64) error {
	return q.multi("Qureg.MultiControlledMultiRotateZ", []qubitList{{"ctrls", ctrls}, {"targs", targs}}, nil, func() error {
		return backend.MultiControlledMultiRotateZ(q.handle, ctrls, targs, angle)
	})
}

func (q *Qureg) MultiControlledMultiRotatePauli(ctrls, targs []int, paulis []PauliOp, angle float64) error {
	const op = "Qureg.MultiControlledMultiRotatePauli"
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkSameLength(op, "targs", len(targs), "paulis", len(paulis)); err != nil {
		return err
	}
	codes := pauliCodes(paulis)
	return q.multi(op, []qubitList{{"ctrls", ctrls}, {"targs", targs}}, nil, func() error {
		return backend.MultiControlledMultiRotatePauli(q.handle, ctrls, targs, codes, angle)
	})
}
