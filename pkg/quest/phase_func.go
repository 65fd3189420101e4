package quest

import (
	"strconv"

	"github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"
)

// BitEncoding selects how a sub-register's qubits are read as an integer.
type BitEncoding int32

const (
	Unsigned BitEncoding = iota
	TwosComplement
)

// PhaseFunc names a built-in phase function of one or more sub-registers
// r_1..r_m. Values match QuEST's phaseFunc enum.
type PhaseFunc int32

const (
	Norm PhaseFunc = iota
	ScaledNorm
	InverseNorm
	ScaledInverseNorm
	ScaledInverseShiftedNorm
	Product
	ScaledProduct
	InverseProduct
	ScaledInverseProduct
	Distance
	ScaledDistance
	InverseDistance
	ScaledInverseDistance
	ScaledInverseShiftedDistance
)

// PhaseOverrides replaces the phase function's value at specific integer
// inputs. For a multi-register function each override takes one index per
// register, so Indices holds len(Phases) * numRegs entries.
type PhaseOverrides struct {
	Indices []int64
	Phases  []float64
}

func (o *PhaseOverrides) native(op string, numRegs int) ([]int64, []float64, error) {
	if o == nil {
		return nil, nil, nil
	}
	want := len(o.Phases) * numRegs
	if len(o.Indices) != want {
		return nil, nil, lengthError(op, "overrides.Indices", len(o.Indices), strconv.Itoa(want))
	}
	inds := o.Indices
	if inds == nil {
		inds = []int64{}
	}
	return inds, o.Phases, nil
}

// ApplyPhaseFunc multiplies each basis state by exp(i * f(x)), where x is the
// integer encoded by qubits and f(x) = sum_k coeffs[k] * x^exponents[k].
// overrides may be nil.
func (q *Qureg) ApplyPhaseFunc(qubits []int, enc BitEncoding, coeffs, exponents []float64, overrides *PhaseOverrides) error {
	const op = "Qureg.ApplyPhaseFunc"
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkSameLength(op, "coeffs", len(coeffs), "exponents", len(exponents)); err != nil {
		return err
	}
	inds, phases, err := overrides.native(op, 1)
	if err != nil {
		return err
	}
	return q.multi(op, []qubitList{{"qubits", qubits}}, nil, func() error {
		return backend.ApplyPhaseFunc(q.handle, qubits, int(enc), coeffs, exponents, inds, phases)
	})
}

// ApplyMultiVarPhaseFunc applies exp(i * sum_j f_j(r_j)), where register r_j
// is the next qubitsPerReg[j] entries of qubits and f_j uses the next
// termsPerReg[j] entries of coeffs and exponents.
func (q *Qureg) ApplyMultiVarPhaseFunc(qubits, qubitsPerReg []int, enc BitEncoding, coeffs, exponents []float64, termsPerReg []int, overrides *PhaseOverrides) error {
	const op = "Qureg.ApplyMultiVarPhaseFunc"
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkRegisters(op, qubits, qubitsPerReg); err != nil {
		return err
	}
	if err := checkSameLength(op, "qubitsPerReg", len(qubitsPerReg), "termsPerReg", len(termsPerReg)); err != nil {
		return err
	}
	if err := checkSameLength(op, "coeffs", len(coeffs), "exponents", len(exponents)); err != nil {
		return err
	}
	if terms := sum(termsPerReg); terms != len(coeffs) {
		return lengthError(op, "coeffs", len(coeffs), "sum(termsPerReg) = "+strconv.Itoa(terms))
	}
	inds, phases, err := overrides.native(op, len(qubitsPerReg))
	if err != nil {
		return err
	}
	return q.multi(op, []qubitList{{"qubits", qubits}}, nil, func() error {
		return backend.ApplyMultiVarPhaseFunc(q.handle, qubits, qubitsPerReg, int(enc), coeffs, exponents, termsPerReg, inds, phases)
	})
}

// ApplyNamedPhaseFunc applies exp(i * fn(r_1, ..., r_m)) over the registers
// described by qubitsPerReg.
func (q *Qureg) ApplyNamedPhaseFunc(qubits, qubitsPerReg []int, enc BitEncoding, fn PhaseFunc, overrides *PhaseOverrides) error {
	const op = "Qureg.ApplyNamedPhaseFunc"
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkRegisters(op, qubits, qubitsPerReg); err != nil {
		return err
	}
	inds, phases, err := overrides.native(op, len(qubitsPerReg))
	if err != nil {
		return err
	}
	return q.multi(op, []qubitList{{"qubits", qubits}}, nil, func() error {
		return backend.ApplyNamedPhaseFunc(q.handle, qubits, qubitsPerReg, int(enc), int(fn), inds, phases)
	})
}

// ApplyParamNamedPhaseFunc is ApplyNamedPhaseFunc for the scaled, shifted and
// inverse variants that take parameters. QuEST checks the parameter count
// for fn.
func (q *Qureg) ApplyParamNamedPhaseFunc(qubits, qubitsPerReg []int, enc BitEncoding, fn PhaseFunc, params []float64, overrides *PhaseOverrides) error {
	const op = "Qureg.ApplyParamNamedPhaseFunc"
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkRegisters(op, qubits, qubitsPerReg); err != nil {
		return err
	}
	inds, phases, err := overrides.native(op, len(qubitsPerReg))
	if err != nil {
		return err
	}
	return q.multi(op, []qubitList{{"qubits", qubits}}, nil, func() error {
		return backend.ApplyParamNamedPhaseFunc(q.handle, qubits, qubitsPerReg, int(enc), int(fn), params, inds, phases)
	})
}

func checkRegisters(op string, qubits, qubitsPerReg []int) error {
	if err := checkNonEmpty(op, "qubitsPerReg", len(qubitsPerReg)); err != nil {
		return err
	}
	if n := sum(qubitsPerReg); n != len(qubits) {
		return lengthError(op, "qubits", len(qubits), "sum(qubitsPerReg) = "+strconv.Itoa(n))
	}
	return nil
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
