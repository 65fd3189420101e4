//go:build cgo && !windows

package backend

/*
#include "shim.h"
*/
import "C"

func PhaseShift(q Qureg, t int, angle float64) error {
	return status(C.qg_phaseShift(q, C.int(t), C.qreal(angle)))
}

func ControlledPhaseShift(q Qureg, a, b int, angle float64) error {
	return status(C.qg_controlledPhaseShift(q, C.int(a), C.int(b), C.qreal(angle)))
}

func MultiControlledPhaseShift(q Qureg, ctrls []int, angle float64) error {
	cc := cInts(ctrls)
	return status(C.qg_multiControlledPhaseShift(q, intPtr(cc), C.int(len(cc)), C.qreal(angle)))
}

func ControlledPhaseFlip(q Qureg, a, b int) error {
	return status(C.qg_controlledPhaseFlip(q, C.int(a), C.int(b)))
}

func MultiControlledPhaseFlip(q Qureg, ctrls []int) error {
	cc := cInts(ctrls)
	return status(C.qg_multiControlledPhaseFlip(q, intPtr(cc), C.int(len(cc))))
}

func SGate(q Qureg, t int) error    { return status(C.qg_sGate(q, C.int(t))) }
func TGate(q Qureg, t int) error    { return status(C.qg_tGate(q, C.int(t))) }
func PauliX(q Qureg, t int) error   { return status(C.qg_pauliX(q, C.int(t))) }
func PauliY(q Qureg, t int) error   { return status(C.qg_pauliY(q, C.int(t))) }
func PauliZ(q Qureg, t int) error   { return status(C.qg_pauliZ(q, C.int(t))) }
func Hadamard(q Qureg, t int) error { return status(C.qg_hadamard(q, C.int(t))) }

func ControlledNot(q Qureg, c, t int) error {
	return status(C.qg_controlledNot(q, C.int(c), C.int(t)))
}

func ControlledPauliY(q Qureg, c, t int) error {
	return status(C.qg_controlledPauliY(q, C.int(c), C.int(t)))
}

func MultiQubitNot(q Qureg, targs []int) error {
	tt := cInts(targs)
	return status(C.qg_multiQubitNot(q, intPtr(tt), C.int(len(tt))))
}

func MultiControlledMultiQubitNot(q Qureg, ctrls, targs []int) error {
	cc, tt := cInts(ctrls), cInts(targs)
	return status(C.qg_multiControlledMultiQubitNot(q, intPtr(cc), C.int(len(cc)), intPtr(tt), C.int(len(tt))))
}

func SwapGate(q Qureg, a, b int) error {
	return status(C.qg_swapGate(q, C.int(a), C.int(b)))
}

func SqrtSwapGate(q Qureg, a, b int) error {
	return status(C.qg_sqrtSwapGate(q, C.int(a), C.int(b)))
}

func RotateX(q Qureg, t int, angle float64) error {
	return status(C.qg_rotateX(q, C.int(t), C.qreal(angle)))
}

func RotateY(q Qureg, t int, angle float64) error {
	return status(C.qg_rotateY(q, C.int(t), C.qreal(angle)))
}

func RotateZ(q Qureg, t int, angle float64) error {
	return status(C.qg_rotateZ(q, C.int(t), C.qreal(angle)))
}

func RotateAroundAxis(q Qureg, t int, angle float64, axis Vector) error {
	return status(C.qg_rotateAroundAxis(q, C.int(t), C.qreal(angle), cVector(axis)))
}

func ControlledRotateX(q Qureg, c, t int, angle float64) error {
	return status(C.qg_controlledRotateX(q, C.int(c), C.int(t), C.qreal(angle)))
}

func ControlledRotateY(q Qureg, c, t int, angle float64) error {
	return status(C.qg_controlledRotateY(q, C.int(c), C.int(t), C.qreal(angle)))
}

func ControlledRotateZ(q Qureg, c, t int, angle float64) error {
	return status(C.qg_controlledRotateZ(q, C.int(c), C.int(t), C.qreal(angle)))
}

func ControlledRotateAroundAxis(q Qureg, c, t int, angle float64, axis Vector) error {
	return status(C.qg_controlledRotateAroundAxis(q, C.int(c), C.int(t), C.qreal(angle), cVector(axis)))
}

func MultiRotateZ(q Qureg, qubits []int, angle float64) error {
	qq := cInts(qubits)
	return status(C.qg_multiRotateZ(q, intPtr(qq), C.int(len(qq)), C.qreal(angle)))
}

func MultiRotatePauli(q Qureg, targs []int, paulis []int32, angle float64) error {
	tt, pp := cInts(targs), pauliCodes(paulis)
	return status(C.qg_multiRotatePauli(q, intPtr(tt), pauliPtr(pp), C.int(len(tt)), C.qreal(angle)))
}

func MultiControlledMultiRotateZ(q Qureg, ctrls, targs []int, angle float64) error {
	cc, tt := cInts(ctrls), cInts(targs)
	return status(C.qg_multiControlledMultiRotateZ(q, intPtr(cc), C.int(len(cc)), intPtr(tt), C.int(len(tt)), C.qreal(angle)))
}

func MultiControlledMultiRotatePauli(q Qureg, ctrls, targs []int, paulis []int32, angle float64) error {
	cc, tt, pp := cInts(ctrls), cInts(targs), pauliCodes(paulis)
	return status(C.qg_multiControlledMultiRotatePauli(q, intPtr(cc), C.int(len(cc)), intPtr(tt), pauliPtr(pp), C.int(len(tt)), C.qreal(angle)))
}

func CompactUnitary(q Qureg, t int, alpha, beta complex128) error {
	return status(C.qg_compactUnitary(q, C.int(t), cComplex(alpha), cComplex(beta)))
}

func Unitary(q Qureg, t int, u Matrix2) error {
	return status(C.qg_unitary(q, C.int(t), cMatrix2(u)))
}

func ControlledCompactUnitary(q Qureg, c, t int, alpha, beta complex128) error {
	return status(C.qg_controlledCompactUnitary(q, C.int(c), C.int(t), cComplex(alpha), cComplex(beta)))
}

func ControlledUnitary(q Qureg, c, t int, u Matrix2) error {
	return status(C.qg_controlledUnitary(q, C.int(c), C.int(t), cMatrix2(u)))
}

func MultiControlledUnitary(q Qureg, ctrls []int, t int, u Matrix2) error {
	cc := cInts(ctrls)
	return status(C.qg_multiControlledUnitary(q, intPtr(cc), C.int(len(cc)), C.int(t), cMatrix2(u)))
}

func MultiStateControlledUnitary(q Qureg, ctrls, states []int, t int, u Matrix2) error {
	cc, ss := cInts(ctrls), cInts(states)
	return status(C.qg_multiStateControlledUnitary(q, intPtr(cc), intPtr(ss), C.int(len(cc)), C.int(t), cMatrix2(u)))
}

func TwoQubitUnitary(q Qureg, t1, t2 int, u Matrix4) error {
	return status(C.qg_twoQubitUnitary(q, C.int(t1), C.int(t2), cMatrix4(u)))
}

func ControlledTwoQubitUnitary(q Qureg, c, t1, t2 int, u Matrix4) error {
	return status(C.qg_controlledTwoQubitUnitary(q, C.int(c), C.int(t1), C.int(t2), cMatrix4(u)))
}

func MultiControlledTwoQubitUnitary(q Qureg, ctrls []int, t1, t2 int, u Matrix4) error {
	cc := cInts(ctrls)
	return status(C.qg_multiControlledTwoQubitUnitary(q, intPtr(cc), C.int(len(cc)), C.int(t1), C.int(t2), cMatrix4(u)))
}

func MultiQubitUnitary(q Qureg, targs []int, u MatrixN) error {
	tt := cInts(targs)
	return status(C.qg_multiQubitUnitary(q, intPtr(tt), C.int(len(tt)), u))
}

func ControlledMultiQubitUnitary(q Qureg, c int, targs []int, u MatrixN) error {
	tt := cInts(targs)
	return status(C.qg_controlledMultiQubitUnitary(q, C.int(c), intPtr(tt), C.int(len(tt)), u))
}

func MultiControlledMultiQubitUnitary(q Qureg, ctrls, targs []int, u MatrixN) error {
	cc, tt := cInts(ctrls), cInts(targs)
	return status(C.qg_multiControlledMultiQubitUnitary(q, intPtr(cc), C.int(len(cc)), intPtr(tt), C.int(len(tt)), u))
}

func ApplyMatrix2(q Qureg, t int, u Matrix2) error {
	return status(C.qg_applyMatrix2(q, C.int(t), cMatrix2(u)))
}

func ApplyMatrix4(q Qureg, t1, t2 int, u Matrix4) error {
	return status(C.qg_applyMatrix4(q, C.int(t1), C.int(t2), cMatrix4(u)))
}

func ApplyMatrixN(q Qureg, targs []int, u MatrixN) error {
	tt := cInts(targs)
	return status(C.qg_applyMatrixN(q, intPtr(tt), C.int(len(tt)), u))
}

func ApplyMultiControlledMatrixN(q Qureg, ctrls, targs []int, u MatrixN) error {
	cc, tt := cInts(ctrls), cInts(targs)
	return status(C.qg_applyMultiControlledMatrixN(q, intPtr(cc), C.int(len(cc)), intPtr(tt), C.int(len(tt)), u))
}
