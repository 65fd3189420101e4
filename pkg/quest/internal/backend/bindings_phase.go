//go:build cgo && !windows

package backend

/*
#include "shim.h"
*/
import "C"

func ApplyPauliSum(in Qureg, codes []int32, coeffs []float64, out Qureg) error {
	pp := pauliCodes(codes)
	return status(C.qg_applyPauliSum(in, pauliPtr(pp), realPtr(coeffs), C.int(len(coeffs)), out))
}

func ApplyPauliHamil(in Qureg, h PauliHamil, out Qureg) error {
	return status(C.qg_applyPauliHamil(in, h, out))
}

func ApplyTrotterCircuit(q Qureg, h PauliHamil, time float64, order, reps int) error {
	return status(C.qg_applyTrotterCircuit(q, h, C.qreal(time), C.int(order), C.int(reps)))
}

func ApplyDiagonalOp(q Qureg, op DiagonalOp) error {
	return status(C.qg_applyDiagonalOp(q, op))
}

func ApplyFullQFT(q Qureg) error { return status(C.qg_applyFullQFT(q)) }

func ApplyQFT(q Qureg, qubits []int) error {
	qq := cInts(qubits)
	return status(C.qg_applyQFT(q, intPtr(qq), C.int(len(qq))))
}

// Overrides are optional in every phase function below; a nil overrideInds
// selects the plain QuEST routine.

func ApplyPhaseFunc(q Qureg, qubits []int, enc int, coeffs, exps []float64, overrideInds []int64, overridePhases []float64) error {
	qq := cInts(qubits)
	if overrideInds == nil {
		return status(C.qg_applyPhaseFunc(q, intPtr(qq), C.int(len(qq)), C.enum_bitEncoding(enc),
			realPtr(coeffs), realPtr(exps), C.int(len(coeffs))))
	}
	return status(C.qg_applyPhaseFuncOverrides(q, intPtr(qq), C.int(len(qq)), C.enum_bitEncoding(enc),
		realPtr(coeffs), realPtr(exps), C.int(len(coeffs)),
		longPtr(overrideInds), realPtr(overridePhases), C.int(len(overridePhases))))
}

func ApplyMultiVarPhaseFunc(q Qureg, qubits, perReg []int, enc int, coeffs, exps []float64, termsPerReg []int, overrideInds []int64, overridePhases []float64) error {
	qq, rr, tt := cInts(qubits), cInts(perReg), cInts(termsPerReg)
	if overrideInds == nil {
		return status(C.qg_applyMultiVarPhaseFunc(q, intPtr(qq), intPtr(rr), C.int(len(rr)), C.enum_bitEncoding(enc),
			realPtr(coeffs), realPtr(exps), intPtr(tt)))
	}
	return status(C.qg_applyMultiVarPhaseFuncOverrides(q, intPtr(qq), intPtr(rr), C.int(len(rr)), C.enum_bitEncoding(enc),
		realPtr(coeffs), realPtr(exps), intPtr(tt),
		longPtr(overrideInds), realPtr(overridePhases), C.int(len(overridePhases))))
}

func ApplyNamedPhaseFunc(q Qureg, qubits, perReg []int, enc, fn int, overrideInds []int64, overridePhases []float64) error {
	qq, rr := cInts(qubits), cInts(perReg)
	if overrideInds == nil {
		return status(C.qg_applyNamedPhaseFunc(q, intPtr(qq), intPtr(rr), C.int(len(rr)), C.enum_bitEncoding(enc),
			C.enum_phaseFunc(fn)))
	}
	return status(C.qg_applyNamedPhaseFuncOverrides(q, intPtr(qq), intPtr(rr), C.int(len(rr)), C.enum_bitEncoding(enc),
		C.enum_phaseFunc(fn), longPtr(overrideInds), realPtr(overridePhases), C.int(len(overridePhases))))
}

func ApplyParamNamedPhaseFunc(q Qureg, qubits, perReg []int, enc, fn int, params []float64, overrideInds []int64, overridePhases []float64) error {
	qq, rr := cInts(qubits), cInts(perReg)
	if overrideInds == nil {
		return status(C.qg_applyParamNamedPhaseFunc(q, intPtr(qq), intPtr(rr), C.int(len(rr)), C.enum_bitEncoding(enc),
			C.enum_phaseFunc(fn), realPtr(params), C.int(len(params))))
	}
	return status(C.qg_applyParamNamedPhaseFuncOverrides(q, intPtr(qq), intPtr(rr), C.int(len(rr)), C.enum_bitEncoding(enc),
		C.enum_phaseFunc(fn), realPtr(params), C.int(len(params)),
		longPtr(overrideInds), realPtr(overridePhases), C.int(len(overridePhases))))
}
