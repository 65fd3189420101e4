//go:build cgo && !windows

package backend

/*
#include "shim.h"
*/
import "C"

func CreateMatrixN(numQubits int) (MatrixN, error) {
	var m C.ComplexMatrixN
	err := status(C.qg_createComplexMatrixN(C.int(numQubits), &m))
	return m, err
}

func DestroyMatrixN(m MatrixN) error {
	return status(C.qg_destroyComplexMatrixN(m))
}

func MatrixNQubits(m MatrixN) int { return int(m.numQubits) }

// InitMatrixN fills m from row-major real and imaginary parts of length
// 4^numQubits each.
func InitMatrixN(m MatrixN, re, im []float64) error {
	return status(C.qg_initComplexMatrixN(m, realPtr(re), realPtr(im)))
}

func CreatePauliHamil(numQubits, numSumTerms int) (PauliHamil, error) {
	var h C.PauliHamil
	err := status(C.qg_createPauliHamil(C.int(numQubits), C.int(numSumTerms), &h))
	return h, err
}

func CreatePauliHamilFromFile(path string) (PauliHamil, error) {
	cs := cString(path)
	defer freeString(cs)
	var h C.PauliHamil
	err := status(C.qg_createPauliHamilFromFile(cs, &h))
	return h, err
}

func DestroyPauliHamil(h PauliHamil) error {
	return status(C.qg_destroyPauliHamil(h))
}

func PauliHamilShape(h PauliHamil) (numQubits, numSumTerms int) {
	return int(h.numQubits), int(h.numSumTerms)
}

func InitPauliHamil(h PauliHamil, coeffs []float64, codes []int32) error {
	cc := pauliCodes(codes)
	return status(C.qg_initPauliHamil(h, realPtr(coeffs), pauliPtr(cc)))
}

func ReportPauliHamil(h PauliHamil) error {
	return status(C.qg_reportPauliHamil(h))
}

func CreateDiagonalOp(numQubits int, env Env) (DiagonalOp, error) {
	var op C.DiagonalOp
	err := status(C.qg_createDiagonalOp(C.int(numQubits), env, &op))
	return op, err
}

func CreateDiagonalOpFromPauliHamilFile(path string, env Env) (DiagonalOp, error) {
	cs := cString(path)
	defer freeString(cs)
	var op C.DiagonalOp
	err := status(C.qg_createDiagonalOpFromPauliHamilFile(cs, env, &op))
	return op, err
}

func DestroyDiagonalOp(op DiagonalOp, env Env) error {
	return status(C.qg_destroyDiagonalOp(op, env))
}

func DiagonalOpQubits(op DiagonalOp) int { return int(op.numQubits) }

func SyncDiagonalOp(op DiagonalOp) error {
	return status(C.qg_syncDiagonalOp(op))
}

func InitDiagonalOp(op DiagonalOp, re, im []float64) error {
	return status(C.qg_initDiagonalOp(op, realPtr(re), realPtr(im)))
}

func InitDiagonalOpFromPauliHamil(op DiagonalOp, h PauliHamil) error {
	return status(C.qg_initDiagonalOpFromPauliHamil(op, h))
}

func SetDiagonalOpElems(op DiagonalOp, start int64, re, im []float64) error {
	return status(C.qg_setDiagonalOpElems(op, C.longlong(start), realPtr(re), realPtr(im), C.longlong(len(re))))
}
