//go:build cgo && !windows

package backend

/*
#include "shim.h"
*/
import "C"

import "unsafe"

func CreateQureg(numQubits int, env Env) (Qureg, error) {
	var q C.Qureg
	err := status(C.qg_createQureg(C.int(numQubits), env, &q))
	return q, err
}

func CreateDensityQureg(numQubits int, env Env) (Qureg, error) {
	var q C.Qureg
	err := status(C.qg_createDensityQureg(C.int(numQubits), env, &q))
	return q, err
}

func CreateCloneQureg(src Qureg, env Env) (Qureg, error) {
	var q C.Qureg
	err := status(C.qg_createCloneQureg(src, env, &q))
	return q, err
}

func DestroyQureg(q Qureg, env Env) error {
	return status(C.qg_destroyQureg(q, env))
}

func NumQubits(q Qureg) (int, error) {
	var out C.int
	err := status(C.qg_getNumQubits(q, &out))
	return int(out), err
}

func NumAmps(q Qureg) (int64, error) {
	var out C.longlong
	err := status(C.qg_getNumAmps(q, &out))
	return int64(out), err
}

// IsDensity and QubitsRepresented read the handle without calling QuEST.
func IsDensity(q Qureg) bool        { return C.qg_quregIsDensity(q) != 0 }
func QubitsRepresented(q Qureg) int { return int(C.qg_quregNumQubits(q)) }

func InitBlankState(q Qureg) error { return status(C.qg_initBlankState(q)) }
func InitZeroState(q Qureg) error  { return status(C.qg_initZeroState(q)) }
func InitPlusState(q Qureg) error  { return status(C.qg_initPlusState(q)) }
func InitDebugState(q Qureg) error { return status(C.qg_initDebugState(q)) }

func InitClassicalState(q Qureg, ind int64) error {
	return status(C.qg_initClassicalState(q, C.longlong(ind)))
}

func InitPureState(q, pure Qureg) error {
	return status(C.qg_initPureState(q, pure))
}

func InitStateFromAmps(q Qureg, reals, imags []float64) error {
	return status(C.qg_initStateFromAmps(q, realPtr(reals), realPtr(imags)))
}

func SetAmps(q Qureg, start int64, reals, imags []float64) error {
	return status(C.qg_setAmps(q, C.longlong(start), realPtr(reals), realPtr(imags), C.longlong(len(reals))))
}

func SetDensityAmps(q Qureg, row, col int64, reals, imags []float64) error {
	return status(C.qg_setDensityAmps(q, C.longlong(row), C.longlong(col), realPtr(reals), realPtr(imags), C.longlong(len(reals))))
}

func CloneQureg(target, src Qureg) error {
	return status(C.qg_cloneQureg(target, src))
}

func SetWeightedQureg(f1 complex128, q1 Qureg, f2 complex128, q2 Qureg, fOut complex128, out Qureg) error {
	return status(C.qg_setWeightedQureg(cComplex(f1), q1, cComplex(f2), q2, cComplex(fOut), out))
}

func Amp(q Qureg, ind int64) (complex128, error) {
	var out C.Complex
	err := status(C.qg_getAmp(q, C.longlong(ind), &out))
	return goComplex(out), err
}

func RealAmp(q Qureg, ind int64) (float64, error) {
	var out C.qreal
	err := status(C.qg_getRealAmp(q, C.longlong(ind), &out))
	return float64(out), err
}

func ImagAmp(q Qureg, ind int64) (float64, error) {
	var out C.qreal
	err := status(C.qg_getImagAmp(q, C.longlong(ind), &out))
	return float64(out), err
}

func ProbAmp(q Qureg, ind int64) (float64, error) {
	var out C.qreal
	err := status(C.qg_getProbAmp(q, C.longlong(ind), &out))
	return float64(out), err
}

func DensityAmp(q Qureg, row, col int64) (complex128, error) {
	var out C.Complex
	err := status(C.qg_getDensityAmp(q, C.longlong(row), C.longlong(col), &out))
	return goComplex(out), err
}

func TotalProb(q Qureg) (float64, error) {
	var out C.qreal
	err := status(C.qg_calcTotalProb(q, &out))
	return float64(out), err
}

func CopyStateToGPU(q Qureg) error   { return status(C.qg_copyStateToGPU(q)) }
func CopyStateFromGPU(q Qureg) error { return status(C.qg_copyStateFromGPU(q)) }

func CopySubstateToGPU(q Qureg, start, n int64) error {
	return status(C.qg_copySubstateToGPU(q, C.longlong(start), C.longlong(n)))
}

func CopySubstateFromGPU(q Qureg, start, n int64) error {
	return status(C.qg_copySubstateFromGPU(q, C.longlong(start), C.longlong(n)))
}

func ReportState(q Qureg) error       { return status(C.qg_reportState(q)) }
func ReportQuregParams(q Qureg) error { return status(C.qg_reportQuregParams(q)) }

func ReportStateToScreen(q Qureg, env Env, rank int) error {
	return status(C.qg_reportStateToScreen(q, env, C.int(rank)))
}

func StartRecordingQASM(q Qureg) error { return status(C.qg_startRecordingQASM(q)) }
func StopRecordingQASM(q Qureg) error  { return status(C.qg_stopRecordingQASM(q)) }
func ClearRecordedQASM(q Qureg) error  { return status(C.qg_clearRecordedQASM(q)) }
func PrintRecordedQASM(q Qureg) error  { return status(C.qg_printRecordedQASM(q)) }

func WriteRecordedQASMToFile(q Qureg, path string) error {
	cs := cString(path)
	defer freeString(cs)
	return status(C.qg_writeRecordedQASMToFile(q, cs))
}

// RecordedQASM copies the register's QASM log buffer.
func RecordedQASM(q Qureg) []byte {
	var fill C.int
	buf := C.qg_qasmBuffer(q, &fill)
	if buf == nil || fill <= 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(buf), fill)
}
