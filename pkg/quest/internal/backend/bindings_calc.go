//go:build cgo && !windows

package backend

/*
#include "shim.h"
*/
import "C"

func CalcProbOfOutcome(q Qureg, t, outcome int) (float64, error) {
	var out C.qreal
	err := status(C.qg_calcProbOfOutcome(q, C.int(t), C.int(outcome), &out))
	return float64(out), err
}

// CalcProbOfAllOutcomes returns 2^len(qubits) probabilities.
func CalcProbOfAllOutcomes(q Qureg, qubits []int) ([]float64, error) {
	qq := cInts(qubits)
	probs := make([]float64, 1<<len(qubits))
	if err := status(C.qg_calcProbOfAllOutcomes(realPtr(probs), q, intPtr(qq), C.int(len(qq)))); err != nil {
		return nil, err
	}
	return probs, nil
}

func CollapseToOutcome(q Qureg, t, outcome int) (float64, error) {
	var out C.qreal
	err := status(C.qg_collapseToOutcome(q, C.int(t), C.int(outcome), &out))
	return float64(out), err
}

func Measure(q Qureg, t int) (int, error) {
	var out C.int
	err := status(C.qg_measure(q, C.int(t), &out))
	return int(out), err
}

func MeasureWithStats(q Qureg, t int) (int, float64, error) {
	var out C.int
	var prob C.qreal
	err := status(C.qg_measureWithStats(q, C.int(t), &prob, &out))
	return int(out), float64(prob), err
}

func ApplyProjector(q Qureg, t, outcome int) error {
	return status(C.qg_applyProjector(q, C.int(t), C.int(outcome)))
}

func CalcInnerProduct(bra, ket Qureg) (complex128, error) {
	var out C.Complex
	err := status(C.qg_calcInnerProduct(bra, ket, &out))
	return goComplex(out), err
}

func CalcDensityInnerProduct(a, b Qureg) (float64, error) {
	var out C.qreal
	err := status(C.qg_calcDensityInnerProduct(a, b, &out))
	return float64(out), err
}

func CalcPurity(q Qureg) (float64, error) {
	var out C.qreal
	err := status(C.qg_calcPurity(q, &out))
	return float64(out), err
}

func CalcFidelity(q, pure Qureg) (float64, error) {
	var out C.qreal
	err := status(C.qg_calcFidelity(q, pure, &out))
	return float64(out), err
}

func CalcHilbertSchmidtDistance(a, b Qureg) (float64, error) {
	var out C.qreal
	err := status(C.qg_calcHilbertSchmidtDistance(a, b, &out))
	return float64(out), err
}

func CalcExpecPauliProd(q Qureg, targs []int, codes []int32, ws Qureg) (float64, error) {
	tt, pp := cInts(targs), pauliCodes(codes)
	var out C.qreal
	err := status(C.qg_calcExpecPauliProd(q, intPtr(tt), pauliPtr(pp), C.int(len(tt)), ws, &out))
	return float64(out), err
}

func CalcExpecPauliSum(q Qureg, codes []int32, coeffs []float64, ws Qureg) (float64, error) {
	pp := pauliCodes(codes)
	var out C.qreal
	err := status(C.qg_calcExpecPauliSum(q, pauliPtr(pp), realPtr(coeffs), C.int(len(coeffs)), ws, &out))
	return float64(out), err
}

func CalcExpecPauliHamil(q Qureg, h PauliHamil, ws Qureg) (float64, error) {
	var out C.qreal
	err := status(C.qg_calcExpecPauliHamil(q, h, ws, &out))
	return float64(out), err
}

func CalcExpecDiagonalOp(q Qureg, op DiagonalOp) (complex128, error) {
	var out C.Complex
	err := status(C.qg_calcExpecDiagonalOp(q, op, &out))
	return goComplex(out), err
}

func MixDephasing(q Qureg, t int, p float64) error {
	return status(C.qg_mixDephasing(q, C.int(t), C.qreal(p)))
}

func MixTwoQubitDephasing(q Qureg, a, b int, p float64) error {
	return status(C.qg_mixTwoQubitDephasing(q, C.int(a), C.int(b), C.qreal(p)))
}

func MixDepolarising(q Qureg, t int, p float64) error {
	return status(C.qg_mixDepolarising(q, C.int(t), C.qreal(p)))
}

func MixDamping(q Qureg, t int, p float64) error {
	return status(C.qg_mixDamping(q, C.int(t), C.qreal(p)))
}

func MixTwoQubitDepolarising(q Qureg, a, b int, p float64) error {
	return status(C.qg_mixTwoQubitDepolarising(q, C.int(a), C.int(b), C.qreal(p)))
}

func MixPauli(q Qureg, t int, px, py, pz float64) error {
	return status(C.qg_mixPauli(q, C.int(t), C.qreal(px), C.qreal(py), C.qreal(pz)))
}

func MixDensityMatrix(q Qureg, p float64, other Qureg) error {
	return status(C.qg_mixDensityMatrix(q, C.qreal(p), other))
}

func cMatrix2s(ops []Matrix2) []C.ComplexMatrix2 {
	out := make([]C.ComplexMatrix2, len(ops))
	for i, m := range ops {
		out[i] = cMatrix2(m)
	}
	return out
}

func cMatrix4s(ops []Matrix4) []C.ComplexMatrix4 {
	out := make([]C.ComplexMatrix4, len(ops))
	for i, m := range ops {
		out[i] = cMatrix4(m)
	}
	return out
}

func MixKrausMap(q Qureg, t int, ops []Matrix2, nonTP bool) error {
	cm := cMatrix2s(ops)
	var p *C.ComplexMatrix2
	if len(cm) > 0 {
		p = &cm[0]
	}
	if nonTP {
		return status(C.qg_mixNonTPKrausMap(q, C.int(t), p, C.int(len(cm))))
	}
	return status(C.qg_mixKrausMap(q, C.int(t), p, C.int(len(cm))))
}

func MixTwoQubitKrausMap(q Qureg, t1, t2 int, ops []Matrix4, nonTP bool) error {
	cm := cMatrix4s(ops)
	var p *C.ComplexMatrix4
	if len(cm) > 0 {
		p = &cm[0]
	}
	if nonTP {
		return status(C.qg_mixNonTPTwoQubitKrausMap(q, C.int(t1), C.int(t2), p, C.int(len(cm))))
	}
	return status(C.qg_mixTwoQubitKrausMap(q, C.int(t1), C.int(t2), p, C.int(len(cm))))
}

func MixMultiQubitKrausMap(q Qureg, targs []int, ops []MatrixN, nonTP bool) error {
	tt := cInts(targs)
	var p *C.ComplexMatrixN
	if len(ops) > 0 {
		p = &ops[0]
	}
	if nonTP {
		return status(C.qg_mixNonTPMultiQubitKrausMap(q, intPtr(tt), C.int(len(tt)), p, C.int(len(ops))))
	}
	return status(C.qg_mixMultiQubitKrausMap(q, intPtr(tt), C.int(len(tt)), p, C.int(len(ops))))
}
