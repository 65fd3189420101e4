package quest

import (
	"strconv"

	"github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"
)

// CalcInnerProduct is <bra|ket> for two state vectors.
func CalcInnerProduct(bra, ket *Qureg) (complex128, error) {
	return pairValue("CalcInnerProduct", bra, ket, func() (complex128, error) {
		return backend.CalcInnerProduct(bra.handle, ket.handle)
	})
}

// CalcDensityInnerProduct is Tr(a† b) for two density matrices.
func CalcDensityInnerProduct(a, b *Qureg) (float64, error) {
	return pairValue("CalcDensityInnerProduct", a, b, func() (float64, error) {
		return backend.CalcDensityInnerProduct(a.handle, b.handle)
	})
}

// CalcHilbertSchmidtDistance is the Frobenius distance between two density
// matrices.
func CalcHilbertSchmidtDistance(a, b *Qureg) (float64, error) {
	return pairValue("CalcHilbertSchmidtDistance", a, b, func() (float64, error) {
		return backend.CalcHilbertSchmidtDistance(a.handle, b.handle)
	})
}

// CalcPurity is Tr(rho^2) of a density matrix.
func (q *Qureg) CalcPurity() (float64, error) {
	return quregValue(q, "Qureg.CalcPurity", func() (float64, error) { return backend.CalcPurity(q.handle) })
}

// CalcFidelity is |<pure|q>|^2, or <pure|rho|pure> for a density matrix.
func (q *Qureg) CalcFidelity(pure *Qureg) (float64, error) {
	return pairValue("Qureg.CalcFidelity", q, pure, func() (float64, error) {
		return backend.CalcFidelity(q.handle, pure.handle)
	})
}

// CalcExpecPauliProd is the expectation value of the product of codes[k] on
// targs[k]. workspace must match q in type and size; its state is
// overwritten.
func (q *Qureg) CalcExpecPauliProd(targs []int, codes []PauliOp, workspace *Qureg) (float64, error) {
	const op = "Qureg.CalcExpecPauliProd"
	if err := q.usable(); err != nil {
		return 0, err
	}
	if err := q.checkQubitList(op, "targs", targs); err != nil {
		return 0, err
	}
	if err := checkSameLength(op, "targs", len(targs), "codes", len(codes)); err != nil {
		return 0, err
	}
	cc := pauliCodes(codes)
	return pairValue(op, q, workspace, func() (float64, error) {
		return backend.CalcExpecPauliProd(q.handle, targs, cc, workspace.handle)
	})
}

// CalcExpecPauliSum is the expectation value of sum_k coeffs[k] * P_k, where
// P_k is given by codes[k*n : (k+1)*n] over all n qubits.
func (q *Qureg) CalcExpecPauliSum(codes []PauliOp, coeffs []float64, workspace *Qureg) (float64, error) {
	const op = "Qureg.CalcExpecPauliSum"
	if err := q.usable(); err != nil {
		return 0, err
	}
	if err := q.checkPauliSum(op, codes, coeffs); err != nil {
		return 0, err
	}
	cc := pauliCodes(codes)
	return pairValue(op, q, workspace, func() (float64, error) {
		return backend.CalcExpecPauliSum(q.handle, cc, coeffs, workspace.handle)
	})
}

// CalcExpecPauliHamil is the expectation value of h.
func (q *Qureg) CalcExpecPauliHamil(h *PauliHamil, workspace *Qureg) (float64, error) {
	const op = "Qureg.CalcExpecPauliHamil"
	if err := h.usable(); err != nil {
		return 0, err
	}
	return pairValue(op, q, workspace, func() (float64, error) {
		return backend.CalcExpecPauliHamil(q.handle, h.handle, workspace.handle)
	})
}

// CalcExpecDiagonalOp is the expectation value of op, which need not be
// Hermitian.
func (q *Qureg) CalcExpecDiagonalOp(d *DiagonalOp) (complex128, error) {
	if err := d.usable(); err != nil {
		return 0, err
	}
	return quregValue(q, "Qureg.CalcExpecDiagonalOp", func() (complex128, error) {
		return backend.CalcExpecDiagonalOp(q.handle, d.handle)
	})
}

func (q *Qureg) checkPauliSum(op string, codes []PauliOp, coeffs []float64) error {
	if err := checkNonEmpty(op, "coeffs", len(coeffs)); err != nil {
		return err
	}
	want := len(coeffs) * q.numQubits
	if len(codes) != want {
		return lengthError(op, "codes", len(codes), strconv.Itoa(want)+" (len(coeffs) * qubits)")
	}
	return nil
}
