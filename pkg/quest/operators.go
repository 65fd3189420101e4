package quest

import "github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"

// ApplyPauliSum sets out to (sum_k coeffs[k] * P_k) applied to in, where P_k
// is codes[k*n : (k+1)*n]. in and out must match in type and size; in is
// left unchanged.
func ApplyPauliSum(in *Qureg, codes []PauliOp, coeffs []float64, out *Qureg) error {
	const op = "ApplyPauliSum"
	if err := in.usable(); err != nil {
		return err
	}
	if err := in.checkPauliSum(op, codes, coeffs); err != nil {
		return err
	}
	cc := pauliCodes(codes)
	return pair(op, out, in, func() error { return backend.ApplyPauliSum(in.handle, cc, coeffs, out.handle) })
}

// ApplyPauliHamil sets out to h applied to in.
func ApplyPauliHamil(in *Qureg, h *PauliHamil, out *Qureg) error {
	if err := h.usable(); err != nil {
		return err
	}
	return pair("ApplyPauliHamil", out, in, func() error { return backend.ApplyPauliHamil(in.handle, h.handle, out.handle) })
}

// ApplyTrotterCircuit approximates exp(-i*h*time) with reps repetitions of a
// Trotter-Suzuki decomposition of the given order (1 or an even number).
func (q *Qureg) ApplyTrotterCircuit(h *PauliHamil, time float64, order, reps int) error {
	if err := h.usable(); err != nil {
		return err
	}
	return q.do("Qureg.ApplyTrotterCircuit", func() error {
		return backend.ApplyTrotterCircuit(q.handle, h.handle, time, order, reps)
	})
}

// ApplyDiagonalOp left-multiplies the state by d.
func (q *Qureg) ApplyDiagonalOp(d *DiagonalOp) error {
	if err := d.usable(); err != nil {
		return err
	}
	return q.do("Qureg.ApplyDiagonalOp", func() error { return backend.ApplyDiagonalOp(q.handle, d.handle) })
}

// ApplyFullQFT applies the quantum Fourier transform to the whole register.
func (q *Qureg) ApplyFullQFT() error {
	return q.do("Qureg.ApplyFullQFT", func() error { return backend.ApplyFullQFT(q.handle) })
}

// ApplyQFT applies the quantum Fourier transform to qubits, treated as a
// sub-register with qubits[0] least significant.
func (q *Qureg) ApplyQFT(qubits []int) error {
	return q.multi("Qureg.ApplyQFT", []qubitList{{"qubits", qubits}}, nil, func() error {
		return backend.ApplyQFT(q.handle, qubits)
	})
}
