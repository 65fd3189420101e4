package quest

import "github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"

// CalcProbOfOutcome is the probability that measuring qubit t yields outcome.
func (q *Qureg) CalcProbOfOutcome(t, outcome int) (float64, error) {
	const op = "Qureg.CalcProbOfOutcome"
	if err := q.ready(op, t); err != nil {
		return 0, err
	}
	return quregValue(q, op, func() (float64, error) { return backend.CalcProbOfOutcome(q.handle, t, outcome) })
}

// CalcProbOfAllOutcomes returns the probability of every outcome of measuring
// qubits; entry k corresponds to the outcome whose bit j is the result of
// qubits[j].
func (q *Qureg) CalcProbOfAllOutcomes(qubits []int) ([]float64, error) {
	const op = "Qureg.CalcProbOfAllOutcomes"
	if err := q.usable(); err != nil {
		return nil, err
	}
	if err := q.checkQubitList(op, "qubits", qubits); err != nil {
		return nil, err
	}
	return quregValue(q, op, func() ([]float64, error) { return backend.CalcProbOfAllOutcomes(q.handle, qubits) })
}

// CollapseToOutcome forces qubit t into outcome, renormalises, and returns the
// probability the outcome had. Collapsing onto a zero-probability outcome is a
// NativeError.
func (q *Qureg) CollapseToOutcome(t, outcome int) (float64, error) {
	const op = "Qureg.CollapseToOutcome"
	if err := q.ready(op, t); err != nil {
		return 0, err
	}
	return quregValue(q, op, func() (float64, error) { return backend.CollapseToOutcome(q.handle, t, outcome) })
}

// Measure measures qubit t, collapsing the state, and returns the outcome.
func (q *Qureg) Measure(t int) (int, error) {
	const op = "Qureg.Measure"
	if err := q.ready(op, t); err != nil {
		return 0, err
	}
	return quregValue(q, op, func() (int, error) { return backend.Measure(q.handle, t) })
}

// MeasureWithStats is Measure that also returns the outcome's probability.
func (q *Qureg) MeasureWithStats(t int) (outcome int, prob float64, err error) {
	const op = "Qureg.MeasureWithStats"
	if err := q.ready(op, t); err != nil {
		return 0, 0, err
	}
	type result struct {
		outcome int
		prob    float64
	}
	r, err := quregValue(q, op, func() (result, error) {
		o, p, err := backend.MeasureWithStats(q.handle, t)
		return result{o, p}, err
	})
	return r.outcome, r.prob, err
}

// ApplyProjector projects qubit t onto outcome without renormalising.
func (q *Qureg) ApplyProjector(t, outcome int) error {
	return q.single("Qureg.ApplyProjector", t, func() error { return backend.ApplyProjector(q.handle, t, outcome) })
}
