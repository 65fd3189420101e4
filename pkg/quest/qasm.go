package quest

import (
	"errors"
	"unicode/utf8"

	"github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"
)

// StartRecordingQASM starts logging every subsequent operation on q as
// OpenQASM 2.0.
func (q *Qureg) StartRecordingQASM() error {
	return q.do("Qureg.StartRecordingQASM", func() error { return backend.StartRecordingQASM(q.handle) })
}

func (q *Qureg) StopRecordingQASM() error {
	return q.do("Qureg.StopRecordingQASM", func() error { return backend.StopRecordingQASM(q.handle) })
}

// ClearRecordedQASM discards the log but keeps recording if it was on.
func (q *Qureg) ClearRecordedQASM() error {
	return q.do("Qureg.ClearRecordedQASM", func() error { return backend.ClearRecordedQASM(q.handle) })
}

// PrintRecordedQASM writes the log to standard output.
func (q *Qureg) PrintRecordedQASM() error {
	return q.do("Qureg.PrintRecordedQASM", func() error { return backend.PrintRecordedQASM(q.handle) })
}

// WriteRecordedQASMToFile writes the log to path, replacing any existing file.
// A path that cannot be opened is reported as a NativeError.
func (q *Qureg) WriteRecordedQASMToFile(path string) error {
	const op = "Qureg.WriteRecordedQASMToFile"
	if err := q.usable(); err != nil {
		return err
	}
	if err := checkPath(op, path); err != nil {
		return err
	}
	return q.do(op, func() error { return backend.WriteRecordedQASMToFile(q.handle, path) })
}

// RecordedQASM returns a copy of the log recorded so far.
func (q *Qureg) RecordedQASM() (string, error) {
	const op = "Qureg.RecordedQASM"
	if err := q.usable(); err != nil {
		return "", err
	}
	if !backend.Built() {
		return "", ErrNotBuilt
	}
	raw, err := quregValue(q, op, func() ([]byte, error) { return backend.RecordedQASM(q.handle), nil })
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", &ConversionError{Op: op, Err: errors.New("recorded QASM is not valid UTF-8")}
	}
	return string(raw), nil
}

// ReportState writes q's amplitudes to state_rank_<rank>.csv in the working
// directory.
func (q *Qureg) ReportState() error {
	return q.do("Qureg.ReportState", func() error { return backend.ReportState(q.handle) })
}

// ReportStateToScreen prints q's amplitudes from the given rank to standard
// output. Intended for small registers.
func (q *Qureg) ReportStateToScreen(rank int) error {
	if err := q.usable(); err != nil {
		return err
	}
	if err := q.env.usable(); err != nil {
		return err
	}
	return q.do("Qureg.ReportStateToScreen", func() error {
		return backend.ReportStateToScreen(q.handle, q.env.env, rank)
	})
}

// ReportQuregParams prints q's size and distribution to standard output.
func (q *Qureg) ReportQuregParams() error {
	return q.do("Qureg.ReportQuregParams", func() error { return backend.ReportQuregParams(q.handle) })
}
