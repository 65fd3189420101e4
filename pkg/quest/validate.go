package quest

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// checkQubits rejects any index outside [0, NumQubits).
func (q *Qureg) checkQubits(op string, qubits ...int) error {
	for _, t := range qubits {
		if t < 0 || t >= q.numQubits {
			return &QubitIndexError{Op: op, Qubit: t, NumQubits: q.numQubits}
		}
	}
	return nil
}

// checkQubitList validates a qubit list argument: it may not be longer than
// the register and each index must be in range.
func (q *Qureg) checkQubitList(op, arg string, qubits []int) error {
	if len(qubits) > q.numQubits {
		return lengthError(op, arg, len(qubits), "at most "+strconv.Itoa(q.numQubits))
	}
	return q.checkQubits(op, qubits...)
}

func checkNonEmpty(op, arg string, n int) error {
	if n == 0 {
		return lengthError(op, arg, 0, "at least 1")
	}
	return nil
}

func checkSameLength(op, a string, la int, b string, lb int) error {
	if la != lb {
		return lengthError(op, b, lb, "len("+a+") = "+strconv.Itoa(la))
	}
	return nil
}

func checkExactLength(op, arg string, got int, want int64) error {
	if int64(got) != want {
		return lengthError(op, arg, got, strconv.FormatInt(want, 10))
	}
	return nil
}

// dim is 2^n.
func dim(n int) int64 { return int64(1) << uint(n) }

// checkPath rejects paths that cannot be handed to C as a NUL-terminated
// UTF-8 string.
func checkPath(op, path string) error {
	if strings.IndexByte(path, 0) >= 0 {
		return &ConversionError{Op: op, Err: errors.New("path contains a NUL byte")}
	}
	if !utf8.ValidString(path) {
		return &ConversionError{Op: op, Err: errors.New("path is not valid UTF-8")}
	}
	return nil
}

// ready checks q is usable and every listed index is in range.
func (q *Qureg) ready(op string, qubits ...int) error {
	if err := q.usable(); err != nil {
		return err
	}
	return q.checkQubits(op, qubits...)
}
