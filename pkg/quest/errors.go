package quest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hsiuhsiu/quest-go/internal/bridge"
	"github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"
)

var (
	// ErrNativeInvalidInput matches every *NativeError.
	ErrNativeInvalidInput = errors.New("quest: native library rejected input")

	// ErrArgumentLength matches every *LengthError.
	ErrArgumentLength = errors.New("quest: argument length mismatch")

	// ErrQubitIndex matches every *QubitIndexError.
	ErrQubitIndex = errors.New("quest: qubit index out of range")

	// ErrStringConversion matches every *ConversionError.
	ErrStringConversion = errors.New("quest: string conversion failed")

	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary (cgo disabled or an unsupported platform).
	ErrNotBuilt = errors.New("quest: native bindings not built")

	// ErrClosed is returned by operations on a handle after Close, and on
	// zero-value handles.
	ErrClosed = errors.New("quest: handle closed")

	// ErrEnvClosed is returned when an environment is closed twice.
	ErrEnvClosed = errors.New("quest: environment already closed")

	// ErrEnvInUse is returned when an environment is closed while registers or
	// diagonal operators created from it are still open.
	ErrEnvInUse = errors.New("quest: environment has open registers or operators")

	// ErrPoisoned is returned by operations on a register that previously
	// produced a NativeError while Config.PoisonOnNativeError was set.
	ErrPoisoned = errors.New("quest: register poisoned by an earlier native error")
)

// NativeError carries the report QuEST passed to its invalid-input callback.
type NativeError struct {
	Op       string // Go operation that made the call
	Message  string // QuEST's description of the problem
	Function string // QuEST function that raised it

	// Suppressed lists further reports captured during the same call. The
	// first report is never replaced by a later one.
	Suppressed []NativeReport
}

// NativeReport is one message/function pair from the native callback.
type NativeReport struct {
	Message  string
	Function string
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("quest.%s: %s: %s", e.Op, e.Function, e.Message)
}

func (e *NativeError) Is(target error) bool { return target == ErrNativeInvalidInput }

// LengthError reports a caller-supplied slice of the wrong size. No native
// call is made when it is returned.
type LengthError struct {
	Op   string
	Arg  string
	Got  int
	Want string
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("quest.%s: %s has length %d, want %s", e.Op, e.Arg, e.Got, e.Want)
}

func (e *LengthError) Is(target error) bool { return target == ErrArgumentLength }

// QubitIndexError reports a qubit index outside [0, NumQubits). No native
// call is made when it is returned.
type QubitIndexError struct {
	Op        string
	Qubit     int
	NumQubits int
}

func (e *QubitIndexError) Error() string {
	return fmt.Sprintf("quest.%s: qubit index %d out of range for %d-qubit register", e.Op, e.Qubit, e.NumQubits)
}

func (e *QubitIndexError) Is(target error) bool { return target == ErrQubitIndex }

// ConversionError reports text that cannot cross the native boundary: a Go
// string containing NUL, or native bytes that are not valid UTF-8.
type ConversionError struct {
	Op  string
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("quest.%s: %v", e.Op, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

func (e *ConversionError) Is(target error) bool { return target == ErrStringConversion }

// remapError converts backend and bridge errors to public API errors.
func remapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var f *bridge.Failure
	if errors.As(err, &f) {
		ne := &NativeError{
			Op:       op,
			Message:  strings.ToValidUTF8(f.Message, "\uFFFD"),
			Function: strings.ToValidUTF8(f.Function, "\uFFFD"),
		}
		for _, r := range f.Suppressed {
			ne.Suppressed = append(ne.Suppressed, NativeReport{Message: r.Message, Function: r.Function})
		}
		return ne
	}
	if errors.Is(err, backend.ErrNotBuilt) {
		return ErrNotBuilt
	}
	return err
}

func lengthError(op, arg string, got int, want string) error {
	return &LengthError{Op: op, Arg: arg, Got: got, Want: want}
}
