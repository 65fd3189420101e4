//go:build cgo && !windows

package backend

/*
#cgo CFLAGS: -I/usr/local/include -I/usr/local/include/QuEST -DQuEST_PREC=2
#cgo LDFLAGS: -L/usr/local/lib -lQuEST -lm
#include <stdlib.h>
#include "shim.h"
*/
import "C"

import (
	"unsafe"

	"github.com/hsiuhsiu/quest-go/internal/bridge"
)

// Native handle types. They are plain structs of C pointers and sizes, so
// copies refer to the same native allocation.
type (
	Env        = C.QuESTEnv
	Qureg      = C.Qureg
	DiagonalOp = C.DiagonalOp
	PauliHamil = C.PauliHamil
	MatrixN    = C.ComplexMatrixN
)

// Version returns the version string from the native library. QuEST v3 does
// not export one.
func Version() string { return "" }

// Built reports whether the native bindings are linked in.
func Built() bool { return true }

type nativeSlot struct{}

func (nativeSlot) Take() (bridge.Record, bool) {
	var rec C.qg_record
	if C.qg_take_record(&rec) == 0 {
		return bridge.Record{}, false
	}
	return bridge.Record{
		Message:  C.GoString(&rec.message[0]),
		Function: C.GoString(&rec.function[0]),
	}, true
}

// Slot returns the capture slot written by the native error callback.
func Slot() bridge.Slot { return nativeSlot{} }

// Pending reports whether the capture slot currently holds a record.
func Pending() bool { return C.qg_record_pending() != 0 }

func status(rc C.int) error {
	if rc != 0 {
		return bridge.ErrRaised
	}
	return nil
}

func cInts(xs []int) []C.int {
	if len(xs) == 0 {
		return nil
	}
	out := make([]C.int, len(xs))
	for i, x := range xs {
		out[i] = C.int(x)
	}
	return out
}

func intPtr(xs []C.int) *C.int {
	if len(xs) == 0 {
		return nil
	}
	return &xs[0]
}

func realPtr(xs []float64) *C.qreal {
	if len(xs) == 0 {
		return nil
	}
	return (*C.qreal)(unsafe.Pointer(&xs[0]))
}

func longPtr(xs []int64) *C.longlong {
	if len(xs) == 0 {
		return nil
	}
	return (*C.longlong)(unsafe.Pointer(&xs[0]))
}

func pauliCodes(codes []int32) []C.enum_pauliOpType {
	if len(codes) == 0 {
		return nil
	}
	out := make([]C.enum_pauliOpType, len(codes))
	for i, c := range codes {
		out[i] = C.enum_pauliOpType(c)
	}
	return out
}

func pauliPtr(codes []C.enum_pauliOpType) *C.enum_pauliOpType {
	if len(codes) == 0 {
		return nil
	}
	return &codes[0]
}

func cComplex(c complex128) C.Complex {
	return C.Complex{real: C.qreal(real(c)), imag: C.qreal(imag(c))}
}

func goComplex(c C.Complex) complex128 {
	return complex(float64(c.real), float64(c.imag))
}

func cMatrix2(m Matrix2) C.ComplexMatrix2 {
	var out C.ComplexMatrix2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out.real[i][j] = C.qreal(m.Real[i][j])
			out.imag[i][j] = C.qreal(m.Imag[i][j])
		}
	}
	return out
}

func cMatrix4(m Matrix4) C.ComplexMatrix4 {
	var out C.ComplexMatrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.real[i][j] = C.qreal(m.Real[i][j])
			out.imag[i][j] = C.qreal(m.Imag[i][j])
		}
	}
	return out
}

func cVector(v Vector) C.Vector {
	return C.Vector{x: C.qreal(v.X), y: C.qreal(v.Y), z: C.qreal(v.Z)}
}

func cString(s string) *C.char {
	return C.CString(s)
}

func freeString(p *C.char) {
	C.free(unsafe.Pointer(p))
}
