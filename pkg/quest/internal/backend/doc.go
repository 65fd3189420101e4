// Package backend hosts the thin cgo layer that links the Go API to the
// native QuEST library. The real implementation lives behind build tags so
// that the rest of the repository can compile without cgo.
//
// Every native routine is reached through a C wrapper in shim.c that installs
// a setjmp frame before calling QuEST. QuEST's invalidQuESTInputError callback
// is overridden there: it records the message and function name into the
// capture slot and longjmps back to the wrapper, which reports a non-zero
// status. Functions in this package map that status to bridge.ErrRaised;
// callers must run them through a bridge.Bridge built on Slot so the record is
// drained after each call.
//
// QuEST must be built with QuEST_PREC=2 (qreal is double). Link it statically,
// or make sure the executable's invalidQuESTInputError is the one the dynamic
// linker binds for libQuEST.
package backend
