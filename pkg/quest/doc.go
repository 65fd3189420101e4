// Package quest is a Go binding for the QuEST v3 quantum circuit simulator.
//
// Every quantum state transformation, probability and measurement is computed
// by QuEST itself; this package owns the native handles, validates arguments
// before they reach C, and turns QuEST's input errors into Go errors instead
// of process exits.
//
// # Key Operations
//
//   - NewEnv(): Create the simulation environment
//   - NewQureg() / NewDensityQureg(): Create a state-vector or density-matrix register
//   - Qureg gates: Hadamard, ControlledNot, RotateX, MultiControlledPhaseFlip, ...
//   - Qureg measurement: CalcProbOfOutcome, Measure, CollapseToOutcome
//   - Decoherence on density matrices: MixDephasing, MixKrausMap, ...
//   - Operators: PauliHamil, DiagonalOp, ComplexMatrixN
//
// # Errors
//
// Operations return one of four kinds of error:
//
//   - *NativeError (ErrNativeInvalidInput): QuEST rejected the input; Message
//     and Function carry QuEST's own report.
//   - *LengthError (ErrArgumentLength): a slice argument has the wrong size.
//   - *QubitIndexError (ErrQubitIndex): a qubit index is negative or not less
//     than the register's qubit count.
//   - *ConversionError (ErrStringConversion): text could not cross the C
//     boundary.
//
// The last three are detected in Go before any native call is made. Use
// errors.Is with the sentinels or errors.As with the types.
//
// A register that produced a NativeError remains usable: QuEST validates all
// arguments before touching the state. Set Config.PoisonOnNativeError to
// refuse further operations on it instead.
//
// # Memory Management
//
// Env, Qureg, DiagonalOp, PauliHamil and ComplexMatrixN hold native memory and
// must be released with Close. Finalizers release forgotten handles, but
// explicit Close is recommended: a register can be gigabytes. An Env refuses
// to close while registers or diagonal operators created from it are open.
// A failure inside a native destroy routine cannot be recovered from and
// panics.
//
// # Concurrency
//
// QuEST reports errors through a single process-wide callback, so every native
// call made by this package is serialized behind one lock. Handles themselves
// are not safe for concurrent mutation.
//
// # Usage Example
//
//	env, err := quest.NewEnv(quest.Config{})
//	if err != nil {
//	    return err
//	}
//	defer env.Close()
//
//	q, err := quest.NewQureg(env, 3)
//	if err != nil {
//	    return err
//	}
//	defer q.Close()
//
//	_ = q.InitPlusState()
//	p, err := q.CalcProbOfOutcome(0, 0) // 0.5
//
// # Build Requirements
//
// The native bindings require cgo and a QuEST library built with double
// precision (QuEST_PREC=2) installed under /usr/local. Without cgo, or on
// Windows, the package compiles and every constructor returns ErrNotBuilt.
package quest
