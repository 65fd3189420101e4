// Package bridge turns QuEST's callback-based error reporting into ordinary
// Go errors.
//
// QuEST reports invalid input by calling invalidQuESTInputError, which by
// default prints a message and exits the process. The native shim in
// pkg/quest/internal/backend replaces that callback with one that records the
// message and the offending function name into a process-wide capture slot
// and unwinds the current native call. This package owns the Go half of that
// contract:
//
//   - every guarded call runs with the Bridge lock held, so the global slot is
//     never observed by two goroutines at once;
//   - the slot is drained as soon as each call returns, so a captured record
//     never leaks into the next call;
//   - nested calls keep the innermost record, and any record captured later in
//     the same outermost call is attached to the first rather than replacing it.
//
// The package has no cgo dependency; the slot is an interface so the logic can
// be exercised with an in-memory fake.
package bridge
