// Package internalcheck holds source-level policy tests for the quest-go
// module.
//
// The checks load the module's packages with golang.org/x/tools/go/packages
// and walk their syntax trees. They guard properties the compiler cannot see:
// that cgo stays confined to the backend package, and that every call able
// to reach QuEST's error callback runs under the error bridge.
//
// # Internal Use Only
//
// This package has no exported API and should not be imported.
package internalcheck
