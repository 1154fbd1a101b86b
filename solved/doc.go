// File: doc.go
// Role: package doc for solved.

// Package solved holds the frozen output of builder.SolveSystem: an
// immutable constraint graph snapshot together with the least-solution
// query and a debug-oriented graph accessor.
//
// A SolvedSystem carries no mutation methods and no synchronization —
// once built it is safe to share across goroutines for read-only queries.
package solved
