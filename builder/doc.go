// Package builder is the stateful core of the solver: it owns
// the expr→id assignment, the id→expr table, the mutable ifgraph.Graph, and
// the cycle-detection budget, and it drives both inclusion insertion and
// transitive-closure saturation to a fixed point.
//
// The public entry point is SolveSystem, which simplifies a
// expr.ConstraintSystem, builds the inductive-form graph, saturates it, and
// freezes the result into a *solved.SolvedSystem.
//
// Builder is explicitly single-threaded: it carries no locks, and
// a single Builder value must never be shared across goroutines while a
// solve is in progress.
package builder
