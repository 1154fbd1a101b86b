// Package expr defines the value-level set-expression and inclusion algebra
// that every other package in this module builds on: SetExpression, Variance,
// Inclusion, and ConstraintSystem.
//
// Everything here is pure data. There is no solving, no graph, and no mutable
// state — only construction, structural equality, and a deterministic total
// order, so that two expressions built the same way from the same V/C values
// always compare equal and always sort the same way across runs.
//
//	empty := expr.EmptySet[string, string]()
//	x := expr.SetVariable[string, string]("x")
//	a := expr.Atom[string, string]("a")
//	f := expr.Term[string, string]("f", []expr.Variance{expr.Covariant})(a)
//	inc := expr.NewInclusion(a, x)
//
// V (variable keys) and C (constructor labels) must each support total
// equality and ordering; both are expressed here via the stdlib cmp.Ordered
// constraint, which covers strings, integers, and floats — the key types
// realistic callers reach for.
package expr
