// Package simplify rewrites a constraint system of arbitrary inclusions into
// one where every inclusion is atomic: Var ⊆ Var, Term ⊆ Var, or Var ⊆ Term.
//
// Simplify is single-pass per inclusion and terminates because term/term
// decomposition strictly reduces the combined size of both sides. It never
// mutates its input; it returns a fresh ConstraintSystem or the first
// *expr.NoSolutionError encountered.
package simplify
