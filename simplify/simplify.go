// File: simplify.go
// Role: the rewrite-rule table, applied until every surviving inclusion is
// atomic.
// AI-HINT (file):
//   - Simplify never mutates sys; it returns a fresh ConstraintSystem.
//   - Order of the returned system is deterministic (forward accumulation)
//     but otherwise immaterial to correctness.

package simplify

import (
	"cmp"

	"github.com/katalvlaran/ifscs/expr"
)

// Simplify rewrites sys into an equivalent system where every inclusion is
// atomic (Var ⊆ Var, Term ⊆ Var, or Var ⊆ Term), or returns the first
// *expr.NoSolutionError[V,C] proving sys unsatisfiable.
func Simplify[V cmp.Ordered, C cmp.Ordered](sys expr.ConstraintSystem[V, C]) (expr.ConstraintSystem[V, C], error) {
	out := make(expr.ConstraintSystem[V, C], 0, len(sys))
	for _, inc := range sys {
		atoms, err := simplifyOne(inc)
		if err != nil {
			return nil, err
		}
		out = append(out, atoms...)
	}
	return out, nil
}

// simplifyOne applies the rewrite table to a single inclusion, recursing
// through term/term decomposition, and returns the atomic inclusions it
// produces (zero, one, or several).
func simplifyOne[V cmp.Ordered, C cmp.Ordered](inc expr.Inclusion[V, C]) ([]expr.Inclusion[V, C], error) {
	lv, lIsVar := inc.LHS.IsVariable()
	rv, rIsVar := inc.RHS.IsVariable()

	// Var v ⊆ Var v: discard. Var v1 ⊆ Var v2, v1≠v2: keep (atomic).
	if lIsVar && rIsVar {
		if lv == rv {
			return nil, nil
		}
		return []expr.Inclusion[V, C]{inc}, nil
	}

	// _ ⊆ U: discard. (Var ⊆ EmptySet is also discarded, further below.)
	if inc.RHS.IsUniversalSet() {
		return nil, nil
	}
	// ∅ ⊆ _: discard.
	if inc.LHS.IsEmptySet() {
		return nil, nil
	}

	if inc.LHS.IsUniversalSet() {
		// U ⊆ ∅ or U ⊆ Term(...): unsatisfiable (the engine has no way to
		// make the universal set fit into anything strictly smaller).
		if inc.RHS.IsEmptySet() {
			return nil, &expr.NoSolutionError[V, C]{Inclusion: inc}
		}
		if _, _, _, isTerm := inc.RHS.IsTerm(); isTerm {
			return nil, &expr.NoSolutionError[V, C]{Inclusion: inc}
		}
		// U ⊆ Var: generalizes the same way (see DESIGN.md "Open Questions"
		// — U only ever fits below U itself, which the _⊆U rule above
		// already discards before we get here).
		return nil, &expr.NoSolutionError[V, C]{Inclusion: inc}
	}

	if inc.RHS.IsEmptySet() {
		// Term ⊆ ∅: unsatisfiable.
		if _, _, _, isTerm := inc.LHS.IsTerm(); isTerm {
			return nil, &expr.NoSolutionError[V, C]{Inclusion: inc}
		}
		// Var ⊆ ∅: an upper-bound constraint this lower-bound-propagation
		// engine cannot enforce or falsify (see DESIGN.md); discarded,
		// symmetric to the uninformative _⊆U rule above.
		if lIsVar {
			return nil, nil
		}
	}

	lc, lsig, lch, lIsTerm := inc.LHS.IsTerm()
	rc, rsig, rch, rIsTerm := inc.RHS.IsTerm()

	if lIsTerm && rIsTerm {
		if lc != rc || len(lsig) != len(rsig) || len(lch) != len(rsig) || len(rch) != len(rsig) {
			return nil, &expr.NoSolutionError[V, C]{Inclusion: inc}
		}
		for i := range lsig {
			if lsig[i] != rsig[i] {
				return nil, &expr.NoSolutionError[V, C]{Inclusion: inc}
			}
		}
		out := make([]expr.Inclusion[V, C], 0, len(lsig))
		for i, v := range lsig {
			var sub expr.Inclusion[V, C]
			if v == expr.Covariant {
				sub = expr.NewInclusion(lch[i], rch[i])
			} else {
				sub = expr.NewInclusion(rch[i], lch[i])
			}
			atoms, err := simplifyOne(sub)
			if err != nil {
				return nil, err
			}
			out = append(out, atoms...)
		}
		return out, nil
	}

	// Remaining shapes are exactly Term ⊆ Var and Var ⊆ Term: keep as-is.
	return []expr.Inclusion[V, C]{inc}, nil
}
