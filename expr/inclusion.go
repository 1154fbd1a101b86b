// File: inclusion.go
// Role: Inclusion (lhs ⊆ rhs) and ConstraintSystem (ordered inclusion list).
// AI-HINT (file):
//   - ConstraintSystem preserves insertion order; that order is the
//     simplification order, so callers should not reorder it
//     before calling simplify.Simplify.

package expr

import "cmp"

// Inclusion is the ordered pair lhs ⊆ rhs.
type Inclusion[V cmp.Ordered, C cmp.Ordered] struct {
	LHS SetExpression[V, C]
	RHS SetExpression[V, C]
}

// NewInclusion constructs the inclusion lhs ⊆ rhs.
func NewInclusion[V cmp.Ordered, C cmp.Ordered](lhs, rhs SetExpression[V, C]) Inclusion[V, C] {
	return Inclusion[V, C]{LHS: lhs, RHS: rhs}
}

// Equal reports whether two inclusions have structurally equal sides.
func (i Inclusion[V, C]) Equal(o Inclusion[V, C]) bool {
	return i.LHS.Equal(o.LHS) && i.RHS.Equal(o.RHS)
}

// Compare orders inclusions lexicographically by (LHS, RHS).
func (i Inclusion[V, C]) Compare(o Inclusion[V, C]) int {
	if c := i.LHS.Compare(o.LHS); c != 0 {
		return c
	}
	return i.RHS.Compare(o.RHS)
}

// String renders "lhs ⊆ rhs" for diagnostics.
func (i Inclusion[V, C]) String() string {
	return i.LHS.String() + " ⊆ " + i.RHS.String()
}

// ConstraintSystem is an ordered sequence of inclusions; insertion order is
// the simplification order.
type ConstraintSystem[V cmp.Ordered, C cmp.Ordered] []Inclusion[V, C]

// NewConstraintSystem wraps is into a ConstraintSystem, preserving order.
func NewConstraintSystem[V cmp.Ordered, C cmp.Ordered](is ...Inclusion[V, C]) ConstraintSystem[V, C] {
	out := make(ConstraintSystem[V, C], len(is))
	copy(out, is)
	return out
}
