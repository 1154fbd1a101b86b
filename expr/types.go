// File: types.go
// Role: SetExpression value type, Variance, and the five pure constructors.
// Determinism:
//   - Equal/Compare are structural; the same V/C values always produce the
//     same ordering, independent of construction order or process.
// AI-HINT (file):
//   - Use Term(c, sig) to get a curried constructor: Term(c, sig)(children...).
//   - Atom(c) is sugar for Term(c, nil)().

package expr

import "cmp"

// Variance annotates a single constructor argument position: Covariant
// positions preserve inclusion direction on the term/term decomposition
// rule, Contravariant positions reverse it.
type Variance int

const (
	// Covariant means f(x) ⊆ f(y) decomposes to x ⊆ y at this position.
	Covariant Variance = iota
	// Contravariant means f(x) ⊆ f(y) decomposes to y ⊆ x at this position.
	Contravariant
)

// kind tags the four SetExpression cases.
type kind int

const (
	kindEmpty kind = iota
	kindUniversal
	kindVariable
	kindTerm
)

// SetExpression is the tagged-variant value with four cases: EmptySet,
// UniversalSet, SetVariable(v), or ConstructedTerm(c, sig, children).
//
// The zero value is not a valid SetExpression; always build one via
// EmptySet, UniversalSet, SetVariable, Atom, or Term.
type SetExpression[V cmp.Ordered, C cmp.Ordered] struct {
	kind     kind
	variable V
	ctor     C
	sig      []Variance
	children []SetExpression[V, C]
}

// EmptySet returns ∅, the universally-smallest set.
func EmptySet[V cmp.Ordered, C cmp.Ordered]() SetExpression[V, C] {
	return SetExpression[V, C]{kind: kindEmpty}
}

// UniversalSet returns U, the universally-largest set.
func UniversalSet[V cmp.Ordered, C cmp.Ordered]() SetExpression[V, C] {
	return SetExpression[V, C]{kind: kindUniversal}
}

// SetVariable returns a named set variable drawn from the user's key type V.
func SetVariable[V cmp.Ordered, C cmp.Ordered](v V) SetExpression[V, C] {
	return SetExpression[V, C]{kind: kindVariable, variable: v}
}

// Atom returns a zero-arity constructed term: Term(c, nil)().
func Atom[V cmp.Ordered, C cmp.Ordered](c C) SetExpression[V, C] {
	return SetExpression[V, C]{kind: kindTerm, ctor: c, sig: nil, children: []SetExpression[V, C]{}}
}

// Term returns a curried constructor: Term(c, sig) yields a function that,
// applied to exactly len(sig) children, yields ConstructedTerm(c, sig, children).
//
// The returned function panics if the number of children does not match
// len(sig) — a programming error (malformed expression construction), never
// a data-dependent condition a caller can recover from.
func Term[V cmp.Ordered, C cmp.Ordered](c C, sig []Variance) func(children ...SetExpression[V, C]) SetExpression[V, C] {
	sigCopy := make([]Variance, len(sig))
	copy(sigCopy, sig)

	return func(children ...SetExpression[V, C]) SetExpression[V, C] {
		if len(children) != len(sigCopy) {
			panic("expr: Term: wrong number of children for signature")
		}
		kids := make([]SetExpression[V, C], len(children))
		copy(kids, children)

		return SetExpression[V, C]{kind: kindTerm, ctor: c, sig: sigCopy, children: kids}
	}
}

// IsEmptySet reports whether e is the ∅ case.
func (e SetExpression[V, C]) IsEmptySet() bool { return e.kind == kindEmpty }

// IsUniversalSet reports whether e is the U case.
func (e SetExpression[V, C]) IsUniversalSet() bool { return e.kind == kindUniversal }

// IsVariable reports whether e is a SetVariable, returning its key on true.
func (e SetExpression[V, C]) IsVariable() (V, bool) {
	if e.kind == kindVariable {
		return e.variable, true
	}
	var zero V
	return zero, false
}

// IsTerm reports whether e is a ConstructedTerm, returning its constructor
// label, signature, and children on true.
func (e SetExpression[V, C]) IsTerm() (C, []Variance, []SetExpression[V, C], bool) {
	if e.kind == kindTerm {
		return e.ctor, e.sig, e.children, true
	}
	var zeroC C
	return zeroC, nil, nil, false
}

// Arity returns len(children) for a term, 0 otherwise.
func (e SetExpression[V, C]) Arity() int {
	if e.kind != kindTerm {
		return 0
	}
	return len(e.children)
}
