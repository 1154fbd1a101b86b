// File: compare.go
// Role: structural equality, deterministic total order, and the canonical
// string key used by builder/ to memoize expr→id without requiring
// SetExpression itself to be a valid Go map key.
// AI-HINT (file):
//   - Compare defines the *only* total order this module relies on; every
//     property test that asserts determinism ultimately rests on it.

package expr

import (
	"cmp"
	"fmt"
	"strings"
)

// Equal reports whether e and o are structurally identical: same kind, and
// for variables the same key, for terms the same constructor, signature, and
// pairwise-equal children.
func (e SetExpression[V, C]) Equal(o SetExpression[V, C]) bool {
	return e.Compare(o) == 0
}

// Compare returns a negative, zero, or positive int as e is structurally
// less than, equal to, or greater than o. The order is total and
// deterministic given V and C's own orderings:
//
//  1. by kind (empty < universal < variable < term);
//  2. for variables, by the variable key;
//  3. for terms, by constructor label, then arity, then signature position
//     by position, then children position by position (recursively).
func (e SetExpression[V, C]) Compare(o SetExpression[V, C]) int {
	if e.kind != o.kind {
		return cmp.Compare(e.kind, o.kind)
	}
	switch e.kind {
	case kindEmpty, kindUniversal:
		return 0
	case kindVariable:
		return cmp.Compare(e.variable, o.variable)
	case kindTerm:
		if c := cmp.Compare(e.ctor, o.ctor); c != 0 {
			return c
		}
		if c := cmp.Compare(len(e.children), len(o.children)); c != 0 {
			return c
		}
		if c := cmp.Compare(len(e.sig), len(o.sig)); c != 0 {
			return c
		}
		for i := range e.sig {
			if c := cmp.Compare(e.sig[i], o.sig[i]); c != 0 {
				return c
			}
		}
		for i := range e.children {
			if c := e.children[i].Compare(o.children[i]); c != 0 {
				return c
			}
		}
		return 0
	default:
		panic("expr: Compare: unreachable kind")
	}
}

// Key returns a canonical string encoding of e, suitable as a Go map key.
//
// Because children is a slice, SetExpression is not itself Go-comparable, so
// builder.Builder memoizes expr→id via this flattened key rather than
// requiring V and C to be hashable beyond what cmp.Ordered already demands
//. V and C
// values format deterministically via %v since cmp.Ordered only admits
// built-in ordered kinds (strings, integers, floats).
func (e SetExpression[V, C]) Key() string {
	var b strings.Builder
	e.writeKey(&b)
	return b.String()
}

func (e SetExpression[V, C]) writeKey(b *strings.Builder) {
	switch e.kind {
	case kindEmpty:
		b.WriteString("E")
	case kindUniversal:
		b.WriteString("U")
	case kindVariable:
		fmt.Fprintf(b, "V(%v)", e.variable)
	case kindTerm:
		fmt.Fprintf(b, "T(%v)[", e.ctor)
		for i, v := range e.sig {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%d", v)
		}
		b.WriteString("](")
		for i, c := range e.children {
			if i > 0 {
				b.WriteByte(';')
			}
			c.writeKey(b)
		}
		b.WriteByte(')')
	}
}

// String implements fmt.Stringer for debugging and test failure messages.
func (e SetExpression[V, C]) String() string {
	switch e.kind {
	case kindEmpty:
		return "EmptySet"
	case kindUniversal:
		return "UniversalSet"
	case kindVariable:
		return fmt.Sprintf("Var(%v)", e.variable)
	case kindTerm:
		parts := make([]string, len(e.children))
		for i, c := range e.children {
			parts[i] = c.String()
		}
		return fmt.Sprintf("%v(%s)", e.ctor, strings.Join(parts, ", "))
	default:
		return "<invalid>"
	}
}
