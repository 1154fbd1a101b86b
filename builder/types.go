// File: types.go
// Role: Builder state and the "affected" worklist primitive.
// AI-HINT (file):
//   - ids maps expr.SetExpression.Key() (a canonical string) to the
//     assigned id, rather than mapping SetExpression itself — Go map keys
//     must be comparable, and SetExpression holds a children slice, so it
//     is not (see expr/compare.go).

package builder

import (
	"cmp"
	"sort"

	"github.com/katalvlaran/ifscs/expr"
	"github.com/katalvlaran/ifscs/ifgraph"
)

// Builder is the stateful core that assembles an inductive-form graph from a
// simplified constraint system. The zero value is not valid; use
// newBuilder.
type Builder[V cmp.Ordered, C cmp.Ordered] struct {
	ids     map[string]int              // canonical expr key -> id
	idTable []expr.SetExpression[V, C]  // id -> expr, append-only
	g       *ifgraph.Graph
	budget  int // remaining cycle-detection chain-visit budget
}

// newBuilder returns an empty Builder with the given cycle-detection
// budget.
func newBuilder[V cmp.Ordered, C cmp.Ordered](cycleBudget int) *Builder[V, C] {
	return &Builder[V, C]{
		ids:     make(map[string]int),
		idTable: nil,
		g:       ifgraph.Empty(),
		budget:  cycleBudget,
	}
}

// segment is a (l, x) pair seeded by a Pred edge l--Pred-->x; the saturation
// worklist is a set of these.
type segment struct{ L, X int }

// segmentSet is a deduplicating accumulator of segments, used both as the
// "affected" output of an insertion pass and as the next saturation
// worklist.
type segmentSet map[segment]struct{}

func newSegmentSet() segmentSet { return make(segmentSet) }

func (s segmentSet) add(l, x int) { s[segment{L: l, X: x}] = struct{}{} }

// sorted returns the segments in deterministic (L, X) order, so that
// saturation's candidate generation never depends on Go's randomized map
// iteration order.
func (s segmentSet) sorted() []segment {
	out := make([]segment, 0, len(s))
	for seg := range s {
		out = append(out, seg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].L != out[j].L {
			return out[i].L < out[j].L
		}
		return out[i].X < out[j].X
	})
	return out
}
