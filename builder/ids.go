// File: ids.go
// Role: dense-id assignment, first-sight order.
// AI-HINT (file):
//   - Dense-id indirection is a core design decision, not an
//     accident: hot-path comparisons (edge existence, chain search) are all
//     int comparisons, never structural expr comparisons.

package builder

import (
	"cmp"

	"github.com/katalvlaran/ifscs/expr"
)

// newAtomicInclusionByIDs builds the inclusion expr(src) ⊆ expr(dst) from
// already-assigned ids, used by cycle collapse to re-emit cross edges
// against the chain's representative.
func newAtomicInclusionByIDs[V cmp.Ordered, C cmp.Ordered](b *Builder[V, C], src, dst int) expr.Inclusion[V, C] {
	return expr.NewInclusion(b.idTable[src], b.idTable[dst])
}

// getEID returns the id for e, allocating a fresh one (and registering a
// node in b.g) on first sight. On a repeat expr.Key() — including a key
// rebound by a prior cycle collapse — it returns the stored representative.
func (b *Builder[V, C]) getEID(e expr.SetExpression[V, C]) int {
	key := e.Key()
	if id, ok := b.ids[key]; ok {
		return id
	}
	id := len(b.idTable)
	b.idTable = append(b.idTable, e)
	b.g.InsertNode(id)
	b.ids[key] = id
	return id
}
