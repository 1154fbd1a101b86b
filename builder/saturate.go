// File: saturate.go
// Role: transitive-closure saturation to a fixed point.
// AI-HINT (file):
//   - Candidate generation dedups via a segmentSet keyed by (l, r), then the
//     simplifier may expand one candidate into several atomic inclusions
//     (variance decomposition) before they are (re-)inserted.

package builder

import (
	"github.com/katalvlaran/ifscs/expr"
	"github.com/katalvlaran/ifscs/ifgraph"
	"github.com/katalvlaran/ifscs/simplify"
)

// saturate iterates the composition rule until no worklist
// segment produces a new candidate edge.
func (b *Builder[V, C]) saturate(worklist segmentSet) error {
	for len(worklist) > 0 {
		candidates := newSegmentSet()
		for _, seg := range worklist.sorted() {
			ifgraph.FoldSucc(b.g, seg.X, struct{}{}, func(_ struct{}, r int, label ifgraph.Label) struct{} {
				if label == ifgraph.Succ && !b.g.EdgeExists(seg.L, r) {
					candidates.add(seg.L, r)
				}
				return struct{}{}
			})
		}

		if len(candidates) == 0 {
			return nil
		}

		next := newSegmentSet()
		for _, cand := range candidates.sorted() {
			inc := newAtomicInclusionByIDs(b, cand.L, cand.X)
			atoms, err := simplify.Simplify(expr.NewConstraintSystem(inc))
			if err != nil {
				return err
			}
			for _, atom := range atoms {
				if err := b.AddInclusion(true, next, atom); err != nil {
					return err
				}
			}
		}

		worklist = next
	}
	return nil
}
