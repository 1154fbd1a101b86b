// File: insert.go
// Role: inclusion-to-edge insertion — the dispatch, edge-insertion, and
// affected-worklist-update trio.
// AI-HINT (file):
//   - AddInclusion panics on v1==v2 (Var⊆Var, same variable) and on any
//     non-atomic shape: both are invariant violations that must not occur
//     starting from a simplified system, never recoverable
//     runtime conditions.

package builder

import (
	"cmp"

	"github.com/katalvlaran/ifscs/expr"
	"github.com/katalvlaran/ifscs/ifgraph"
)

// AddInclusion dispatches an atomic inclusion to the appropriate labelled
// edge insertion, per the Var/Var, Term/Var, Var/Term encoding rules.
func (b *Builder[V, C]) AddInclusion(removeCycles bool, affected segmentSet, inc expr.Inclusion[V, C]) error {
	v1, lIsVar := inc.LHS.IsVariable()
	v2, rIsVar := inc.RHS.IsVariable()

	if lIsVar && rIsVar {
		c := cmp.Compare(v1, v2)
		if c == 0 {
			panic("builder: AddInclusion: Var v ⊆ Var v reached the edge inserter (simplifier invariant violated)")
		}
		if c < 0 {
			return b.addEdge(removeCycles, affected, ifgraph.Pred, inc.LHS, inc.RHS)
		}
		return b.addEdge(removeCycles, affected, ifgraph.Succ, inc.LHS, inc.RHS)
	}

	if _, _, _, lIsTerm := inc.LHS.IsTerm(); lIsTerm && rIsVar {
		return b.addEdge(removeCycles, affected, ifgraph.Pred, inc.LHS, inc.RHS)
	}
	if _, _, _, rIsTerm := inc.RHS.IsTerm(); lIsVar && rIsTerm {
		return b.addEdge(removeCycles, affected, ifgraph.Succ, inc.LHS, inc.RHS)
	}

	panic("builder: AddInclusion: non-atomic inclusion reached the edge inserter: " + inc.String())
}

// addEdge resolves e1/e2 to ids and inserts the labelled edge between them,
// short-circuiting on self-id or an already-existing edge, and routing
// through cycle detection when removeCycles is set.
func (b *Builder[V, C]) addEdge(removeCycles bool, affected segmentSet, label ifgraph.Label, e1, e2 expr.SetExpression[V, C]) error {
	id1 := b.getEID(e1)
	id2 := b.getEID(e2)

	if id1 == id2 || b.g.EdgeExists(id1, id2) {
		return nil
	}

	if removeCycles {
		opposite := ifgraph.Succ
		if label == ifgraph.Succ {
			opposite = ifgraph.Pred
		}
		if chain, ok := b.checkChain(opposite, id1, id2); ok && len(chain) > 1 {
			return b.collapseCycle(chain)
		}
	}

	return b.simpleAddEdge(affected, label, id1, id2)
}

// simpleAddEdge inserts the edge and updates the affected worklist.
func (b *Builder[V, C]) simpleAddEdge(affected segmentSet, label ifgraph.Label, id1, id2 int) error {
	b.g.InsertEdge(id1, id2, label)

	switch label {
	case ifgraph.Pred:
		affected.add(id1, id2)
	case ifgraph.Succ:
		ifgraph.FoldPred(b.g, id1, struct{}{}, func(_ struct{}, p int, l ifgraph.Label) struct{} {
			if l == ifgraph.Pred {
				affected.add(p, id1)
			}
			return struct{}{}
		})
	}

	return nil
}
