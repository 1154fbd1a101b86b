// File: query.go
// Role: LeastSolution — the user-facing read path.
// AI-HINT (file):
//   - A solved graph's edges always run src->dst meaning expr(src) ⊆
//     expr(dst) (the Pred/Succ label only distinguishes two edge-insertion
//     code paths, see ifgraph/types.go); so the terms included in v are found
//     by walking v's incoming edges (FoldPred) transitively, collecting
//     every ConstructedTerm node visited along the way.

package solved

import (
	"cmp"
	"sort"

	"github.com/katalvlaran/ifscs/expr"
	"github.com/katalvlaran/ifscs/ifgraph"
)

// LeastSolution returns the least solution of v in s: every constructed
// term provably included in v, deduplicated, in deterministic
// (expr.Compare) order. It returns a *expr.NoVariableLabelError[V] if v
// never appeared in the solved system.
func LeastSolution[V cmp.Ordered, C cmp.Ordered](s *SolvedSystem[V, C], v V) ([]expr.SetExpression[V, C], error) {
	root, ok := s.lookupVariable(v)
	if !ok {
		return nil, &expr.NoVariableLabelError[V]{Variable: v}
	}

	visited := make(map[int]bool)
	var terms []expr.SetExpression[V, C]

	var walk func(id int)
	walk = func(id int) {
		if visited[id] {
			return
		}
		visited[id] = true

		e := s.idTable[id]
		if _, _, _, isTerm := e.IsTerm(); isTerm {
			terms = append(terms, e)
		}

		ifgraph.FoldPred(s.graph, id, struct{}{}, func(_ struct{}, p int, _ ifgraph.Label) struct{} {
			walk(p)
			return struct{}{}
		})
	}
	walk(root)

	sort.Slice(terms, func(i, j int) bool { return terms[i].Compare(terms[j]) < 0 })
	return terms, nil
}
