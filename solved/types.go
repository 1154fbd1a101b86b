// File: types.go
// Role: the frozen snapshot type.
// AI-HINT (file):
//   - SolvedSystem stores exactly what builder.Builder accumulated: the
//     dense-id graph, the id->expr table, and the expr-key->id map (reused
//     for variable lookup in LeastSolution). No field is exported; callers
//     go through NewSolvedSystem (builder-only) and the query/debug API.

package solved

import (
	"cmp"

	"github.com/katalvlaran/ifscs/expr"
	"github.com/katalvlaran/ifscs/ifgraph"
)

// SolvedSystem is the immutable result of solving a constraint system: a
// saturated inductive-form graph together with the expression table needed
// to answer least-solution queries. The graph may still contain cycles that
// the builder's budgeted cycle search did not collapse. The zero value is not
// valid; construct via NewSolvedSystem.
type SolvedSystem[V cmp.Ordered, C cmp.Ordered] struct {
	graph   *ifgraph.Graph
	idTable []expr.SetExpression[V, C]
	ids     map[string]int
}

// NewSolvedSystem builds a SolvedSystem from a builder's final state. It is
// exported for use by package builder's SolveSystem entry point; callers
// assembling their own graph and table are responsible for the invariants
// SolveSystem otherwise guarantees (saturation).
func NewSolvedSystem[V cmp.Ordered, C cmp.Ordered](
	graph *ifgraph.Graph,
	idTable []expr.SetExpression[V, C],
	ids map[string]int,
) *SolvedSystem[V, C] {
	return &SolvedSystem[V, C]{graph: graph, idTable: idTable, ids: ids}
}

// lookupVariable returns the node id assigned to v, if the variable ever
// appeared in the solved system.
func (s *SolvedSystem[V, C]) lookupVariable(v V) (int, bool) {
	key := expr.SetVariable[V, C](v).Key()
	id, ok := s.ids[key]
	return id, ok
}
