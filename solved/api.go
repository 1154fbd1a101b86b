// File: api.go
// Role: GraphElems — the debug-oriented graph accessor. Not
// needed to answer LeastSolution; exposed for inspection and testing.

package solved

import (
	"cmp"

	"github.com/katalvlaran/ifscs/expr"
	"github.com/katalvlaran/ifscs/ifgraph"
)

// NodeElem pairs a node id with the expression it denotes.
type NodeElem[V cmp.Ordered, C cmp.Ordered] struct {
	ID   int
	Expr expr.SetExpression[V, C]
}

// EdgeElem mirrors ifgraph.Edge for callers that do not import ifgraph
// directly.
type EdgeElem struct {
	Src, Dst int
	Label    ifgraph.Label
}

// GraphElems returns every node and edge of s's underlying graph, in
// deterministic id order, for debugging and assertions in tests.
func GraphElems[V cmp.Ordered, C cmp.Ordered](s *SolvedSystem[V, C]) ([]NodeElem[V, C], []EdgeElem) {
	ids := s.graph.Nodes()
	nodes := make([]NodeElem[V, C], 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, NodeElem[V, C]{ID: id, Expr: s.idTable[id]})
	}

	rawEdges := s.graph.Edges()
	edges := make([]EdgeElem, 0, len(rawEdges))
	for _, e := range rawEdges {
		edges = append(edges, EdgeElem{Src: e.Src, Dst: e.Dst, Label: e.Label})
	}

	return nodes, edges
}
