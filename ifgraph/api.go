// SPDX-License-Identifier: MIT
// File: api.go
// Role: thin, deterministic snapshot facade — Nodes(), Edges() — on top of
// the mutable adjacency maps. No algorithmic complexity lives here.

package ifgraph

import "sort"

// Nodes returns every node id currently in g, sorted ascending.
//
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	out := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Edges returns every edge currently in g, sorted by (Src, Dst, Label).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0)
	for src, nbrs := range g.succOf {
		for dst, label := range nbrs {
			out = append(out, Edge{Src: src, Dst: dst, Label: label})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Src != out[j].Src {
			return out[i].Src < out[j].Src
		}
		if out[i].Dst != out[j].Dst {
			return out[i].Dst < out[j].Dst
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// NodeCount returns len(Nodes()) without allocating.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }
