// File: methods.go
// Role: node/edge lifecycle — InsertNode, InsertEdge, EdgeExists, RemoveNode.
// AI-HINT (file):
//   - InsertEdge panics on self-loop or duplicate (src,dst,label); the
//     Builder guarantees these never happen starting from a simplified
//     system, so this is an invariant check, not a
//     recoverable error path.

package ifgraph

// InsertNode adds id to the graph if absent. Idempotent.
//
// Complexity: O(1).
func (g *Graph) InsertNode(id int) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.succOf[id] = make(map[int]Label)
	g.predOf[id] = make(map[int]Label)
}

// InsertEdge adds a labelled edge src→dst. Both endpoints must already be
// nodes (see InsertNode). Panics if src==dst (ErrSelfLoop) or if an edge
// with the same (src, dst, label) already exists (ErrDuplicateEdge) — the
// caller (builder.Builder) is responsible for never attempting either.
//
// Complexity: O(1).
func (g *Graph) InsertEdge(src, dst int, label Label) {
	if src == dst {
		panic(ErrSelfLoop)
	}
	if l, ok := g.succOf[src][dst]; ok && l == label {
		panic(ErrDuplicateEdge)
	}
	g.succOf[src][dst] = label
	g.predOf[dst][src] = label
}

// EdgeExists reports whether any labelled edge src→dst exists.
//
// Complexity: O(1).
func (g *Graph) EdgeExists(src, dst int) bool {
	_, ok := g.succOf[src][dst]
	return ok
}

// EdgeLabel returns the label of the edge src→dst and whether it exists.
//
// Complexity: O(1).
func (g *Graph) EdgeLabel(src, dst int) (Label, bool) {
	l, ok := g.succOf[src][dst]
	return l, ok
}

// RemoveNode deletes id and every edge incident to it: cycle
// collapse destroys nodes this way.
//
// Complexity: O(deg(id)).
func (g *Graph) RemoveNode(id int) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	for nbr := range g.succOf[id] {
		delete(g.predOf[nbr], id)
	}
	for nbr := range g.predOf[id] {
		delete(g.succOf[nbr], id)
	}
	delete(g.succOf, id)
	delete(g.predOf, id)
	delete(g.nodes, id)
}

// HasNode reports whether id is currently a node of g.
//
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]
	return ok
}
