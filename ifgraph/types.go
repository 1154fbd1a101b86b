// File: types.go
// Role: Label, Edge, Graph, sentinel errors, and the empty-graph constructor.
// Determinism:
//   - Nodes()/Edges() return sorted snapshots; iteration order never leaks
//     Go's randomized map order to callers.
// AI-HINT (file):
//   - Node ids are plain, caller-assigned ints; ifgraph never allocates ids
//     itself — that is the Builder's job.

package ifgraph

import "errors"

// Label distinguishes the two edge colours of an inductive-form graph.
type Label int

const (
	// Pred marks an edge oriented the "predecessor" way: for Var⊆Var this
	// is lhs→rhs when lhs<rhs; for Term⊆Var it is term→var.
	Pred Label = iota
	// Succ marks the opposite orientation: for Var⊆Var, lhs→rhs when
	// lhs>rhs; for Var⊆Term it is var→term.
	Succ
)

// String renders the label for diagnostics.
func (l Label) String() string {
	switch l {
	case Pred:
		return "Pred"
	case Succ:
		return "Succ"
	default:
		return "Label(?)"
	}
}

// Edge is a single labelled arc src→dst.
type Edge struct {
	Src, Dst int
	Label    Label
}

// Sentinel errors for invariant violations: these must not occur starting
// from a simplified system; callers that hit them have a bug.
var (
	// ErrSelfLoop indicates an attempt to insert src==dst, which the IF
	// graph forbids by construction.
	ErrSelfLoop = errors.New("ifgraph: self-loop not allowed")
	// ErrDuplicateEdge indicates an attempt to insert an edge that already
	// exists with the same (src, dst, label) triple.
	ErrDuplicateEdge = errors.New("ifgraph: duplicate (src, dst, label) edge")
)

// Graph is the mutable IF constraint graph: a dense-int-id, two-label
// multigraph. The zero value is not valid; use Empty().
//
// Graph is not safe for concurrent use — its only owner, builder.Builder, is
// specified single-threaded.
type Graph struct {
	nodes map[int]struct{}

	// succOf[id][nbr] = label of the edge id -> nbr.
	succOf map[int]map[int]Label
	// predOf[id][nbr] = label of the edge nbr -> id, i.e. edges *into* id.
	predOf map[int]map[int]Label
}

// Empty returns a new, empty IF graph.
func Empty() *Graph {
	return &Graph{
		nodes:  make(map[int]struct{}),
		succOf: make(map[int]map[int]Label),
		predOf: make(map[int]map[int]Label),
	}
}
