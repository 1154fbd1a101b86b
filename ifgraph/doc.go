// Package ifgraph implements the mutable IF (inductive-form) constraint
// graph: a labelled multigraph over a dense integer namespace, with two
// edge colours (Pred, Succ), O(1) edge-existence testing, per-node
// fold-based adjacency iteration, and node removal.
//
// ifgraph's shape follows a familiar dense-adjacency-map container: dense
// adjacency maps, deterministic snapshot accessors, sentinel errors for
// invariant violations — without the locking, weight, and
// directed/multigraph-mode machinery such containers often carry: the
// Builder that owns an ifgraph.Graph is specified single-threaded, and
// the IF graph's shape is fixed (two label colours, no self-loops, no
// duplicate same-label edge between any ordered pair) rather than
// configurable.
package ifgraph
