// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: SolveSystem — the package's single entry point. Ties together
// simplify, the edge inserter, and saturation, then freezes the result into
// a solved.SolvedSystem.
// AI-HINT (file):
//   - A Builder is discarded after SolveSystem returns: the frozen
//     SolvedSystem owns the graph and table from then on, and nothing in
//     this package touches them again — the single-threaded construction
//     phase ends here.

package builder

import (
	"cmp"

	"github.com/katalvlaran/ifscs/expr"
	"github.com/katalvlaran/ifscs/simplify"
	"github.com/katalvlaran/ifscs/solved"
)

// SolveSystem simplifies sys, builds its inductive-form graph, saturates it
// to a transitive-closure fixed point with online cycle collapse, and
// returns the resulting frozen system. It returns an error (typically
// *expr.NoSolutionError[V,C]) if sys is unsatisfiable.
func SolveSystem[V cmp.Ordered, C cmp.Ordered](sys expr.ConstraintSystem[V, C], opts ...Option) (*solved.SolvedSystem[V, C], error) {
	cfg := newConfig(opts...)

	atoms, err := simplify.Simplify(sys)
	if err != nil {
		return nil, err
	}

	b := newBuilder[V, C](cfg.cycleBudget)

	affected := newSegmentSet()
	for _, inc := range atoms {
		if err := b.AddInclusion(true, affected, inc); err != nil {
			return nil, err
		}
	}

	if err := b.saturate(affected); err != nil {
		return nil, err
	}

	return solved.NewSolvedSystem(b.g, b.idTable, b.ids), nil
}
