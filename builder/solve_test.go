package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ifscs/builder"
	"github.com/katalvlaran/ifscs/expr"
	"github.com/katalvlaran/ifscs/ifgraph"
	"github.com/katalvlaran/ifscs/solved"
)

func atom(c string) expr.SetExpression[string, string] { return expr.Atom[string, string](c) }
func v(name string) expr.SetExpression[string, string] { return expr.SetVariable[string, string](name) }

func TestSolveSystem_DirectInclusion(t *testing.T) {
	sys := expr.NewConstraintSystem(expr.NewInclusion(atom("int"), v("x")))

	sol, err := builder.SolveSystem(sys)
	require.NoError(t, err)

	terms, err := solved.LeastSolution(sol, "x")
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.True(t, terms[0].Equal(atom("int")))
}

func TestSolveSystem_TransitiveChain(t *testing.T) {
	sys := expr.NewConstraintSystem(
		expr.NewInclusion(atom("int"), v("x")),
		expr.NewInclusion(v("x"), v("y")),
		expr.NewInclusion(v("y"), v("z")),
	)

	sol, err := builder.SolveSystem(sys)
	require.NoError(t, err)

	for _, name := range []string{"x", "y", "z"} {
		terms, err := solved.LeastSolution(sol, name)
		require.NoError(t, err)
		require.Len(t, terms, 1, "variable %s", name)
		assert.True(t, terms[0].Equal(atom("int")))
	}
}

func TestSolveSystem_JoinOfTwoIndependentSources(t *testing.T) {
	sys := expr.NewConstraintSystem(
		expr.NewInclusion(atom("a"), v("x")),
		expr.NewInclusion(atom("b"), v("y")),
		expr.NewInclusion(v("x"), v("z")),
		expr.NewInclusion(v("y"), v("z")),
	)

	sol, err := builder.SolveSystem(sys)
	require.NoError(t, err)

	terms, err := solved.LeastSolution(sol, "z")
	require.NoError(t, err)
	assert.ElementsMatch(t, []expr.SetExpression[string, string]{atom("a"), atom("b")}, terms)

	xTerms, err := solved.LeastSolution(sol, "x")
	require.NoError(t, err)
	require.Len(t, xTerms, 1)
	assert.True(t, xTerms[0].Equal(atom("a")))

	yTerms, err := solved.LeastSolution(sol, "y")
	require.NoError(t, err)
	require.Len(t, yTerms, 1)
	assert.True(t, yTerms[0].Equal(atom("b")))
}

func TestSolveSystem_CycleCollapseEquivalence(t *testing.T) {
	sys := expr.NewConstraintSystem(
		expr.NewInclusion(atom("int"), v("x")),
		expr.NewInclusion(v("x"), v("y")),
		expr.NewInclusion(v("y"), v("x")),
	)

	withCycles, err := builder.SolveSystem(sys)
	require.NoError(t, err)
	withoutCycles, err := builder.SolveSystem(sys, builder.WithCycleBudget(0))
	require.NoError(t, err)

	for _, name := range []string{"x", "y"} {
		a, err := solved.LeastSolution(withCycles, name)
		require.NoError(t, err)
		b, err := solved.LeastSolution(withoutCycles, name)
		require.NoError(t, err)
		require.Len(t, a, 1)
		require.Len(t, b, 1)
		assert.True(t, a[0].Equal(b[0]))
		assert.True(t, a[0].Equal(atom("int")))
	}
}

func TestSolveSystem_CovariantPropagation(t *testing.T) {
	f := expr.Term[string, string]("f", []expr.Variance{expr.Covariant})
	sys := expr.NewConstraintSystem(
		expr.NewInclusion(f(atom("int")), f(v("x"))),
	)

	sol, err := builder.SolveSystem(sys)
	require.NoError(t, err)

	terms, err := solved.LeastSolution(sol, "x")
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.True(t, terms[0].Equal(atom("int")))
}

func TestSolveSystem_ContravariantReversesFlow(t *testing.T) {
	f := expr.Term[string, string]("f", []expr.Variance{expr.Contravariant})
	sys := expr.NewConstraintSystem(
		expr.NewInclusion(f(v("x")), f(atom("int"))),
	)

	sol, err := builder.SolveSystem(sys)
	require.NoError(t, err)

	terms, err := solved.LeastSolution(sol, "x")
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.True(t, terms[0].Equal(atom("int")))
}

func TestSolveSystem_UnsatisfiableUniversalIntoTerm(t *testing.T) {
	sys := expr.NewConstraintSystem(
		expr.NewInclusion(expr.UniversalSet[string, string](), atom("int")),
	)

	_, err := builder.SolveSystem(sys)
	require.Error(t, err)
	assert.True(t, errors.Is(err, expr.ErrNoSolution))
}

func TestSolveSystem_UnsatisfiableUniversalIntoEmpty(t *testing.T) {
	sys := expr.NewConstraintSystem(
		expr.NewInclusion(expr.UniversalSet[string, string](), expr.EmptySet[string, string]()),
	)

	_, err := builder.SolveSystem(sys)
	require.Error(t, err)
	assert.True(t, errors.Is(err, expr.ErrNoSolution))
}

func TestSolveSystem_UnknownVariableErrors(t *testing.T) {
	sys := expr.NewConstraintSystem(expr.NewInclusion(atom("int"), v("x")))

	sol, err := builder.SolveSystem(sys)
	require.NoError(t, err)

	_, err = solved.LeastSolution(sol, "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, expr.ErrNoVariableLabel))
}

func TestSolveSystem_DeterministicAcrossRuns(t *testing.T) {
	build := func() *solved.SolvedSystem[string, string] {
		sys := expr.NewConstraintSystem(
			expr.NewInclusion(atom("int"), v("x")),
			expr.NewInclusion(atom("bool"), v("x")),
			expr.NewInclusion(v("x"), v("y")),
		)
		sol, err := builder.SolveSystem(sys)
		require.NoError(t, err)
		return sol
	}

	a, b := build(), build()
	termsA, err := solved.LeastSolution(a, "y")
	require.NoError(t, err)
	termsB, err := solved.LeastSolution(b, "y")
	require.NoError(t, err)

	require.Len(t, termsA, 2)
	require.Len(t, termsB, 2)
	for i := range termsA {
		assert.True(t, termsA[i].Equal(termsB[i]))
	}
}

func TestSolveSystem_GraphElemsReflectsSaturation(t *testing.T) {
	sys := expr.NewConstraintSystem(
		expr.NewInclusion(atom("int"), v("x")),
		expr.NewInclusion(v("x"), v("y")),
	)
	sol, err := builder.SolveSystem(sys)
	require.NoError(t, err)

	nodes, edges := solved.GraphElems(sol)
	assert.Len(t, nodes, 3) // int, x, y
	assert.GreaterOrEqual(t, len(edges), 2)
}

// TestSolveSystem_SaturationClosure checks the saturation closure property
// directly against the raw graph: for every pair (p, r) reachable via some x
// with a Pred edge p->x and a Succ edge x->r (p != r), a direct p->r edge
// must already be present.
func TestSolveSystem_SaturationClosure(t *testing.T) {
	f := expr.Term[string, string]("f", []expr.Variance{expr.Covariant})

	systems := []expr.ConstraintSystem[string, string]{
		expr.NewConstraintSystem(
			expr.NewInclusion(atom("a"), v("x")),
			expr.NewInclusion(v("x"), v("y")),
			expr.NewInclusion(v("y"), v("z")),
			expr.NewInclusion(v("z"), v("w")),
		),
		expr.NewConstraintSystem(
			expr.NewInclusion(atom("a"), v("x")),
			expr.NewInclusion(atom("b"), v("y")),
			expr.NewInclusion(v("x"), v("z")),
			expr.NewInclusion(v("y"), v("z")),
			expr.NewInclusion(v("z"), v("w")),
		),
		expr.NewConstraintSystem(
			expr.NewInclusion(f(atom("a")), f(v("x"))),
			expr.NewInclusion(v("x"), v("y")),
		),
	}

	for i, sys := range systems {
		sol, err := builder.SolveSystem(sys)
		require.NoError(t, err, "system %d", i)

		_, edges := solved.GraphElems(sol)
		direct := make(map[[2]int]bool, len(edges))
		var predEdges []solved.EdgeElem
		succOf := make(map[int][]int) // x -> r for every Succ edge x->r
		for _, e := range edges {
			direct[[2]int{e.Src, e.Dst}] = true
			if e.Label == ifgraph.Succ {
				succOf[e.Src] = append(succOf[e.Src], e.Dst)
			} else {
				predEdges = append(predEdges, e)
			}
		}

		for _, pe := range predEdges {
			for _, r := range succOf[pe.Dst] {
				if r == pe.Src {
					continue
				}
				assert.True(t, direct[[2]int{pe.Src, r}],
					"system %d: missing closure edge %d->%d via %d", i, pe.Src, r, pe.Dst)
			}
		}
	}
}
