// Package ifscs is an inductive-form set-constraint solver.
//
// It turns a system of set inclusions over empty/universal sets, named set
// variables, and covariant/contravariant constructed terms into a saturated
// inductive-form graph, then answers least-solution queries against it.
//
// The root package holds only this documentation; import the subpackage
// you need:
//
//	expr/     — SetExpression, Inclusion, ConstraintSystem: the algebra
//	simplify/ — Simplify: the rewrite-to-atomic-form pass
//	ifgraph/  — Graph: the dense-id, two-colour-edge multigraph primitive
//	builder/  — SolveSystem: simplify + insert + saturate + collapse cycles
//	solved/   — SolvedSystem, LeastSolution, GraphElems: the frozen result
//
// A typical solve:
//
//	sys := expr.NewConstraintSystem(
//		expr.NewInclusion(expr.Atom[string, string]("int"), expr.SetVariable[string, string]("x")),
//	)
//	sol, err := builder.SolveSystem(sys)
//	if err != nil {
//		// sys is unsatisfiable; err is *expr.NoSolutionError[string, string]
//	}
//	terms, err := solved.LeastSolution(sol, "x")
package ifscs
