// The example command walks through the solver families on one model, the
// Australia map-coloring problem: preprocessing with AC-3, systematic
// search with and without heuristics, and the local-search solvers, each
// on its own fresh copy of the problem.
package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/gitrdm/gocsp/pkg/csp"
)

var borders = [][2]string{
	{"sa", "wa"}, {"sa", "nt"}, {"sa", "q"}, {"sa", "nsw"}, {"sa", "v"},
	{"wa", "nt"}, {"nt", "q"}, {"q", "nsw"}, {"nsw", "v"},
}

func buildProblem() *csp.Problem[string] {
	byName := csp.NewVariablesFromNames(
		[]string{"nt", "q", "nsw", "v", "t", "sa", "wa"},
		[]string{"Red", "Green", "Blue"},
	)
	constraints := make([]*csp.Constraint[string], 0, len(borders)+1)
	for _, border := range borders {
		constraints = append(constraints, csp.MustConstraint(
			[]*csp.Variable[string]{byName[border[0]], byName[border[1]]},
			csp.AllDifferent[string],
		))
	}
	constraints = append(constraints, csp.MustConstraint(
		[]*csp.Variable[string]{byName["t"]},
		csp.AlwaysSatisfied[string],
	))
	return csp.MustProblem(constraints, byName)
}

func report(name string, p *csp.Problem[string], solved bool) {
	fmt.Printf("%-28s solved=%-5t consistent-constraints=%d/%d\n",
		name, solved, p.ConsistentConstraintsCount(), len(p.Constraints()))
}

func main() {
	fmt.Println("=== gocsp solver walk-through (Australia map coloring) ===")
	fmt.Println()
	ctx := context.Background()

	p := buildProblem()
	fmt.Printf("%-28s potentially-solvable=%t\n", "AC-3 preprocessing", csp.AC3(p))

	p = buildProblem()
	report("plain backtracking", p, csp.SolveBacktracking(ctx, p, nil))

	p = buildProblem()
	solved := csp.SolveHeuristicBacktracking(ctx, p,
		csp.MinimumRemainingValues[string], nil,
		csp.LeastConstrainingValue[string], csp.MaintainArcConsistency[string], nil)
	report("heuristic backtracking", p, solved)

	p = buildProblem()
	rng := rand.New(rand.NewSource(1))
	err := csp.MinConflicts(p, 10000, nil, 0, rng, nil)
	report("min-conflicts", p, err == nil && p.IsCompletelyConsistentlyAssigned())

	p = buildProblem()
	report("constraint weighting", p, csp.ConstraintWeighting(p, 10, rng, nil))

	p = buildProblem()
	best := csp.HillClimbing(ctx, p, 10, 100, 30, nil, nil, nil, rng)
	report("hill climbing", best, best.IsCompletelyConsistentlyAssigned())

	p = buildProblem()
	best = csp.SimulatedAnnealing(ctx, p, 5000, 2.0, 0.999, nil, nil, nil, rng)
	report("simulated annealing", best, best.IsCompletelyConsistentlyAssigned())

	p = buildProblem()
	gp := csp.NewGeneralGeneticProblem(p, 0.3, nil)
	report("genetic local search", p, csp.GeneticLocalSearch[string](gp, 30, 60, 0.25, rng))
}
