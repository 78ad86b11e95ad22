// Package csp implements finite-domain constraint satisfaction problems.
// This file implements heuristic backtracking: the plain depth-first
// search parameterized by a primary variable selector, a secondary
// tie-breaker, a value orderer, and an optional post-assignment inference
// hook. Domains the hook prunes are snapshotted before the hook runs and
// replayed when the branch fails, so no pruned value is lost across a
// backtrack.
package csp

import "context"

// SolveHeuristicBacktracking searches like SolveBacktracking but with
// pluggable orderings and inference. primary must return at least one
// candidate while unassigned variables remain. A nil secondary defaults to
// FirstCandidate, a nil orderer tries the raw domain in order, and a nil
// inference disables post-assignment pruning.
//
// It reports whether the problem ended completely consistently assigned;
// on failure every variable keeps the state it was found in, including its
// domain.
func SolveHeuristicBacktracking[T comparable](
	ctx context.Context,
	p *Problem[T],
	primary PrimarySelector[T],
	secondary SecondarySelector[T],
	orderer ValueOrderer[T],
	inference Inference[T],
	history *AssignmentHistory[T],
) bool {
	if secondary == nil {
		secondary = FirstCandidate[T]
	}
	return heuristicBacktrack(ctx, p, primary, secondary, orderer, inference, history)
}

func heuristicBacktrack[T comparable](
	ctx context.Context,
	p *Problem[T],
	primary PrimarySelector[T],
	secondary SecondarySelector[T],
	orderer ValueOrderer[T],
	inference Inference[T],
	history *AssignmentHistory[T],
) bool {
	if ctx.Err() != nil {
		return false
	}
	if p.IsCompletelyAssigned() {
		return p.IsConsistentlyAssigned()
	}

	selected := selectVariable(p, primary, secondary)
	values := orderedValues(p, selected, orderer)
	for _, value := range values {
		if err := selected.Assign(value); err != nil {
			panic(err)
		}
		history.recordAssign(selected, value)

		var snapshot domainSnapshot[T]
		deadEnd := false
		if inference != nil {
			snapshot = captureDomains(p.UnassignedVariables())
			deadEnd = !inference(p, selected)
		}

		if !deadEnd && heuristicBacktrack(ctx, p, primary, secondary, orderer, inference, history) {
			return true
		}

		if inference != nil {
			snapshot.restore()
		}
		selected.Unassign()
		history.recordUnassign(selected)
	}
	return false
}

// FindAllSolutionsHeuristic enumerates every complete consistent
// assignment reachable from the current state under the given orderings
// and inference, never short-circuiting on success. The problem's variable
// state is restored before returning.
func FindAllSolutionsHeuristic[T comparable](
	ctx context.Context,
	p *Problem[T],
	primary PrimarySelector[T],
	secondary SecondarySelector[T],
	orderer ValueOrderer[T],
	inference Inference[T],
) []Assignment[T] {
	if secondary == nil {
		secondary = FirstCandidate[T]
	}
	var solutions []Assignment[T]
	collectSolutionsHeuristic(ctx, p, primary, secondary, orderer, inference, &solutions)
	return solutions
}

func collectSolutionsHeuristic[T comparable](
	ctx context.Context,
	p *Problem[T],
	primary PrimarySelector[T],
	secondary SecondarySelector[T],
	orderer ValueOrderer[T],
	inference Inference[T],
	solutions *[]Assignment[T],
) {
	if ctx.Err() != nil {
		return
	}
	if p.IsCompletelyAssigned() {
		if p.IsConsistentlyAssigned() {
			*solutions = append(*solutions, p.CurrentAssignment())
		}
		return
	}

	selected := selectVariable(p, primary, secondary)
	values := orderedValues(p, selected, orderer)
	for _, value := range values {
		if err := selected.Assign(value); err != nil {
			panic(err)
		}

		var snapshot domainSnapshot[T]
		deadEnd := false
		if inference != nil {
			snapshot = captureDomains(p.UnassignedVariables())
			deadEnd = !inference(p, selected)
		}

		if !deadEnd {
			collectSolutionsHeuristic(ctx, p, primary, secondary, orderer, inference, solutions)
		}

		if inference != nil {
			snapshot.restore()
		}
		selected.Unassign()
	}
}

func selectVariable[T comparable](p *Problem[T], primary PrimarySelector[T], secondary SecondarySelector[T]) *Variable[T] {
	candidates := primary(p)
	if len(candidates) == 1 {
		return candidates[0]
	}
	return secondary(p, candidates)
}

func orderedValues[T comparable](p *Problem[T], v *Variable[T], orderer ValueOrderer[T]) []T {
	if orderer != nil {
		return orderer(p, v)
	}
	return append([]T(nil), v.domain...)
}
