// Package csp implements finite-domain constraint satisfaction problems.
// This file implements plain backtracking search and its find-all-solutions
// variant. Both follow the assign/unassign protocol every systematic solver
// shares: assign a chosen variable, recurse, and on failure unassign
// exactly what was assigned at this depth before trying the next value.
package csp

import "context"

// SolveBacktracking searches for a complete consistent assignment by
// depth-first backtracking over the unassigned variables, trying domain
// values in order. It reports whether the problem ended completely
// consistently assigned; on failure every variable is left as it was
// found. Events are recorded into history when non-nil.
//
// Cancelling ctx makes the search unwind and report failure.
func SolveBacktracking[T comparable](ctx context.Context, p *Problem[T], history *AssignmentHistory[T]) bool {
	return backtrack(ctx, p, history)
}

func backtrack[T comparable](ctx context.Context, p *Problem[T], history *AssignmentHistory[T]) bool {
	if ctx.Err() != nil {
		return false
	}
	if p.IsCompletelyAssigned() {
		return p.IsConsistentlyAssigned()
	}

	unassignedVars := p.UnassignedVariables()
	// The last-inserted variable keeps the search local to the most
	// recently touched part of the constraint list.
	selected := unassignedVars[len(unassignedVars)-1]
	for i := range selected.domain {
		selected.assignIndex(i)
		history.recordAssign(selected, selected.domain[i])

		if backtrack(ctx, p, history) {
			return true
		}

		selected.Unassign()
		history.recordUnassign(selected)
	}
	return false
}

// FindAllSolutions enumerates every complete consistent assignment
// reachable from the current state. Unlike SolveBacktracking it never
// short-circuits: each solution is snapshotted and the search continues.
// The problem's variable state is restored before returning.
func FindAllSolutions[T comparable](ctx context.Context, p *Problem[T]) []Assignment[T] {
	var solutions []Assignment[T]
	collectSolutions(ctx, p, &solutions)
	return solutions
}

func collectSolutions[T comparable](ctx context.Context, p *Problem[T], solutions *[]Assignment[T]) {
	if ctx.Err() != nil {
		return
	}
	if p.IsCompletelyAssigned() {
		if p.IsConsistentlyAssigned() {
			*solutions = append(*solutions, p.CurrentAssignment())
		}
		return
	}

	unassignedVars := p.UnassignedVariables()
	selected := unassignedVars[len(unassignedVars)-1]
	for i := range selected.domain {
		selected.assignIndex(i)
		collectSolutions(ctx, p, solutions)
		selected.Unassign()
	}
}
