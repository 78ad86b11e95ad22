// Package csp implements finite-domain constraint satisfaction problems.
// This file implements min-conflicts, the workhorse local-search solver:
// start from a random complete assignment, repeatedly pick a conflicted
// variable at random and move it to the value that minimizes the number of
// unsatisfied constraints. The best assignment seen is tracked across all
// steps and restored when the step budget runs out.
package csp

import (
	"fmt"
	"math/rand"
)

// MinConflicts runs up to maxSteps improvement steps from a uniformly
// random assignment, leaving read-only variables untouched throughout.
// tabuSize is reserved for a tabu-list extension and only validated:
// tabuSize + len(readOnly) must leave at least one variable free, or the
// call fails with ErrInvalidTabuSize.
//
// On return without error the problem is either solved or holds the
// best-effort assignment with the fewest unsatisfied constraints observed.
// Events are recorded into history when non-nil.
func MinConflicts[T comparable](
	p *Problem[T],
	maxSteps int,
	readOnly VariableSet[T],
	tabuSize int,
	rng *rand.Rand,
	history *AssignmentHistory[T],
) error {
	if tabuSize < 0 || len(p.Variables()) <= tabuSize+len(readOnly) {
		return fmt.Errorf("MinConflicts: %w: tabu %d, read-only %d, variables %d",
			ErrInvalidTabuSize, tabuSize, len(readOnly), len(p.Variables()))
	}

	p.AssignRandomValues(rng, readOnly, history)

	bestUnsatisfied := p.UnsatisfiedConstraintsCount()
	best := p.CurrentAssignment()

	for step := 0; step < maxSteps; step++ {
		if p.IsCompletelyConsistentlyAssigned() {
			return nil
		}

		conflicted := conflictedVariables(p, readOnly)
		if len(conflicted) == 0 {
			break // every conflict sits on a read-only variable
		}
		v := pickRandom(rng, conflicted)

		v.Unassign()
		history.recordUnassign(v)
		value := minConflictValue(p, v, rng)
		if err := v.Assign(value); err != nil {
			panic(err)
		}
		history.recordAssign(v, value)

		if unsatisfied := p.UnsatisfiedConstraintsCount(); unsatisfied < bestUnsatisfied {
			bestUnsatisfied = unsatisfied
			best = p.CurrentAssignment()
		}
	}

	p.UnassignAll()
	p.restoreAssignment(best)
	return nil
}

// conflictedVariables returns, in deterministic order, the non-read-only
// variables appearing in at least one unsatisfied constraint.
func conflictedVariables[T comparable](p *Problem[T], readOnly VariableSet[T]) []*Variable[T] {
	seen := make(VariableSet[T])
	var conflicted []*Variable[T]
	for _, c := range p.UnsatisfiedConstraints() {
		for _, v := range c.Variables() {
			if readOnly.Contains(v) || seen.Contains(v) {
				continue
			}
			seen[v] = struct{}{}
			conflicted = append(conflicted, v)
		}
	}
	return conflicted
}

// minConflictValue returns the domain value of v producing the fewest
// unsatisfied constraints, breaking ties uniformly at random. v must be
// unassigned on entry and is unassigned again on exit.
func minConflictValue[T comparable](p *Problem[T], v *Variable[T], rng *rand.Rand) T {
	minConflicts := -1
	var candidates []T
	for i := range v.domain {
		v.assignIndex(i)
		conflicts := p.UnsatisfiedConstraintsCount()
		v.Unassign()
		switch {
		case minConflicts < 0 || conflicts < minConflicts:
			minConflicts = conflicts
			candidates = append(candidates[:0], v.domain[i])
		case conflicts == minConflicts:
			candidates = append(candidates, v.domain[i])
		}
	}
	return pickRandom(rng, candidates)
}
