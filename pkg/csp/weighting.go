// Package csp implements finite-domain constraint satisfaction problems.
// This file implements the constraint-weighting local search. Every
// constraint carries a positive integer weight, initially one. Each step
// applies the single (variable, value) swap with the largest weighted-cost
// reduction, then bumps the weight of every constraint still unsatisfied,
// so chronically violated constraints gradually dominate the cost surface
// and force the search to address them.
package csp

import "math/rand"

// ConstraintWeighting restarts up to maxTries times from random complete
// assignments. Variables already assigned on entry are treated as
// read-only. Within a try, swaps are applied while a positive weighted
// reduction exists; the solver returns true as soon as the problem is
// completely consistently assigned and false when the budget is spent.
// Events are recorded into history when non-nil.
func ConstraintWeighting[T comparable](
	p *Problem[T],
	maxTries int,
	rng *rand.Rand,
	history *AssignmentHistory[T],
) bool {
	readOnly := NewVariableSet(p.AssignedVariables()...)
	weights := make(map[*Constraint[T]]int, len(p.Constraints()))
	for _, c := range p.Constraints() {
		weights[c] = 1
	}

	for try := 0; try < maxTries; try++ {
		p.AssignRandomValues(rng, readOnly, history)

		for {
			if p.IsCompletelyConsistentlyAssigned() {
				return true
			}

			v, idx, reduction := bestWeightedSwap(p, readOnly, weights)
			if reduction <= 0 {
				break
			}

			v.Unassign()
			history.recordUnassign(v)
			v.assignIndex(idx)
			history.recordAssign(v, v.domain[idx])

			for _, c := range p.UnsatisfiedConstraints() {
				weights[c]++
			}
		}

		if try != maxTries-1 {
			for _, v := range p.Variables() {
				if !readOnly.Contains(v) {
					v.Unassign()
				}
			}
		}
	}
	return false
}

// bestWeightedSwap evaluates every (variable, value) swap against the
// current assignment, all other variables held fixed, and returns the swap
// with the maximum weighted-cost reduction. Ties keep the first swap found
// in variable order, so the choice is deterministic.
func bestWeightedSwap[T comparable](
	p *Problem[T],
	readOnly VariableSet[T],
	weights map[*Constraint[T]]int,
) (*Variable[T], int, int) {
	current := weightedCost(p, weights)

	var bestVar *Variable[T]
	bestIdx := 0
	bestReduction := 0
	for _, v := range p.Variables() {
		if readOnly.Contains(v) {
			continue
		}
		prior := v.index
		for i := range v.domain {
			if i == prior {
				continue
			}
			v.index = i
			if reduction := current - weightedCost(p, weights); reduction > bestReduction {
				bestVar, bestIdx, bestReduction = v, i, reduction
			}
		}
		v.index = prior
	}
	return bestVar, bestIdx, bestReduction
}

// weightedCost sums the weights of the unsatisfied constraints.
func weightedCost[T comparable](p *Problem[T], weights map[*Constraint[T]]int) int {
	cost := 0
	for _, c := range p.Constraints() {
		if !c.IsSatisfied() {
			cost += weights[c]
		}
	}
	return cost
}
