// Package csp implements finite-domain constraint satisfaction problems.
// This file implements simulated annealing: a single search trajectory
// that always accepts improving moves and accepts worsening moves with
// probability exp(Δ/T), cooling T geometrically each step.
package csp

import (
	"context"
	"math"
	"math/rand"
)

// SimulatedAnnealing runs one trajectory of up to maxSteps states from a
// fresh start state and returns the best state observed as an independent
// replica of p; the original problem is never mutated. The start state
// counts as the first step, so at most maxSteps-1 moves are made and a
// maxSteps of one or less returns the start state. temperature is the
// initial T and coolingRate the per-step multiplier, typically just below
// one.
//
// Nil generators and a nil score default to RandomStartState,
// AlterRandomVariableValue and ConsistentConstraintsScore. Cancelling ctx
// returns the best state found so far.
func SimulatedAnnealing[T comparable](
	ctx context.Context,
	p *Problem[T],
	maxSteps int,
	temperature, coolingRate float64,
	start StartStateGenerator[T],
	successor SuccessorGenerator[T],
	score ScoreCalculator[T],
	rng *rand.Rand,
) *Problem[T] {
	if start == nil {
		start = RandomStartState[T]
	}
	if successor == nil {
		successor = AlterRandomVariableValue[T]
	}
	if score == nil {
		score = ConsistentConstraintsScore[T]
	}

	best := start(p, rng)
	if best.IsCompletelyConsistentlyAssigned() || maxSteps <= 1 {
		return best
	}
	bestScore := score(best)

	current := best
	for step := 0; step < maxSteps-1; step++ {
		if ctx.Err() != nil {
			return best
		}
		if current.IsCompletelyConsistentlyAssigned() {
			return current
		}
		currentScore := score(current)
		if currentScore > bestScore {
			best, bestScore = current, currentScore
		}

		next := successor(current, rng)
		delta := score(next) - currentScore
		if delta > 0 || rng.Float64() < math.Exp(float64(delta)/temperature) {
			current = next
		}
		temperature *= coolingRate
	}
	if finalScore := score(current); finalScore > bestScore {
		best = current
	}
	return best
}
