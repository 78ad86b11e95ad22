// Package csp implements finite-domain constraint satisfaction problems.
// This file implements random-restart, first-improvement hill climbing
// over the pluggable start-state/successor/score pieces.
package csp

import (
	"context"
	"math/rand"
)

// HillClimbing runs up to maxRestarts independent trajectories. Within a
// restart it performs up to maxSteps improvement rounds; a round samples
// up to maxSuccessors neighbors and moves to the first one scoring
// strictly better, and a round with no improving successor ends its
// restart. The global best state across all restarts is returned as an
// independent replica of p; the original problem is never mutated.
//
// Nil generators and a nil score default to RandomStartState,
// AlterRandomVariableValue and ConsistentConstraintsScore. Cancelling ctx
// returns the best state found so far.
func HillClimbing[T comparable](
	ctx context.Context,
	p *Problem[T],
	maxRestarts, maxSteps, maxSuccessors int,
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
	if best.IsCompletelyConsistentlyAssigned() || maxRestarts <= 0 {
		return best
	}
	bestScore := score(best)

	for restart := 0; restart < maxRestarts; restart++ {
		current := best
		if restart > 0 {
			current = start(p, rng)
		}
		for step := 0; step < maxSteps; step++ {
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

			improved := false
			for sample := 0; sample < maxSuccessors; sample++ {
				next := successor(current, rng)
				if score(next) > currentScore {
					current = next
					improved = true
					break
				}
			}
			if !improved {
				break // local optimum for this restart
			}
		}
		if finalScore := score(current); finalScore > bestScore {
			best, bestScore = current, finalScore
		}
	}
	return best
}
