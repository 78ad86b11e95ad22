// Package csp implements finite-domain constraint satisfaction problems.
// This file defines the pluggable pieces shared by the stochastic
// local-search solvers (hill climbing and simulated annealing): start-state
// generation, successor generation and scoring. Generators hand back
// independent deep copies so a solver can keep several candidate states
// alive at once without aliasing variable state.
package csp

import "math/rand"

// StartStateGenerator produces an independent, fully-assigned replica of p
// to begin a search trajectory from.
type StartStateGenerator[T comparable] func(p *Problem[T], rng *rand.Rand) *Problem[T]

// SuccessorGenerator produces an independent neighbor state of p: a copy
// differing by a local move.
type SuccessorGenerator[T comparable] func(p *Problem[T], rng *rand.Rand) *Problem[T]

// ScoreCalculator scores a state; a good score is a high score.
type ScoreCalculator[T comparable] func(p *Problem[T]) int

// RandomStartState deep-copies p, clears every assignment and assigns each
// variable a uniformly random domain value. The default start-state
// generator.
func RandomStartState[T comparable](p *Problem[T], rng *rand.Rand) *Problem[T] {
	replica := p.DeepCopy()
	replica.UnassignAll()
	replica.AssignRandomValues(rng, nil, nil)
	return replica
}

// AlterRandomVariableValue deep-copies p and reassigns one uniformly
// chosen variable to a uniformly chosen value, resampling while the new
// value equals the old one (when the domain offers an alternative). The
// default successor generator.
func AlterRandomVariableValue[T comparable](p *Problem[T], rng *rand.Rand) *Problem[T] {
	replica := p.DeepCopy()
	v := pickRandom(rng, replica.Variables())
	if !v.IsAssigned() {
		if _, err := v.AssignRandom(rng); err != nil {
			panic(err)
		}
		return replica
	}
	old := v.domain[v.index]
	next := pickRandom(rng, v.domain)
	for len(v.domain) > 1 && next == old {
		next = pickRandom(rng, v.domain)
	}
	v.Unassign()
	if err := v.Assign(next); err != nil {
		panic(err)
	}
	return replica
}

// ConsistentConstraintsScore scores a state by its number of consistent
// constraints. The default score calculator.
func ConsistentConstraintsScore[T comparable](p *Problem[T]) int {
	return p.ConsistentConstraintsCount()
}
