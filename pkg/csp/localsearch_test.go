package csp

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomStartState(t *testing.T) {
	p := australia()
	rng := rand.New(rand.NewSource(2))

	replica := RandomStartState(p, rng)
	assert.True(t, replica.IsCompletelyAssigned())
	assert.True(t, p.IsCompletelyUnassigned(), "the original must stay untouched")
}

func TestAlterRandomVariableValue(t *testing.T) {
	p := australia()
	rng := rand.New(rand.NewSource(2))
	current := RandomStartState(p, rng)

	next := AlterRandomVariableValue(current, rng)
	assert.True(t, next.IsCompletelyAssigned())

	// Exactly one variable differs, and the move produced a fresh state.
	differing := 0
	currentVars := current.Variables()
	nextVars := next.Variables()
	require.Equal(t, len(currentVars), len(nextVars))
	for i := range currentVars {
		assert.NotSame(t, currentVars[i], nextVars[i])
		if currentVars[i].MustValue() != nextVars[i].MustValue() {
			differing++
		}
	}
	assert.Equal(t, 1, differing)
}

func TestConsistentConstraintsScore(t *testing.T) {
	p := australia()
	assert.Equal(t, len(p.Constraints()), ConsistentConstraintsScore(p),
		"an empty assignment leaves every constraint vacuously consistent")
}

func TestHillClimbingMapColoring(t *testing.T) {
	solvedOnce := false
	for seed := int64(0); seed < 5 && !solvedOnce; seed++ {
		p := australia()
		rng := rand.New(rand.NewSource(seed))

		best := HillClimbing(context.Background(), p, 10, 100, 30, nil, nil, nil, rng)
		require.NotNil(t, best)
		assert.True(t, best.IsCompletelyAssigned())
		assert.True(t, p.IsCompletelyUnassigned(), "hill climbing works on replicas only")
		if best.IsCompletelyConsistentlyAssigned() {
			solvedOnce = true
		}
	}
	assert.True(t, solvedOnce, "hill climbing failed three-coloring across every seed")
}

func TestHillClimbingReturnsBestOnInfeasible(t *testing.T) {
	domain := []int{1, 2}
	a := NewVariable(domain)
	b := NewVariable(domain)
	c := NewVariable(domain)
	p := MustProblem([]*Constraint[int]{
		MustConstraint([]*Variable[int]{a, b}, AllDifferent[int]),
		MustConstraint([]*Variable[int]{b, c}, AllDifferent[int]),
		MustConstraint([]*Variable[int]{a, c}, AllDifferent[int]),
	}, nil)
	rng := rand.New(rand.NewSource(6))

	best := HillClimbing(context.Background(), p, 5, 20, 10, nil, nil, nil, rng)
	require.NotNil(t, best)
	assert.True(t, best.IsCompletelyAssigned())
	assert.Equal(t, 2, best.ConsistentConstraintsCount(), "the best reachable state satisfies two of three")
}

func TestSimulatedAnnealingMapColoring(t *testing.T) {
	solvedOnce := false
	for seed := int64(0); seed < 3 && !solvedOnce; seed++ {
		p := australia()
		rng := rand.New(rand.NewSource(seed))
		best := SimulatedAnnealing(context.Background(), p, 5000, 2.0, 0.999, nil, nil, nil, rng)
		require.NotNil(t, best)
		assert.True(t, best.IsCompletelyAssigned())
		if best.IsCompletelyConsistentlyAssigned() {
			solvedOnce = true
		}
	}
	assert.True(t, solvedOnce, "annealing failed three-coloring across every seed")
}

func TestConstraintWeightingMapColoring(t *testing.T) {
	solvedOnce := false
	for seed := int64(0); seed < 3 && !solvedOnce; seed++ {
		p := australia()
		rng := rand.New(rand.NewSource(seed))
		if ConstraintWeighting(p, 10, rng, nil) {
			assert.True(t, p.IsCompletelyConsistentlyAssigned())
			solvedOnce = true
		}
	}
	assert.True(t, solvedOnce, "constraint weighting failed three-coloring across every seed")
}

func TestConstraintWeightingKeepsReadOnlyAssignments(t *testing.T) {
	p := australia()
	tasmania := p.VariablesByName()["t"]
	require.NoError(t, tasmania.Assign("Green"))
	rng := rand.New(rand.NewSource(12))

	ConstraintWeighting(p, 5, rng, nil)

	assert.Equal(t, "Green", tasmania.MustValue())
}
