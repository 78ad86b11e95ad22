package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeCSPSolvesChain(t *testing.T) {
	p := chainProblem()
	var history AssignmentHistory[int]

	require.True(t, SolveTreeCSP(p, &history))
	assert.True(t, p.IsCompletelyConsistentlyAssigned())
	assert.NotEmpty(t, history)

	byName := p.VariablesByName()
	for _, link := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}} {
		assert.NotEqual(t, byName[link[0]].MustValue(), byName[link[1]].MustValue())
	}
}

func TestTreeCSPRejectsNonTree(t *testing.T) {
	domain := []int{1, 2, 3}
	a := NewVariable(domain)
	b := NewVariable(domain)
	c := NewVariable(domain)
	cycle := MustProblem([]*Constraint[int]{
		MustConstraint([]*Variable[int]{a, b}, AllDifferent[int]),
		MustConstraint([]*Variable[int]{b, c}, AllDifferent[int]),
		MustConstraint([]*Variable[int]{a, c}, AllDifferent[int]),
	}, nil)

	assert.False(t, SolveTreeCSP(cycle, nil))
	assert.True(t, cycle.IsCompletelyUnassigned())
}

func TestTreeCSPRejectsForest(t *testing.T) {
	domain := []int{1, 2}
	a := NewVariable(domain)
	b := NewVariable(domain)
	c := NewVariable(domain)
	d := NewVariable(domain)
	forest := MustProblem([]*Constraint[int]{
		MustConstraint([]*Variable[int]{a, b}, AllDifferent[int]),
		MustConstraint([]*Variable[int]{c, d}, AllDifferent[int]),
	}, nil)

	assert.False(t, SolveTreeCSP(forest, nil))
}

func TestTreeCSPDetectsInfeasibleChain(t *testing.T) {
	domain := []int{1}
	a := NewVariable(domain)
	b := NewVariable(domain)
	p := MustProblem([]*Constraint[int]{
		MustConstraint([]*Variable[int]{a, b}, AllDifferent[int]),
	}, nil)

	assert.False(t, SolveTreeCSP(p, nil))
	assert.True(t, p.IsCompletelyUnassigned())
}

func TestTreeCSPOverAssignedRemainder(t *testing.T) {
	// Assigning one end of the chain leaves a smaller tree; the solver
	// works over the unassigned remainder and respects the assignment.
	p := chainProblem()
	byName := p.VariablesByName()
	require.NoError(t, byName["a"].Assign(2))

	require.True(t, SolveTreeCSP(p, nil))
	assert.True(t, p.IsCompletelyConsistentlyAssigned())
	assert.Equal(t, 2, byName["a"].MustValue())
	assert.NotEqual(t, 2, byName["b"].MustValue())
}
