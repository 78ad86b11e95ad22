package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPC2DetectsTwoColorTriangle(t *testing.T) {
	// Three mutually-different variables over two values: arc consistency
	// alone cannot refute this, path consistency can.
	domain := []int{1, 2}
	a := NewVariable(domain)
	b := NewVariable(domain)
	c := NewVariable(domain)
	p := MustProblem([]*Constraint[int]{
		MustConstraint([]*Variable[int]{a, b}, AllDifferent[int]),
		MustConstraint([]*Variable[int]{b, c}, AllDifferent[int]),
		MustConstraint([]*Variable[int]{a, c}, AllDifferent[int]),
	}, nil)

	assert.True(t, AC3(p.DeepCopy()), "arc consistency misses the conflict")
	assert.False(t, PC2(p), "path consistency must prove infeasibility")
}

func TestPC2MapColoringStaysSolvable(t *testing.T) {
	p := australia()
	before := make(map[*Variable[string]]int)
	for _, v := range p.Variables() {
		before[v] = len(v.Domain())
	}

	require.True(t, PC2(p))

	// Three colors over binary differences are path consistent already;
	// nothing may grow either way.
	for _, v := range p.Variables() {
		assert.Equal(t, before[v], len(v.Domain()))
	}
}

func TestPC2LeavesAssignedVariablesAlone(t *testing.T) {
	p := australia()
	sa := p.VariablesByName()["sa"]
	require.NoError(t, sa.Assign("Red"))

	PC2(p)

	assert.True(t, sa.IsAssigned())
	assert.Equal(t, "Red", sa.MustValue())
	assert.Len(t, sa.Domain(), 3)
}
