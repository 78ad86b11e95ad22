package csp

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func domainUnion[T comparable](p *Problem[T]) []T {
	seen := make(map[T]struct{})
	var union []T
	for _, v := range p.Variables() {
		for _, value := range v.Domain() {
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			union = append(union, value)
		}
	}
	return union
}

func TestAC3Divisibility(t *testing.T) {
	p, x, y, z := divisibilityProblem()

	require.True(t, AC3(p))

	union := domainUnion(p)
	sort.Ints(union)
	assert.Equal(t, []int{2, 4}, union)

	assert.Equal(t, []int{2}, x.Domain())
	assert.Equal(t, []int{2, 4}, y.Domain())
	assert.Equal(t, []int{2}, z.Domain())
}

func TestAC3LessThanChain(t *testing.T) {
	lessThan := func(assigned []int) bool {
		if len(assigned) < 2 {
			return true
		}
		return assigned[0] < assigned[1]
	}
	s := NewVariable([]int{1, 2, 3})
	u := NewVariable([]int{1, 2, 3})
	p := MustProblem([]*Constraint[int]{
		MustConstraint([]*Variable[int]{s, u}, lessThan),
	}, nil)

	require.True(t, AC3(p))
	assert.Equal(t, []int{1, 2}, s.Domain())
	assert.Equal(t, []int{2, 3}, u.Domain())
}

func TestAC3MapColoringStaysSolvable(t *testing.T) {
	p := australia()
	before := make(map[*Variable[string]]int)
	for _, v := range p.Variables() {
		before[v] = len(v.Domain())
	}

	require.True(t, AC3(p))

	// Domain-reducing: nothing grows, and three colors over binary
	// all-different leave everything intact.
	for _, v := range p.Variables() {
		assert.LessOrEqual(t, len(v.Domain()), before[v])
	}
}

func TestAC3DetectsInfeasibility(t *testing.T) {
	a := NewVariable([]int{1})
	b := NewVariable([]int{1})
	p := MustProblem([]*Constraint[int]{
		MustConstraint([]*Variable[int]{a, b}, AllDifferent[int]),
	}, nil)

	assert.False(t, AC3(p))
}
