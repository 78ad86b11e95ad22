// Package csp implements finite-domain constraint satisfaction problems.
// This file provides the standard variable-ordering and value-ordering
// heuristics for the heuristic backtracking solver: minimum remaining
// values, the degree heuristic, and least constraining value, plus the
// trivial tie-breaker.
package csp

import "sort"

// PrimarySelector returns a non-empty list of candidate variables from the
// unassigned set, typically the variables tied on some heuristic score.
type PrimarySelector[T comparable] func(p *Problem[T]) []*Variable[T]

// SecondarySelector breaks ties when a primary selector returns more than
// one candidate.
type SecondarySelector[T comparable] func(p *Problem[T], candidates []*Variable[T]) *Variable[T]

// ValueOrderer returns the values of v to try, in preferred order.
type ValueOrderer[T comparable] func(p *Problem[T], v *Variable[T]) []T

// MinimumRemainingValues selects the unassigned variables tied for the
// smallest current consistent-domain size: fail-first ordering.
func MinimumRemainingValues[T comparable](p *Problem[T]) []*Variable[T] {
	unassignedVars := p.UnassignedVariables()
	smallest := -1
	var candidates []*Variable[T]
	for _, v := range unassignedVars {
		size := len(p.ConsistentDomain(v))
		switch {
		case smallest < 0 || size < smallest:
			smallest = size
			candidates = append(candidates[:0], v)
		case size == smallest:
			candidates = append(candidates, v)
		}
	}
	return candidates
}

// MinimumRemainingValuesTieBreak picks the candidate with the smallest
// consistent domain, for use as a secondary selector behind another
// primary.
func MinimumRemainingValuesTieBreak[T comparable](p *Problem[T], candidates []*Variable[T]) *Variable[T] {
	best := candidates[0]
	bestSize := len(p.ConsistentDomain(best))
	for _, v := range candidates[1:] {
		if size := len(p.ConsistentDomain(v)); size < bestSize {
			best, bestSize = v, size
		}
	}
	return best
}

// DegreeHeuristic selects the unassigned variables tied for the largest
// number of unassigned neighbors: the variables involved in the most open
// constraints.
func DegreeHeuristic[T comparable](p *Problem[T]) []*Variable[T] {
	unassignedVars := p.UnassignedVariables()
	largest := -1
	var candidates []*Variable[T]
	for _, v := range unassignedVars {
		degree := len(p.UnassignedNeighbors(v))
		switch {
		case degree > largest:
			largest = degree
			candidates = append(candidates[:0], v)
		case degree == largest:
			candidates = append(candidates, v)
		}
	}
	return candidates
}

// DegreeHeuristicTieBreak picks the candidate with the most unassigned
// neighbors.
func DegreeHeuristicTieBreak[T comparable](p *Problem[T], candidates []*Variable[T]) *Variable[T] {
	best := candidates[0]
	bestDegree := len(p.UnassignedNeighbors(best))
	for _, v := range candidates[1:] {
		if degree := len(p.UnassignedNeighbors(v)); degree > bestDegree {
			best, bestDegree = v, degree
		}
	}
	return best
}

// FirstCandidate is the trivial secondary selector: the first candidate
// wins.
func FirstCandidate[T comparable](p *Problem[T], candidates []*Variable[T]) *Variable[T] {
	return candidates[0]
}

// ConsistentDomainOrder tries the values of v's consistent domain in
// domain order, with no further sorting.
func ConsistentDomainOrder[T comparable](p *Problem[T], v *Variable[T]) []T {
	return p.ConsistentDomain(v)
}

// LeastConstrainingValue orders v's consistent domain by how much each
// value restricts v's unassigned neighbors: for each candidate the
// consistent-domain sizes of the neighbors are summed under a provisional
// assignment, and values are emitted in ascending total, least
// constraining first. The sort is stable, so ties keep domain order.
func LeastConstrainingValue[T comparable](p *Problem[T], v *Variable[T]) []T {
	neighbors := p.UnassignedNeighbors(v)
	values := p.ConsistentDomain(v)
	totals := make(map[int]int, len(values))
	for i, value := range values {
		if err := v.Assign(value); err != nil {
			panic(err)
		}
		total := 0
		for _, neighbor := range neighbors {
			total += len(p.ConsistentDomain(neighbor))
		}
		v.Unassign()
		totals[i] = total
	}
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return totals[order[a]] < totals[order[b]] })
	sorted := make([]T, len(values))
	for i, idx := range order {
		sorted[i] = values[idx]
	}
	return sorted
}
