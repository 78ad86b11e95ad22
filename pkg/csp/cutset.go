// Package csp implements finite-domain constraint satisfaction problems.
// This file implements naive cutset conditioning. Finding a minimal cycle
// cutset is NP-hard, and a minimal one is not required, so the cutset is
// grown greedily: sort the constraints by arity descending and accumulate
// the variables of the k longest constraints until removing them from the
// constraint graph leaves a tree. Each consistent assignment of the cutset
// is then tried against the tree-CSP solver on the restricted remainder.
//
// The algorithm is incomplete: failure means no tested cutset assignment
// led to a solution, not that none exists.
package csp

import (
	"context"
	"sort"
)

// SolveNaiveCycleCutset attempts cutset conditioning over the currently
// unassigned variables. It reports whether the problem ended completely
// consistently assigned; on failure every variable is left as it was
// found, domain included: the domain restrictions and the inner tree
// solver's arc-consistency prunes are rolled back after each failed cutset
// assignment. Events are recorded into history when non-nil.
func SolveNaiveCycleCutset[T comparable](ctx context.Context, p *Problem[T], history *AssignmentHistory[T]) bool {
	unassignedVars := p.UnassignedVariables()
	if len(unassignedVars) == 0 {
		return p.IsCompletelyConsistentlyAssigned()
	}
	inScope := NewVariableSet(unassignedVars...)

	sorted := append([]*Constraint[T](nil), p.Constraints()...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Variables()) > len(sorted[j].Variables())
	})

	for k := 1; k <= len(sorted); k++ {
		if ctx.Err() != nil {
			return false
		}

		// The cutset is exactly the unassigned variables of the k
		// longest constraints.
		cutset := make([]*Variable[T], 0, len(unassignedVars))
		cutsetSet := make(VariableSet[T])
		for _, c := range sorted[:k] {
			for _, v := range c.Variables() {
				if !inScope.Contains(v) || cutsetSet.Contains(v) {
					continue
				}
				cutsetSet[v] = struct{}{}
				cutset = append(cutset, v)
			}
		}

		remaining := make([]*Variable[T], 0, len(unassignedVars))
		for _, v := range unassignedVars {
			if !cutsetSet.Contains(v) {
				remaining = append(remaining, v)
			}
		}
		if len(remaining) == 0 || !isTreeWithout(p, remaining, cutsetSet) {
			continue
		}

		// Constraints decided entirely by the cutset (and variables
		// assigned before the call) filter the enumeration early.
		var cutsetOnly []*Constraint[T]
		for _, c := range p.Constraints() {
			decided := true
			for _, v := range c.Variables() {
				if inScope.Contains(v) && !cutsetSet.Contains(v) {
					decided = false
					break
				}
			}
			if decided {
				cutsetOnly = append(cutsetOnly, c)
			}
		}

		if enumerateCutset(ctx, p, cutset, 0, cutsetOnly, remaining, history) {
			return true
		}
	}
	return false
}

// enumerateCutset walks the Cartesian product of the cutset domains in
// depth-first order, pruning prefixes that already violate a cutset-only
// constraint. At each complete cutset assignment the remaining variables'
// domains are restricted to their consistent values and the tree solver is
// invoked; on failure everything at this level is undone and the walk
// continues.
func enumerateCutset[T comparable](
	ctx context.Context,
	p *Problem[T],
	cutset []*Variable[T],
	depth int,
	cutsetOnly []*Constraint[T],
	remaining []*Variable[T],
	history *AssignmentHistory[T],
) bool {
	if ctx.Err() != nil {
		return false
	}
	if depth == len(cutset) {
		return solveConditioned(p, remaining, history)
	}

	v := cutset[depth]
	for i := range v.domain {
		v.assignIndex(i)
		history.recordAssign(v, v.domain[i])

		consistent := true
		for _, c := range cutsetOnly {
			if !c.IsConsistent() {
				consistent = false
				break
			}
		}
		if consistent && enumerateCutset(ctx, p, cutset, depth+1, cutsetOnly, remaining, history) {
			return true
		}

		v.Unassign()
		history.recordUnassign(v)
	}
	return false
}

// solveConditioned restricts each remaining variable's domain to the
// values consistent with the current cutset assignment, then runs the
// tree-CSP solver. Domain restrictions are rolled back when the tree
// solver fails.
func solveConditioned[T comparable](p *Problem[T], remaining []*Variable[T], history *AssignmentHistory[T]) bool {
	snapshot := captureDomains(remaining)
	for _, v := range remaining {
		consistent := p.ConsistentDomain(v)
		if len(consistent) == 0 {
			snapshot.restore()
			return false
		}
		if _, err := v.SetSubsetDomain(consistent); err != nil {
			panic(err)
		}
	}
	if SolveTreeCSP(p, history) {
		return true
	}
	snapshot.restore()
	return false
}

// isTreeWithout reports whether the constraint graph over remaining is a
// tree once the cutset variables and their incident edges are removed.
func isTreeWithout[T comparable](p *Problem[T], remaining []*Variable[T], cutset VariableSet[T]) bool {
	inScope := NewVariableSet(remaining...)

	edges := 0
	for _, v := range remaining {
		for _, neighbor := range p.Neighbors(v) {
			if inScope.Contains(neighbor) && !cutset.Contains(neighbor) {
				edges++
			}
		}
	}
	edges /= 2
	if edges != len(remaining)-1 {
		return false
	}

	visited := VariableSet[T]{remaining[0]: {}}
	frontier := []*Variable[T]{remaining[0]}
	for len(frontier) > 0 {
		v := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, neighbor := range p.Neighbors(v) {
			if !inScope.Contains(neighbor) || visited.Contains(neighbor) {
				continue
			}
			visited[neighbor] = struct{}{}
			frontier = append(frontier, neighbor)
		}
	}
	return len(visited) == len(remaining)
}
