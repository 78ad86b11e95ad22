// Package csp implements finite-domain constraint satisfaction problems.
// This file implements the tree-CSP solver. When the constraint graph over
// the currently unassigned variables is a tree, a solution (or a proof of
// infeasibility) is found in O(n·d²) without backtracking: topologically
// order the variables under a rooted orientation, make the ordering
// directionally arc-consistent from the leaves up, then sweep assignments
// from the root down.
package csp

// SolveTreeCSP solves the subproblem over the currently unassigned
// variables when their constraint graph is a tree. It reports success;
// false means the graph is not a tree or some stage proved the subproblem
// infeasible. On failure no assignment survives, though domain prunes from
// the arc-consistency stage remain, as after any preprocessor. Events are
// recorded into history when non-nil.
func SolveTreeCSP[T comparable](p *Problem[T], history *AssignmentHistory[T]) bool {
	unassignedVars := p.UnassignedVariables()
	if len(unassignedVars) == 0 {
		return p.IsCompletelyConsistentlyAssigned()
	}
	if !isTree(p, unassignedVars) {
		return false
	}
	order := kahnTopologicalSort(p, unassignedVars)
	if order == nil {
		return false
	}

	// Directional arc consistency, leaves to root: prune the values of
	// each variable with no consistent counterpart one step earlier in
	// the ordering.
	for i := len(order) - 1; i >= 1; i-- {
		v := order[i]
		for j := len(v.domain) - 1; j >= 0; j-- {
			v.assignIndex(j)
			empty := len(p.ConsistentDomain(order[i-1])) == 0
			v.Unassign()
			if empty {
				if err := v.RemoveFromDomain(j); err != nil {
					panic(err)
				}
			}
		}
		if len(v.domain) == 0 {
			return false
		}
	}

	// Assignment sweep, root to leaf: each variable takes a value
	// consistent with its already-assigned predecessors.
	assigned := make([]*Variable[T], 0, len(order))
	for _, v := range order {
		consistent := p.ConsistentDomain(v)
		if len(consistent) == 0 {
			for _, u := range assigned {
				u.Unassign()
				history.recordUnassign(u)
			}
			return false
		}
		value := consistent[len(consistent)-1]
		if err := v.Assign(value); err != nil {
			panic(err)
		}
		history.recordAssign(v, value)
		assigned = append(assigned, v)
	}
	return true
}

// isTree reports whether the constraint graph induced by vars is a tree:
// connected with exactly len(vars)-1 edges. Neighbor relations leading
// outside vars (to assigned variables) are ignored.
func isTree[T comparable](p *Problem[T], vars []*Variable[T]) bool {
	inScope := make(map[*Variable[T]]struct{}, len(vars))
	for _, v := range vars {
		inScope[v] = struct{}{}
	}

	edges := 0
	for _, v := range vars {
		for _, neighbor := range p.Neighbors(v) {
			if _, ok := inScope[neighbor]; ok {
				edges++
			}
		}
	}
	edges /= 2 // every undirected edge was counted from both ends
	if edges != len(vars)-1 {
		return false
	}

	// Connectivity by traversal from the first variable.
	visited := map[*Variable[T]]struct{}{vars[0]: {}}
	frontier := []*Variable[T]{vars[0]}
	for len(frontier) > 0 {
		v := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, neighbor := range p.Neighbors(v) {
			if _, ok := inScope[neighbor]; !ok {
				continue
			}
			if _, ok := visited[neighbor]; ok {
				continue
			}
			visited[neighbor] = struct{}{}
			frontier = append(frontier, neighbor)
		}
	}
	return len(visited) == len(vars)
}

// kahnTopologicalSort orients each edge of the unassigned constraint graph
// from the variable visited first to the one visited later, then orders
// the variables by Kahn's algorithm so every variable appears after its
// parent. Returns nil when the orientation has a cycle (cannot happen for
// a tree, but callers may hand in any graph).
func kahnTopologicalSort[T comparable](p *Problem[T], vars []*Variable[T]) []*Variable[T] {
	inScope := make(map[*Variable[T]]struct{}, len(vars))
	for _, v := range vars {
		inScope[v] = struct{}{}
	}

	children := make(map[*Variable[T]][]*Variable[T], len(vars))
	oriented := make(map[arc[T]]struct{})
	inDegree := make(map[*Variable[T]]int, len(vars))
	for _, v := range vars {
		for _, neighbor := range p.Neighbors(v) {
			if _, ok := inScope[neighbor]; !ok {
				continue
			}
			if _, ok := oriented[arc[T]{from: neighbor, to: v}]; ok {
				continue
			}
			if _, ok := oriented[arc[T]{from: v, to: neighbor}]; ok {
				continue
			}
			oriented[arc[T]{from: v, to: neighbor}] = struct{}{}
			children[v] = append(children[v], neighbor)
			inDegree[neighbor]++
		}
	}

	var ready []*Variable[T]
	for _, v := range vars {
		if inDegree[v] == 0 {
			ready = append(ready, v)
		}
	}

	order := make([]*Variable[T], 0, len(vars))
	for len(ready) > 0 {
		v := ready[0]
		ready = ready[1:]
		order = append(order, v)
		for _, child := range children[v] {
			inDegree[child]--
			if inDegree[child] == 0 {
				ready = append(ready, child)
			}
		}
	}
	if len(order) != len(vars) {
		return nil
	}
	return order
}
