// Package csp implements finite-domain constraint satisfaction problems.
// This file implements per-variable domain snapshots. Inference hooks
// prune domains as a side effect of search; the backtracking solvers
// capture a snapshot before invoking a hook and replay it when the branch
// fails, so pruned values are never silently lost across a backtrack.
package csp

// domainSnapshot remembers the domains of a set of variables at one point
// of the search, in capture order.
type domainSnapshot[T comparable] struct {
	variables []*Variable[T]
	domains   [][]T
}

// captureDomains copies the current domain of each variable.
func captureDomains[T comparable](variables []*Variable[T]) domainSnapshot[T] {
	s := domainSnapshot[T]{
		variables: variables,
		domains:   make([][]T, len(variables)),
	}
	for i, v := range variables {
		s.domains[i] = append([]T(nil), v.domain...)
	}
	return s
}

// restore replays the captured domains onto the variables. A snapshot is
// replayed at most once; the stored copies are handed back directly.
func (s domainSnapshot[T]) restore() {
	for i, v := range s.variables {
		v.domain = s.domains[i]
	}
}
