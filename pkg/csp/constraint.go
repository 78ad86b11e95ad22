// Package csp implements finite-domain constraint satisfaction problems.
// This file defines Constraint, an n-ary relation over an ordered variable
// list plus a predicate. Consistency is evaluated over the currently
// assigned variables only, which is what lets solvers prune partial
// assignments.
package csp

import (
	"fmt"
	"strings"
)

// Constraint relates an ordered list of variables through a predicate.
//
// The variable list is fixed at construction and the constraint is
// immutable afterwards; it outlives any single solver call. Variables are
// referenced, not copied: a constraint observes every assignment made to
// its variables.
//
// Unary constraints are enforced eagerly: constructing a single-variable
// constraint prunes that variable's domain down to its consistent subset,
// so preprocessors and solvers only ever deal with binary and higher arity.
type Constraint[T comparable] struct {
	variables []*Variable[T]
	members   map[*Variable[T]]struct{}
	evaluate  Evaluator[T]
}

// NewConstraint creates a constraint over variables with the given
// predicate. It fails with ErrDuplicateVariable when the same variable
// appears twice.
func NewConstraint[T comparable](variables []*Variable[T], evaluate Evaluator[T]) (*Constraint[T], error) {
	members := make(map[*Variable[T]]struct{}, len(variables))
	for _, v := range variables {
		if _, ok := members[v]; ok {
			return nil, fmt.Errorf("NewConstraint: %w: %s", ErrDuplicateVariable, v)
		}
		members[v] = struct{}{}
	}
	c := &Constraint[T]{
		variables: append([]*Variable[T](nil), variables...),
		members:   members,
		evaluate:  evaluate,
	}
	if len(c.variables) == 1 {
		c.enforceUnary()
	}
	return c, nil
}

// MustConstraint is NewConstraint for statically-known variable lists,
// panicking on the construction-time errors a caller cannot recover from.
func MustConstraint[T comparable](variables []*Variable[T], evaluate Evaluator[T]) *Constraint[T] {
	c, err := NewConstraint(variables, evaluate)
	if err != nil {
		panic(err)
	}
	return c
}

// enforceUnary prunes the single variable's domain to its consistent
// subset. An assigned variable is left alone; its assignment already fixes
// the value.
func (c *Constraint[T]) enforceUnary() {
	v := c.variables[0]
	if v.IsAssigned() {
		return
	}
	consistent, err := c.ConsistentDomain(v)
	if err != nil {
		panic(err)
	}
	if _, err := v.SetSubsetDomain(consistent); err != nil {
		panic(err)
	}
}

// Variables returns the fixed variable list. The returned slice is a read
// view; callers must not modify it.
func (c *Constraint[T]) Variables() []*Variable[T] {
	return c.variables
}

// Contains reports whether v is one of the constraint's variables.
func (c *Constraint[T]) Contains(v *Variable[T]) bool {
	_, ok := c.members[v]
	return ok
}

// IsCompletelyAssigned reports whether every referenced variable is
// assigned.
func (c *Constraint[T]) IsCompletelyAssigned() bool {
	for _, v := range c.variables {
		if !v.IsAssigned() {
			return false
		}
	}
	return true
}

// IsConsistent applies the predicate to the values of the currently
// assigned variables, ignoring unassigned ones. A fully-unassigned
// constraint is consistent whenever its predicate accepts the empty
// prefix.
func (c *Constraint[T]) IsConsistent() bool {
	values := make([]T, 0, len(c.variables))
	for _, v := range c.variables {
		if v.IsAssigned() {
			values = append(values, v.domain[v.index])
		}
	}
	return c.evaluate(values)
}

// IsSatisfied reports whether the constraint is completely assigned and
// consistent.
func (c *Constraint[T]) IsSatisfied() bool {
	values := make([]T, 0, len(c.variables))
	for _, v := range c.variables {
		if !v.IsAssigned() {
			return false
		}
		values = append(values, v.domain[v.index])
	}
	return c.evaluate(values)
}

// ConsistentDomain returns the subset of v's domain for which, with v
// temporarily set to each candidate, this constraint is consistent. The
// variable's prior assignment, if any, is restored on exit. Fails with
// ErrUncontainedVariable when v is not part of this constraint.
func (c *Constraint[T]) ConsistentDomain(v *Variable[T]) ([]T, error) {
	if !c.Contains(v) {
		return nil, fmt.Errorf("Constraint.ConsistentDomain: %w: %s", ErrUncontainedVariable, v)
	}
	prior := v.index
	v.Unassign()
	consistent := make([]T, 0, len(v.domain))
	for i := range v.domain {
		v.assignIndex(i)
		if c.IsConsistent() {
			consistent = append(consistent, v.domain[i])
		}
	}
	v.index = prior
	return consistent, nil
}

// String returns a human-readable rendering for logging.
func (c *Constraint[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, v := range c.variables {
		b.WriteString(v.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "completely assigned: %t. consistent: %t. satisfied: %t]",
		c.IsCompletelyAssigned(), c.IsConsistent(), c.IsSatisfied())
	return b.String()
}
