// Package csp implements finite-domain constraint satisfaction problems.
// This file defines the failure kinds surfaced by the library. Each kind is
// a sentinel error; failure sites wrap them with fmt.Errorf("...: %w", ...)
// so callers can classify with errors.Is while still seeing the offending
// variable or value in the message.
package csp

import "errors"

// All sentinel errors indicate an invariant violation on the caller's side.
// Solvers never recover from them. Infeasibility (an empty consistent
// domain) is an expected result, not an error, and is reported through
// boolean return values instead.
var (
	// ErrUnassignedRead is returned when reading the value of an
	// unassigned variable.
	ErrUnassignedRead = errors.New("value extraction from unassigned variable")

	// ErrOverAssign is returned when assigning an already-assigned
	// variable without unassigning it first.
	ErrOverAssign = errors.New("over-assignment of assigned variable")

	// ErrUncontainedValue is returned when assigning a value that is not
	// present in the variable's domain.
	ErrUncontainedValue = errors.New("value not contained in domain")

	// ErrIndexOutOfRange is returned by index-based operations when the
	// index is not a valid domain position.
	ErrIndexOutOfRange = errors.New("domain index out of range")

	// ErrDomainAlteration is returned when mutating the domain of an
	// assigned variable. All domain-shrinking operations require the
	// variable to be unassigned so the assignment index cannot dangle.
	ErrDomainAlteration = errors.New("domain alteration of assigned variable")

	// ErrDuplicateVariable is returned when a constraint is built with the
	// same variable appearing more than once.
	ErrDuplicateVariable = errors.New("duplicate variable in constraint")

	// ErrUncontainedVariable is returned when asking a constraint about a
	// variable it does not contain.
	ErrUncontainedVariable = errors.New("variable not contained in constraint")

	// ErrDuplicateConstraint is returned when a problem is built with the
	// same constraint appearing more than once.
	ErrDuplicateConstraint = errors.New("duplicate constraint in problem")

	// ErrInvalidTabuSize is returned by MinConflicts when the tabu size
	// plus the number of read-only variables leaves no variable free for
	// reassignment.
	ErrInvalidTabuSize = errors.New("tabu size plus read-only variables must be smaller than the variable count")
)
