// Package csp implements finite-domain constraint satisfaction problems.
// This file implements the AC-4 support-counting preprocessor. AC-4 pays a
// quadratic initialization pass (counting, for every binary constraint and
// every value, how many values of the other variable support it) to get an
// asymptotically better main loop than AC-3: each support is inspected at
// most once when its counterpart value disappears.
//
// Only binary constraints participate; unary constraints were already
// enforced at construction and higher-arity constraints are out of AC-4's
// reach by definition.
package csp

// valuePoint identifies one (variable, value) pair.
type valuePoint[T comparable] struct {
	variable *Variable[T]
	value    T
}

// supportKey counts the supports value v of a variable still has in a
// given neighbor's domain.
type supportKey[T comparable] struct {
	variable *Variable[T]
	value    T
	neighbor *Variable[T]
}

// AC4 runs support-counting arc consistency over every binary constraint,
// shrinking domains, and reports whether the problem is still potentially
// solvable. An assigned variable contributes only its assigned value and
// is never revised.
func AC4[T comparable](p *Problem[T]) bool {
	counts := make(map[supportKey[T]]int)
	supportedBy := make(map[valuePoint[T]][]valuePoint[T])
	var unsupported []valuePoint[T]

	for _, c := range p.Constraints() {
		vars := c.Variables()
		if len(vars) != 2 {
			continue
		}
		unsupported = initSupports(c, vars[0], vars[1], counts, supportedBy, unsupported)
		unsupported = initSupports(c, vars[1], vars[0], counts, supportedBy, unsupported)
	}

	for len(unsupported) > 0 {
		lost := unsupported[0]
		unsupported = unsupported[1:]
		for _, dependent := range supportedBy[lost] {
			idx, ok := dependent.variable.indexOf(dependent.value)
			if !ok {
				continue // already removed
			}
			key := supportKey[T]{variable: dependent.variable, value: dependent.value, neighbor: lost.variable}
			counts[key]--
			if counts[key] > 0 {
				continue
			}
			if dependent.variable.IsAssigned() {
				continue
			}
			if err := dependent.variable.RemoveFromDomain(idx); err != nil {
				panic(err)
			}
			unsupported = append(unsupported, dependent)
		}
	}

	return p.IsPotentiallySolvable()
}

// initSupports counts, for every value of x, its supports in y under the
// constraint, records the reverse support lists, and removes and enqueues
// values of x that start with no support at all.
func initSupports[T comparable](
	c *Constraint[T],
	x, y *Variable[T],
	counts map[supportKey[T]]int,
	supportedBy map[valuePoint[T]][]valuePoint[T],
	unsupported []valuePoint[T],
) []valuePoint[T] {
	xValues := effectiveDomain(x)
	yValues := effectiveDomain(y)

	xPrior, yPrior := x.index, y.index
	for i := len(xValues) - 1; i >= 0; i-- {
		xValue := xValues[i]
		xPoint := valuePoint[T]{variable: x, value: xValue}
		key := supportKey[T]{variable: x, value: xValue, neighbor: y}

		x.index = mustIndexOf(x, xValue)
		for _, yValue := range yValues {
			y.index = mustIndexOf(y, yValue)
			if c.IsConsistent() {
				counts[key]++
				yPoint := valuePoint[T]{variable: y, value: yValue}
				supportedBy[yPoint] = append(supportedBy[yPoint], xPoint)
			}
		}
		y.index = yPrior
		x.index = xPrior

		if counts[key] == 0 && !x.IsAssigned() {
			if err := x.RemoveFromDomain(mustIndexOf(x, xValue)); err != nil {
				panic(err)
			}
			unsupported = append(unsupported, xPoint)
		}
	}
	return unsupported
}

// effectiveDomain is the value set AC-4 reasons over: the assigned value
// alone for an assigned variable, the whole domain otherwise. The returned
// slice is a copy, safe across removals.
func effectiveDomain[T comparable](v *Variable[T]) []T {
	if v.IsAssigned() {
		return []T{v.domain[v.index]}
	}
	return append([]T(nil), v.domain...)
}

func mustIndexOf[T comparable](v *Variable[T], value T) int {
	idx, ok := v.indexOf(value)
	if !ok {
		panic("csp: value vanished from domain during AC-4 initialization")
	}
	return idx
}
