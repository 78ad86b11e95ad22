// Package csp implements finite-domain constraint satisfaction problems.
// This file implements genetic local search over populations of complete
// assignments. The algorithm is split between a GeneticProblem interface
// (population generation, fitness, selection, reproduction, mutation) and
// the GeneticLocalSearch driver; GeneralGeneticProblem is the stock
// implementation suitable for any problem.
package csp

import (
	"math/rand"
	"sort"
)

// GeneticProblem supplies the population operators for GeneticLocalSearch.
// Implementations may evaluate individuals by mutating the underlying
// problem's variable state; the driver never relies on that state between
// calls.
type GeneticProblem[T comparable] interface {
	// Problem returns the underlying constraint problem.
	Problem() *Problem[T]

	// GeneratePopulation produces size individuals, each a complete
	// assignment of the problem's variables.
	GeneratePopulation(size int, rng *rand.Rand) []Assignment[T]

	// Fitness scores an individual; a good fitness is a high fitness.
	Fitness(individual Assignment[T]) int

	// NaturalSelection keeps the individuals allowed to reproduce.
	NaturalSelection(population []Assignment[T]) []Assignment[T]

	// NextGeneration breeds a full-size population from the survivors.
	NextGeneration(survivors []Assignment[T], rng *rand.Rand) []Assignment[T]

	// Mutate perturbs individuals in place, each with probability
	// mutationProbability.
	Mutate(population []Assignment[T], mutationProbability float64, rng *rand.Rand)
}

// GeneticLocalSearch evolves a population of populationSize complete
// assignments for up to maxGenerations generations. It returns true as
// soon as some individual solves the problem, leaving that solution
// assigned; on timeout it restores the fittest individual ever observed
// and returns false.
func GeneticLocalSearch[T comparable](
	gp GeneticProblem[T],
	populationSize, maxGenerations int,
	mutationProbability float64,
	rng *rand.Rand,
) bool {
	p := gp.Problem()
	population := gp.GeneratePopulation(populationSize, rng)

	var best Assignment[T]
	bestFitness := -1
	for _, individual := range population {
		if fitness := gp.Fitness(individual); fitness > bestFitness {
			best, bestFitness = individual, fitness
		}
	}

	for generation := 0; generation < maxGenerations; generation++ {
		for _, individual := range population {
			p.UnassignAll()
			p.restoreAssignment(individual)
			if p.IsCompletelyConsistentlyAssigned() {
				return true
			}
		}

		survivors := gp.NaturalSelection(population)
		population = gp.NextGeneration(survivors, rng)
		gp.Mutate(population, mutationProbability, rng)

		for _, individual := range population {
			if fitness := gp.Fitness(individual); fitness > bestFitness {
				best, bestFitness = individual, fitness
			}
		}
	}

	p.UnassignAll()
	p.restoreAssignment(best)
	return p.IsCompletelyConsistentlyAssigned()
}

// GeneralGeneticProblem is the stock GeneticProblem: random individuals,
// consistent-constraint fitness, half-truncation selection, uniform
// crossover and fraction-based mutation honoring a read-only variable set.
type GeneralGeneticProblem[T comparable] struct {
	problem          *Problem[T]
	mutationFraction float64
	readOnly         VariableSet[T]
}

// NewGeneralGeneticProblem wraps p for genetic search. mutationFraction is
// the share of a mutated individual's variables that get resampled;
// readOnly variables keep their pre-assigned values in every individual.
func NewGeneralGeneticProblem[T comparable](p *Problem[T], mutationFraction float64, readOnly VariableSet[T]) *GeneralGeneticProblem[T] {
	return &GeneralGeneticProblem[T]{problem: p, mutationFraction: mutationFraction, readOnly: readOnly}
}

// Problem returns the underlying constraint problem.
func (g *GeneralGeneticProblem[T]) Problem() *Problem[T] {
	return g.problem
}

// GeneratePopulation draws each individual by assigning every
// non-read-only variable a uniformly random value. The problem's entry
// state is restored afterwards.
func (g *GeneralGeneticProblem[T]) GeneratePopulation(size int, rng *rand.Rand) []Assignment[T] {
	entry := g.problem.CurrentAssignment()
	population := make([]Assignment[T], 0, size)
	for i := 0; i < size; i++ {
		g.problem.AssignRandomValues(rng, g.readOnly, nil)
		population = append(population, g.problem.CurrentAssignment())
	}
	g.problem.UnassignAll()
	g.problem.restoreAssignment(entry)
	return population
}

// Fitness counts the consistent constraints under the individual.
func (g *GeneralGeneticProblem[T]) Fitness(individual Assignment[T]) int {
	g.problem.UnassignAll()
	g.problem.restoreAssignment(individual)
	return g.problem.ConsistentConstraintsCount()
}

// NaturalSelection keeps the fitter half of the population
// (half-truncation selection).
func (g *GeneralGeneticProblem[T]) NaturalSelection(population []Assignment[T]) []Assignment[T] {
	type scored struct {
		individual Assignment[T]
		fitness    int
	}
	ranked := make([]scored, len(population))
	for i, individual := range population {
		ranked[i] = scored{individual: individual, fitness: g.Fitness(individual)}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].fitness > ranked[j].fitness })

	keep := len(population) / 2
	if keep == 0 {
		keep = len(population)
	}
	survivors := make([]Assignment[T], 0, keep)
	for _, s := range ranked[:keep] {
		survivors = append(survivors, s.individual)
	}
	return survivors
}

// NextGeneration breeds twice the survivor count of offspring. Each
// offspring takes two uniformly chosen parents and copies, per variable,
// the value of the first parent with probability one half, else the
// second's.
func (g *GeneralGeneticProblem[T]) NextGeneration(survivors []Assignment[T], rng *rand.Rand) []Assignment[T] {
	size := len(survivors) * 2
	next := make([]Assignment[T], 0, size)
	for i := 0; i < size; i++ {
		first := pickRandom(rng, survivors)
		second := pickRandom(rng, survivors)
		child := make(Assignment[T], len(first))
		for _, v := range g.problem.Variables() {
			parent := first
			if rng.Float64() < 0.5 {
				parent = second
			}
			if value, ok := parent[v]; ok {
				child[v] = value
			}
		}
		next = append(next, child)
	}
	return next
}

// Mutate resamples a mutationFraction share of each selected individual's
// non-read-only variables. A resample landing on the old value is retried
// once when the domain offers an alternative.
func (g *GeneralGeneticProblem[T]) Mutate(population []Assignment[T], mutationProbability float64, rng *rand.Rand) {
	var mutable []*Variable[T]
	for _, v := range g.problem.Variables() {
		if !g.readOnly.Contains(v) {
			mutable = append(mutable, v)
		}
	}
	if len(mutable) == 0 {
		return
	}

	for _, individual := range population {
		if rng.Float64() >= mutationProbability {
			continue
		}
		mutations := int(float64(len(mutable)) * g.mutationFraction)
		if mutations == 0 {
			continue
		}
		for _, idx := range sampleIndices(rng, len(mutable), mutations) {
			v := mutable[idx]
			old, had := individual[v]
			next := pickRandom(rng, v.domain)
			if had && next == old && len(v.domain) > 1 {
				next = pickRandom(rng, v.domain)
			}
			individual[v] = next
		}
	}
}
