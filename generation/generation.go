// Package generation drives the per-cycle mutate, evaluate, speciate,
// reproduce pipeline over a fixed-size population, enforcing the constant
// population-size contract and tracking the best-ever organism.
package generation

import (
	"time"

	"github.com/evoforge/neatcore"
	"github.com/evoforge/neatcore/activation"
	"github.com/evoforge/neatcore/genome"
	"github.com/evoforge/neatcore/innovation"
	"github.com/evoforge/neatcore/species"
	"github.com/evoforge/neatcore/stats"
)

// ErrInvariantViolation is returned when reproduction bookkeeping cannot
// account for the full population. It aliases the module-wide sentinel so
// callers can match either name.
var ErrInvariantViolation = neatcore.ErrInvariantViolation

// Layout describes the genome topology new organisms are built with.
type Layout struct {
	NumInputs        int
	NumOutputs       int
	OutputActivation activation.Type
}

// GenomeLayout is an alias for Layout so callers can use either name.
type GenomeLayout = Layout

// Generation owns the population, the species list, and the generation
// counter, plus the shared registry and PRNG every organism's mutation
// operator threads through.
type Generation struct {
	Population []*genome.Genome
	Species    []*species.Species

	GenerationNumber int

	registry *innovation.Registry
	rng      neatcore.Rand

	champion    *genome.Genome
	bestFitness float64

	history           stats.History
	lastEpochDuration time.Duration
}

// New populates a fresh Generation with popSize minimal genomes built under
// layout, sharing reg and rng.
func New(reg *innovation.Registry, rng neatcore.Rand, layout Layout, popSize int) *Generation {
	pop := make([]*genome.Genome, 0, popSize)
	for i := 0; i < popSize; i++ {
		pop = append(pop, genome.New(reg, layout.NumInputs, layout.NumOutputs, layout.OutputActivation, rng))
	}
	return &Generation{
		Population: pop,
		registry:   reg,
		rng:        rng,
	}
}

// Champion returns the best organism observed across every generation so
// far, or nil if Evaluate has never run.
func (g *Generation) Champion() *genome.Genome {
	return g.champion
}

// LastEpochDuration returns how long the most recent call to RunEpoch took.
func (g *Generation) LastEpochDuration() time.Duration {
	return g.lastEpochDuration
}

// History returns the fitness statistics RunEpoch accumulates per
// generation, for inspection or an .npz export once evolution finishes.
func (g *Generation) History() *stats.History {
	return &g.history
}

// fitnessValues collects the population's current fitness values in
// population order.
func (g *Generation) fitnessValues() stats.Fitnesses {
	values := make(stats.Fitnesses, len(g.Population))
	for i, org := range g.Population {
		values[i] = org.Fitness
	}
	return values
}
