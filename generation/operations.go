package generation

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/evoforge/neatcore"
	"github.com/evoforge/neatcore/genome"
	"github.com/evoforge/neatcore/species"
)

// MutateParams re-exports the species package's mutation-operator bundle so
// callers need only import this package to drive a full generation.
type MutateParams = species.MutateParams

// FitnessFunc is the caller-supplied scoring function. It must treat the
// genome as read-only except via its Propagate method.
type FitnessFunc func(g *genome.Genome) float64

// Mutate applies MutateWeight, AddNode, and AddConnection, in that order,
// to every organism in the population. Mutation must precede Evaluate so
// recorded fitness reflects the mutated phenotype.
func (g *Generation) Mutate(params MutateParams) error {
	for _, org := range g.Population {
		if err := org.MutateWeight(params.MutateWeightPct, params.RngResetPct, g.rng); err != nil {
			return err
		}
		if err := org.AddNode(g.registry, params.AddNodePct, params.HiddenActivation, g.rng); err != nil {
			return err
		}
		if err := org.AddConnection(g.registry, params.AddConnectionPct, g.rng, params.AddConnectionTries); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate calls fn for every organism, writes the returned value as its
// fitness, and tracks the best-ever champion across every generation.
func (g *Generation) Evaluate(fn FitnessFunc) {
	for _, org := range g.Population {
		org.Fitness = fn(org)
		if g.champion == nil || org.Fitness > g.bestFitness {
			// Snapshot rather than alias: the population is overwritten
			// wholesale each reproduction, and adjusted-fitness sharing
			// rewrites member fitness in place.
			g.champion = org.Clone()
			g.bestFitness = org.Fitness
		}
	}
}

// Speciate assigns every organism to the first species it is compatible
// with (TryAdd succeeds); organisms matching no existing species seed a new
// one.
func (g *Generation) Speciate(threshold float64, params genome.CompatDistParams) {
	for _, org := range g.Population {
		placed := false
		for _, sp := range g.Species {
			if sp.TryAdd(org, threshold, params) {
				placed = true
				break
			}
		}
		if !placed {
			g.Species = append(g.Species, species.New(org))
		}
	}
}

// Reproduce computes adjusted fitness and stagnation for every species,
// allocates offspring quotas proportional to adjusted fitness among
// non-stagnant species, overwrites the population with the resulting
// offspring (assigning the exact remainder to the last fit species to
// guarantee population size is preserved), clears every species for the
// next speciation round, and increments the generation counter.
func (g *Generation) Reproduce(killPercent float64, stagnationGenThreshold int, mutPercent float64, mutParams MutateParams) error {
	popSize := len(g.Population)

	type fitSpecies struct {
		sp    *species.Species
		total float64
	}
	var fit []fitSpecies
	var totalAdjusted float64

	for _, sp := range g.Species {
		// A species every organism speciated past this generation has no
		// members and cannot reproduce; it keeps its stagnation history but
		// takes no quota.
		if len(sp.Members) == 0 {
			continue
		}
		sp.CalcAdjustedFitness()
		if !sp.CheckStagnation(stagnationGenThreshold) {
			neatcore.InfoLog(fmt.Sprintf("!!!!! Species starved: no improvement in %d generations !!!!!",
				sp.GenerationsSinceImprovement))
			continue
		}
		total := sp.TotalAdjustedFitness()
		fit = append(fit, fitSpecies{sp: sp, total: total})
		totalAdjusted += total
	}

	if len(fit) == 0 {
		return ErrInvariantViolation
	}
	if totalAdjusted == 0 {
		// Every fit species scored zero; fall back to equal shares rather
		// than dividing by zero.
		for i := range fit {
			fit[i].total = 1
		}
		totalAdjusted = float64(len(fit))
	}

	offspring := make([]*genome.Genome, 0, popSize)
	allocated := 0
	for i, fs := range fit {
		if i == len(fit)-1 {
			// The last fit species absorbs the rounding remainder so the
			// headcount is exact; the remainder must still be close to its
			// theoretical share or the quota bookkeeping is corrupted.
			n := popSize - allocated
			share := fs.total / totalAdjusted * float64(popSize)
			if math.Abs(float64(n)-share) > float64(len(fit)) {
				return errors.Wrapf(ErrInvariantViolation,
					"last species remainder %d too far from theoretical share %.2f", n, share)
			}
			offspring = append(offspring, fs.sp.Reproduce(g.registry, n, killPercent, mutPercent, mutParams, g.rng)...)
			allocated += n
			break
		}
		share := fs.total / totalAdjusted
		n := int(math.Round(share * float64(popSize)))
		// Rounding earlier shares up can overshoot; never hand out more
		// slots than remain, so the last species' remainder stays >= 0.
		if n > popSize-allocated {
			n = popSize - allocated
		}
		offspring = append(offspring, fs.sp.Reproduce(g.registry, n, killPercent, mutPercent, mutParams, g.rng)...)
		allocated += n
	}

	if len(offspring) != popSize {
		return ErrInvariantViolation
	}

	g.Population = offspring
	for _, sp := range g.Species {
		sp.Clear(g.rng)
	}
	g.GenerationNumber++
	neatcore.DebugLog(fmt.Sprintf(">>>>> Reproduction complete: %d offspring from %d species", len(offspring), len(fit)))
	return nil
}
