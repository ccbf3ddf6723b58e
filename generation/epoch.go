package generation

import (
	"fmt"
	"time"

	"github.com/evoforge/neatcore"
	"github.com/evoforge/neatcore/genome"
	"github.com/evoforge/neatcore/stats"
)

// EpochParams bundles the per-generation knobs RunEpoch needs to drive a
// full mutate, evaluate, speciate, reproduce cycle.
type EpochParams struct {
	Mutate             MutateParams
	CompatThreshold    float64
	CompatDist         genome.CompatDistParams
	KillPercent        float64
	StagnationGenLimit int
	MutationPercent    float64
}

// RunEpoch runs one full cycle. Mutation runs before evaluation so the
// recorded fitness reflects the mutated phenotype. Raw fitness statistics
// for the generation are recorded into History after evaluation, before
// fitness sharing rewrites member fitness during reproduction. The cycle's
// wall-clock duration is recorded for LastEpochDuration.
func (g *Generation) RunEpoch(params EpochParams, fn FitnessFunc) error {
	start := time.Now()
	defer func() { g.lastEpochDuration = time.Since(start) }()

	neatcore.DebugLog(fmt.Sprintf(">>>>> Generation:%3d", g.GenerationNumber))

	if err := g.Mutate(params.Mutate); err != nil {
		return err
	}
	g.Evaluate(fn)
	g.history.Record(stats.ComputeFitnessStats(g.fitnessValues()))
	g.Speciate(params.CompatThreshold, params.CompatDist)
	if err := g.Reproduce(params.KillPercent, params.StagnationGenLimit, params.MutationPercent, params.Mutate); err != nil {
		neatcore.ErrorLog(fmt.Sprintf("!!!!! Epoch execution failed in generation [%d] !!!!!", g.GenerationNumber))
		return err
	}
	neatcore.InfoLog(fmt.Sprintf(">>>>> Generation %d complete, best fitness: %f, took: %v",
		g.GenerationNumber, g.bestFitness, time.Since(start)))
	return nil
}
