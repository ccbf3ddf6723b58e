// Package xor is a worked example of the evolution core's embedding API:
// it wires a genome layout, a fitness function, and the
// mutate/evaluate/speciate/reproduce cycle together to search for an XOR
// solver, exercising the host-facing surface end to end.
package xor

import (
	"fmt"
	"math"

	"github.com/evoforge/neatcore"
	"github.com/evoforge/neatcore/activation"
	"github.com/evoforge/neatcore/config"
	"github.com/evoforge/neatcore/generation"
	"github.com/evoforge/neatcore/genome"
	"github.com/evoforge/neatcore/innovation"
)

// inputs holds the four XOR test cases, with a leading constant 1.0
// serving as the bias input.
var inputs = [][]float64{
	{1.0, 0.0, 0.0},
	{1.0, 0.0, 1.0},
	{1.0, 1.0, 0.0},
	{1.0, 1.0, 1.0},
}

// expected holds XOR's target output for each row of inputs.
var expected = []float64{0.0, 1.0, 1.0, 0.0}

// FitnessThreshold is the score above which an organism is considered to
// have solved XOR.
const FitnessThreshold = 15.5

// Fitness scores a genome against the XOR truth table. A genome that
// fails to propagate scores 0 rather than surfacing the error, since
// fitness functions have no error return in the embedding contract.
func Fitness(g *genome.Genome) float64 {
	errorSum := 0.0
	for i, in := range inputs {
		out, err := g.Propagate(in)
		if err != nil || len(out) != 1 {
			return 0
		}
		errorSum += math.Abs(expected[i] - out[0])
	}
	diff := 4.0 - errorSum
	return diff * diff
}

// DefaultOptions returns a reasonable parameter set for running the XOR
// search: 3 inputs (bias + 2 operands), 1 output, population size 150.
func DefaultOptions() config.Options {
	return config.Options{
		LogLevel:           "info",
		PopulationSize:     150,
		Layout:             config.GenomeLayout{NumInputs: 3, NumOutputs: 1, OutputActivation: "sigmoid"},
		CompatThreshold:    3.0,
		C1ExcessCoeff:      1.0,
		C2DisjointCoeff:    1.0,
		C3WeightDiffCoeff:  0.4,
		CompatNormThresh:   20,
		StagnationGenLimit: 15,
		KillPercent:        0.2,
		MutationPercent:    0.25,
		MutateWeightPct:    80,
		RngResetPct:        10,
		AddNodePct:         3,
		AddConnectionPct:   5,
		AddConnectionTries: 20,
		HiddenActivation:   "sigmoid",
	}
}

// Run drives up to maxGenerations epochs of the mutate -> evaluate ->
// speciate -> reproduce cycle against the XOR fitness function, returning
// the Generation (so the caller can inspect its champion or population) and
// stopping early once a champion crosses FitnessThreshold.
func Run(reg *innovation.Registry, rng neatcore.Rand, opts config.Options, maxGenerations int) (*generation.Generation, error) {
	outAct, err := activation.FromName(opts.Layout.OutputActivation)
	if err != nil {
		return nil, err
	}
	hiddenAct, err := activation.FromName(opts.HiddenActivation)
	if err != nil {
		return nil, err
	}

	layout := generation.Layout{
		NumInputs:        opts.Layout.NumInputs,
		NumOutputs:       opts.Layout.NumOutputs,
		OutputActivation: outAct,
	}
	gen := generation.New(reg, rng, layout, opts.PopulationSize)

	mutParams, err := opts.Mutate()
	if err != nil {
		return nil, err
	}
	mutParams.HiddenActivation = hiddenAct

	params := generation.EpochParams{
		Mutate:             mutParams,
		CompatThreshold:    opts.CompatThreshold,
		CompatDist:         opts.CompatDist(),
		KillPercent:        opts.KillPercent,
		StagnationGenLimit: opts.StagnationGenLimit,
		MutationPercent:    opts.MutationPercent,
	}

	for i := 0; i < maxGenerations; i++ {
		if err := gen.RunEpoch(params, Fitness); err != nil {
			return gen, err
		}
		if champ := gen.Champion(); champ != nil && champ.Fitness > FitnessThreshold {
			neatcore.InfoLog(fmt.Sprintf(">>>>> The winner organism found in [%d] generation, fitness: %f <<<<<",
				gen.GenerationNumber, champ.Fitness))
			break
		}
	}
	return gen, nil
}
