package species

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoforge/neatcore"
	"github.com/evoforge/neatcore/activation"
	"github.com/evoforge/neatcore/genome"
	"github.com/evoforge/neatcore/innovation"
)

func newTestGenome(reg *innovation.Registry, rng neatcore.Rand, fitness float64) *genome.Genome {
	g := genome.New(reg, 2, 1, activation.Linear, rng)
	g.Fitness = fitness
	return g
}

func TestTryAddWithinThreshold(t *testing.T) {
	reg := innovation.NewRegistry(0)
	rng := neatcore.NewMathRand(1)
	rep := newTestGenome(reg, rng, 1)
	s := New(rep)

	same := rep.Clone()
	ok := s.TryAdd(same, 3.0, genome.CompatDistParams{C1: 1, C2: 1, C3: 0.4, NormalizeThreshold: 20})
	assert.True(t, ok)
	assert.Len(t, s.Members, 2)
}

func TestTryAddRejectsBeyondThreshold(t *testing.T) {
	reg := innovation.NewRegistry(0)
	rng := neatcore.NewMathRand(1)
	rep := newTestGenome(reg, rng, 1)
	s := New(rep)

	far := rep.Clone()
	far.Connections[0].Weight = 100
	ok := s.TryAdd(far, 0.0001, genome.CompatDistParams{C1: 1, C2: 1, C3: 10, NormalizeThreshold: 20})
	assert.False(t, ok)
	assert.Len(t, s.Members, 1)
}

func TestCalcAdjustedFitnessDividesByMemberCount(t *testing.T) {
	reg := innovation.NewRegistry(0)
	rng := neatcore.NewMathRand(1)
	rep := newTestGenome(reg, rng, 10)
	s := New(rep)
	s.Members = append(s.Members, newTestGenome(reg, rng, 20))

	s.CalcAdjustedFitness()
	assert.Equal(t, 5.0, s.Members[0].Fitness)
	assert.Equal(t, 10.0, s.Members[1].Fitness)
	assert.Equal(t, 15.0, s.TotalAdjustedFitness())
}

func TestCheckStagnationStarvesAfterThreshold(t *testing.T) {
	reg := innovation.NewRegistry(0)
	rng := neatcore.NewMathRand(1)
	rep := newTestGenome(reg, rng, 1)
	s := New(rep)

	assert.True(t, s.CheckStagnation(3))  // improvement from 0 -> 1
	assert.True(t, s.CheckStagnation(3))  // 1 stagnant gen
	assert.True(t, s.CheckStagnation(3))  // 2 stagnant gens
	assert.False(t, s.CheckStagnation(3)) // 3 stagnant gens: starved
}

func TestClearSamplesRepresentativeAndDropsMembers(t *testing.T) {
	reg := innovation.NewRegistry(0)
	rng := neatcore.NewMathRand(1)
	rep := newTestGenome(reg, rng, 1)
	s := New(rep)
	s.Members = append(s.Members, newTestGenome(reg, rng, 2))

	s.Clear(rng)
	assert.Empty(t, s.Members)
	assert.NotNil(t, s.Representative)
}

func TestReproduceZeroOffspringReturnsEmpty(t *testing.T) {
	reg := innovation.NewRegistry(0)
	rng := neatcore.NewMathRand(1)
	rep := newTestGenome(reg, rng, 1)
	s := New(rep)

	out := s.Reproduce(reg, 0, 0.5, 0.25, MutateParams{}, rng)
	assert.Empty(t, out)
}

func TestReproduceExactHeadcount(t *testing.T) {
	reg := innovation.NewRegistry(0)
	rng := neatcore.NewMathRand(1)
	s := New(newTestGenome(reg, rng, 1))
	for i := 0; i < 9; i++ {
		s.Members = append(s.Members, newTestGenome(reg, rng, float64(i)))
	}
	require.Len(t, s.Members, 10)

	params := MutateParams{MutateWeightPct: 80, RngResetPct: 10, AddNodePct: 5, HiddenActivation: activation.Sigmoid, AddConnectionPct: 5, AddConnectionTries: 20}
	offspring := s.Reproduce(reg, 12, 0.2, 0.25, params, rng)
	assert.Len(t, offspring, 12)
	// The elite copy (member count > 5) keeps its original fitness; every
	// clonal and crossover offspring has its fitness reset to zero.
	nonZero := 0
	for _, child := range offspring {
		if child.Fitness != 0.0 {
			nonZero++
		}
	}
	assert.Equal(t, 1, nonZero, "exactly the elite copy should retain a nonzero fitness")
}

func TestReproduceSingleSurvivorSelfCrosses(t *testing.T) {
	reg := innovation.NewRegistry(0)
	rng := neatcore.NewMathRand(1)
	s := New(newTestGenome(reg, rng, 1))

	offspring := s.Reproduce(reg, 4, 0.9, 0.0, MutateParams{}, rng)
	assert.Len(t, offspring, 4)
}
