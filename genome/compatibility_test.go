package genome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoforge/neatcore"
	"github.com/evoforge/neatcore/activation"
	"github.com/evoforge/neatcore/innovation"
	"github.com/evoforge/neatcore/network"
)

func connGenome(nInputs int, conns []network.Connection, nodes []network.Node) *Genome {
	return FromParts(nodes, conns, nInputs)
}

func TestCompatibilityDistanceIdenticalGenomesIsZero(t *testing.T) {
	reg := innovation.NewRegistry(0)
	nodes := []network.Node{
		{ID: 1, Kind: network.Input},
		{ID: 2, Kind: network.Output, Activation: activation.Linear},
	}
	conns := []network.Connection{
		{Innovation: reg.RegisterConnection(1, 2), In: 1, Out: 2, Weight: 0.5, Enabled: true},
	}
	a := connGenome(1, conns, nodes)
	b := connGenome(1, conns, nodes)

	params := CompatDistParams{C1: 1, C2: 1, C3: 0.4, NormalizeThreshold: 20}
	assert.Equal(t, 0.0, a.CompatibilityDistance(b, params))
}

func TestCompatibilityDistanceExcessGenes(t *testing.T) {
	reg := innovation.NewRegistry(0)
	nodes := []network.Node{
		{ID: 1, Kind: network.Input},
		{ID: 2, Kind: network.Output, Activation: activation.Linear},
		{ID: 3, Kind: network.Hidden, Activation: activation.Linear},
	}
	shared := network.Connection{Innovation: reg.RegisterConnection(1, 2), In: 1, Out: 2, Weight: 0.5, Enabled: true}
	extra1 := network.Connection{Innovation: reg.RegisterConnection(1, 3), In: 1, Out: 3, Weight: 0.2, Enabled: true}
	extra2 := network.Connection{Innovation: reg.RegisterConnection(3, 2), In: 3, Out: 2, Weight: 0.2, Enabled: true}

	a := connGenome(1, []network.Connection{shared}, nodes)
	b := connGenome(1, []network.Connection{shared, extra1, extra2}, nodes)

	params := CompatDistParams{C1: 1, C2: 1, C3: 0.4, NormalizeThreshold: 20}
	dist := a.CompatibilityDistance(b, params)
	assert.Greater(t, dist, 0.0)
}

func TestCompatibilityDistanceSymmetric(t *testing.T) {
	reg := innovation.NewRegistry(0)
	rngA := neatcore.NewMathRand(21)
	rngB := neatcore.NewMathRand(22)

	a := New(reg, 3, 1, activation.Linear, rngA)
	b := New(reg, 3, 1, activation.Linear, rngB)
	for i := 0; i < 3; i++ {
		require.NoError(t, a.MutateWeight(100, 50, rngA))
		require.NoError(t, a.AddNode(reg, 100, activation.Linear, rngA))
		require.NoError(t, a.AddConnection(reg, 100, rngA, 20))
		require.NoError(t, b.MutateWeight(100, 50, rngB))
		require.NoError(t, b.AddNode(reg, 100, activation.Linear, rngB))
		require.NoError(t, b.AddConnection(reg, 100, rngB, 20))
	}

	params := CompatDistParams{C1: 1, C2: 1, C3: 0.4, NormalizeThreshold: 20}
	ab := a.CompatibilityDistance(b, params)
	ba := b.CompatibilityDistance(a, params)
	assert.Equal(t, ab, ba)
	assert.GreaterOrEqual(t, ab, 0.0)
}

func TestCompatibilityDistanceNormalizationFloor(t *testing.T) {
	reg := innovation.NewRegistry(0)
	nodes := []network.Node{
		{ID: 1, Kind: network.Input},
		{ID: 2, Kind: network.Output, Activation: activation.Linear},
		{ID: 3, Kind: network.Hidden, Activation: activation.Linear},
	}
	conns := []network.Connection{
		{Innovation: reg.RegisterConnection(1, 2), In: 1, Out: 2, Weight: 1.0, Enabled: true},
	}
	other := []network.Connection{
		{Innovation: conns[0].Innovation, In: 1, Out: 2, Weight: 2.0, Enabled: true},
		{Innovation: reg.RegisterConnection(1, 3), In: 1, Out: 3, Weight: 1.0, Enabled: true},
	}
	a := connGenome(1, conns, nodes)
	b := connGenome(1, other, nodes)

	// below NormalizeThreshold: N should be floored to 1, so the one excess
	// gene counts 1 (not 1/2) and the weight difference adds 1.
	params := CompatDistParams{C1: 1, C2: 1, C3: 1, NormalizeThreshold: 20}
	dist := a.CompatibilityDistance(b, params)
	assert.InDelta(t, 2.0, dist, 1e-9)
}
