package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoforge/neatcore/activation"
)

func minimalTopology() ([]Node, []Connection) {
	nodes := []Node{
		{ID: 1, Kind: Input},
		{ID: 2, Kind: Input},
		{ID: 3, Kind: Input},
		{ID: 4, Kind: Output, Activation: activation.Linear},
		{ID: 5, Kind: Output, Activation: activation.Linear},
	}
	conns := []Connection{
		{Innovation: 1, In: 1, Out: 4, Weight: 1, Enabled: true},
		{Innovation: 2, In: 1, Out: 5, Weight: 1, Enabled: true},
		{Innovation: 3, In: 2, Out: 4, Weight: 1, Enabled: true},
		{Innovation: 4, In: 2, Out: 5, Weight: 1, Enabled: true},
		{Innovation: 5, In: 3, Out: 4, Weight: 1, Enabled: true},
		{Innovation: 6, In: 3, Out: 5, Weight: 1, Enabled: true},
	}
	return nodes, conns
}

func TestPropagateMinimalTopology(t *testing.T) {
	nodes, conns := minimalTopology()
	out, err := Propagate(nodes, conns, 3, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 6.0, out[0])
	assert.Equal(t, 6.0, out[1])
}

func TestPropagateBadInputLength(t *testing.T) {
	nodes, conns := minimalTopology()
	_, err := Propagate(nodes, conns, 3, []float64{1, 2})
	assert.Error(t, err)
}

func TestPropagateDeterministic(t *testing.T) {
	nodes, conns := minimalTopology()
	out1, err := Propagate(nodes, conns, 3, []float64{1, 2, 3})
	require.NoError(t, err)
	out2, err := Propagate(nodes, conns, 3, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}

func TestPropagateAddNodePreservesOutput(t *testing.T) {
	nodes := []Node{
		{ID: 1, Kind: Input},
		{ID: 2, Kind: Output, Activation: activation.Linear},
	}
	conns := []Connection{
		{Innovation: 1, In: 1, Out: 2, Weight: 0.5, Enabled: true},
	}
	out, err := Propagate(nodes, conns, 1, []float64{2.0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, out[0])

	hidden := Node{ID: 3, Kind: Hidden, Activation: activation.Linear}
	nodes2 := []Node{nodes[0], nodes[1], hidden}
	conns2 := []Connection{
		{Innovation: 1, In: 1, Out: 2, Weight: 0.5, Enabled: false},
		{Innovation: 2, In: 1, Out: 3, Weight: 1.0, Enabled: true},
		{Innovation: 3, In: 3, Out: 2, Weight: 0.5, Enabled: true},
	}
	out2, err := Propagate(nodes2, conns2, 1, []float64{2.0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, out2[0])
}

func TestWouldStayAcyclicAcceptsForwardEdge(t *testing.T) {
	nodes, conns := minimalTopology()
	ok := WouldStayAcyclic(nodes, conns, 3, Connection{In: 1, Out: 4})
	assert.True(t, ok)
}

func TestWouldStayAcyclicRejectsCycle(t *testing.T) {
	nodes := []Node{
		{ID: 1, Kind: Input},
		{ID: 2, Kind: Hidden, Activation: activation.Linear},
		{ID: 3, Kind: Hidden, Activation: activation.Linear},
		{ID: 4, Kind: Output, Activation: activation.Linear},
	}
	conns := []Connection{
		{Innovation: 1, In: 1, Out: 2, Weight: 1, Enabled: true},
		{Innovation: 2, In: 2, Out: 3, Weight: 1, Enabled: true},
		{Innovation: 3, In: 3, Out: 4, Weight: 1, Enabled: true},
	}
	// 3 -> 2 would close a cycle through the hidden layer.
	ok := WouldStayAcyclic(nodes, conns, 1, Connection{In: 3, Out: 2})
	assert.False(t, ok)
}

func TestIsAcyclicOnValidGenome(t *testing.T) {
	nodes, conns := minimalTopology()
	assert.True(t, IsAcyclic(nodes, conns, 3))
}
