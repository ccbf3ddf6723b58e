// Package genome implements the genome data model: construction, the three
// structural mutation operators, compatibility distance, and crossover.
package genome

import (
	"sort"

	"github.com/evoforge/neatcore"
	"github.com/evoforge/neatcore/activation"
	"github.com/evoforge/neatcore/innovation"
	"github.com/evoforge/neatcore/network"
)

// Genome owns an ordered node list and an ordered connection list, plus a
// fitness scalar written by the evaluator and adjusted during reproduction.
type Genome struct {
	Nodes       []network.Node
	Connections []network.Connection
	Fitness     float64

	nInputs int
}

// NumInputs returns the number of leading input nodes.
func (g *Genome) NumInputs() int {
	return g.nInputs
}

// New builds a minimal fully-connected genome: nInputs input nodes (ids
// 1..nInputs), nOutputs output nodes (ids nInputs+1..nInputs+nOutputs) using
// outputActivation, and every input connected to every output with a
// registry-assigned innovation id and a weight sampled uniformly from
// [-2, 2].
func New(reg *innovation.Registry, nInputs, nOutputs int, outputActivation activation.Type, rng neatcore.Rand) *Genome {
	reg.ClaimThrough(nInputs + nOutputs)

	nodes := make([]network.Node, 0, nInputs+nOutputs)
	for i := 1; i <= nInputs; i++ {
		nodes = append(nodes, network.Node{ID: i, Kind: network.Input, Activation: activation.None})
	}
	for i := 0; i < nOutputs; i++ {
		nodes = append(nodes, network.Node{ID: nInputs + 1 + i, Kind: network.Output, Activation: outputActivation})
	}

	conns := make([]network.Connection, 0, nInputs*nOutputs)
	for i := 1; i <= nInputs; i++ {
		for o := 0; o < nOutputs; o++ {
			out := nInputs + 1 + o
			innov := reg.RegisterConnection(i, out)
			conns = append(conns, network.Connection{
				Innovation: innov,
				In:         i,
				Out:        out,
				Weight:     neatcore.UniformWeight(rng),
				Enabled:    true,
			})
		}
	}

	return &Genome{Nodes: nodes, Connections: conns, nInputs: nInputs}
}

// FromParts builds a genome directly from caller-supplied nodes and
// connections, used by crossover. No registry interaction and no
// revalidation beyond what the caller is expected to uphold.
func FromParts(nodes []network.Node, connections []network.Connection, nInputs int) *Genome {
	return &Genome{Nodes: nodes, Connections: connections, nInputs: nInputs}
}

// Clone returns a deep copy of the genome, suitable for mutation without
// aliasing the original's slices.
func (g *Genome) Clone() *Genome {
	nodes := make([]network.Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	conns := make([]network.Connection, len(g.Connections))
	copy(conns, g.Connections)
	return &Genome{Nodes: nodes, Connections: conns, Fitness: g.Fitness, nInputs: g.nInputs}
}

// Propagate evaluates the genome's phenotype against inputs.
func (g *Genome) Propagate(inputs []float64) ([]float64, error) {
	return network.Propagate(g.Nodes, g.Connections, g.nInputs, inputs)
}

// IsAcyclic reports whether the genome's enabled subgraph is fully
// evaluable without cycles.
func (g *Genome) IsAcyclic() bool {
	return network.IsAcyclic(g.Nodes, g.Connections, g.nInputs)
}

func (g *Genome) nodeIndex(id int) int {
	for i, n := range g.Nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (g *Genome) hasConnection(in, out int) (int, bool) {
	for i, c := range g.Connections {
		if c.In == in && c.Out == out {
			return i, true
		}
	}
	return -1, false
}

func sortedByInnovation(conns []network.Connection) []network.Connection {
	out := make([]network.Connection, len(conns))
	copy(out, conns)
	sort.Slice(out, func(i, j int) bool { return out[i].Innovation < out[j].Innovation })
	return out
}
