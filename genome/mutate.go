package genome

import (
	"github.com/evoforge/neatcore"
	"github.com/evoforge/neatcore/activation"
	"github.com/evoforge/neatcore/innovation"
	"github.com/evoforge/neatcore/network"
)

// MutateWeight iterates every connection; if the outer gate at percentage p
// fires, then for each connection, with probability pReset its weight is
// reset to a fresh uniform sample in [-2, 2], otherwise it is nudged by
// multiplying by a uniform sample in [0, 2].
func (g *Genome) MutateWeight(p int, pReset int, rng neatcore.Rand) error {
	if err := neatcore.CheckPercent(p); err != nil {
		return err
	}
	if err := neatcore.CheckPercent(pReset); err != nil {
		return err
	}
	if !neatcore.RollPercent(rng, p) {
		return nil
	}
	for i := range g.Connections {
		if neatcore.RollPercent(rng, pReset) {
			g.Connections[i].Weight = neatcore.UniformWeight(rng)
		} else {
			g.Connections[i].Weight *= rng.Float64() * 2.0
		}
	}
	return nil
}

// AddNode picks a uniformly random enabled connection c, splits it through
// the registry's node-split table, disables c, and wires the new hidden
// node in with two fresh connections that preserve c's end-to-end signal
// magnitude: (c.In -> new, weight=1.0) and (new -> c.Out, weight=c.Weight).
func (g *Genome) AddNode(reg *innovation.Registry, p int, hiddenActivation activation.Type, rng neatcore.Rand) error {
	if err := neatcore.CheckPercent(p); err != nil {
		return err
	}
	if !neatcore.RollPercent(rng, p) {
		return nil
	}

	enabledIdxs := make([]int, 0, len(g.Connections))
	for i, c := range g.Connections {
		if c.Enabled {
			enabledIdxs = append(enabledIdxs, i)
		}
	}
	if len(enabledIdxs) == 0 {
		return nil
	}
	idx := enabledIdxs[rng.Intn(len(enabledIdxs))]
	c := g.Connections[idx]

	newNodeID := reg.RegisterSplit(c.In, c.Out)
	g.Connections[idx].Enabled = false

	if g.nodeIndex(newNodeID) < 0 {
		g.Nodes = append(g.Nodes, network.Node{ID: newNodeID, Kind: network.Hidden, Activation: hiddenActivation})
	}

	innovIn := reg.RegisterConnection(c.In, newNodeID)
	innovOut := reg.RegisterConnection(newNodeID, c.Out)
	g.Connections = append(g.Connections,
		network.Connection{Innovation: innovIn, In: c.In, Out: newNodeID, Weight: 1.0, Enabled: true},
		network.Connection{Innovation: innovOut, In: newNodeID, Out: c.Out, Weight: c.Weight, Enabled: true},
	)
	return nil
}

// AddConnection attempts to add a new connection between two randomly
// chosen nodes while preserving acyclicity. See the reachability pre-check
// in package network for the acceptance test used on the hidden-to-hidden
// case.
func (g *Genome) AddConnection(reg *innovation.Registry, p int, rng neatcore.Rand, maxAttempts int) error {
	if err := neatcore.CheckPercent(p); err != nil {
		return err
	}
	if !neatcore.RollPercent(rng, p) {
		return nil
	}
	if len(g.Nodes) < 2 {
		return nil
	}

	var s network.Node
	for {
		s = g.Nodes[rng.Intn(len(g.Nodes))]
		if s.Kind != network.Output {
			break
		}
	}

	tried := make(map[int]bool)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var d network.Node
		found := false
		for i := 0; i < len(g.Nodes)*4; i++ {
			candidate := g.Nodes[rng.Intn(len(g.Nodes))]
			if candidate.Kind == network.Input {
				continue
			}
			if tried[candidate.ID] {
				continue
			}
			d = candidate
			found = true
			break
		}
		if !found {
			return nil
		}

		if s.ID == d.ID {
			tried[d.ID] = true
			continue
		}

		if idx, ok := g.hasConnection(s.ID, d.ID); ok {
			return g.mutateSingleWeight(idx, rng)
		}

		if s.Kind == network.Input || d.Kind == network.Output {
			g.acceptConnection(reg, s.ID, d.ID, rng)
			return nil
		}

		if network.WouldStayAcyclic(g.Nodes, g.Connections, g.nInputs, network.Connection{In: s.ID, Out: d.ID}) {
			g.acceptConnection(reg, s.ID, d.ID, rng)
			return nil
		}
		tried[d.ID] = true
	}
	return nil
}

func (g *Genome) acceptConnection(reg *innovation.Registry, in, out int, rng neatcore.Rand) {
	innov := reg.RegisterConnection(in, out)
	g.Connections = append(g.Connections, network.Connection{
		Innovation: innov,
		In:         in,
		Out:        out,
		Weight:     neatcore.UniformWeight(rng),
		Enabled:    true,
	})
}

// mutateSingleWeight re-rolls a single existing connection's weight the
// same way MutateWeight's reset branch does (a fresh uniform sample), used by
// AddConnection when the sampled (s, d) pair already exists.
func (g *Genome) mutateSingleWeight(idx int, rng neatcore.Rand) error {
	g.Connections[idx].Weight = neatcore.UniformWeight(rng)
	return nil
}
