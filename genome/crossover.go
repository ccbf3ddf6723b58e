package genome

import (
	"sort"

	"github.com/evoforge/neatcore"
	"github.com/evoforge/neatcore/innovation"
	"github.com/evoforge/neatcore/network"
)

// Crossover produces a child genome from g and other. If the two fitnesses
// differ, the more-fit parent's structure is inherited, with each matching
// gene's weight swapped in from the less-fit parent with probability 0.5.
// If the fitnesses are equal, the child starts from g, randomizes matching
// genes from other with probability 0.5, and additionally inherits every
// gene present in other but absent from g (disjoint and excess alike); node
// lists are merged by id-set union and sorted by id, and every enabled
// connection in the result has its (in, out) pair forgotten from the
// registry's split table so a later AddNode mints a fresh hidden-node id.
func Crossover(g, other *Genome, reg *innovation.Registry, rng neatcore.Rand) *Genome {
	if g.Fitness == other.Fitness {
		return crossoverEqualFitness(g, other, reg, rng)
	}

	more, less := g, other
	if other.Fitness > g.Fitness {
		more, less = other, g
	}
	return crossoverUnequalFitness(more, less, rng)
}

func crossoverUnequalFitness(more, less *Genome, rng neatcore.Rand) *Genome {
	lessByInnov := indexByInnovation(less.Connections)

	conns := make([]network.Connection, len(more.Connections))
	copy(conns, more.Connections)
	for i, c := range conns {
		if lc, ok := lessByInnov[c.Innovation]; ok && rng.Float64() < 0.5 {
			conns[i].Weight = lc.Weight
		}
	}

	nodes := make([]network.Node, len(more.Nodes))
	copy(nodes, more.Nodes)

	return FromParts(nodes, conns, more.nInputs)
}

func crossoverEqualFitness(g, other *Genome, reg *innovation.Registry, rng neatcore.Rand) *Genome {
	gByInnov := indexByInnovation(g.Connections)
	otherByInnov := indexByInnovation(other.Connections)

	conns := make([]network.Connection, len(g.Connections))
	copy(conns, g.Connections)
	for i, c := range conns {
		if oc, ok := otherByInnov[c.Innovation]; ok && rng.Float64() < 0.5 {
			conns[i].Weight = oc.Weight
		}
	}
	for _, oc := range other.Connections {
		if _, ok := gByInnov[oc.Innovation]; !ok {
			conns = append(conns, oc)
		}
	}

	nodes := mergeNodesByID(g.Nodes, other.Nodes)

	for _, c := range conns {
		if c.Enabled {
			reg.ForgetSplit(c.In, c.Out)
		}
	}

	return FromParts(nodes, conns, g.nInputs)
}

func mergeNodesByID(a, b []network.Node) []network.Node {
	byID := make(map[int]network.Node, len(a)+len(b))
	for _, n := range a {
		byID[n.ID] = n
	}
	for _, n := range b {
		if _, ok := byID[n.ID]; !ok {
			byID[n.ID] = n
		}
	}
	merged := make([]network.Node, 0, len(byID))
	for _, n := range byID {
		merged = append(merged, n)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].ID < merged[j].ID })
	return merged
}
