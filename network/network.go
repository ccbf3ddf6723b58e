// Package network defines the phenotype-level data model shared by every
// genome: nodes, connections, feed-forward evaluation, and the
// acyclicity-preserving reachability check that gates structural mutation.
// Evaluation is a level-synchronous relaxation: topologies are strictly
// feed-forward, so every node settles within one pass per network depth
// level.
package network

import (
	"github.com/pkg/errors"

	"github.com/evoforge/neatcore"
	"github.com/evoforge/neatcore/activation"
)

// Kind classifies a node by its role in the network.
type Kind byte

const (
	// Input nodes receive external values and carry them unmodified.
	Input Kind = iota
	// Output nodes carry the network's computed results.
	Output
	// Hidden nodes are internal computation nodes created by add_node.
	Hidden
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case Output:
		return "output"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Node is a single neuron. Ids are assigned by the innovation registry and
// are stable across generations; a Node's zero value is never valid on its
// own (Activation must be set explicitly for non-input nodes).
type Node struct {
	ID         int
	Kind       Kind
	Activation activation.Type
	Value      float64
}

// Connection is a single directed, weighted edge between two node ids,
// identified by its historical-marking innovation id.
type Connection struct {
	Innovation int64
	In, Out    int
	Weight     float64
	Enabled    bool
}

// The error kinds Propagate reports are the module-wide taxonomy declared in
// the root package: neatcore.ErrBadInputLength for a caller-supplied input
// slice of the wrong length, and neatcore.ErrInvariantViolation when
// evaluation cannot make progress (impossible given an acyclic,
// fully-connected genome).

// Propagate evaluates the network defined by nodes and connections against
// inputs, returning the values of every output-kind node in node order.
// nodes is mutated in place: every node's Value field is overwritten.
//
// nInputs is the number of leading nodes that are of Kind Input; inputs must
// have exactly that many elements.
func Propagate(nodes []Node, connections []Connection, nInputs int, inputs []float64) ([]float64, error) {
	if len(inputs) != nInputs {
		return nil, errors.Wrapf(neatcore.ErrBadInputLength, "got %d values, want %d", len(inputs), nInputs)
	}

	computed := make([]bool, len(nodes))
	for i := 0; i < nInputs; i++ {
		nodes[i].Value = inputs[i]
		computed[i] = true
	}

	byID := indexByID(nodes)
	maxRounds := len(nodes) - nInputs
	for round := 0; round < maxRounds; round++ {
		progressed := false
		for i := range nodes {
			if computed[i] || nodes[i].Kind == Input {
				continue
			}
			sum, ready := weightedInputSum(nodes, connections, byID, computed, nodes[i].ID)
			if !ready {
				continue
			}
			nodes[i].Value = activation.Apply(nodes[i].Activation, sum)
			computed[i] = true
			progressed = true
		}
		if allComputed(computed) {
			break
		}
		if !progressed {
			break
		}
	}

	if !allComputed(computed) {
		return outputs(nodes), errors.Wrap(neatcore.ErrInvariantViolation, "some nodes never became computable")
	}
	return outputs(nodes), nil
}

// weightedInputSum sums weight*source.Value over every enabled connection
// into the node with the given id, reporting ready=false if any source is
// not yet computed.
func weightedInputSum(nodes []Node, connections []Connection, byID map[int]int, computed []bool, nodeID int) (sum float64, ready bool) {
	ready = true
	any := false
	for _, c := range connections {
		if !c.Enabled || c.Out != nodeID {
			continue
		}
		any = true
		srcIdx, ok := byID[c.In]
		if !ok || !computed[srcIdx] {
			ready = false
			break
		}
		sum += nodes[srcIdx].Value * c.Weight
	}
	if !any {
		// A node with no enabled incoming connections is vacuously ready,
		// evaluating to activation(0).
		return 0, true
	}
	return sum, ready
}

func allComputed(computed []bool) bool {
	for _, c := range computed {
		if !c {
			return false
		}
	}
	return true
}

func outputs(nodes []Node) []float64 {
	out := make([]float64, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == Output {
			out = append(out, n.Value)
		}
	}
	return out
}

func indexByID(nodes []Node) map[int]int {
	m := make(map[int]int, len(nodes))
	for i, n := range nodes {
		m[n.ID] = i
	}
	return m
}
