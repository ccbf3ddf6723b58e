package network

// reachable runs the level-synchronous reachability pre-check: every
// non-input node must become reachable from the input layer through enabled
// edges, optionally including one hypothetical extra edge, without the
// process ever stalling (which would indicate a cycle or disconnection).
//
// It does not mutate nodes or connections; it operates on a private copy of
// the "ready" flags only.
func reachable(nodes []Node, connections []Connection, nInputs int, extra *Connection) bool {
	ready := make([]bool, len(nodes))
	for i := 0; i < nInputs; i++ {
		ready[i] = true
	}
	byID := indexByID(nodes)

	maxRounds := len(nodes) - nInputs
	for round := 0; round < maxRounds; round++ {
		progressed := false
		for i := range nodes {
			if ready[i] || nodes[i].Kind == Input {
				continue
			}
			if allIncomingReady(nodes, connections, byID, ready, nodes[i].ID, extra) {
				ready[i] = true
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	for i := range nodes {
		if !ready[i] {
			return false
		}
	}
	return true
}

// allIncomingReady reports whether every enabled connection into nodeID has a
// ready source. A node with no enabled incoming connections is vacuously
// ready, mirroring Propagate.
func allIncomingReady(nodes []Node, connections []Connection, byID map[int]int, ready []bool, nodeID int, extra *Connection) bool {
	for _, c := range connections {
		if !c.Enabled || c.Out != nodeID {
			continue
		}
		srcIdx, ok := byID[c.In]
		if !ok || !ready[srcIdx] {
			return false
		}
	}
	if extra != nil && extra.Out == nodeID {
		srcIdx, ok := byID[extra.In]
		if !ok || !ready[srcIdx] {
			return false
		}
	}
	return true
}

// WouldStayAcyclic reports whether adding the hypothetical connection c to
// the genome described by nodes/connections would leave every non-input
// node reachable from the inputs without a cycle. c.Enabled is not
// consulted; the hypothetical edge is treated as enabled for the check.
func WouldStayAcyclic(nodes []Node, connections []Connection, nInputs int, c Connection) bool {
	c.Enabled = true
	return reachable(nodes, connections, nInputs, &c)
}

// IsAcyclic reports whether the subgraph induced by the genome's currently
// enabled connections is fully evaluable: every non-input node reachable
// from the inputs without a cycle. Used to verify the acyclicity invariant
// independently of a hypothetical new edge.
func IsAcyclic(nodes []Node, connections []Connection, nInputs int) bool {
	return reachable(nodes, connections, nInputs, nil)
}
