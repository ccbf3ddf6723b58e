// Package innovation implements the global historical-marking registry: the
// process-wide monotonic counters and lookup tables that let independent
// structural mutations performed by different genomes converge on the same
// identity.
package innovation

import "sync"

type nodePair struct {
	in, out int
}

// Registry is the shared historical-marking authority. A fresh Registry
// starts with the convention that node ids 1..n are already claimed by the
// genome's initial input/output layout (see NewRegistry and ClaimThrough), and innovation ids
// start at 1.
//
// Registry is safe for concurrent use: §4.1 requires lookup-then-insert to
// be atomic per (in, out) key, so every mutating method holds a single mutex
// for its whole body.
type Registry struct {
	mu sync.Mutex

	nextInnovation int64
	nextNodeID     int

	connections map[nodePair]int64
	splits      map[nodePair]int
}

// NewRegistry returns a Registry whose node-id counter starts just after the
// highest id already in use by the initial genome layout (inputs + outputs +
// bias, if any), and whose innovation counter starts at 1.
func NewRegistry(initialNodeCount int) *Registry {
	return &Registry{
		nextInnovation: 1,
		nextNodeID:     initialNodeCount + 1,
		connections:    make(map[nodePair]int64),
		splits:         make(map[nodePair]int),
	}
}

// RegisterConnection returns the innovation id for the (in, out) pair,
// allocating a fresh one on first sight and returning the existing id on
// every subsequent call for the same pair.
func (r *Registry) RegisterConnection(in, out int) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := nodePair{in, out}
	if id, ok := r.connections[key]; ok {
		return id
	}
	id := r.nextInnovation
	r.nextInnovation++
	r.connections[key] = id
	return id
}

// RegisterSplit returns the hidden-node id produced by splitting the (in,
// out) connection, allocating a fresh node id on first sight and returning
// the existing id on every subsequent call for the same pair, so two genomes
// that split the same connection end up with the same hidden node identity.
func (r *Registry) RegisterSplit(in, out int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := nodePair{in, out}
	if id, ok := r.splits[key]; ok {
		return id
	}
	id := r.nextNodeID
	r.nextNodeID++
	r.splits[key] = id
	return id
}

// ForgetSplit removes the (in, out) entry from the split registry, so that a
// later split of the same (in, out) pair mints a fresh node id rather than
// colliding with an id claimed for a different topology. Equal-fitness
// crossover calls it for every enabled connection of the child; nothing in
// this module re-enables a disabled connection.
func (r *Registry) ForgetSplit(in, out int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.splits, nodePair{in, out})
}

// ClaimThrough marks every node id up to and including id as already in
// use, raising the node-id counter if needed. Genome construction calls
// this with the highest id of the initial input/output layout so hidden
// node ids minted later never collide with it; claiming an id below the
// counter is a no-op.
func (r *Registry) ClaimThrough(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id+1 > r.nextNodeID {
		r.nextNodeID = id + 1
	}
}

// NextNodeID allocates and returns a fresh node id without recording it
// against any (in, out) pair, for a node created outside of an add_node
// split. Initial genome construction does not call it; it uses
// ClaimThrough.
func (r *Registry) NextNodeID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextNodeID
	r.nextNodeID++
	return id
}

// PeekNextInnovation returns the innovation id that would be allocated by
// the next RegisterConnection call on a previously-unseen pair, without
// allocating it. Useful for diagnostics and tests.
func (r *Registry) PeekNextInnovation() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nextInnovation
}
