// Package neatcore implements NeuroEvolution of Augmenting Topologies (NEAT): an
// evolutionary search over directed acyclic neural networks whose topology and
// weights co-evolve. A population of graph-structured genomes is mutated,
// recombined, grouped into species by a structural similarity metric, and
// selected across generations by a caller-supplied fitness function.
//
// The evolution core is split across sub-packages: innovation (the historical
// marking registry), network (the DAG node/connection/evaluation primitives),
// genome (the genetic operators), species (speciation and intra-species
// reproduction), generation (the population driver), and config (the
// parameter value-objects). This root package holds the facilities shared
// across all of them: the programmer-error taxonomy, a leveled logger, and
// the injected PRNG capability.
package neatcore
