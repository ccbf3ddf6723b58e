// Package config holds the value-object parameter structs the rest of the
// evolution core is driven by, plus YAML and flat key/value loaders for
// them.
package config

import (
	"github.com/evoforge/neatcore/activation"
	"github.com/evoforge/neatcore/genome"
	"github.com/evoforge/neatcore/species"
)

// CompatDistParams is the coefficient set used by compatibility distance.
// Kept as an alias so config consumers don't need to import genome
// directly for this one type.
type CompatDistParams = genome.CompatDistParams

// MutateParams is the percentage/activation bundle every mutation operator
// is driven with.
type MutateParams = species.MutateParams

// GenomeLayout describes the initial fully-connected topology new genomes
// are built with.
type GenomeLayout struct {
	NumInputs        int    `yaml:"num_inputs"`
	NumOutputs       int    `yaml:"num_outputs"`
	OutputActivation string `yaml:"output_activation"`
}

// Options aggregates every tunable the evolution core needs: the initial
// layout, the compatibility coefficients, the mutation percentages, the
// population size and speciation/reproduction thresholds, and the process
// log level.
type Options struct {
	LogLevel string `yaml:"log_level"`

	PopulationSize int `yaml:"pop_size"`

	Layout GenomeLayout `yaml:"layout"`

	CompatThreshold    float64 `yaml:"compat_threshold"`
	C1ExcessCoeff      float64 `yaml:"excess_coeff"`
	C2DisjointCoeff    float64 `yaml:"disjoint_coeff"`
	C3WeightDiffCoeff  float64 `yaml:"mutdiff_coeff"`
	CompatNormThresh   int     `yaml:"compat_normalize_threshold"`
	StagnationGenLimit int     `yaml:"dropoff_age"`
	KillPercent        float64 `yaml:"survival_kill_percent"`
	MutationPercent    float64 `yaml:"mutate_only_percent"`

	MutateWeightPct    int    `yaml:"mutate_link_weights_prob"`
	RngResetPct        int    `yaml:"weight_mut_reset_prob"`
	AddNodePct         int    `yaml:"mutate_add_node_prob"`
	AddConnectionPct   int    `yaml:"mutate_add_link_prob"`
	AddConnectionTries int    `yaml:"newlink_tries"`
	HiddenActivation   string `yaml:"hidden_activation"`
}

// CompatDist builds a CompatDistParams value from the aggregate Options.
func (o *Options) CompatDist() CompatDistParams {
	return CompatDistParams{
		C1:                 o.C1ExcessCoeff,
		C2:                 o.C2DisjointCoeff,
		C3:                 o.C3WeightDiffCoeff,
		NormalizeThreshold: o.CompatNormThresh,
	}
}

// Mutate builds a MutateParams value from the aggregate Options, resolving
// HiddenActivation's string name to its activation.Type.
func (o *Options) Mutate() (MutateParams, error) {
	act, err := activation.FromName(o.HiddenActivation)
	if err != nil {
		return MutateParams{}, err
	}
	return MutateParams{
		MutateWeightPct:    o.MutateWeightPct,
		RngResetPct:        o.RngResetPct,
		AddNodePct:         o.AddNodePct,
		HiddenActivation:   act,
		AddConnectionPct:   o.AddConnectionPct,
		AddConnectionTries: o.AddConnectionTries,
	}, nil
}
