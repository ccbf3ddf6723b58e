package config

import (
	"github.com/pkg/errors"

	"github.com/evoforge/neatcore"
	"github.com/evoforge/neatcore/activation"
)

// Validate checks that every mutation percentage is within [0, 100], that
// the kill and mutate-only fractions are within [0, 1], that the population
// size and layout are positive, that the output activation name resolves,
// and that the hidden activation name resolves when it is set, returning
// the first violation found.
func (o *Options) Validate() error {
	if o.PopulationSize <= 0 {
		return errors.New("pop_size must be positive")
	}
	if o.Layout.NumInputs <= 0 || o.Layout.NumOutputs <= 0 {
		return errors.New("layout must specify at least one input and one output")
	}
	if _, err := activation.FromName(o.Layout.OutputActivation); err != nil {
		return errors.Wrap(err, "output_activation")
	}
	if o.HiddenActivation != "" {
		if _, err := activation.FromName(o.HiddenActivation); err != nil {
			return errors.Wrap(err, "hidden_activation")
		}
	}

	percentages := map[string]int{
		"mutate_link_weights_prob": o.MutateWeightPct,
		"weight_mut_reset_prob":    o.RngResetPct,
		"mutate_add_node_prob":     o.AddNodePct,
		"mutate_add_link_prob":     o.AddConnectionPct,
	}
	for name, p := range percentages {
		if err := neatcore.CheckPercent(p); err != nil {
			return errors.Wrap(err, name)
		}
	}
	if o.KillPercent < 0 || o.KillPercent > 1 {
		return errors.New("survival_kill_percent must be in [0, 1]")
	}
	if o.MutationPercent < 0 || o.MutationPercent > 1 {
		return errors.New("mutate_only_percent must be in [0, 1]")
	}
	return nil
}
