package config

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/evoforge/neatcore"
)

// LoadYAMLOptions reads and validates a full Options value encoded as YAML,
// also initializing the process-wide log level from opts.LogLevel.
func LoadYAMLOptions(r io.Reader) (*Options, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read NEAT options")
	}

	var opts Options
	if err := yaml.Unmarshal(content, &opts); err != nil {
		return nil, errors.Wrap(err, "failed to decode NEAT options from YAML")
	}

	if opts.LogLevel != "" {
		if err := neatcore.InitLogger(opts.LogLevel); err != nil {
			return nil, errors.Wrap(err, "failed to initialize logger")
		}
	}

	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid NEAT options")
	}
	return &opts, nil
}

// LoadFlatOptions reads options from a plain-text "name value" stream,
// one pair per line. Unrecognized names are ignored.
func LoadFlatOptions(r io.Reader) (*Options, error) {
	opts := &Options{}
	var name, param string
	for {
		_, err := fmt.Fscanf(r, "%s %v\n", &name, &param)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "failed to parse NEAT options")
		}
		switch name {
		case "log_level":
			opts.LogLevel = param
		case "pop_size":
			opts.PopulationSize = cast.ToInt(param)
		case "num_inputs":
			opts.Layout.NumInputs = cast.ToInt(param)
		case "num_outputs":
			opts.Layout.NumOutputs = cast.ToInt(param)
		case "output_activation":
			opts.Layout.OutputActivation = param
		case "hidden_activation":
			opts.HiddenActivation = param
		case "compat_threshold":
			opts.CompatThreshold = cast.ToFloat64(param)
		case "excess_coeff":
			opts.C1ExcessCoeff = cast.ToFloat64(param)
		case "disjoint_coeff":
			opts.C2DisjointCoeff = cast.ToFloat64(param)
		case "mutdiff_coeff":
			opts.C3WeightDiffCoeff = cast.ToFloat64(param)
		case "compat_normalize_threshold":
			opts.CompatNormThresh = cast.ToInt(param)
		case "dropoff_age":
			opts.StagnationGenLimit = cast.ToInt(param)
		case "survival_kill_percent":
			opts.KillPercent = cast.ToFloat64(param)
		case "mutate_only_percent":
			opts.MutationPercent = cast.ToFloat64(param)
		case "mutate_link_weights_prob":
			opts.MutateWeightPct = cast.ToInt(param)
		case "weight_mut_reset_prob":
			opts.RngResetPct = cast.ToInt(param)
		case "mutate_add_node_prob":
			opts.AddNodePct = cast.ToInt(param)
		case "mutate_add_link_prob":
			opts.AddConnectionPct = cast.ToInt(param)
		case "newlink_tries":
			opts.AddConnectionTries = cast.ToInt(param)
		}
	}

	if opts.LogLevel != "" {
		if err := neatcore.InitLogger(opts.LogLevel); err != nil {
			return nil, errors.Wrap(err, "failed to initialize logger")
		}
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid NEAT options")
	}
	return opts, nil
}
