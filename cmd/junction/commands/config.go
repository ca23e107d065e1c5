package commands

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// runConfig is the YAML run file. Zero values leave the flag defaults alone.
//
//	ranker: kdtree
//	check: all
//	axis: 0
//	output: yaml
//	edges: 1000
//	components: 3
//	budget: 0
type runConfig struct {
	Ranker     string `yaml:"ranker,omitempty"`
	Check      string `yaml:"check,omitempty"`
	Axis       *int   `yaml:"axis,omitempty"`
	Output     string `yaml:"output,omitempty"`
	Edges      int    `yaml:"edges,omitempty"`
	Components int    `yaml:"components,omitempty"`
	Budget     int    `yaml:"budget,omitempty"`
}

func loadRunConfig(path string) (*runConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}

	var cfg runConfig
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse run file %s: %w", path, err)
	}

	return &cfg, nil
}

// apply copies file values into a for every flag not set on the command line.
// Subcommand-local values (edges, components, budget) are applied by setFlagDefault.
func (a *app) apply(cfg *runConfig, cmd *cobra.Command) {
	flags := cmd.Flags()
	if cfg.Ranker != "" && !flags.Changed("ranker") {
		a.rankerName = cfg.Ranker
	}
	if cfg.Check != "" && !flags.Changed("check") {
		a.check = cfg.Check
	}
	if cfg.Axis != nil && !flags.Changed("axis") {
		a.axis = *cfg.Axis
	}
	if cfg.Output != "" && !flags.Changed("output") {
		a.output = cfg.Output
	}
	setFlagDefault(cmd, "edges", cfg.Edges)
	setFlagDefault(cmd, "components", cfg.Components)
	setFlagDefault(cmd, "budget", cfg.Budget)
}

// setFlagDefault sets an int flag of cmd from the run file unless the user
// passed it explicitly or the command has no such flag.
func setFlagDefault(cmd *cobra.Command, name string, v int) {
	f := cmd.Flags().Lookup(name)
	if f == nil || f.Changed || v == 0 {
		return
	}
	_ = f.Value.Set(fmt.Sprint(v))
}
