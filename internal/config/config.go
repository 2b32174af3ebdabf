// Package config loads run configuration from an HCL file. CLI flags
// take precedence over file values; the file supplies the baseline.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// RunConfig is the complete file-level configuration for a run. Blocks
// are pointers so an omitted block falls back to defaults instead of
// failing to decode.
type RunConfig struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Betting    *BettingSettings    `hcl:"betting,block"`
	Rules      *RulesSettings      `hcl:"rules,block"`
}

// SimulationSettings controls batch shape and reproducibility.
type SimulationSettings struct {
	Hands         int    `hcl:"hands,optional"`
	Attempts      int    `hcl:"attempts,optional"`
	Decks         int    `hcl:"decks,optional"`
	Seed          string `hcl:"seed,optional"`
	QuitThreshold int    `hcl:"quit_threshold,optional"`
	StrategyFile  string `hcl:"strategy_file,optional"`
	ResultsFile   string `hcl:"results_file,optional"`
}

// BettingSettings controls bankroll and the betting policy.
type BettingSettings struct {
	Bankroll     int    `hcl:"bankroll,optional"`
	TableMinimum int    `hcl:"table_minimum,optional"`
	Policy       string `hcl:"policy,optional"`
}

// RulesSettings are the house-rule variants. Pointers distinguish "not
// set" from an explicit false so defaults that are true survive.
type RulesSettings struct {
	ResplitPairs     *bool `hcl:"resplit_pairs,optional"`
	DoubleAfterSplit *bool `hcl:"double_after_split,optional"`
	DealerHitsSoft17 *bool `hcl:"dealer_hits_soft_17,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *RunConfig {
	return &RunConfig{
		Simulation: &SimulationSettings{
			Hands:    1000,
			Attempts: 1,
			Decks:    6,
		},
		Betting: &BettingSettings{
			Bankroll:     1000,
			TableMinimum: 10,
			Policy:       "flat",
		},
		Rules: &RulesSettings{},
	}
}

// Load reads an HCL run configuration. A missing file yields the
// defaults; a malformed file is a configuration error.
func Load(filename string) (*RunConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg RunConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for blocks and values the file omitted.
	def := Default()
	if cfg.Simulation == nil {
		cfg.Simulation = def.Simulation
	}
	if cfg.Betting == nil {
		cfg.Betting = def.Betting
	}
	if cfg.Rules == nil {
		cfg.Rules = def.Rules
	}
	if cfg.Simulation.Hands == 0 {
		cfg.Simulation.Hands = def.Simulation.Hands
	}
	if cfg.Simulation.Attempts == 0 {
		cfg.Simulation.Attempts = def.Simulation.Attempts
	}
	if cfg.Simulation.Decks == 0 {
		cfg.Simulation.Decks = def.Simulation.Decks
	}
	if cfg.Betting.Bankroll == 0 {
		cfg.Betting.Bankroll = def.Betting.Bankroll
	}
	if cfg.Betting.TableMinimum == 0 {
		cfg.Betting.TableMinimum = def.Betting.TableMinimum
	}
	if cfg.Betting.Policy == "" {
		cfg.Betting.Policy = def.Betting.Policy
	}

	return &cfg, nil
}
