package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/blackjacksim/internal/betting"
	"github.com/lox/blackjacksim/internal/config"
	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/results"
	"github.com/lox/blackjacksim/internal/simulator"
	"github.com/lox/blackjacksim/internal/statistics"
	"github.com/lox/blackjacksim/internal/strategy"
)

// RunCmd runs one simulation batch. Flag values are pointers so only
// flags the user actually set override the configuration file.
type RunCmd struct {
	Config        string  `help:"HCL run configuration file" type:"path" default:"blackjacksim.hcl"`
	Hands         *int    `help:"Hands to play per attempt"`
	Attempts      *int    `help:"Number of repeated attempts"`
	Bankroll      *int    `help:"Starting bankroll per attempt"`
	TableMin      *int    `name:"table-min" help:"Table minimum bet"`
	Decks         *int    `help:"Decks in the shoe (2 or 6)"`
	Policy        *string `help:"Betting policy: flat, increase_after_win, high_increase_after_win"`
	QuitThreshold *int    `help:"Walk away when the bankroll reaches this amount (0 disables)"`
	Seed          *string `help:"Reproducibility seed (empty for time-derived streams)"`
	Strategy      *string `help:"Strategy table file (embedded basic strategy when omitted)" type:"path"`
	Output        *string `help:"Results export file (one row per attempt)" type:"path"`
	Verbose       bool    `short:"v" help:"Log every settled hand"`
	Debug         bool    `help:"Debug logging"`
}

func (c *RunCmd) Run() error {
	logger := c.setupLogger()

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)

	policy, err := betting.ParsePolicy(cfg.Betting.Policy)
	if err != nil {
		return err
	}

	table := strategy.Default()
	if cfg.Simulation.StrategyFile != "" {
		table, err = strategy.LoadFile(cfg.Simulation.StrategyFile)
		if err != nil {
			return err
		}
	}

	simCfg := simulator.Config{
		Hands:         cfg.Simulation.Hands,
		Attempts:      cfg.Simulation.Attempts,
		Bankroll:      cfg.Betting.Bankroll,
		TableMinimum:  cfg.Betting.TableMinimum,
		Decks:         cfg.Simulation.Decks,
		Policy:        policy,
		QuitThreshold: cfg.Simulation.QuitThreshold,
		Seed:          cfg.Simulation.Seed,
		Rules:         rulesFromConfig(cfg.Rules),
		Table:         table,
		Logger:        logger,
	}

	runID := uuid.NewString()
	logger.Debug("starting run",
		"run_id", runID,
		"hands", simCfg.Hands,
		"attempts", simCfg.Attempts,
		"decks", simCfg.Decks,
		"policy", policy.String(),
		"seed", simCfg.Seed,
	)

	start := time.Now()
	summaries, err := simulator.New(simCfg).Run(context.Background())
	if err != nil {
		return err
	}
	duration := time.Since(start)

	stats := aggregate(summaries)
	if err := stats.Validate(); err != nil {
		return fmt.Errorf("statistics validation failed: %w", err)
	}
	printSummary(simCfg, stats, summaries, duration)

	if cfg.Simulation.ResultsFile != "" {
		if err := results.Write(cfg.Simulation.ResultsFile, runID, summaries); err != nil {
			return err
		}
		fmt.Printf("\nResults written to %s\n", cfg.Simulation.ResultsFile)
	}
	return nil
}

func (c *RunCmd) setupLogger() *log.Logger {
	level := log.WarnLevel
	if c.Verbose {
		level = log.InfoLevel
	}
	if c.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}

// applyOverrides layers explicitly-set flags over the file config.
func (c *RunCmd) applyOverrides(cfg *config.RunConfig) {
	if c.Hands != nil {
		cfg.Simulation.Hands = *c.Hands
	}
	if c.Attempts != nil {
		cfg.Simulation.Attempts = *c.Attempts
	}
	if c.Bankroll != nil {
		cfg.Betting.Bankroll = *c.Bankroll
	}
	if c.TableMin != nil {
		cfg.Betting.TableMinimum = *c.TableMin
	}
	if c.Decks != nil {
		cfg.Simulation.Decks = *c.Decks
	}
	if c.Policy != nil {
		cfg.Betting.Policy = *c.Policy
	}
	if c.QuitThreshold != nil {
		cfg.Simulation.QuitThreshold = *c.QuitThreshold
	}
	if c.Seed != nil {
		cfg.Simulation.Seed = *c.Seed
	}
	if c.Strategy != nil {
		cfg.Simulation.StrategyFile = *c.Strategy
	}
	if c.Output != nil {
		cfg.Simulation.ResultsFile = *c.Output
	}
}

func rulesFromConfig(rc *config.RulesSettings) game.Rules {
	rules := game.DefaultRules()
	if rc == nil {
		return rules
	}
	if rc.ResplitPairs != nil {
		rules.ResplitPairs = *rc.ResplitPairs
	}
	if rc.DoubleAfterSplit != nil {
		rules.DoubleAfterSplit = *rc.DoubleAfterSplit
	}
	if rc.DealerHitsSoft17 != nil {
		rules.DealerHitsSoft17 = *rc.DealerHitsSoft17
	}
	return rules
}

func aggregate(summaries []simulator.AttemptSummary) *statistics.Statistics {
	stats := &statistics.Statistics{}
	for _, s := range summaries {
		stats.Add(float64(s.Net))
		stats.Rounds += s.HandsPlayed
		stats.Wins += s.Wins
		stats.Losses += s.Losses
		stats.Pushes += s.Pushes
		if s.Busted {
			stats.Busted++
		}
		if s.HitQuitThreshold {
			stats.QuitUp++
		}
		if s.MaxBet > stats.MaxBet {
			stats.MaxBet = s.MaxBet
		}
	}
	return stats
}
