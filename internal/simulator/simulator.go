// Package simulator repeats the round engine across batches of hands
// and attempts, enforcing the bankroll stop conditions.
package simulator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjacksim/internal/betting"
	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/lox/blackjacksim/internal/strategy"
)

// Config holds everything one simulation run needs.
type Config struct {
	Hands         int
	Attempts      int
	Bankroll      int
	TableMinimum  int
	Decks         int
	Policy        betting.Policy
	QuitThreshold int // 0 disables the walk-away ceiling
	Seed          string
	Rules         game.Rules
	Table         *strategy.Table
	Logger        *log.Logger
}

// Validate rejects configurations the engine cannot honour. These are
// fatal: they originate from the user, not from play.
func (c Config) Validate() error {
	if c.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", c.Hands)
	}
	if c.Attempts <= 0 {
		return fmt.Errorf("attempts must be positive, got %d", c.Attempts)
	}
	if c.Decks != 2 && c.Decks != 6 {
		return fmt.Errorf("decks must be 2 or 6, got %d", c.Decks)
	}
	if c.TableMinimum <= 0 {
		return fmt.Errorf("table minimum must be positive, got %d", c.TableMinimum)
	}
	if c.Bankroll < c.TableMinimum {
		return fmt.Errorf("starting bankroll %d cannot cover the table minimum %d", c.Bankroll, c.TableMinimum)
	}
	return nil
}

// AttemptSummary is the per-attempt aggregate consumed by the results
// exporter.
type AttemptSummary struct {
	Attempt          int
	HandsPlayed      int
	Wins             int
	Losses           int
	Pushes           int
	MaxBet           int
	Net              int
	FinalBankroll    int
	StartingBankroll int
	Busted           bool
	HitQuitThreshold bool
}

// Runner repeats rounds across attempts.
type Runner struct {
	config Config
}

// New creates a runner for the given configuration.
func New(config Config) *Runner {
	return &Runner{config: config}
}

// Run plays every attempt and returns their summaries in attempt order.
// Attempts are independent (each owns its shoe, engine and betting
// state) so they execute concurrently; rounds within an attempt stay
// strictly sequential.
func (r *Runner) Run(ctx context.Context) ([]AttemptSummary, error) {
	if err := r.config.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]AttemptSummary, r.config.Attempts)
	g, ctx := errgroup.WithContext(ctx)
	for attempt := 0; attempt < r.config.Attempts; attempt++ {
		g.Go(func() error {
			summary, err := r.runAttempt(ctx, attempt)
			if err != nil {
				return fmt.Errorf("attempt %d: %w", attempt, err)
			}
			summaries[attempt] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// runAttempt plays up to Hands rounds for one attempt.
func (r *Runner) runAttempt(ctx context.Context, attempt int) (AttemptSummary, error) {
	cfg := r.config
	logger := cfg.Logger.With("attempt", attempt)

	rng := randutil.ForRun(cfg.Seed, attempt)
	shoe := deck.NewShoe(cfg.Decks, rng)
	engine := game.NewEngine(shoe, cfg.Table, cfg.Rules, cfg.Policy, cfg.TableMinimum)
	state := betting.NewState(cfg.Bankroll, cfg.TableMinimum)

	summary := AttemptSummary{
		Attempt:          attempt,
		StartingBankroll: cfg.Bankroll,
	}

	for hand := 0; hand < cfg.Hands; hand++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if state.Bankroll < cfg.TableMinimum {
			summary.Busted = true
			logger.Debug("bankroll below table minimum, stopping", "bankroll", state.Bankroll)
			break
		}
		if cfg.QuitThreshold > 0 && state.Bankroll >= cfg.QuitThreshold {
			summary.HitQuitThreshold = true
			logger.Debug("quit threshold reached, stopping", "bankroll", state.Bankroll)
			break
		}

		result, err := engine.PlayRound(state)
		if err != nil {
			return summary, err
		}
		summary.HandsPlayed++

		for _, sub := range result.Hands {
			logger.Info("hand settled",
				"hand", hand,
				"subhand", sub.Index,
				"result", sub.Outcome.String(),
				"doubled", sub.Doubled,
				"split", sub.Split,
				"blackjack", sub.Blackjack,
				"bet", sub.Bet,
				"winnings", sub.Winnings,
				"bankroll", state.Bankroll,
				"player", sub.PlayerValue,
				"dealer", result.DealerValue,
			)
		}

		if state.Bankroll <= 0 {
			summary.Busted = true
			logger.Debug("bankroll exhausted, stopping")
			break
		}
	}

	summary.Wins = state.Wins
	summary.Losses = state.Losses
	summary.Pushes = state.Pushes
	summary.MaxBet = state.MaxBet
	summary.FinalBankroll = state.Bankroll
	summary.Net = state.Bankroll - cfg.Bankroll

	return summary, nil
}
