package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjacksim/internal/simulator"
	"github.com/lox/blackjacksim/internal/statistics"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#006400")).
			Bold(true)

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

func printSummary(cfg simulator.Config, stats *statistics.Statistics, summaries []simulator.AttemptSummary, duration time.Duration) {
	fmt.Println(headerStyle.Render(fmt.Sprintf(" %d attempts × %d hands, %d-deck shoe, %s betting ",
		cfg.Attempts, cfg.Hands, cfg.Decks, cfg.Policy)))

	fmt.Printf("\nRounds played: %d (%s)\n", stats.Rounds, duration.Round(time.Millisecond))
	fmt.Printf("Outcomes: %s / %s / %d pushes\n",
		winStyle.Render(fmt.Sprintf("%d wins", stats.Wins)),
		lossStyle.Render(fmt.Sprintf("%d losses", stats.Losses)),
		stats.Pushes)
	fmt.Printf("Max bet reached: %d\n", stats.MaxBet)
	if stats.Busted > 0 {
		fmt.Printf("Attempts busted: %s\n", lossStyle.Render(fmt.Sprintf("%d", stats.Busted)))
	}
	if stats.QuitUp > 0 {
		fmt.Printf("Attempts that hit the quit threshold: %s\n", winStyle.Render(fmt.Sprintf("%d", stats.QuitUp)))
	}

	fmt.Printf("\nNet per attempt: mean %.2f, median %.2f\n", stats.Mean(), stats.Median())
	if cfg.Attempts > 1 {
		low, high := stats.ConfidenceInterval95()
		fmt.Printf("Std dev %.2f, std error %.2f, 95%% CI [%.2f, %.2f]\n",
			stats.StdDev(), stats.StdError(), low, high)
		fmt.Printf("Percentiles: P5=%.0f, P25=%.0f, P75=%.0f, P95=%.0f\n",
			stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	}

	for _, s := range summaries {
		line := fmt.Sprintf("attempt %d: %d hands, %d/%d/%d w/l/p, max bet %d, net %+d, bankroll %d -> %d",
			s.Attempt, s.HandsPlayed, s.Wins, s.Losses, s.Pushes, s.MaxBet, s.Net,
			s.StartingBankroll, s.FinalBankroll)
		fmt.Println(mutedStyle.Render(line))
	}
}
