// Package results exports per-attempt summaries as a delimited file.
package results

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/lox/blackjacksim/internal/fileutil"
	"github.com/lox/blackjacksim/internal/simulator"
)

// Write renders one row per attempt and writes the file atomically so a
// crashed run never leaves a truncated export behind. runID tags every
// row so exports from repeated runs can be concatenated later.
func Write(path, runID string, summaries []simulator.AttemptSummary) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"run_id", "attempt", "hands_played", "wins", "losses", "pushes",
		"max_bet", "net", "final_bankroll", "starting_bankroll", "busted", "quit_rich",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing results header: %w", err)
	}

	for _, s := range summaries {
		row := []string{
			runID,
			strconv.Itoa(s.Attempt),
			strconv.Itoa(s.HandsPlayed),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Pushes),
			strconv.Itoa(s.MaxBet),
			strconv.Itoa(s.Net),
			strconv.Itoa(s.FinalBankroll),
			strconv.Itoa(s.StartingBankroll),
			strconv.FormatBool(s.Busted),
			strconv.FormatBool(s.HitQuitThreshold),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing results row %d: %w", s.Attempt, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing results: %w", err)
	}

	return fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644)
}
