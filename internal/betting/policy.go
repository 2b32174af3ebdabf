// Package betting holds the per-agent bankroll state and the policies
// that adjust the wager after each completed round.
package betting

import "fmt"

// Outcome is the net result of a completed round (or of one sub-hand
// within it, before aggregation).
type Outcome int

const (
	Push Outcome = iota
	Win
	Loss
)

// String returns the result label used in outcome reports
func (o Outcome) String() string {
	switch o {
	case Win:
		return "WIN"
	case Loss:
		return "LOSS"
	case Push:
		return "PUSH"
	default:
		return "?"
	}
}

// Policy selects how the bet moves after a winning round. Losses and
// pushes always reset the bet to the table minimum.
type Policy int

const (
	// Flat never changes the bet.
	Flat Policy = iota
	// IncreaseAfterWin grows the bet by one table minimum per consecutive win.
	IncreaseAfterWin
	// HighIncreaseAfterWin doubles the bet for the first two wins of a
	// streak, then grows it by half (rounded up) each further win.
	HighIncreaseAfterWin
)

// ParsePolicy maps a policy selector string to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "flat":
		return Flat, nil
	case "increase_after_win":
		return IncreaseAfterWin, nil
	case "high_increase_after_win":
		return HighIncreaseAfterWin, nil
	default:
		return Flat, fmt.Errorf("unknown betting policy %q", s)
	}
}

// String returns the selector form of the policy
func (p Policy) String() string {
	switch p {
	case Flat:
		return "flat"
	case IncreaseAfterWin:
		return "increase_after_win"
	case HighIncreaseAfterWin:
		return "high_increase_after_win"
	default:
		return "?"
	}
}

// State is the agent's betting state. Bankroll is the only field that
// persists across shoe rebuilds; Bet and WinStreak are policy state and
// the counters are cumulative for the attempt.
type State struct {
	Bankroll  int
	Bet       int
	WinStreak int
	Wins      int
	Losses    int
	Pushes    int
	MaxBet    int
}

// NewState creates betting state with the bet at the table minimum.
func NewState(bankroll, tableMinimum int) *State {
	return &State{
		Bankroll: bankroll,
		Bet:      tableMinimum,
		MaxBet:   tableMinimum,
	}
}

// Apply performs the policy transition for one completed round. A push
// ends the streak exactly like a loss: the bet resets to the table
// minimum regardless of policy.
func (s *State) Apply(p Policy, o Outcome, tableMinimum int) {
	switch o {
	case Win:
		s.Wins++
		s.WinStreak++
		switch p {
		case Flat:
		case IncreaseAfterWin:
			s.Bet += tableMinimum
		case HighIncreaseAfterWin:
			if s.WinStreak <= 2 {
				s.Bet *= 2
			} else {
				s.Bet += (s.Bet + 1) / 2
			}
		}
	case Loss:
		s.Losses++
		s.WinStreak = 0
		s.Bet = tableMinimum
	case Push:
		s.Pushes++
		s.WinStreak = 0
		s.Bet = tableMinimum
	}
}

// RecordWager tracks the largest bet actually placed. The engine calls
// this with the bankroll-clamped amount, so MaxBet never reports a bet
// the agent could not cover.
func (s *State) RecordWager(bet int) {
	if bet > s.MaxBet {
		s.MaxBet = bet
	}
}
