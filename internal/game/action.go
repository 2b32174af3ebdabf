package game

// Action is a player decision from the strategy table. The zero value
// is Stand, which is also the engine's fallback for unmapped lookups:
// an incomplete table can never cause an unbounded hit loop.
type Action int

const (
	Stand Action = iota
	Hit
	DoubleDown
	SplitPair
)

// String returns the action letter used in strategy tables
func (a Action) String() string {
	switch a {
	case Stand:
		return "S"
	case Hit:
		return "H"
	case DoubleDown:
		return "D"
	case SplitPair:
		return "P"
	default:
		return "?"
	}
}

// Rules collects the table-rule variants the engine honours. The final
// payout conventions are fixed; only the split/double eligibility rules
// vary between casinos, so they are configuration.
type Rules struct {
	// ResplitPairs allows a hand produced by a split to be split again.
	ResplitPairs bool
	// DoubleAfterSplit allows doubling down on a post-split hand.
	DoubleAfterSplit bool
	// DealerHitsSoft17 makes the dealer hit a soft 17 instead of standing.
	DealerHitsSoft17 bool
}

// DefaultRules returns the house rules the simulator assumes unless
// configured otherwise: no re-splits, no double after split, dealer
// hits soft 17.
func DefaultRules() Rules {
	return Rules{DealerHitsSoft17: true}
}
