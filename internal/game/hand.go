package game

import (
	"errors"

	"github.com/lox/blackjacksim/internal/deck"
)

var (
	// ErrHandIndex indicates an out-of-range sub-hand index. This is a
	// caller bug, not a game-rule edge case.
	ErrHandIndex = errors.New("sub-hand index out of range")
	// ErrNotSplittable indicates a split was requested on a hand that
	// cannot be split.
	ErrNotSplittable = errors.New("hand is not splittable")
)

// Hand is one betting unit: an ordered run of cards plus its stake and
// the split/doubled flags.
type Hand struct {
	Cards   []deck.Card
	Bet     int
	Split   bool
	Doubled bool
}

// Value returns the best blackjack total: Aces start at 11 and are
// down-valued to 1 one at a time while the total busts.
func (h *Hand) Value() int {
	total := 0
	aces := 0
	for _, c := range h.Cards {
		total += c.BasicValue()
		if c.IsAce() {
			aces++
		}
	}
	for aces > 0 && total > 21 {
		total -= 10
		aces--
	}
	return total
}

// HardTotal returns the total with every Ace valued at 1.
func (h *Hand) HardTotal() int {
	total := 0
	for _, c := range h.Cards {
		if c.IsAce() {
			total++
		} else {
			total += c.BasicValue()
		}
	}
	return total
}

// IsSoft reports whether an Ace is still counted as 11 without busting.
func (h *Hand) IsSoft() bool {
	hasAce := false
	for _, c := range h.Cards {
		if c.IsAce() {
			hasAce = true
			break
		}
	}
	return hasAce && h.Value() <= 21 && h.Value() == h.HardTotal()+10
}

// IsBlackjack reports a natural: exactly two cards totalling 21, on a
// hand that was never split. A post-split two-card 21 pays as an
// ordinary win.
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && !h.Split && h.Value() == 21
}

// IsBust reports whether the hand total exceeds 21.
func (h *Hand) IsBust() bool {
	return h.Value() > 21
}

// IsPair reports exactly two cards of equal rank.
func (h *Hand) IsPair() bool {
	return len(h.Cards) == 2 && h.Cards[0].Rank == h.Cards[1].Rank
}

// cappedRank folds face cards to 10 for strategy indexing.
func cappedRank(c deck.Card) int {
	if c.Rank > deck.Ten {
		return 10
	}
	return int(c.Rank)
}

// StrategyKey encodes the hand's decision-relevant category. Pairs map
// to 200 + rank (Ace pair = 201, faces capped to 10), soft two-card
// hands to 100 + the non-Ace rank, and everything else to the hard
// total. The key deliberately differs from the raw total so the
// decision table can distinguish 8-8 from hard 16.
func (h *Hand) StrategyKey() int {
	if h.IsPair() {
		return 200 + cappedRank(h.Cards[0])
	}
	if len(h.Cards) == 2 && h.IsSoft() {
		other := h.Cards[0]
		if other.IsAce() {
			other = h.Cards[1]
		}
		return 100 + cappedRank(other)
	}
	return h.HardTotal()
}

// DealerUpKey returns the strategy column for a dealer up-card: Ace is
// 1, faces fold to 10.
func DealerUpKey(c deck.Card) int {
	if c.IsAce() {
		return 1
	}
	return cappedRank(c)
}

// Hands is the player's ordered collection of sub-hands for one round.
// Splitting appends siblings, so hands created late in a pass are still
// visited by index iteration.
type Hands []*Hand

// NewHands creates the round's initial empty hand carrying the bet.
func NewHands(bet int) Hands {
	return Hands{&Hand{Bet: bet}}
}

// AddCard appends a card to the addressed sub-hand.
func (hs Hands) AddCard(i int, c deck.Card) error {
	if i < 0 || i >= len(hs) {
		return ErrHandIndex
	}
	hs[i].Cards = append(hs[i].Cards, c)
	return nil
}

// CanSplit reports whether the addressed sub-hand holds exactly two
// cards of equal rank and has not already been split.
func (hs Hands) CanSplit(i int) bool {
	if i < 0 || i >= len(hs) {
		return false
	}
	return hs[i].IsPair() && !hs[i].Split
}

// Split moves the second card of sub-hand i into a new sibling hand
// carrying the same bet, marking both as split. The caller must then
// deal one fresh card to each before play resumes.
func (hs *Hands) Split(i int) error {
	if !hs.CanSplit(i) {
		if i < 0 || i >= len(*hs) {
			return ErrHandIndex
		}
		return ErrNotSplittable
	}
	return hs.splitAt(i)
}

// Resplit is the rule-variant form: it allows splitting a hand that is
// itself the product of an earlier split, but still requires a two-card
// pair.
func (hs *Hands) Resplit(i int) error {
	if i < 0 || i >= len(*hs) {
		return ErrHandIndex
	}
	if !(*hs)[i].IsPair() {
		return ErrNotSplittable
	}
	return hs.splitAt(i)
}

func (hs *Hands) splitAt(i int) error {
	orig := (*hs)[i]
	sibling := &Hand{
		Cards: []deck.Card{orig.Cards[1]},
		Bet:   orig.Bet,
		Split: true,
	}
	orig.Cards = orig.Cards[:1]
	orig.Split = true
	*hs = append(*hs, sibling)
	return nil
}

// SetDoubled marks the addressed sub-hand doubled and doubles its bet in
// place. This is bookkeeping only: the caller must already have charged
// the additional stake against the bankroll.
func (hs Hands) SetDoubled(i int) error {
	if i < 0 || i >= len(hs) {
		return ErrHandIndex
	}
	hs[i].Doubled = true
	hs[i].Bet *= 2
	return nil
}

// TotalBet sums the bets across all sub-hands.
func (hs Hands) TotalBet() int {
	total := 0
	for _, h := range hs {
		total += h.Bet
	}
	return total
}
