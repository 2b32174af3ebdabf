package game

import (
	"errors"
	"testing"

	"github.com/lox/blackjacksim/internal/deck"
)

func card(r deck.Rank) deck.Card {
	return deck.NewCard(deck.Spades, r)
}

func handOf(ranks ...deck.Rank) *Hand {
	h := &Hand{}
	for _, r := range ranks {
		h.Cards = append(h.Cards, card(r))
	}
	return h
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []deck.Rank
		expected int
	}{
		{name: "natural", ranks: []deck.Rank{deck.Ace, deck.King}, expected: 21},
		{name: "hard twenty", ranks: []deck.Rank{deck.Ten, deck.Queen}, expected: 20},
		{name: "two aces", ranks: []deck.Rank{deck.Ace, deck.Ace}, expected: 12},
		{name: "aces revalue one at a time", ranks: []deck.Rank{deck.Ace, deck.Ace, deck.Nine}, expected: 21},
		{name: "three aces and eight", ranks: []deck.Rank{deck.Ace, deck.Ace, deck.Ace, deck.Eight}, expected: 21},
		{name: "ace stays eleven when safe", ranks: []deck.Rank{deck.Ace, deck.Six}, expected: 17},
		{name: "ace drops to one on bust", ranks: []deck.Rank{deck.Ace, deck.Six, deck.Ten}, expected: 17},
		{name: "bust", ranks: []deck.Rank{deck.Ten, deck.Nine, deck.Five}, expected: 24},
		{name: "empty", ranks: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handOf(tt.ranks...).Value(); got != tt.expected {
				t.Errorf("Value() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestHardTotal(t *testing.T) {
	if got := handOf(deck.Ace, deck.Seven).HardTotal(); got != 8 {
		t.Errorf("HardTotal(A,7) = %d, want 8", got)
	}
	if got := handOf(deck.Ten, deck.Nine).HardTotal(); got != 19 {
		t.Errorf("HardTotal(T,9) = %d, want 19", got)
	}
}

func TestIsSoft(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []deck.Rank
		expected bool
	}{
		{name: "ace six is soft", ranks: []deck.Rank{deck.Ace, deck.Six}, expected: true},
		{name: "pair of aces is soft", ranks: []deck.Rank{deck.Ace, deck.Ace}, expected: true},
		{name: "revalued ace is hard", ranks: []deck.Rank{deck.Ace, deck.Six, deck.Ten}, expected: false},
		{name: "no ace is hard", ranks: []deck.Rank{deck.Ten, deck.Seven}, expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handOf(tt.ranks...).IsSoft(); got != tt.expected {
				t.Errorf("IsSoft() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBlackjackAndBustExclusive(t *testing.T) {
	bj := handOf(deck.Ace, deck.Queen)
	if !bj.IsBlackjack() {
		t.Error("expected A,Q to be blackjack")
	}
	if bj.IsBust() {
		t.Error("blackjack reported as bust")
	}

	bust := handOf(deck.Ten, deck.Nine, deck.Five)
	if !bust.IsBust() {
		t.Error("expected 24 to be bust")
	}
	if bust.IsBlackjack() {
		t.Error("bust reported as blackjack")
	}

	// Three-card 21 is not a natural.
	if handOf(deck.Seven, deck.Seven, deck.Seven).IsBlackjack() {
		t.Error("three-card 21 reported as blackjack")
	}
}

func TestBlackjackExcludesSplitHands(t *testing.T) {
	h := handOf(deck.Ace, deck.King)
	h.Split = true
	if h.IsBlackjack() {
		t.Error("post-split two-card 21 must not count as blackjack")
	}
	if h.Value() != 21 {
		t.Errorf("Value() = %d, want 21", h.Value())
	}
}

func TestStrategyKey(t *testing.T) {
	tests := []struct {
		name     string
		hand     *Hand
		expected int
	}{
		{name: "pair of eights", hand: handOf(deck.Eight, deck.Eight), expected: 208},
		{name: "pair of aces", hand: handOf(deck.Ace, deck.Ace), expected: 201},
		{name: "pair of kings caps at ten", hand: handOf(deck.King, deck.King), expected: 210},
		{name: "soft seventeen", hand: handOf(deck.Ace, deck.Six), expected: 106},
		{name: "soft with face caps at ten", hand: handOf(deck.Ace, deck.Queen), expected: 110},
		{name: "hard nineteen", hand: handOf(deck.Ten, deck.Nine), expected: 19},
		{name: "multi-card soft uses hard total", hand: handOf(deck.Ace, deck.Two, deck.Three), expected: 6},
		{name: "king queen is not a pair", hand: handOf(deck.King, deck.Queen), expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hand.StrategyKey(); got != tt.expected {
				t.Errorf("StrategyKey() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestDealerUpKey(t *testing.T) {
	if got := DealerUpKey(card(deck.Ace)); got != 1 {
		t.Errorf("DealerUpKey(A) = %d, want 1", got)
	}
	if got := DealerUpKey(card(deck.Jack)); got != 10 {
		t.Errorf("DealerUpKey(J) = %d, want 10", got)
	}
	if got := DealerUpKey(card(deck.Seven)); got != 7 {
		t.Errorf("DealerUpKey(7) = %d, want 7", got)
	}
}

func TestSplit(t *testing.T) {
	hs := NewHands(25)
	_ = hs.AddCard(0, card(deck.Eight))
	_ = hs.AddCard(0, card(deck.Eight))

	if !hs.CanSplit(0) {
		t.Fatal("expected pair of eights to be splittable")
	}
	if err := hs.Split(0); err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	if len(hs) != 2 {
		t.Fatalf("expected 2 hands after split, got %d", len(hs))
	}
	for i, h := range hs {
		if !h.Split {
			t.Errorf("hand %d not marked split", i)
		}
		if h.Bet != 25 {
			t.Errorf("hand %d bet = %d, want inherited 25", i, h.Bet)
		}
		if len(h.Cards) != 1 {
			t.Errorf("hand %d has %d cards, want 1", i, len(h.Cards))
		}
	}

	// Even if a later hit re-forms a pair, a split hand cannot split again.
	_ = hs.AddCard(0, card(deck.Eight))
	if hs.CanSplit(0) {
		t.Error("split hand reported splittable again")
	}
	if err := hs.Split(0); !errors.Is(err, ErrNotSplittable) {
		t.Errorf("Split on split hand = %v, want ErrNotSplittable", err)
	}

	// The re-split rule variant goes through Resplit instead.
	if err := hs.Resplit(0); err != nil {
		t.Errorf("Resplit on re-formed pair failed: %v", err)
	}
}

func TestSplitRequiresPair(t *testing.T) {
	hs := NewHands(10)
	_ = hs.AddCard(0, card(deck.Eight))
	_ = hs.AddCard(0, card(deck.Nine))

	if hs.CanSplit(0) {
		t.Error("non-pair reported splittable")
	}
	if err := hs.Split(0); !errors.Is(err, ErrNotSplittable) {
		t.Errorf("Split = %v, want ErrNotSplittable", err)
	}
}

func TestSetDoubled(t *testing.T) {
	hs := NewHands(15)
	if err := hs.SetDoubled(0); err != nil {
		t.Fatalf("SetDoubled failed: %v", err)
	}
	if !hs[0].Doubled {
		t.Error("hand not marked doubled")
	}
	if hs[0].Bet != 30 {
		t.Errorf("bet = %d, want 30 after doubling", hs[0].Bet)
	}
}

func TestHandIndexErrors(t *testing.T) {
	hs := NewHands(10)
	if err := hs.AddCard(1, card(deck.Two)); !errors.Is(err, ErrHandIndex) {
		t.Errorf("AddCard(1) = %v, want ErrHandIndex", err)
	}
	if err := hs.SetDoubled(-1); !errors.Is(err, ErrHandIndex) {
		t.Errorf("SetDoubled(-1) = %v, want ErrHandIndex", err)
	}
	if err := hs.Split(3); !errors.Is(err, ErrHandIndex) {
		t.Errorf("Split(3) = %v, want ErrHandIndex", err)
	}
}

func TestTotalBet(t *testing.T) {
	hs := NewHands(10)
	_ = hs.AddCard(0, card(deck.Eight))
	_ = hs.AddCard(0, card(deck.Eight))
	_ = hs.Split(0)
	_ = hs.SetDoubled(1)

	if got := hs.TotalBet(); got != 30 {
		t.Errorf("TotalBet() = %d, want 30", got)
	}
}
