package deck

import "testing"

func TestBasicValue(t *testing.T) {
	tests := []struct {
		name     string
		card     Card
		expected int
	}{
		{name: "ace counts eleven", card: NewCard(Spades, Ace), expected: 11},
		{name: "deuce", card: NewCard(Hearts, Two), expected: 2},
		{name: "nine", card: NewCard(Clubs, Nine), expected: 9},
		{name: "ten", card: NewCard(Diamonds, Ten), expected: 10},
		{name: "jack folds to ten", card: NewCard(Spades, Jack), expected: 10},
		{name: "queen folds to ten", card: NewCard(Hearts, Queen), expected: 10},
		{name: "king folds to ten", card: NewCard(Clubs, King), expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.BasicValue(); got != tt.expected {
				t.Errorf("BasicValue(%s) = %d, want %d", tt.card, got, tt.expected)
			}
		})
	}
}

func TestIsAce(t *testing.T) {
	if !NewCard(Spades, Ace).IsAce() {
		t.Error("expected A♠ to be an ace")
	}
	if NewCard(Spades, King).IsAce() {
		t.Error("expected K♠ not to be an ace")
	}
}

func TestIsFaceCard(t *testing.T) {
	for _, r := range []Rank{Jack, Queen, King} {
		if !NewCard(Hearts, r).IsFaceCard() {
			t.Errorf("expected %s to be a face card", r)
		}
	}
	for _, r := range []Rank{Ace, Two, Ten} {
		if NewCard(Hearts, r).IsFaceCard() {
			t.Errorf("expected %s not to be a face card", r)
		}
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "T♥"},
		{NewCard(Diamonds, Queen), "Q♦"},
		{NewCard(Clubs, Seven), "7♣"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}
