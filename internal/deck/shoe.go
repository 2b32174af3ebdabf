package deck

import (
	rand "math/rand/v2"
)

// Shuffle point bounds as a percentage of the full shoe size. When the
// remaining card count falls to or below the (randomized) shuffle point
// the shoe must be rebuilt before the next round.
const (
	shufflePointMinPct = 15
	shufflePointMaxPct = 20
)

// Shoe is a multi-deck dealing shoe. Cards are dealt from the top until
// the depletion check trips, at which point the whole shoe is rebuilt
// and re-shuffled; a shuffle never operates on a partial remainder.
type Shoe struct {
	cards        []Card
	rng          *rand.Rand
	numDecks     int
	shufflePoint int
}

// NewShoe creates a shoe holding numDecks full 52-card decks, already
// shuffled and ready to deal.
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	s := &Shoe{
		cards:    make([]Card, 0, numDecks*52),
		rng:      rng,
		numDecks: numDecks,
	}
	s.Shuffle()
	return s
}

// Shuffle discards whatever remains, rebuilds all decks, picks a new
// shuffle point uniformly in [15%, 20%] of the full shoe size (integer
// truncation on both bounds), and applies a Fisher-Yates permutation.
func (s *Shoe) Shuffle() {
	s.cards = s.cards[:0]
	for d := 0; d < s.numDecks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Ace; rank <= King; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}

	lo := s.Size() * shufflePointMinPct / 100
	hi := s.Size() * shufflePointMaxPct / 100
	s.shufflePoint = lo + s.rng.IntN(hi-lo+1)

	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// NeedsShuffle reports whether the shoe has been depleted to its shuffle
// point. Checked before the first deal of a round, never mid-round.
func (s *Shoe) NeedsShuffle() bool {
	return len(s.cards) <= s.shufflePoint
}

// Deal removes and returns the top card. The second return is false when
// the shoe is empty; callers stop dealing for the round rather than fail.
func (s *Shoe) Deal() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card, true
}

// Remaining returns the number of undealt cards.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Size returns the full constructed shoe size (numDecks x 52).
func (s *Shoe) Size() int {
	return s.numDecks * 52
}

// ShufflePoint returns the current reshuffle threshold.
func (s *Shoe) ShufflePoint() int {
	return s.shufflePoint
}
