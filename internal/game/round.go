package game

import (
	"fmt"

	"github.com/lox/blackjacksim/internal/betting"
	"github.com/lox/blackjacksim/internal/deck"
)

// CardSource is the engine's view of the shoe.
type CardSource interface {
	Deal() (deck.Card, bool)
	NeedsShuffle() bool
	Shuffle()
}

// Decider resolves a (player strategy key, dealer up-card rank) pair to
// an action. Implemented by strategy.Table.
type Decider interface {
	Action(playerKey, dealerUp int) Action
}

// SubHandResult is the settled outcome of one betting unit.
type SubHandResult struct {
	Index       int
	Outcome     betting.Outcome
	Bet         int
	Winnings    int // amount returned to the bankroll (stake included)
	Doubled     bool
	Split       bool
	Blackjack   bool
	PlayerValue int
}

// RoundResult reports one completed round across all sub-hands.
type RoundResult struct {
	Outcome         betting.Outcome
	Wager           int // bankroll-clamped opening bet
	TotalWagered    int
	Winnings        int
	Net             int
	DealerValue     int
	DealerBlackjack bool
	Shuffled        bool
	Hands           []SubHandResult
}

// Engine plays rounds one at a time against a single shoe. It owns no
// state between rounds beyond the shoe it was given; bankroll and bet
// live in the betting state passed to PlayRound.
type Engine struct {
	shoe     CardSource
	decider  Decider
	rules    Rules
	policy   betting.Policy
	tableMin int
}

// NewEngine creates a round engine.
func NewEngine(shoe CardSource, decider Decider, rules Rules, policy betting.Policy, tableMinimum int) *Engine {
	return &Engine{
		shoe:     shoe,
		decider:  decider,
		rules:    rules,
		policy:   policy,
		tableMin: tableMinimum,
	}
}

// PlayRound runs one full deal-play-settle cycle and applies the result
// to the betting state. Shoe exhaustion mid-round is handled locally by
// ending the affected hand's action; an error indicates an engine bug.
func (e *Engine) PlayRound(state *betting.State) (*RoundResult, error) {
	result := &RoundResult{}

	if e.shoe.NeedsShuffle() {
		e.shoe.Shuffle()
		result.Shuffled = true
	}

	// The clamp is per-round only: the policy's tracked bet is not
	// permanently reduced by a short bankroll.
	bet := state.Bet
	if state.Bankroll < bet {
		bet = state.Bankroll
	}
	state.Bankroll -= bet
	state.RecordWager(bet)
	result.Wager = bet

	hands := NewHands(bet)
	dealer := &Hand{}

	// Strict alternation: player, dealer, player, dealer. The order is
	// load-bearing for card-count reproducibility even though it does
	// not affect totals.
	for i := 0; i < 2; i++ {
		if c, ok := e.shoe.Deal(); ok {
			_ = hands.AddCard(0, c)
		} else {
			break
		}
		if c, ok := e.shoe.Deal(); ok {
			dealer.Cards = append(dealer.Cards, c)
		} else {
			break
		}
	}

	dealerUp := 0
	if len(dealer.Cards) > 0 {
		dealerUp = DealerUpKey(dealer.Cards[0])
	}

	// Split siblings are appended and picked up later in this same
	// pass, so the loop bound is re-read each iteration.
	for i := 0; i < len(hands); i++ {
		if err := e.playHand(&hands, i, dealerUp, state); err != nil {
			return nil, err
		}
	}

	e.playDealer(dealer, hands)

	e.settle(result, hands, dealer)

	state.Bankroll += result.Winnings
	state.Apply(e.policy, result.Outcome, e.tableMin)

	return result, nil
}

// playHand drives one sub-hand to completion against the strategy table.
func (e *Engine) playHand(hands *Hands, i int, dealerUp int, state *betting.State) error {
	for (*hands)[i].Value() < 21 {
		hand := (*hands)[i]
		action := e.decider.Action(hand.StrategyKey(), dealerUp)

		switch action {
		case Stand:
			return nil

		case Hit:
			if !e.hitOnce(hands, i) {
				return nil
			}

		case DoubleDown:
			if hand.Split && !e.rules.DoubleAfterSplit {
				// Ineligible double plays as a hit.
				if !e.hitOnce(hands, i) {
					return nil
				}
				continue
			}
			if state.Bankroll >= hand.Bet {
				state.Bankroll -= hand.Bet
				if err := hands.SetDoubled(i); err != nil {
					return err
				}
			}
			// One card and done, whether or not the extra stake could
			// be charged.
			e.hitOnce(hands, i)
			return nil

		case SplitPair:
			if !e.trySplit(hands, i, state) {
				// Ineligible or unaffordable split plays as a hit.
				if !e.hitOnce(hands, i) {
					return nil
				}
			}

		default:
			return fmt.Errorf("unhandled action %v for key %d vs %d", action, hand.StrategyKey(), dealerUp)
		}
	}
	return nil
}

// hitOnce deals one card to sub-hand i. Returns false when the shoe is
// empty, which ends the hand's action without marking it bust.
func (e *Engine) hitOnce(hands *Hands, i int) bool {
	c, ok := e.shoe.Deal()
	if !ok {
		return false
	}
	// Index is loop-controlled, so AddCard cannot fail here.
	_ = hands.AddCard(i, c)
	return true
}

// trySplit performs a split when the hand is eligible and the bankroll
// covers the sibling's stake, then deals one card to each resulting
// hand. Returns false when the split could not happen.
func (e *Engine) trySplit(hands *Hands, i int, state *betting.State) bool {
	hand := (*hands)[i]
	eligible := hands.CanSplit(i) || (e.rules.ResplitPairs && hand.IsPair())
	if !eligible || state.Bankroll < hand.Bet {
		return false
	}

	state.Bankroll -= hand.Bet
	var err error
	if hand.Split {
		err = hands.Resplit(i)
	} else {
		err = hands.Split(i)
	}
	if err != nil {
		// Eligibility was checked above; refund and fall back to a hit.
		state.Bankroll += hand.Bet
		return false
	}

	e.hitOnce(hands, i)
	e.hitOnce(hands, len(*hands)-1)
	return true
}

// playDealer runs the dealer hand: hit below 17, hit soft 17 under the
// default rules, stand otherwise. The dealer only plays when at least
// one player sub-hand is still live.
func (e *Engine) playDealer(dealer *Hand, hands Hands) {
	anyLive := false
	for _, h := range hands {
		if !h.IsBust() {
			anyLive = true
			break
		}
	}
	if !anyLive {
		return
	}

	for {
		v := dealer.Value()
		if v < 17 || (v == 17 && dealer.IsSoft() && e.rules.DealerHitsSoft17) {
			c, ok := e.shoe.Deal()
			if !ok {
				return
			}
			dealer.Cards = append(dealer.Cards, c)
			continue
		}
		return
	}
}

// settle resolves every sub-hand independently against the dealer hand
// and aggregates the round-level outcome by majority of sub-hand
// outcomes (ties resolve to push).
func (e *Engine) settle(result *RoundResult, hands Hands, dealer *Hand) {
	dealerBust := dealer.IsBust()
	dealerBJ := dealer.IsBlackjack()
	dealerValue := dealer.Value()

	result.DealerValue = dealerValue
	result.DealerBlackjack = dealerBJ

	wins, losses := 0, 0
	for i, h := range hands {
		sub := SubHandResult{
			Index:       i,
			Bet:         h.Bet,
			Doubled:     h.Doubled,
			Split:       h.Split,
			Blackjack:   h.IsBlackjack(),
			PlayerValue: h.Value(),
		}

		switch {
		case h.IsBust():
			sub.Outcome = betting.Loss
		case dealerBust:
			sub.Outcome = betting.Win
			sub.Winnings = h.Bet + e.payout(h)
		case h.IsBlackjack() && dealerBJ:
			sub.Outcome = betting.Push
			sub.Winnings = h.Bet
		case h.IsBlackjack():
			sub.Outcome = betting.Win
			sub.Winnings = h.Bet + e.payout(h)
		case dealerBJ:
			sub.Outcome = betting.Loss
		case h.Value() > dealerValue:
			sub.Outcome = betting.Win
			sub.Winnings = h.Bet + e.payout(h)
		case h.Value() == dealerValue:
			sub.Outcome = betting.Push
			sub.Winnings = h.Bet
		default:
			sub.Outcome = betting.Loss
		}

		switch sub.Outcome {
		case betting.Win:
			wins++
		case betting.Loss:
			losses++
		}

		result.Winnings += sub.Winnings
		result.TotalWagered += h.Bet
		result.Hands = append(result.Hands, sub)
	}

	result.Net = result.Winnings - result.TotalWagered

	switch {
	case wins > losses:
		result.Outcome = betting.Win
	case losses > wins:
		result.Outcome = betting.Loss
	default:
		result.Outcome = betting.Push
	}
}

// payout returns the profit component of a winning sub-hand: 3:2 for a
// natural (integer truncation on odd stakes), even money otherwise.
func (e *Engine) payout(h *Hand) int {
	if h.IsBlackjack() {
		return h.Bet * 3 / 2
	}
	return h.Bet
}
