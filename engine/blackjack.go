package engine

import (
	"casinoclient/cards"
	"casinoclient/state"
)

// BlackjackOutcome is the completed hand pair.
type BlackjackOutcome struct {
	Player []cards.Card
	Dealer []cards.Card
}

// isNatural is a two-card 21.
func isNatural(hand []cards.Card) bool {
	if len(hand) != 2 {
		return false
	}
	t, _ := cards.BlackjackValue(hand)
	return t == 21
}

// classifyBlackjack settles the main bet. A player bust loses before
// the dealer's hand is looked at; naturals outrank made 21s.
func classifyBlackjack(b state.Bet, o BlackjackOutcome) (verdict, int64, state.Bet) {
	if b.Kind != state.BlackjackMain {
		return verdictPush, 0, b
	}
	amt := int64(b.Amount)
	pt, _ := cards.BlackjackValue(o.Player)
	dt, _ := cards.BlackjackValue(o.Dealer)
	pn, dn := isNatural(o.Player), isNatural(o.Dealer)

	switch {
	case pt > 21:
		return verdictLose, -amt, b
	case pn && dn:
		return verdictPush, 0, b
	case pn:
		return verdictWin, amt * 3 / 2, b
	case dn:
		return verdictLose, -amt, b
	case dt > 21:
		return verdictWin, amt, b
	case pt > dt:
		return verdictWin, amt, b
	case pt < dt:
		return verdictLose, -amt, b
	}
	return verdictPush, 0, b
}

func blackjackLabel(b state.Bet) string {
	if b.Kind == state.BlackjackMain {
		return "MAIN"
	}
	return "UNKNOWN"
}

// ResolveBlackjack settles the hand's main bet.
func ResolveBlackjack(o BlackjackOutcome, bets []state.Bet) Result {
	var c collector
	for _, b := range bets {
		v, delta, nb := classifyBlackjack(b, o)
		c.add(blackjackLabel(b), v, delta, nb)
	}
	logResolved("blackjack", c.res)
	return c.res
}
