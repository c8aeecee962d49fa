package engine

import (
	"casinoclient/cards"
	"casinoclient/poker"
	"casinoclient/state"
)

// VideoPokerOutcome is the final five cards after the draw. A nil
// Wilds plays straight jacks-or-better.
type VideoPokerOutcome struct {
	Cards [5]cards.Card
	Wilds *state.WildSpec
}

// videoPokerPay is the 9/6 jacks-or-better schedule, per unit staked.
func videoPokerPay(r poker.HandRank) int64 {
	switch r.Category {
	case poker.StraightFlush:
		if isRoyal(r) {
			return 800
		}
		return 50
	case poker.FourOfAKind:
		return 25
	case poker.FullHouse:
		return 9
	case poker.Flush:
		return 6
	case poker.Straight:
		return 4
	case poker.ThreeOfAKind:
		return 3
	case poker.TwoPair:
		return 2
	case poker.Pair:
		if len(r.Tiebreaks) > 0 && r.Tiebreaks[0] >= cards.Jack {
			return 1
		}
	}
	return 0
}

func classifyVideoPoker(b state.Bet, o VideoPokerOutcome) (verdict, int64, state.Bet) {
	if b.Kind != state.VideoPokerMain {
		return verdictPush, 0, b
	}
	amt := int64(b.Amount)
	r := poker.EvaluateWild(o.Cards, o.Wilds.IsWild)
	if pay := videoPokerPay(r); pay > 0 {
		return verdictWin, amt * pay, b
	}
	return verdictLose, -amt, b
}

func videoPokerLabel(b state.Bet) string {
	if b.Kind == state.VideoPokerMain {
		return "MAIN"
	}
	return "UNKNOWN"
}

// ResolveVideoPoker settles the hand against the paytable.
func ResolveVideoPoker(o VideoPokerOutcome, bets []state.Bet) Result {
	var c collector
	for _, b := range bets {
		v, delta, nb := classifyVideoPoker(b, o)
		c.add(videoPokerLabel(b), v, delta, nb)
	}
	logResolved("videopoker", c.res)
	return c.res
}
