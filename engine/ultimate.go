package engine

import (
	"casinoclient/cards"
	"casinoclient/poker"
	"casinoclient/state"
)

// UltimateOutcome is the ultimate hold'em showdown, or the fold that
// preempts it.
type UltimateOutcome struct {
	Hole   [2]cards.Card
	Dealer [2]cards.Card
	Board  [5]cards.Card
	Folded bool
}

func sevenOf(hole [2]cards.Card, board [5]cards.Card) [7]cards.Card {
	return [7]cards.Card{hole[0], hole[1], board[0], board[1], board[2], board[3], board[4]}
}

// isRoyal is an ace-high straight flush.
func isRoyal(r poker.HandRank) bool {
	return r.Category == poker.StraightFlush && len(r.Tiebreaks) > 0 && r.Tiebreaks[0] == cards.Ace
}

// dealerOpens is a pair or better across the seven.
func dealerOpens(r poker.HandRank) bool { return r.Category >= poker.Pair }

// blindDelta is the blind's bonus ladder; ok is false where the ladder
// pushes a winning hand.
func blindDelta(r poker.HandRank, amt int64) (int64, bool) {
	switch {
	case isRoyal(r):
		return amt * 500, true
	case r.Category == poker.StraightFlush:
		return amt * 50, true
	case r.Category == poker.FourOfAKind:
		return amt * 10, true
	case r.Category == poker.FullHouse:
		return amt * 3, true
	case r.Category == poker.Flush:
		return amt * 3 / 2, true
	case r.Category == poker.Straight:
		return amt, true
	}
	return 0, false
}

// tripsDelta is the trips side bet's schedule, paid on the player's
// hand regardless of the dealer.
func tripsDelta(r poker.HandRank, amt int64) int64 {
	switch {
	case isRoyal(r):
		return amt * 50
	case r.Category == poker.StraightFlush:
		return amt * 40
	case r.Category == poker.FourOfAKind:
		return amt * 30
	case r.Category == poker.FullHouse:
		return amt * 8
	case r.Category == poker.Flush:
		return amt * 7
	case r.Category == poker.Straight:
		return amt * 4
	case r.Category == poker.ThreeOfAKind:
		return amt * 3
	}
	return -amt
}

// classifyUltimate settles one bet against the showdown. Folding
// forfeits every bet, the trips side bet included.
func classifyUltimate(b state.Bet, o UltimateOutcome) (verdict, int64, state.Bet) {
	amt := int64(b.Amount)

	if o.Folded {
		switch b.Kind {
		case state.UltimateAnte, state.UltimateBlind, state.UltimateTrips, state.UltimatePlay:
			return verdictLose, -amt, b
		}
		return verdictPush, 0, b
	}

	player := poker.Evaluate7(sevenOf(o.Hole, o.Board))
	dealer := poker.Evaluate7(sevenOf(o.Dealer, o.Board))
	cmp := poker.Compare(player, dealer)

	switch b.Kind {
	case state.UltimateAnte:
		if !dealerOpens(dealer) {
			return verdictPush, 0, b
		}
		switch {
		case cmp > 0:
			return verdictWin, amt, b
		case cmp < 0:
			return verdictLose, -amt, b
		}
		return verdictPush, 0, b

	case state.UltimatePlay:
		switch {
		case cmp > 0:
			return verdictWin, amt, b
		case cmp < 0:
			return verdictLose, -amt, b
		}
		return verdictPush, 0, b

	case state.UltimateBlind:
		switch {
		case cmp > 0:
			if d, ok := blindDelta(player, amt); ok {
				return verdictWin, d, b
			}
			return verdictPush, 0, b
		case cmp < 0:
			return verdictLose, -amt, b
		}
		return verdictPush, 0, b

	case state.UltimateTrips:
		d := tripsDelta(player, amt)
		if d > 0 {
			return verdictWin, d, b
		}
		return verdictLose, d, b
	}
	return verdictPush, 0, b
}

func ultimateLabel(b state.Bet) string {
	switch b.Kind {
	case state.UltimateAnte:
		return "ANTE"
	case state.UltimateBlind:
		return "BLIND"
	case state.UltimateTrips:
		return "TRIPS"
	case state.UltimatePlay:
		return "PLAY"
	}
	return "UNKNOWN"
}

// ResolveUltimate settles the felt against the showdown.
func ResolveUltimate(o UltimateOutcome, bets []state.Bet) Result {
	var c collector
	for _, b := range bets {
		v, delta, nb := classifyUltimate(b, o)
		c.add(ultimateLabel(b), v, delta, nb)
	}
	logResolved("ultimate", c.res)
	return c.res
}
