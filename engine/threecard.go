package engine

import (
	"casinoclient/cards"
	"casinoclient/poker"
	"casinoclient/state"
)

// ThreeCardOutcome is the showdown, or the fold that preempts it.
type ThreeCardOutcome struct {
	Player [3]cards.Card
	Dealer [3]cards.Card
	Folded bool
}

// threeCardQualifies is queen high or better.
func threeCardQualifies(r poker.ThreeRank) bool {
	if r.Category != poker.ThreeHighCard {
		return true
	}
	return len(r.Tiebreaks) > 0 && r.Tiebreaks[0] >= cards.Queen
}

// threeCardAnteBonus is the per-unit bonus paid on the ante regardless
// of the dealer's hand.
func threeCardAnteBonus(c poker.ThreeCategory) int64 {
	switch c {
	case poker.ThreeStraight:
		return 1
	case poker.ThreeTrips:
		return 4
	case poker.ThreeStraightFlush:
		return 5
	}
	return 0
}

// pairPlusPay is the per-unit schedule on the player's hand alone.
func pairPlusPay(c poker.ThreeCategory) int64 {
	switch c {
	case poker.ThreePair:
		return 1
	case poker.ThreeFlush:
		return 3
	case poker.ThreeStraight:
		return 6
	case poker.ThreeTrips:
		return 30
	case poker.ThreeStraightFlush:
		return 40
	}
	return 0
}

// classifyThreeCard settles one bet against the showdown. The ante
// nets its bonus against the base comparison and takes the verdict of
// the sign; folding forfeits every bet on the felt.
func classifyThreeCard(b state.Bet, o ThreeCardOutcome) (verdict, int64, state.Bet) {
	amt := int64(b.Amount)

	if o.Folded {
		switch b.Kind {
		case state.ThreeCardAnte, state.ThreeCardPlay, state.ThreeCardPairPlus:
			return verdictLose, -amt, b
		}
		return verdictPush, 0, b
	}

	pr := poker.Evaluate3(o.Player)
	dr := poker.Evaluate3(o.Dealer)
	cmp := poker.CompareThree(pr, dr)
	qualified := threeCardQualifies(dr)

	switch b.Kind {
	case state.ThreeCardAnte:
		net := threeCardAnteBonus(pr.Category) * amt
		switch {
		case !qualified:
			net += amt
		case cmp > 0:
			net += amt
		case cmp < 0:
			net -= amt
		}
		switch {
		case net > 0:
			return verdictWin, net, b
		case net < 0:
			return verdictLose, net, b
		}
		return verdictPush, 0, b

	case state.ThreeCardPlay:
		if !qualified {
			return verdictPush, 0, b
		}
		switch {
		case cmp > 0:
			return verdictWin, amt, b
		case cmp < 0:
			return verdictLose, -amt, b
		}
		return verdictPush, 0, b

	case state.ThreeCardPairPlus:
		if pay := pairPlusPay(pr.Category); pay > 0 {
			return verdictWin, amt * pay, b
		}
		return verdictLose, -amt, b
	}
	return verdictPush, 0, b
}

func threeCardLabel(b state.Bet) string {
	switch b.Kind {
	case state.ThreeCardAnte:
		return "ANTE"
	case state.ThreeCardPlay:
		return "PLAY"
	case state.ThreeCardPairPlus:
		return "PAIR PLUS"
	}
	return "UNKNOWN"
}

// ResolveThreeCard settles the felt against the showdown.
func ResolveThreeCard(o ThreeCardOutcome, bets []state.Bet) Result {
	var c collector
	for _, b := range bets {
		v, delta, nb := classifyThreeCard(b, o)
		c.add(threeCardLabel(b), v, delta, nb)
	}
	logResolved("threecard", c.res)
	return c.res
}
