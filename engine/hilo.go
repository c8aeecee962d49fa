package engine

import (
	"casinoclient/cards"
	"casinoclient/state"
)

// HiLoOutcome is one guess: the card shown and the card revealed.
type HiLoOutcome struct {
	Current cards.Card
	Next    cards.Card
}

// classifyHiLo settles a guess at even money, aces high, equal ranks
// pushing.
func classifyHiLo(b state.Bet, o HiLoOutcome) (verdict, int64, state.Bet) {
	amt := int64(b.Amount)
	cur, next := o.Current.HighValue(), o.Next.HighValue()

	switch b.Kind {
	case state.HiLoHi:
		switch {
		case next > cur:
			return verdictWin, amt, b
		case next < cur:
			return verdictLose, -amt, b
		}
		return verdictPush, 0, b
	case state.HiLoLo:
		switch {
		case next < cur:
			return verdictWin, amt, b
		case next > cur:
			return verdictLose, -amt, b
		}
		return verdictPush, 0, b
	}
	return verdictPush, 0, b
}

func hiloLabel(b state.Bet) string {
	switch b.Kind {
	case state.HiLoHi:
		return "HI"
	case state.HiLoLo:
		return "LO"
	}
	return "UNKNOWN"
}

// ResolveHiLo settles the guess against the revealed card.
func ResolveHiLo(o HiLoOutcome, bets []state.Bet) Result {
	var c collector
	for _, b := range bets {
		v, delta, nb := classifyHiLo(b, o)
		c.add(hiloLabel(b), v, delta, nb)
	}
	logResolved("hilo", c.res)
	return c.res
}
