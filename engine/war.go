package engine

import (
	"casinoclient/cards"
	"casinoclient/state"
)

// WarOutcome is the dealt round. War cards are only meaningful when
// WentToWar is set; Surrendered short-circuits the war.
type WarOutcome struct {
	Player      cards.Card
	Dealer      cards.Card
	WentToWar   bool
	WarPlayer   cards.Card
	WarDealer   cards.Card
	Surrendered bool
}

// classifyWar settles one bet. Going to war doubles the exposure; the
// war round wins on ties. A tie with neither surrender nor war data is
// still open and pushes.
func classifyWar(b state.Bet, o WarOutcome) (verdict, int64, state.Bet) {
	amt := int64(b.Amount)
	p, d := o.Player.HighValue(), o.Dealer.HighValue()

	switch b.Kind {
	case state.WarMain:
		switch {
		case p > d:
			return verdictWin, amt, b
		case p < d:
			return verdictLose, -amt, b
		}
		if o.Surrendered {
			return verdictLose, -(amt / 2), b
		}
		if !o.WentToWar {
			return verdictPush, 0, b
		}
		if o.WarPlayer.HighValue() >= o.WarDealer.HighValue() {
			return verdictWin, amt, b
		}
		return verdictLose, -2 * amt, b

	case state.WarTie:
		if p == d {
			return verdictWin, amt * 10, b
		}
		return verdictLose, -amt, b
	}
	return verdictPush, 0, b
}

func warLabel(b state.Bet) string {
	switch b.Kind {
	case state.WarMain:
		return "WAR"
	case state.WarTie:
		return "TIE"
	}
	return "UNKNOWN"
}

// ResolveWar settles the round.
func ResolveWar(o WarOutcome, bets []state.Bet) Result {
	var c collector
	for _, b := range bets {
		v, delta, nb := classifyWar(b, o)
		c.add(warLabel(b), v, delta, nb)
	}
	logResolved("war", c.res)
	return c.res
}
