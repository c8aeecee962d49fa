package engine

import (
	"casinoclient/cards"
	"casinoclient/state"
)

// BaccaratOutcome is the dealt round, two or three cards a side.
type BaccaratOutcome struct {
	Player []cards.Card
	Banker []cards.Card
}

// isPair reports a rank pair on the first two cards dealt.
func isPair(hand []cards.Card) bool {
	return len(hand) >= 2 && hand[0].Rank%13 == hand[1].Rank%13
}

// classifyBaccarat settles one bet under the no-commission (lucky 6)
// table: a banker win totaling six pays half.
func classifyBaccarat(b state.Bet, o BaccaratOutcome) (verdict, int64, state.Bet) {
	amt := int64(b.Amount)
	p := cards.BaccaratValue(o.Player)
	bk := cards.BaccaratValue(o.Banker)

	switch b.Kind {
	case state.BaccaratPlayer:
		switch {
		case p > bk:
			return verdictWin, amt, b
		case p < bk:
			return verdictLose, -amt, b
		}
		return verdictPush, 0, b

	case state.BaccaratBanker:
		switch {
		case bk > p:
			if bk == 6 {
				return verdictWin, amt / 2, b
			}
			return verdictWin, amt, b
		case bk < p:
			return verdictLose, -amt, b
		}
		return verdictPush, 0, b

	case state.BaccaratTie:
		if p == bk {
			return verdictWin, amt * 8, b
		}
		return verdictLose, -amt, b

	case state.BaccaratPlayerPair:
		if isPair(o.Player) {
			return verdictWin, amt * 11, b
		}
		return verdictLose, -amt, b

	case state.BaccaratBankerPair:
		if isPair(o.Banker) {
			return verdictWin, amt * 11, b
		}
		return verdictLose, -amt, b

	case state.BaccaratLucky6:
		if bk > p && bk == 6 {
			if len(o.Banker) >= 3 {
				return verdictWin, amt * 20, b
			}
			return verdictWin, amt * 12, b
		}
		return verdictLose, -amt, b
	}
	return verdictPush, 0, b
}

func baccaratLabel(b state.Bet) string {
	switch b.Kind {
	case state.BaccaratPlayer:
		return "PLAYER"
	case state.BaccaratBanker:
		return "BANKER"
	case state.BaccaratTie:
		return "TIE"
	case state.BaccaratPlayerPair:
		return "PLAYER PAIR"
	case state.BaccaratBankerPair:
		return "BANKER PAIR"
	case state.BaccaratLucky6:
		return "LUCKY 6"
	}
	return "UNKNOWN"
}

// ResolveBaccarat settles the board against one dealt round.
func ResolveBaccarat(o BaccaratOutcome, bets []state.Bet) Result {
	var c collector
	for _, b := range bets {
		v, delta, nb := classifyBaccarat(b, o)
		c.add(baccaratLabel(b), v, delta, nb)
	}
	logResolved("baccarat", c.res)
	return c.res
}
