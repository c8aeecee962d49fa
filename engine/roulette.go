package engine

import (
	"fmt"

	"casinoclient/state"
)

// rouletteRed is the single-zero wheel's red set.
var rouletteRed = [37]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true, 14: true,
	16: true, 18: true, 19: true, 21: true, 23: true, 25: true, 27: true,
	30: true, 32: true, 34: true, 36: true,
}

func isRed(n uint8) bool   { return n >= 1 && n <= 36 && rouletteRed[n] }
func isBlack(n uint8) bool { return n >= 1 && n <= 36 && !rouletteRed[n] }

// rouletteCovers reports the win multiple for the bet's coverage and
// whether n falls inside it. Layout bets use the top-left number as
// their anchor target.
func rouletteCovers(b state.Bet, n uint8) (int64, bool) {
	t, x := int(b.Target), int(n)
	switch b.Kind {
	case state.RouletteStraight:
		return 35, x == t
	case state.RouletteSplitH:
		return 17, x == t || x == t+1
	case state.RouletteSplitV:
		return 17, x == t || x == t+3
	case state.RouletteStreet:
		return 11, x >= 3*t+1 && x <= 3*t+3
	case state.RouletteCorner:
		return 8, x == t || x == t+1 || x == t+3 || x == t+4
	case state.RouletteSixLine:
		return 5, x >= 3*t+1 && x <= 3*t+6
	case state.RouletteDozen:
		return 2, x >= 1 && (x-1)/12 == t
	case state.RouletteColumn:
		return 2, x >= 1 && (x-1)%3 == t
	case state.RouletteRed:
		return 1, isRed(n)
	case state.RouletteBlack:
		return 1, isBlack(n)
	case state.RouletteEven:
		return 1, n >= 1 && n%2 == 0
	case state.RouletteOdd:
		return 1, n%2 == 1
	case state.RouletteLow:
		return 1, n >= 1 && n <= 18
	case state.RouletteHigh:
		return 1, n >= 19 && n <= 36
	case state.RouletteZero:
		return 35, n == 0
	}
	return 0, false
}

func rouletteEvenMoney(k state.BetKind) bool {
	switch k {
	case state.RouletteRed, state.RouletteBlack, state.RouletteEven,
		state.RouletteOdd, state.RouletteLow, state.RouletteHigh:
		return true
	}
	return false
}

// classifyRoulette settles one bet against one spin. Every roulette bet
// is single-spin; nothing stays live.
func classifyRoulette(b state.Bet, rule state.ZeroRule, n uint8) (verdict, int64, state.Bet) {
	if b.Kind > state.RouletteZero {
		return verdictPush, 0, b
	}
	amt := int64(b.Amount)
	if mult, hit := rouletteCovers(b, n); hit {
		return verdictWin, amt * mult, b
	}
	if n == 0 && rule == state.ZeroLaPartage && rouletteEvenMoney(b.Kind) {
		return verdictLose, -(amt / 2), b
	}
	return verdictLose, -amt, b
}

func rouletteLabel(b state.Bet) string {
	t := int(b.Target)
	switch b.Kind {
	case state.RouletteStraight:
		return fmt.Sprintf("STRAIGHT %d", t)
	case state.RouletteSplitH:
		return fmt.Sprintf("SPLIT %d-%d", t, t+1)
	case state.RouletteSplitV:
		return fmt.Sprintf("SPLIT %d-%d", t, t+3)
	case state.RouletteStreet:
		return fmt.Sprintf("STREET %d", 3*t+1)
	case state.RouletteCorner:
		return fmt.Sprintf("CORNER %d", t)
	case state.RouletteSixLine:
		return fmt.Sprintf("SIX LINE %d", 3*t+1)
	case state.RouletteDozen:
		return fmt.Sprintf("DOZEN %d", t+1)
	case state.RouletteColumn:
		return fmt.Sprintf("COLUMN %d", t+1)
	case state.RouletteRed:
		return "RED"
	case state.RouletteBlack:
		return "BLACK"
	case state.RouletteEven:
		return "EVEN"
	case state.RouletteOdd:
		return "ODD"
	case state.RouletteLow:
		return "LOW"
	case state.RouletteHigh:
		return "HIGH"
	case state.RouletteZero:
		return "ZERO"
	}
	return "UNKNOWN"
}

// ResolveRoulette settles the board against one spin, n in 0..36.
func ResolveRoulette(rule state.ZeroRule, n uint8, bets []state.Bet) Result {
	var c collector
	for _, b := range bets {
		v, delta, nb := classifyRoulette(b, rule, n)
		c.add(rouletteLabel(b), v, delta, nb)
	}
	logResolved("roulette", c.res)
	return c.res
}
