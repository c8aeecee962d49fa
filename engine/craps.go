package engine

import (
	"fmt"

	"casinoclient/state"
)

// CrapsRound is the table context a roll resolves under. Point is zero
// while coming out.
type CrapsRound struct {
	Point uint8
}

// DiceRoll is one ordered roll of two dice, faces 1..6.
type DiceRoll struct {
	D1, D2 uint8
}

func (r DiceRoll) Total() uint8 { return r.D1 + r.D2 }
func (r DiceRoll) Hard() bool   { return r.D1 == r.D2 }

// ways counts the ordered dice pairs producing each total.
var ways = [13]int64{2: 1, 3: 2, 4: 3, 5: 4, 6: 5, 7: 6, 8: 5, 9: 4, 10: 3, 11: 2, 12: 1}

func waysFor(t uint8) int64 {
	if int(t) >= len(ways) {
		return 0
	}
	return ways[t]
}

// passOddsWin pays the true-odds backing behind a made point.
func passOddsWin(point uint8, odds int64) int64 {
	switch point {
	case 4, 10:
		return odds * 2
	case 5, 9:
		return odds * 3 / 2
	case 6, 8:
		return odds * 6 / 5
	}
	return 0
}

// dontOddsWin is the lay side; the backing wins less than it risks.
func dontOddsWin(point uint8, odds int64) int64 {
	switch point {
	case 4, 10:
		return odds / 2
	case 5, 9:
		return odds * 2 / 3
	case 6, 8:
		return odds * 5 / 6
	}
	return 0
}

func isHardwayTarget(t uint8) bool {
	return t == 4 || t == 6 || t == 8 || t == 10
}

// classifyCraps maps one bet and one roll to a verdict and delta. The
// returned bet carries come travel and coverage progress; callers that
// only project discard it.
func classifyCraps(b state.Bet, round CrapsRound, roll DiceRoll) (verdict, int64, state.Bet) {
	total := roll.Total()
	amt := int64(b.Amount)
	odds := int64(b.Odds)

	switch b.Kind {
	case state.CrapsPass:
		if round.Point == 0 {
			switch total {
			case 7, 11:
				return verdictWin, amt, b
			case 2, 3, 12:
				return verdictLose, -amt, b
			}
			return verdictLive, 0, b
		}
		switch total {
		case round.Point:
			return verdictWin, amt + passOddsWin(round.Point, odds), b
		case 7:
			return verdictLose, -(amt + odds), b
		}
		return verdictLive, 0, b

	case state.CrapsDontPass:
		if round.Point == 0 {
			switch total {
			case 2, 3:
				return verdictWin, amt, b
			case 12:
				// bars the twelve
				return verdictLive, 0, b
			case 7, 11:
				return verdictLose, -amt, b
			}
			return verdictLive, 0, b
		}
		switch total {
		case 7:
			return verdictWin, amt + dontOddsWin(round.Point, odds), b
		case round.Point:
			return verdictLose, -(amt + odds), b
		}
		return verdictLive, 0, b

	case state.CrapsCome:
		if b.Status == state.BetPending {
			switch total {
			case 7, 11:
				return verdictWin, amt, b
			case 2, 3, 12:
				return verdictLose, -amt, b
			}
			b.Status = state.BetOn
			b.Target = total
			return verdictLive, 0, b
		}
		switch total {
		case b.Target:
			return verdictWin, amt + passOddsWin(b.Target, odds), b
		case 7:
			return verdictLose, -(amt + odds), b
		}
		return verdictLive, 0, b

	case state.CrapsDontCome:
		if b.Status == state.BetPending {
			switch total {
			case 2, 3:
				return verdictWin, amt, b
			case 12:
				return verdictLive, 0, b
			case 7, 11:
				return verdictLose, -amt, b
			}
			b.Status = state.BetOn
			b.Target = total
			return verdictLive, 0, b
		}
		switch total {
		case 7:
			return verdictWin, amt + dontOddsWin(b.Target, odds), b
		case b.Target:
			return verdictLose, -(amt + odds), b
		}
		return verdictLive, 0, b

	case state.CrapsField:
		switch total {
		case 2, 12:
			return verdictWin, amt * 2, b
		case 3, 4, 9, 10, 11:
			return verdictWin, amt, b
		}
		return verdictLose, -amt, b

	case state.CrapsYes:
		w := waysFor(b.Target)
		if w == 0 {
			return verdictPush, 0, b
		}
		switch total {
		case b.Target:
			return verdictWin, commission(amt * 6 / w), b
		case 7:
			return verdictLose, -amt, b
		}
		return verdictLive, 0, b

	case state.CrapsNo:
		w := waysFor(b.Target)
		if w == 0 {
			return verdictPush, 0, b
		}
		switch total {
		case 7:
			return verdictWin, commission(amt * w / 6), b
		case b.Target:
			return verdictLose, -amt, b
		}
		return verdictLive, 0, b

	case state.CrapsBuy:
		w := waysFor(b.Target)
		if w == 0 {
			return verdictPush, 0, b
		}
		switch total {
		case b.Target:
			return verdictWin, amt * 6 / w, b
		case 7:
			return verdictLose, -amt, b
		}
		return verdictLive, 0, b

	case state.CrapsNext:
		w := waysFor(b.Target)
		if w == 0 {
			return verdictPush, 0, b
		}
		if total == b.Target {
			return verdictWin, commission(amt * (36 - w) / w), b
		}
		return verdictLose, -amt, b

	case state.CrapsHardway:
		if !isHardwayTarget(b.Target) {
			return verdictPush, 0, b
		}
		switch {
		case total == 7:
			return verdictLose, -amt, b
		case total == b.Target && roll.Hard():
			if b.Target == 4 || b.Target == 10 {
				return verdictWin, amt * 7, b
			}
			return verdictWin, amt * 9, b
		case total == b.Target:
			return verdictLose, -amt, b
		}
		return verdictLive, 0, b

	case state.CrapsAtsSmall, state.CrapsAtsTall, state.CrapsAtsAll:
		return classifyAts(b, round, total)
	}
	return verdictPush, 0, b
}

// classifyAts advances the all-tall-small coverage mask. A come-out 7
// is a non-event for the bonus; a 7 with the point on clears it.
func classifyAts(b state.Bet, round CrapsRound, total uint8) (verdict, int64, state.Bet) {
	amt := int64(b.Amount)
	if total == 7 {
		if round.Point == 0 {
			return verdictLive, 0, b
		}
		return verdictLose, -amt, b
	}

	var need uint16
	var pay int64
	switch b.Kind {
	case state.CrapsAtsSmall:
		need, pay = state.AtsMaskSmall, 34
	case state.CrapsAtsTall:
		need, pay = state.AtsMaskTall, 34
	default:
		need, pay = state.AtsMaskAll, 175
	}

	b.Progress |= state.AtsBit(total) & need
	if b.Progress&need == need {
		return verdictWin, amt * pay, b
	}
	return verdictLive, 0, b
}

func crapsLabel(b state.Bet) string {
	switch b.Kind {
	case state.CrapsPass:
		return "PASS"
	case state.CrapsDontPass:
		return "DONT PASS"
	case state.CrapsCome:
		if b.Status == state.BetOn && b.Target != 0 {
			return fmt.Sprintf("COME %d", b.Target)
		}
		return "COME"
	case state.CrapsDontCome:
		if b.Status == state.BetOn && b.Target != 0 {
			return fmt.Sprintf("DONT COME %d", b.Target)
		}
		return "DONT COME"
	case state.CrapsField:
		return "FIELD"
	case state.CrapsYes:
		return fmt.Sprintf("YES %d", b.Target)
	case state.CrapsNo:
		return fmt.Sprintf("NO %d", b.Target)
	case state.CrapsBuy:
		return fmt.Sprintf("BUY %d", b.Target)
	case state.CrapsNext:
		return fmt.Sprintf("NEXT %d", b.Target)
	case state.CrapsHardway:
		return fmt.Sprintf("HARD %d", b.Target)
	case state.CrapsAtsSmall:
		return "SMALL"
	case state.CrapsAtsTall:
		return "TALL"
	case state.CrapsAtsAll:
		return "ALL"
	}
	return "UNKNOWN"
}

// ResolveCraps settles the whole book against one roll.
func ResolveCraps(round CrapsRound, roll DiceRoll, bets []state.Bet) Result {
	var c collector
	for _, b := range bets {
		v, delta, nb := classifyCraps(b, round, roll)
		c.add(crapsLabel(b), v, delta, nb)
	}
	logResolved("craps", c.res)
	return c.res
}
