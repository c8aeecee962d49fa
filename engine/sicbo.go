package engine

import (
	"fmt"
	"math/bits"

	"casinoclient/state"
)

// SicBoRoll is one roll of three dice, faces 1..6.
type SicBoRoll struct {
	D [3]uint8
}

func (r SicBoRoll) Total() uint8 { return r.D[0] + r.D[1] + r.D[2] }
func (r SicBoRoll) Triple() bool { return r.D[0] == r.D[1] && r.D[1] == r.D[2] }

// Count reports how many dice show the face.
func (r SicBoRoll) Count(face uint8) int {
	n := 0
	for _, d := range r.D {
		if d == face {
			n++
		}
	}
	return n
}

// FaceMask is the set of faces showing, bit = face-1.
func (r SicBoRoll) FaceMask() uint8 {
	var m uint8
	for _, d := range r.D {
		if d >= 1 && d <= 6 {
			m |= 1 << (d - 1)
		}
	}
	return m
}

// sicboSumPay is the payout multiple per total. Totals 3 and 18 only
// arrive as triples, which is why they pay the top of the book.
var sicboSumPay = [19]int64{
	3: 180, 4: 50, 5: 18, 6: 14, 7: 12, 8: 8, 9: 6, 10: 6,
	11: 6, 12: 6, 13: 8, 14: 12, 15: 14, 16: 18, 17: 50, 18: 180,
}

// classifySicBo settles one bet against one roll. Every sic bo bet is
// single-roll.
func classifySicBo(b state.Bet, roll SicBoRoll) (verdict, int64, state.Bet) {
	amt := int64(b.Amount)
	total := roll.Total()
	triple := roll.Triple()

	switch b.Kind {
	case state.SicBoSmall:
		if total >= 4 && total <= 10 && !triple {
			return verdictWin, amt, b
		}
		return verdictLose, -amt, b

	case state.SicBoBig:
		if total >= 11 && total <= 17 && !triple {
			return verdictWin, amt, b
		}
		return verdictLose, -amt, b

	case state.SicBoOdd:
		if total%2 == 1 && !triple {
			return verdictWin, amt, b
		}
		return verdictLose, -amt, b

	case state.SicBoEven:
		if total%2 == 0 && !triple {
			return verdictWin, amt, b
		}
		return verdictLose, -amt, b

	case state.SicBoSum:
		if b.Target == total && int(total) < len(sicboSumPay) && sicboSumPay[total] > 0 {
			return verdictWin, amt * sicboSumPay[total], b
		}
		return verdictLose, -amt, b

	case state.SicBoSingleDie:
		if k := roll.Count(b.Target); k > 0 {
			return verdictWin, amt * int64(k), b
		}
		return verdictLose, -amt, b

	case state.SicBoDouble:
		if roll.Count(b.Target) >= 2 {
			return verdictWin, amt * 8, b
		}
		return verdictLose, -amt, b

	case state.SicBoTriple:
		if triple && roll.D[0] == b.Target {
			return verdictWin, amt * 150, b
		}
		return verdictLose, -amt, b

	case state.SicBoAnyTriple:
		if triple {
			return verdictWin, amt * 24, b
		}
		return verdictLose, -amt, b

	case state.SicBoDomino:
		hi, lo := b.Target>>4, b.Target&0x0F
		if hi != lo && roll.Count(hi) > 0 && roll.Count(lo) > 0 {
			return verdictWin, amt * 5, b
		}
		return verdictLose, -amt, b

	case state.SicBoHop3Easy:
		mask := b.Target & 0x3F
		if bits.OnesCount8(mask) == 3 && roll.FaceMask() == mask {
			return verdictWin, amt * 30, b
		}
		return verdictLose, -amt, b

	case state.SicBoHop3Hard:
		p, s := b.Target>>4, b.Target&0x0F
		if p != s && roll.Count(p) == 2 && roll.Count(s) == 1 {
			return verdictWin, amt * 50, b
		}
		return verdictLose, -amt, b

	case state.SicBoHop4Easy:
		mask := b.Target & 0x3F
		fm := roll.FaceMask()
		if bits.OnesCount8(mask) == 4 && bits.OnesCount8(fm) == 3 && fm&^mask == 0 {
			return verdictWin, amt * 7, b
		}
		return verdictLose, -amt, b
	}
	return verdictPush, 0, b
}

// maskFaces renders a face bitmask as digits for bet labels.
func maskFaces(mask uint8) string {
	out := make([]byte, 0, 6)
	for f := uint8(1); f <= 6; f++ {
		if mask&(1<<(f-1)) != 0 {
			out = append(out, '0'+f)
		}
	}
	return string(out)
}

func sicboLabel(b state.Bet) string {
	switch b.Kind {
	case state.SicBoSmall:
		return "SMALL"
	case state.SicBoBig:
		return "BIG"
	case state.SicBoOdd:
		return "ODD"
	case state.SicBoEven:
		return "EVEN"
	case state.SicBoSum:
		return fmt.Sprintf("SUM %d", b.Target)
	case state.SicBoSingleDie:
		return fmt.Sprintf("SINGLE %d", b.Target)
	case state.SicBoDouble:
		return fmt.Sprintf("DOUBLE %d", b.Target)
	case state.SicBoTriple:
		return fmt.Sprintf("TRIPLE %d", b.Target)
	case state.SicBoAnyTriple:
		return "ANY TRIPLE"
	case state.SicBoDomino:
		return fmt.Sprintf("DOMINO %d-%d", b.Target>>4, b.Target&0x0F)
	case state.SicBoHop3Easy:
		return fmt.Sprintf("HOP %s", maskFaces(b.Target&0x3F))
	case state.SicBoHop3Hard:
		return fmt.Sprintf("HOP %d%d%d", b.Target>>4, b.Target>>4, b.Target&0x0F)
	case state.SicBoHop4Easy:
		return fmt.Sprintf("HOP %s", maskFaces(b.Target&0x3F))
	}
	return "UNKNOWN"
}

// ResolveSicBo settles the board against one roll.
func ResolveSicBo(roll SicBoRoll, bets []state.Bet) Result {
	var c collector
	for _, b := range bets {
		v, delta, nb := classifySicBo(b, roll)
		c.add(sicboLabel(b), v, delta, nb)
	}
	logResolved("sicbo", c.res)
	return c.res
}
