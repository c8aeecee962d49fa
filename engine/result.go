// Package engine settles bets against concrete outcomes and projects
// exposure across whole outcome spaces. Settlement is pure int64
// arithmetic with floor division: a win's delta is profit only, a loss
// is the negative stake, a push is zero. Each game's resolver and
// projector share one per-bet classifier, which is what keeps the two
// in exact agreement.
package engine

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"casinoclient/state"
)

// verdict classifies one bet against one outcome.
type verdict uint8

const (
	verdictLive verdict = iota
	verdictWin
	verdictLose
	verdictPush
)

// Result is one settled roll, spin or showdown. Net sums the resolved
// deltas, Lines carries one line per settled bet, Remaining the bets
// still riding with any travel or progress applied.
type Result struct {
	Net       int64
	Lines     []string
	Remaining []state.Bet
}

// collector folds classifier outputs into a Result. Live bets go to
// Remaining untouched by Net; everything else settles a line.
type collector struct {
	res Result
}

func (c *collector) add(label string, v verdict, delta int64, b state.Bet) {
	if v == verdictLive {
		c.res.Remaining = append(c.res.Remaining, b)
		return
	}
	switch v {
	case verdictWin:
		c.res.Lines = append(c.res.Lines, fmt.Sprintf("%s pays %d", label, delta))
	case verdictLose:
		c.res.Lines = append(c.res.Lines, fmt.Sprintf("%s loses %d", label, -delta))
	case verdictPush:
		c.res.Lines = append(c.res.Lines, fmt.Sprintf("%s pushes", label))
	}
	c.res.Net += delta
}

// commission levies the table's 1% vig on winnings. Stakes are never
// clipped.
func commission(w int64) int64 { return w - w/100 }

func logResolved(game string, res Result) {
	log.WithFields(log.Fields{
		"game":    game,
		"net":     res.Net,
		"settled": len(res.Lines),
		"live":    len(res.Remaining),
	}).Debug("bets resolved")
}
