package engine

import "casinoclient/state"

// Projection answers "what would this outcome do to the book" without
// settling it. Deltas come from the same classifiers resolution uses;
// live verdicts contribute zero and no travel or coverage state moves,
// because the classified bet copy is discarded.

// ProjectCraps sums the book's deltas for one hypothetical roll.
func ProjectCraps(round CrapsRound, roll DiceRoll, bets []state.Bet) int64 {
	var net int64
	for _, b := range bets {
		_, delta, _ := classifyCraps(b, round, roll)
		net += delta
	}
	return net
}

// ProjectRoulette sums the board's deltas for one hypothetical number.
func ProjectRoulette(rule state.ZeroRule, n uint8, bets []state.Bet) int64 {
	var net int64
	for _, b := range bets {
		_, delta, _ := classifyRoulette(b, rule, n)
		net += delta
	}
	return net
}

// ProjectSicBo sums the board's deltas for one hypothetical roll.
func ProjectSicBo(roll SicBoRoll, bets []state.Bet) int64 {
	var net int64
	for _, b := range bets {
		_, delta, _ := classifySicBo(b, roll)
		net += delta
	}
	return net
}

// CrapsRolls enumerates the 21 distinct unordered rolls.
func CrapsRolls() []DiceRoll {
	rolls := make([]DiceRoll, 0, 21)
	for d1 := uint8(1); d1 <= 6; d1++ {
		for d2 := d1; d2 <= 6; d2++ {
			rolls = append(rolls, DiceRoll{D1: d1, D2: d2})
		}
	}
	return rolls
}

// RouletteNumbers enumerates the single-zero wheel.
func RouletteNumbers() []uint8 {
	ns := make([]uint8, 37)
	for i := range ns {
		ns[i] = uint8(i)
	}
	return ns
}

// SicBoRolls enumerates the 56 distinct sorted triples.
func SicBoRolls() []SicBoRoll {
	rolls := make([]SicBoRoll, 0, 56)
	for d1 := uint8(1); d1 <= 6; d1++ {
		for d2 := d1; d2 <= 6; d2++ {
			for d3 := d2; d3 <= 6; d3++ {
				rolls = append(rolls, SicBoRoll{D: [3]uint8{d1, d2, d3}})
			}
		}
	}
	return rolls
}

// RollExposure pairs one craps roll with the book's projected net.
type RollExposure struct {
	Roll DiceRoll
	Net  int64
}

// SpinExposure pairs one wheel number with the board's projected net.
type SpinExposure struct {
	Number uint8
	Net    int64
}

// DiceExposure pairs one sic bo roll with the board's projected net.
type DiceExposure struct {
	Roll SicBoRoll
	Net  int64
}

// CrapsExposure projects the whole roll space for the current book.
func CrapsExposure(round CrapsRound, bets []state.Bet) []RollExposure {
	rolls := CrapsRolls()
	out := make([]RollExposure, len(rolls))
	for i, r := range rolls {
		out[i] = RollExposure{Roll: r, Net: ProjectCraps(round, r, bets)}
	}
	return out
}

// RouletteExposure projects every wheel number for the current board.
func RouletteExposure(rule state.ZeroRule, bets []state.Bet) []SpinExposure {
	ns := RouletteNumbers()
	out := make([]SpinExposure, len(ns))
	for i, n := range ns {
		out[i] = SpinExposure{Number: n, Net: ProjectRoulette(rule, n, bets)}
	}
	return out
}

// SicBoExposure projects every distinct triple for the current board.
func SicBoExposure(bets []state.Bet) []DiceExposure {
	rolls := SicBoRolls()
	out := make([]DiceExposure, len(rolls))
	for i, r := range rolls {
		out[i] = DiceExposure{Roll: r, Net: ProjectSicBo(r, bets)}
	}
	return out
}
