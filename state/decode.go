package state

import (
	"encoding/binary"

	log "github.com/sirupsen/logrus"

	"casinoclient/cards"
)

// State decoders are total: a truncated or malformed blob is an expected
// transient while a round is mid-flight, so every decoder returns a safe
// default instead of an error. Degradations are traced at debug level
// only.

const (
	maxHandLen        = 21
	crapsHeaderLen    = 11
	crapsBetRecordLen = 19
)

var faceDown = cards.Card{FaceDown: true}

func logDegraded(g GameType, n int, reason string) {
	log.WithFields(log.Fields{
		"game":   g.String(),
		"len":    n,
		"reason": reason,
	}).Debug("state decode degraded")
}

// Decode dispatches to the game's decoder. ok is false for a game type
// outside the closed set.
func Decode(g GameType, buf []byte) (GameState, bool) {
	switch g {
	case Blackjack:
		return DecodeBlackjack(buf), true
	case Craps:
		return DecodeCraps(buf), true
	case Roulette:
		return DecodeRoulette(buf), true
	case SicBo:
		return DecodeSicBo(buf), true
	case Baccarat:
		return DecodeBaccarat(buf), true
	case ThreeCard:
		return DecodeThreeCard(buf), true
	case UltimateHoldem:
		return DecodeUltimate(buf), true
	case VideoPoker:
		return DecodeVideoPoker(buf), true
	case HiLo:
		return DecodeHiLo(buf), true
	case War:
		return DecodeWar(buf), true
	}
	return nil, false
}

// takeHand reads [u8 count][count card bytes], clamping the count to what
// the buffer actually holds, and returns the remainder.
func takeHand(b []byte) ([]cards.Card, []byte) {
	if len(b) == 0 {
		return nil, nil
	}
	n := int(b[0])
	if n > maxHandLen {
		n = maxHandLen
	}
	b = b[1:]
	if n > len(b) {
		n = len(b)
	}
	if n == 0 {
		return nil, b
	}
	hand := make([]cards.Card, n)
	for i := 0; i < n; i++ {
		hand[i] = cards.Parse(b[i])
	}
	return hand, b[n:]
}

// DecodeBlackjack reads [stage][hand][hand].
func DecodeBlackjack(buf []byte) BlackjackState {
	var s BlackjackState
	if len(buf) < 1 {
		logDegraded(Blackjack, len(buf), "empty blob")
		return s
	}
	s.Stage = BlackjackStage(buf[0])
	if s.Stage > BlackjackSettled {
		s.Stage = BlackjackPlayerTurn
	}
	rest := buf[1:]
	s.Player, rest = takeHand(rest)
	s.Dealer, _ = takeHand(rest)
	return s
}

// DecodeCraps reads the 11-byte header then the 19-byte bet records. A
// bet count implying more bytes than remain yields the header with an
// empty bet list; records with an unknown kind byte are skipped.
func DecodeCraps(buf []byte) CrapsState {
	var s CrapsState
	if len(buf) < crapsHeaderLen {
		logDegraded(Craps, len(buf), "short header")
		return s
	}
	s.Point = buf[0]
	s.Dice = [2]uint8{buf[1], buf[2]}
	s.RollCount = binary.BigEndian.Uint32(buf[3:7])
	betCount := int(binary.BigEndian.Uint32(buf[7:11]))
	rest := buf[crapsHeaderLen:]
	if betCount > len(rest)/crapsBetRecordLen {
		logDegraded(Craps, len(buf), "bet records truncated")
		return s
	}
	for i := 0; i < betCount; i++ {
		b, ok := decodeCrapsBetRecord(rest[i*crapsBetRecordLen:])
		if !ok {
			continue
		}
		s.Bets = append(s.Bets, b)
	}
	return s
}

func decodeCrapsBetRecord(rec []byte) (Bet, bool) {
	b := Bet{
		Kind:   BetKind(rec[0]),
		Target: rec[1],
		Status: BetStatus(rec[2]),
		Amount: binary.BigEndian.Uint64(rec[3:11]),
		Odds:   binary.BigEndian.Uint64(rec[11:19]),
	}
	if b.Kind > CrapsAtsAll {
		return Bet{}, false
	}
	if b.Status > BetPending {
		b.Status = BetOn
	}
	switch b.Kind {
	case CrapsAtsSmall, CrapsAtsTall, CrapsAtsAll:
		// ATS bets take no odds; the record's odds field carries the
		// coverage mask instead.
		b.Progress = uint16(b.Odds) & AtsMaskAll
		b.Odds = 0
	}
	return b, true
}

// DecodeRoulette reads [count][count numbers].
func DecodeRoulette(buf []byte) RouletteState {
	var s RouletteState
	if len(buf) < 1 {
		logDegraded(Roulette, len(buf), "empty blob")
		return s
	}
	n := int(buf[0])
	rest := buf[1:]
	if n > len(rest) {
		n = len(rest)
	}
	if n > 0 {
		s.History = make([]uint8, n)
		copy(s.History, rest[:n])
	}
	return s
}

// DecodeSicBo reads the three dice, clamping faces to 1..6.
func DecodeSicBo(buf []byte) SicBoState {
	var s SicBoState
	if len(buf) < 3 {
		logDegraded(SicBo, len(buf), "short blob")
		return s
	}
	for i := 0; i < 3; i++ {
		s.Dice[i] = clampDie(buf[i])
	}
	return s
}

func clampDie(b byte) uint8 {
	if b < 1 || b > 6 {
		return 1
	}
	return b
}

// DecodeBaccarat reads [hand][hand], player then banker.
func DecodeBaccarat(buf []byte) BaccaratState {
	var s BaccaratState
	if len(buf) == 0 {
		logDegraded(Baccarat, len(buf), "empty blob")
		return s
	}
	s.Player, buf = takeHand(buf)
	s.Banker, _ = takeHand(buf)
	return s
}

// DecodeThreeCard reads the fixed 6-byte layout.
func DecodeThreeCard(buf []byte) ThreeCardState {
	s := ThreeCardState{
		Player: [3]cards.Card{faceDown, faceDown, faceDown},
		Dealer: [3]cards.Card{faceDown, faceDown, faceDown},
	}
	if len(buf) < 6 {
		logDegraded(ThreeCard, len(buf), "short blob")
		return s
	}
	for i := 0; i < 3; i++ {
		s.Player[i] = cards.Parse(buf[i])
		s.Dealer[i] = cards.Parse(buf[3+i])
	}
	return s
}

// DecodeUltimate reads the fixed 11-byte layout
// [stage][hole x2][board x5][dealer x2][playMultiplier].
func DecodeUltimate(buf []byte) UltimateState {
	s := UltimateState{
		Hole:   [2]cards.Card{faceDown, faceDown},
		Board:  [5]cards.Card{faceDown, faceDown, faceDown, faceDown, faceDown},
		Dealer: [2]cards.Card{faceDown, faceDown},
	}
	if len(buf) < 11 {
		logDegraded(UltimateHoldem, len(buf), "short blob")
		return s
	}
	s.Stage = HoldemStage(buf[0])
	if s.Stage > HoldemShowdown {
		s.Stage = HoldemPreflop
	}
	s.Hole = [2]cards.Card{cards.Parse(buf[1]), cards.Parse(buf[2])}
	for i := 0; i < 5; i++ {
		s.Board[i] = cards.Parse(buf[3+i])
	}
	s.Dealer = [2]cards.Card{cards.Parse(buf[8]), cards.Parse(buf[9])}
	s.PlayMultiplier = buf[10]
	return s
}

// DecodeVideoPoker reads the five current cards.
func DecodeVideoPoker(buf []byte) VideoPokerState {
	s := VideoPokerState{
		Cards: [5]cards.Card{faceDown, faceDown, faceDown, faceDown, faceDown},
	}
	if len(buf) < 5 {
		logDegraded(VideoPoker, len(buf), "short blob")
		return s
	}
	for i := 0; i < 5; i++ {
		s.Cards[i] = cards.Parse(buf[i])
	}
	return s
}

// DecodeHiLo reads [round][current card][u64 pot].
func DecodeHiLo(buf []byte) HiLoState {
	s := HiLoState{Current: faceDown}
	if len(buf) < 10 {
		logDegraded(HiLo, len(buf), "short blob")
		return s
	}
	s.Round = buf[0]
	s.Current = cards.Parse(buf[1])
	s.Pot = binary.BigEndian.Uint64(buf[2:10])
	return s
}

// DecodeWar reads the fixed 7-byte layout.
func DecodeWar(buf []byte) WarState {
	s := WarState{
		Player:    faceDown,
		Dealer:    faceDown,
		WarPlayer: faceDown,
		WarDealer: faceDown,
	}
	if len(buf) < 7 {
		logDegraded(War, len(buf), "short blob")
		return s
	}
	s.Stage = WarStage(buf[0])
	if s.Stage > WarSettled {
		s.Stage = WarDeal
	}
	s.Player = cards.Parse(buf[1])
	s.Dealer = cards.Parse(buf[2])
	s.WarPlayer = cards.Parse(buf[3])
	s.WarDealer = cards.Parse(buf[4])
	s.Surrendered = buf[5] != 0
	s.Result = buf[6]
	return s
}
