package codec

import "casinoclient/state"

// Move payloads travel inside GameMove and are opaque to the chain
// framing. Each starts with a one-byte move kind; layouts are fixed per
// game. Builders never fail; legality (stage, limits) is the chain's
// call.

// Blackjack move kinds.
const (
	BlackjackMoveHit uint8 = iota
	BlackjackMoveStand
	BlackjackMoveDouble
	BlackjackMoveSurrender
)

// EncodeBlackjackMove builds a hit/stand/double/surrender payload.
func EncodeBlackjackMove(kind uint8) []byte {
	return []byte{kind}
}

// Craps move kinds.
const (
	CrapsMovePlaceBet uint8 = iota
	CrapsMoveRoll
)

// EncodeCrapsPlaceBet mirrors the state blob's 19-byte bet record after
// the move kind byte.
func EncodeCrapsPlaceBet(kind state.BetKind, target uint8, amount, odds uint64) []byte {
	out := make([]byte, 0, 19)
	out = append(out, CrapsMovePlaceBet, byte(kind), target)
	out = appendU64(out, amount)
	return appendU64(out, odds)
}

// EncodeCrapsRoll asks the chain to roll.
func EncodeCrapsRoll() []byte {
	return []byte{CrapsMoveRoll}
}

// Roulette move kinds.
const (
	RouletteMovePlaceBet uint8 = iota
	RouletteMoveSpin
)

func EncodeRoulettePlaceBet(kind state.BetKind, target uint8, amount uint64) []byte {
	out := make([]byte, 0, 11)
	out = append(out, RouletteMovePlaceBet, byte(kind), target)
	return appendU64(out, amount)
}

func EncodeRouletteSpin() []byte {
	return []byte{RouletteMoveSpin}
}

// Sic bo move kinds.
const (
	SicBoMovePlaceBet uint8 = iota
	SicBoMoveRoll
)

func EncodeSicBoPlaceBet(kind state.BetKind, target uint8, amount uint64) []byte {
	out := make([]byte, 0, 11)
	out = append(out, SicBoMovePlaceBet, byte(kind), target)
	return appendU64(out, amount)
}

func EncodeSicBoRoll() []byte {
	return []byte{SicBoMoveRoll}
}

// Baccarat move kinds.
const (
	BaccaratMovePlaceBet uint8 = iota
	BaccaratMoveDeal
)

func EncodeBaccaratPlaceBet(kind state.BetKind, amount uint64) []byte {
	out := make([]byte, 0, 10)
	out = append(out, BaccaratMovePlaceBet, byte(kind))
	return appendU64(out, amount)
}

func EncodeBaccaratDeal() []byte {
	return []byte{BaccaratMoveDeal}
}

// Three-card move kinds.
const (
	ThreeCardMovePlaceBet uint8 = iota
	ThreeCardMovePlay
	ThreeCardMoveFold
)

func EncodeThreeCardPlaceBet(kind state.BetKind, amount uint64) []byte {
	out := make([]byte, 0, 10)
	out = append(out, ThreeCardMovePlaceBet, byte(kind))
	return appendU64(out, amount)
}

func EncodeThreeCardPlay() []byte {
	return []byte{ThreeCardMovePlay}
}

func EncodeThreeCardFold() []byte {
	return []byte{ThreeCardMoveFold}
}

// Ultimate hold'em move kinds.
const (
	UltimateMovePlaceBet uint8 = iota
	UltimateMoveCheck
	UltimateMoveRaise
	UltimateMoveFold
)

func EncodeUltimatePlaceBet(kind state.BetKind, amount uint64) []byte {
	out := make([]byte, 0, 10)
	out = append(out, UltimateMovePlaceBet, byte(kind))
	return appendU64(out, amount)
}

func EncodeUltimateCheck() []byte {
	return []byte{UltimateMoveCheck}
}

// EncodeUltimateRaise commits the play bet at the given multiplier
// (4/3/2/1 depending on street).
func EncodeUltimateRaise(multiplier uint8) []byte {
	return []byte{UltimateMoveRaise, multiplier}
}

func EncodeUltimateFold() []byte {
	return []byte{UltimateMoveFold}
}

// Video poker move kinds.
const (
	VideoPokerMoveDraw uint8 = iota
)

// EncodeVideoPokerDraw submits the draw with the low five bits marking
// held positions.
func EncodeVideoPokerDraw(holdMask uint8) []byte {
	return []byte{VideoPokerMoveDraw, holdMask & 0x1F}
}

// Hi-lo move kinds and guess directions.
const (
	HiLoMoveGuess uint8 = iota
	HiLoMoveCashOut
)

const (
	HiLoGuessHi uint8 = iota
	HiLoGuessLo
)

func EncodeHiLoGuess(direction uint8) []byte {
	return []byte{HiLoMoveGuess, direction}
}

func EncodeHiLoCashOut() []byte {
	return []byte{HiLoMoveCashOut}
}

// War move kinds.
const (
	WarMoveGoToWar uint8 = iota
	WarMoveSurrender
	WarMovePlaceTie
)

func EncodeWarGoToWar() []byte {
	return []byte{WarMoveGoToWar}
}

func EncodeWarSurrender() []byte {
	return []byte{WarMoveSurrender}
}

func EncodeWarPlaceTie(amount uint64) []byte {
	return appendU64([]byte{WarMovePlaceTie}, amount)
}
