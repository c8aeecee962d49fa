package state

import "casinoclient/cards"

// GameState is the closed union of the ten per-game session states.
type GameState interface {
	gameState()
}

// BlackjackStage is the hand's turn marker.
type BlackjackStage uint8

const (
	BlackjackPlayerTurn BlackjackStage = iota
	BlackjackDealerTurn
	BlackjackSettled
)

type BlackjackState struct {
	Stage  BlackjackStage
	Player []cards.Card
	Dealer []cards.Card
}

// CrapsState is the table view: the established point (0 while coming
// out), the last roll, and the active bets carried across rolls.
type CrapsState struct {
	Point     uint8
	Dice      [2]uint8
	RollCount uint32
	Bets      []Bet
}

// RouletteState carries the spin history, newest last.
type RouletteState struct {
	History []uint8
}

type SicBoState struct {
	Dice [3]uint8
}

type BaccaratState struct {
	Player []cards.Card
	Banker []cards.Card
}

type ThreeCardState struct {
	Player [3]cards.Card
	Dealer [3]cards.Card
}

// HoldemStage is the ultimate hold'em street marker.
type HoldemStage uint8

const (
	HoldemPreflop HoldemStage = iota
	HoldemFlop
	HoldemRiver
	HoldemShowdown
)

// UltimateState is the ultimate hold'em session view. Undealt slots
// arrive as 0xFF and decode face down. PlayMultiplier is the raise the
// player has committed (4/3/2/1), zero before any raise.
type UltimateState struct {
	Stage          HoldemStage
	Hole           [2]cards.Card
	Board          [5]cards.Card
	Dealer         [2]cards.Card
	PlayMultiplier uint8
}

type VideoPokerState struct {
	Cards [5]cards.Card
}

// HiLoState is the running ladder: the card the next guess compares
// against and the accumulated pot.
type HiLoState struct {
	Round   uint8
	Current cards.Card
	Pot     uint64
}

// WarStage marks the casino war round phase.
type WarStage uint8

const (
	WarDeal WarStage = iota
	WarTiebreak
	WarSettled
)

// War round results as encoded by the chain.
const (
	WarResultOpen uint8 = iota
	WarResultPlayer
	WarResultDealer
)

type WarState struct {
	Stage       WarStage
	Player      cards.Card
	Dealer      cards.Card
	WarPlayer   cards.Card
	WarDealer   cards.Card
	Surrendered bool
	Result      uint8
}

func (BlackjackState) gameState()  {}
func (CrapsState) gameState()      {}
func (RouletteState) gameState()   {}
func (SicBoState) gameState()      {}
func (BaccaratState) gameState()   {}
func (ThreeCardState) gameState()  {}
func (UltimateState) gameState()   {}
func (VideoPokerState) gameState() {}
func (HiLoState) gameState()       {}
func (WarState) gameState()        {}
