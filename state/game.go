// Package state models per-session game state: the closed set of game
// types, the typed state shapes decoded from chain blobs, and the active
// bet model the settlement engine consumes.
package state

import (
	"fmt"

	"casinoclient/cards"
)

// GameType discriminates the ten supported games. Values are the chain's
// wire bytes.
type GameType uint8

const (
	Blackjack GameType = iota
	Craps
	Roulette
	SicBo
	Baccarat
	ThreeCard
	UltimateHoldem
	VideoPoker
	HiLo
	War
)

func (g GameType) String() string {
	switch g {
	case Blackjack:
		return "blackjack"
	case Craps:
		return "craps"
	case Roulette:
		return "roulette"
	case SicBo:
		return "sicbo"
	case Baccarat:
		return "baccarat"
	case ThreeCard:
		return "threecard"
	case UltimateHoldem:
		return "ultimate"
	case VideoPoker:
		return "videopoker"
	case HiLo:
		return "hilo"
	case War:
		return "war"
	}
	return fmt.Sprintf("game(%d)", uint8(g))
}

// ZeroRule selects the roulette zero treatment for even-money bets.
type ZeroRule uint8

const (
	ZeroStandard ZeroRule = iota
	ZeroLaPartage
)

// WildSpec designates wild cards for video poker variants. A nil spec
// means no wilds; Rank and Suit match independently when enabled.
type WildSpec struct {
	Rank    uint8
	HasRank bool
	Suit    uint8
	HasSuit bool
}

func (w *WildSpec) IsWild(c cards.Card) bool {
	if w == nil || c.FaceDown {
		return false
	}
	if w.HasRank && c.Rank == w.Rank {
		return true
	}
	if w.HasSuit && c.Suit == w.Suit {
		return true
	}
	return false
}
