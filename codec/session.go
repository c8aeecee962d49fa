package codec

import (
	"encoding/binary"

	"github.com/google/uuid"

	"casinoclient/state"
)

// SessionSource supplies session ids for StartGame. The chain only
// requires uniqueness per player; tests inject a deterministic source.
type SessionSource func() uint64

// UUIDSessionSource draws the first eight bytes of a fresh random UUID
// per call.
func UUIDSessionSource() SessionSource {
	return func() uint64 {
		u := uuid.New()
		return binary.BigEndian.Uint64(u[:8])
	}
}

// NewStartGame builds a StartGame instruction with a fresh session id.
func NewStartGame(game state.GameType, bet uint64, src SessionSource) StartGame {
	return StartGame{Game: game, Bet: bet, SessionID: src()}
}
