package codec

import (
	"fmt"

	"casinoclient/state"
)

// Event tag bytes.
const (
	TagGameStarted   byte = 21
	TagGameMoved     byte = 22
	TagGameCompleted byte = 23
)

// Event is a chain-emitted message. Decoders take the full tagged buffer
// and are strict: short input fails with ErrTruncatedBuffer, a foreign
// leading byte with ErrUnexpectedTag, and trailing bytes are rejected.
// State slices are owned copies; callers may retain them freely.
type Event interface {
	Tag() byte
}

// GameStarted announces a session the chain accepted.
type GameStarted struct {
	SessionID uint64
	Player    [32]byte
	Game      state.GameType
	Bet       uint64
	State     []byte
}

func (GameStarted) Tag() byte { return TagGameStarted }

// GameMoved carries the session state after an accepted move.
type GameMoved struct {
	SessionID  uint64
	MoveNumber uint32
	State      []byte
}

func (GameMoved) Tag() byte { return TagGameMoved }

// GameCompleted is the terminal settlement event. Payout is the signed
// session net; Shielded and Doubled report the modifiers the chain
// applied to it.
type GameCompleted struct {
	SessionID  uint64
	Player     [32]byte
	Game       state.GameType
	Payout     int64
	FinalChips uint64
	Shielded   bool
	Doubled    bool
}

func (GameCompleted) Tag() byte { return TagGameCompleted }

// DecodeEvent dispatches on the leading tag byte.
func DecodeEvent(buf []byte) (Event, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("event tag: %w", ErrTruncatedBuffer)
	}
	switch buf[0] {
	case TagGameStarted:
		return DecodeGameStarted(buf)
	case TagGameMoved:
		return DecodeGameMoved(buf)
	case TagGameCompleted:
		return DecodeGameCompleted(buf)
	}
	return nil, fmt.Errorf("event tag %d: %w", buf[0], ErrUnexpectedTag)
}

// openEvent checks the leading tag and positions a reader after it.
func openEvent(buf []byte, want byte) (*reader, error) {
	r := newReader(buf)
	tag, err := r.u8()
	if err != nil {
		return nil, fmt.Errorf("event tag: %w", err)
	}
	if tag != want {
		return nil, fmt.Errorf("event tag %d, want %d: %w", tag, want, ErrUnexpectedTag)
	}
	return r, nil
}

// stateBlob reads [uvarint length][length bytes] as an owned copy.
func (r *reader) stateBlob() ([]byte, error) {
	n, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	if n > uint64(r.remaining()) {
		return nil, fmt.Errorf("state length %d with %d bytes left: %w", n, r.remaining(), ErrTruncatedBuffer)
	}
	return r.copyBytes(int(n))
}

// DecodeGameStarted decodes a tag-21 buffer.
func DecodeGameStarted(buf []byte) (GameStarted, error) {
	var ev GameStarted
	r, err := openEvent(buf, TagGameStarted)
	if err != nil {
		return ev, err
	}
	if ev.SessionID, err = r.u64(); err != nil {
		return GameStarted{}, fmt.Errorf("gameStarted session: %w", err)
	}
	if ev.Player, err = r.bytes32(); err != nil {
		return GameStarted{}, fmt.Errorf("gameStarted player: %w", err)
	}
	game, err := r.u8()
	if err != nil {
		return GameStarted{}, fmt.Errorf("gameStarted game: %w", err)
	}
	ev.Game = state.GameType(game)
	if ev.Bet, err = r.u64(); err != nil {
		return GameStarted{}, fmt.Errorf("gameStarted bet: %w", err)
	}
	if ev.State, err = r.stateBlob(); err != nil {
		return GameStarted{}, fmt.Errorf("gameStarted state: %w", err)
	}
	if !r.done() {
		return GameStarted{}, fmt.Errorf("gameStarted: %d trailing bytes", r.remaining())
	}
	return ev, nil
}

// DecodeGameMoved decodes a tag-22 buffer.
func DecodeGameMoved(buf []byte) (GameMoved, error) {
	var ev GameMoved
	r, err := openEvent(buf, TagGameMoved)
	if err != nil {
		return ev, err
	}
	if ev.SessionID, err = r.u64(); err != nil {
		return GameMoved{}, fmt.Errorf("gameMoved session: %w", err)
	}
	if ev.MoveNumber, err = r.u32(); err != nil {
		return GameMoved{}, fmt.Errorf("gameMoved move number: %w", err)
	}
	if ev.State, err = r.stateBlob(); err != nil {
		return GameMoved{}, fmt.Errorf("gameMoved state: %w", err)
	}
	if !r.done() {
		return GameMoved{}, fmt.Errorf("gameMoved: %d trailing bytes", r.remaining())
	}
	return ev, nil
}

// DecodeGameCompleted decodes a tag-23 buffer.
func DecodeGameCompleted(buf []byte) (GameCompleted, error) {
	var ev GameCompleted
	r, err := openEvent(buf, TagGameCompleted)
	if err != nil {
		return ev, err
	}
	if ev.SessionID, err = r.u64(); err != nil {
		return GameCompleted{}, fmt.Errorf("gameCompleted session: %w", err)
	}
	if ev.Player, err = r.bytes32(); err != nil {
		return GameCompleted{}, fmt.Errorf("gameCompleted player: %w", err)
	}
	game, err := r.u8()
	if err != nil {
		return GameCompleted{}, fmt.Errorf("gameCompleted game: %w", err)
	}
	ev.Game = state.GameType(game)
	if ev.Payout, err = r.i64(); err != nil {
		return GameCompleted{}, fmt.Errorf("gameCompleted payout: %w", err)
	}
	if ev.FinalChips, err = r.u64(); err != nil {
		return GameCompleted{}, fmt.Errorf("gameCompleted chips: %w", err)
	}
	shielded, err := r.u8()
	if err != nil {
		return GameCompleted{}, fmt.Errorf("gameCompleted shielded: %w", err)
	}
	doubled, err := r.u8()
	if err != nil {
		return GameCompleted{}, fmt.Errorf("gameCompleted doubled: %w", err)
	}
	ev.Shielded = shielded != 0
	ev.Doubled = doubled != 0
	if !r.done() {
		return GameCompleted{}, fmt.Errorf("gameCompleted: %d trailing bytes", r.remaining())
	}
	return ev, nil
}
