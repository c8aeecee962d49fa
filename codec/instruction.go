package codec

import (
	"fmt"

	"casinoclient/state"
)

// Instruction tag bytes.
const (
	TagRegister       byte = 10
	TagDeposit        byte = 11
	TagStartGame      byte = 12
	TagGameMove       byte = 13
	TagToggleShield   byte = 14
	TagToggleDouble   byte = 15
	TagJoinTournament byte = 16
	TagToggleSuper    byte = 30
)

// Instruction is a player-submitted message. Encode never fails; field
// widths are validated upstream at construction time.
type Instruction interface {
	Tag() byte
	Encode() []byte
}

// ---- Account ----

// Register claims a display name for the submitting key.
type Register struct {
	Name string
}

func (Register) Tag() byte { return TagRegister }

func (m Register) Encode() []byte {
	out := make([]byte, 0, 5+len(m.Name))
	out = append(out, TagRegister)
	out = appendU32(out, uint32(len(m.Name)))
	return append(out, m.Name...)
}

// Deposit credits chips to the player's balance.
type Deposit struct {
	Amount uint64
}

func (Deposit) Tag() byte { return TagDeposit }

func (m Deposit) Encode() []byte {
	return appendU64([]byte{TagDeposit}, m.Amount)
}

// ---- Sessions ----

// StartGame opens a session of the given game with its base bet.
type StartGame struct {
	Game      state.GameType
	Bet       uint64
	SessionID uint64
}

func (StartGame) Tag() byte { return TagStartGame }

func (m StartGame) Encode() []byte {
	out := make([]byte, 0, 18)
	out = append(out, TagStartGame, byte(m.Game))
	out = appendU64(out, m.Bet)
	return appendU64(out, m.SessionID)
}

// GameMove submits an in-session action. Payload is the game-specific
// move encoding (see moves.go); the framing treats it as opaque.
type GameMove struct {
	SessionID uint64
	Payload   []byte
}

func (GameMove) Tag() byte { return TagGameMove }

func (m GameMove) Encode() []byte {
	out := make([]byte, 0, 13+len(m.Payload))
	out = append(out, TagGameMove)
	out = appendU64(out, m.SessionID)
	out = appendU32(out, uint32(len(m.Payload)))
	return append(out, m.Payload...)
}

// ---- Modifiers ----

// ToggleShield flips loss protection for subsequent sessions.
type ToggleShield struct{}

func (ToggleShield) Tag() byte      { return TagToggleShield }
func (ToggleShield) Encode() []byte { return []byte{TagToggleShield} }

// ToggleDouble flips the double-stake modifier.
type ToggleDouble struct{}

func (ToggleDouble) Tag() byte      { return TagToggleDouble }
func (ToggleDouble) Encode() []byte { return []byte{TagToggleDouble} }

// ToggleSuper flips the super-mode modifier.
type ToggleSuper struct{}

func (ToggleSuper) Tag() byte      { return TagToggleSuper }
func (ToggleSuper) Encode() []byte { return []byte{TagToggleSuper} }

// ---- Tournaments ----

// JoinTournament enters the player into a scheduled tournament.
type JoinTournament struct {
	TournamentID uint64
}

func (JoinTournament) Tag() byte { return TagJoinTournament }

func (m JoinTournament) Encode() []byte {
	return appendU64([]byte{TagJoinTournament}, m.TournamentID)
}

// DecodeInstruction is the inverse of Encode. The chain is the real
// consumer of instruction bytes; this decoder serves round-trip tests
// and local tooling, so it is strict: trailing bytes are rejected.
func DecodeInstruction(buf []byte) (Instruction, error) {
	r := newReader(buf)
	tag, err := r.u8()
	if err != nil {
		return nil, fmt.Errorf("instruction tag: %w", err)
	}

	var ins Instruction
	switch tag {
	case TagRegister:
		n, err := r.u32()
		if err != nil {
			return nil, fmt.Errorf("register name length: %w", err)
		}
		name, err := r.take(int(n))
		if err != nil {
			return nil, fmt.Errorf("register name: %w", err)
		}
		ins = Register{Name: string(name)}
	case TagDeposit:
		amount, err := r.u64()
		if err != nil {
			return nil, fmt.Errorf("deposit amount: %w", err)
		}
		ins = Deposit{Amount: amount}
	case TagStartGame:
		game, err := r.u8()
		if err != nil {
			return nil, fmt.Errorf("startGame game: %w", err)
		}
		bet, err := r.u64()
		if err != nil {
			return nil, fmt.Errorf("startGame bet: %w", err)
		}
		session, err := r.u64()
		if err != nil {
			return nil, fmt.Errorf("startGame session: %w", err)
		}
		ins = StartGame{Game: state.GameType(game), Bet: bet, SessionID: session}
	case TagGameMove:
		session, err := r.u64()
		if err != nil {
			return nil, fmt.Errorf("gameMove session: %w", err)
		}
		n, err := r.u32()
		if err != nil {
			return nil, fmt.Errorf("gameMove payload length: %w", err)
		}
		payload, err := r.copyBytes(int(n))
		if err != nil {
			return nil, fmt.Errorf("gameMove payload: %w", err)
		}
		ins = GameMove{SessionID: session, Payload: payload}
	case TagToggleShield:
		ins = ToggleShield{}
	case TagToggleDouble:
		ins = ToggleDouble{}
	case TagToggleSuper:
		ins = ToggleSuper{}
	case TagJoinTournament:
		id, err := r.u64()
		if err != nil {
			return nil, fmt.Errorf("joinTournament id: %w", err)
		}
		ins = JoinTournament{TournamentID: id}
	default:
		return nil, fmt.Errorf("instruction tag %d: %w", tag, ErrUnexpectedTag)
	}

	if !r.done() {
		return nil, fmt.Errorf("instruction tag %d: %d trailing bytes", tag, r.remaining())
	}
	return ins, nil
}
