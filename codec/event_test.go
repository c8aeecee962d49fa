package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casinoclient/state"
)

// Test-side event builders; the chain owns these encodings in
// production.

func buildGameStarted(ev GameStarted) []byte {
	buf := []byte{TagGameStarted}
	buf = appendU64(buf, ev.SessionID)
	buf = append(buf, ev.Player[:]...)
	buf = append(buf, byte(ev.Game))
	buf = appendU64(buf, ev.Bet)
	buf = AppendUvarint(buf, uint64(len(ev.State)))
	return append(buf, ev.State...)
}

func buildGameMoved(ev GameMoved) []byte {
	buf := []byte{TagGameMoved}
	buf = appendU64(buf, ev.SessionID)
	buf = appendU32(buf, ev.MoveNumber)
	buf = AppendUvarint(buf, uint64(len(ev.State)))
	return append(buf, ev.State...)
}

func buildGameCompleted(ev GameCompleted) []byte {
	buf := []byte{TagGameCompleted}
	buf = appendU64(buf, ev.SessionID)
	buf = append(buf, ev.Player[:]...)
	buf = append(buf, byte(ev.Game))
	buf = appendU64(buf, uint64(ev.Payout))
	buf = appendU64(buf, ev.FinalChips)
	flag := func(b bool) byte {
		if b {
			return 1
		}
		return 0
	}
	return append(buf, flag(ev.Shielded), flag(ev.Doubled))
}

func testPlayer() [32]byte {
	var p [32]byte
	for i := range p {
		p[i] = byte(i + 1)
	}
	return p
}

func TestDecodeGameStarted(t *testing.T) {
	want := GameStarted{
		SessionID: 0xDEADBEEF,
		Player:    testPlayer(),
		Game:      state.SicBo,
		Bet:       250,
		State:     []byte{3, 5, 1},
	}
	got, err := DecodeGameStarted(buildGameStarted(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeGameStarted_LongState(t *testing.T) {
	// A state blob long enough to need a two-byte varint length.
	blob := make([]byte, 300)
	for i := range blob {
		blob[i] = byte(i)
	}
	want := GameStarted{SessionID: 7, Player: testPlayer(), Game: state.Craps, Bet: 10, State: blob}
	got, err := DecodeGameStarted(buildGameStarted(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeGameStarted_StateIsOwnedCopy(t *testing.T) {
	buf := buildGameStarted(GameStarted{Game: state.SicBo, State: []byte{3, 5, 1}})
	got, err := DecodeGameStarted(buf)
	require.NoError(t, err)
	buf[len(buf)-1] = 0xEE
	assert.Equal(t, []byte{3, 5, 1}, got.State)
}

func TestDecodeGameStarted_EveryPrefixTruncates(t *testing.T) {
	buf := buildGameStarted(GameStarted{
		SessionID: 1,
		Player:    testPlayer(),
		Game:      state.Blackjack,
		Bet:       100,
		State:     []byte{0, 2, 12, 24, 1, 34},
	})
	for i := 0; i < len(buf); i++ {
		_, err := DecodeGameStarted(buf[:i])
		require.Error(t, err, "prefix %d", i)
		assert.True(t, errors.Is(err, ErrTruncatedBuffer), "prefix %d: %v", i, err)
	}
}

func TestDecodeGameStarted_WrongTag(t *testing.T) {
	buf := buildGameMoved(GameMoved{SessionID: 1, MoveNumber: 2})
	_, err := DecodeGameStarted(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedTag), "%v", err)
}

func TestDecodeGameMoved(t *testing.T) {
	want := GameMoved{SessionID: 31337, MoveNumber: 4, State: []byte{6, 4, 2}}
	got, err := DecodeGameMoved(buildGameMoved(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeGameMoved_EmptyState(t *testing.T) {
	got, err := DecodeGameMoved(buildGameMoved(GameMoved{SessionID: 2, MoveNumber: 9}))
	require.NoError(t, err)
	assert.Equal(t, uint32(9), got.MoveNumber)
	assert.Nil(t, got.State)
}

func TestDecodeGameCompleted(t *testing.T) {
	cases := []GameCompleted{
		{SessionID: 5, Player: testPlayer(), Game: state.Roulette, Payout: 1750, FinalChips: 9000, Shielded: false, Doubled: true},
		{SessionID: 6, Player: testPlayer(), Game: state.War, Payout: -500, FinalChips: 100, Shielded: true, Doubled: false},
		{SessionID: 7, Player: testPlayer(), Game: state.HiLo, Payout: 0, FinalChips: 1, Shielded: false, Doubled: false},
	}
	for _, want := range cases {
		got, err := DecodeGameCompleted(buildGameCompleted(want))
		require.NoError(t, err, "payout %d", want.Payout)
		assert.Equal(t, want, got, "payout %d", want.Payout)
	}
}

func TestDecodeGameCompleted_EveryPrefixTruncates(t *testing.T) {
	buf := buildGameCompleted(GameCompleted{SessionID: 5, Player: testPlayer(), Payout: -1})
	for i := 0; i < len(buf); i++ {
		_, err := DecodeGameCompleted(buf[:i])
		require.Error(t, err, "prefix %d", i)
		assert.True(t, errors.Is(err, ErrTruncatedBuffer), "prefix %d: %v", i, err)
	}
}

func TestDecodeEvent_Dispatch(t *testing.T) {
	started := buildGameStarted(GameStarted{SessionID: 1, Game: state.Baccarat})
	moved := buildGameMoved(GameMoved{SessionID: 1, MoveNumber: 1})
	completed := buildGameCompleted(GameCompleted{SessionID: 1, Game: state.Baccarat})

	ev, err := DecodeEvent(started)
	require.NoError(t, err)
	assert.IsType(t, GameStarted{}, ev)

	ev, err = DecodeEvent(moved)
	require.NoError(t, err)
	assert.IsType(t, GameMoved{}, ev)

	ev, err = DecodeEvent(completed)
	require.NoError(t, err)
	assert.IsType(t, GameCompleted{}, ev)

	_, err = DecodeEvent([]byte{42})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedTag), "%v", err)

	_, err = DecodeEvent(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTruncatedBuffer), "%v", err)
}

func TestDecodeEvent_RejectsTrailing(t *testing.T) {
	buf := append(buildGameMoved(GameMoved{SessionID: 3, MoveNumber: 1, State: []byte{1}}), 0xCC)
	_, err := DecodeGameMoved(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing")
}

func TestDecodeGameStarted_DeclaredLengthPastEnd(t *testing.T) {
	// Well-formed up to the state segment, which claims more bytes than
	// remain.
	buf := buildGameStarted(GameStarted{SessionID: 9, Player: testPlayer(), Game: state.HiLo, Bet: 5, State: []byte{1, 2, 3, 4}})
	buf = buf[:len(buf)-2]
	_, err := DecodeGameStarted(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTruncatedBuffer), "%v", err)
}
