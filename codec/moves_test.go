package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"casinoclient/state"
)

func TestMovePayloadLayouts(t *testing.T) {
	cases := []struct {
		name string
		got  []byte
		want []byte
	}{
		{
			"blackjack hit",
			EncodeBlackjackMove(BlackjackMoveHit),
			[]byte{0},
		},
		{
			"blackjack surrender",
			EncodeBlackjackMove(BlackjackMoveSurrender),
			[]byte{3},
		},
		{
			"craps place yes six",
			EncodeCrapsPlaceBet(state.CrapsYes, 6, 120, 0),
			[]byte{0, 5, 6, 0, 0, 0, 0, 0, 0, 0, 120, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			"craps roll",
			EncodeCrapsRoll(),
			[]byte{1},
		},
		{
			"roulette red fifty",
			EncodeRoulettePlaceBet(state.RouletteRed, 0, 50),
			[]byte{0, 8, 0, 0, 0, 0, 0, 0, 0, 0, 50},
		},
		{
			"sicbo sum nine",
			EncodeSicBoPlaceBet(state.SicBoSum, 9, 10),
			[]byte{0, 4, 9, 0, 0, 0, 0, 0, 0, 0, 10},
		},
		{
			"baccarat banker",
			EncodeBaccaratPlaceBet(state.BaccaratBanker, 300),
			[]byte{0, 1, 0, 0, 0, 0, 0, 0, 1, 44},
		},
		{
			"three card fold",
			EncodeThreeCardFold(),
			[]byte{2},
		},
		{
			"ultimate raise 4x",
			EncodeUltimateRaise(4),
			[]byte{2, 4},
		},
		{
			"video poker hold mask",
			EncodeVideoPokerDraw(0b10110),
			[]byte{0, 0x16},
		},
		{
			"video poker hold mask clamps",
			EncodeVideoPokerDraw(0xFF),
			[]byte{0, 0x1F},
		},
		{
			"hilo guess lo",
			EncodeHiLoGuess(HiLoGuessLo),
			[]byte{0, 1},
		},
		{
			"war tie bet",
			EncodeWarPlaceTie(7),
			[]byte{2, 0, 0, 0, 0, 0, 0, 0, 7},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestMovePayloadInsideGameMove(t *testing.T) {
	payload := EncodeCrapsPlaceBet(state.CrapsPass, 0, 25, 0)
	move := GameMove{SessionID: 11, Payload: payload}
	decoded, err := DecodeInstruction(move.Encode())
	assert.NoError(t, err)
	assert.Equal(t, move, decoded)
}
