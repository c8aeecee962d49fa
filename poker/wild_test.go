package poker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"casinoclient/cards"
)

func TestEvaluateWild_NoWilds(t *testing.T) {
	hand := [5]cards.Card{mk(0, cards.Ace), mk(1, cards.Ace), mk(2, cards.King), mk(3, 7), mk(0, 2)}
	plain := Evaluate5(hand)
	require.Equal(t, plain, EvaluateWild(hand, nil))
	require.Equal(t, plain, EvaluateWild(hand, func(cards.Card) bool { return false }))
}

func TestEvaluateWild_CompletesRoyal(t *testing.T) {
	hand := [5]cards.Card{
		mk(2, cards.Ten), mk(2, cards.Jack), mk(2, cards.Queen), mk(2, cards.King),
		{FaceDown: true},
	}
	r := EvaluateWild(hand, func(c cards.Card) bool { return c.FaceDown })
	require.Equal(t, StraightFlush, r.Category)
	require.Equal(t, []uint8{cards.Ace}, r.Tiebreaks)
}

func TestEvaluateWild_PairBecomesTrips(t *testing.T) {
	hand := [5]cards.Card{
		mk(0, cards.King), mk(1, cards.King), mk(2, 7), mk(3, 3),
		{FaceDown: true},
	}
	r := EvaluateWild(hand, func(c cards.Card) bool { return c.FaceDown })
	require.Equal(t, ThreeOfAKind, r.Category)
	require.Equal(t, []uint8{cards.King, 7, 3}, r.Tiebreaks)
}

func TestEvaluateWild_TwoWildsMakeQuads(t *testing.T) {
	hand := [5]cards.Card{
		mk(0, cards.King), mk(1, cards.King), mk(3, 7),
		{FaceDown: true}, {FaceDown: true},
	}
	r := EvaluateWild(hand, func(c cards.Card) bool { return c.FaceDown })
	require.Equal(t, FourOfAKind, r.Category)
	require.Equal(t, []uint8{cards.King, 7}, r.Tiebreaks)
}

func TestEvaluateWild_DeucesWild(t *testing.T) {
	hand := [5]cards.Card{
		mk(0, 0), mk(1, 0), mk(2, cards.Ace), mk(3, cards.Ace), mk(1, cards.King),
	}
	r := EvaluateWild(hand, func(c cards.Card) bool { return !c.FaceDown && c.Rank == 0 })
	require.Equal(t, FourOfAKind, r.Category)
	require.Equal(t, []uint8{cards.Ace, cards.King}, r.Tiebreaks)
}
