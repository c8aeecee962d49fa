package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"casinoclient/cards"
	"casinoclient/state"
)

func TestResolveBlackjack(t *testing.T) {
	natural := []cards.Card{mk(0, cards.Ace), mk(1, cards.King)}
	made21 := []cards.Card{mk(0, 7), mk(1, 5), mk(2, 3)}              // 9+7+5
	twenty := []cards.Card{mk(0, cards.Ten), mk(1, cards.Queen)}       // 20
	nineteen := []cards.Card{mk(0, cards.Ten), mk(1, 7)}               // 19
	bust := []cards.Card{mk(0, cards.Ten), mk(1, 7), mk(2, 6)}         // 27
	dealerBust := []cards.Card{mk(3, cards.Ten), mk(3, 4), mk(2, 8)}   // 26

	cases := []struct {
		name   string
		player []cards.Card
		dealer []cards.Card
		amt    uint64
		net    int64
	}{
		{"natural pays three to two", natural, nineteen, 10, 15},
		{"natural floors the half", natural, nineteen, 5, 7},
		{"both naturals push", natural, natural, 10, 0},
		{"natural beats made twentyone", natural, made21, 10, 15},
		{"dealer natural beats made twentyone", made21, natural, 10, -10},
		{"player bust loses first", bust, dealerBust, 10, -10},
		{"dealer busts", nineteen, dealerBust, 10, 10},
		{"higher total wins", twenty, nineteen, 10, 10},
		{"lower total loses", nineteen, twenty, 10, -10},
		{"standoff", nineteen, nineteen, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := BlackjackOutcome{Player: tc.player, Dealer: tc.dealer}
			res := ResolveBlackjack(o, []state.Bet{bet(state.BlackjackMain, 0, tc.amt)})
			require.Equal(t, tc.net, res.Net)
			require.Empty(t, res.Remaining)
		})
	}
}

func TestResolveBlackjack_SoftTotals(t *testing.T) {
	softEighteen := []cards.Card{mk(0, cards.Ace), mk(1, 5)}           // A-7 soft 18
	hardSeventeen := []cards.Card{mk(0, cards.Ten), mk(1, 5)}          // 17
	demoted := []cards.Card{mk(0, cards.Ace), mk(1, 7), mk(2, 7)}      // A-9-9 -> 19

	o := BlackjackOutcome{Player: softEighteen, Dealer: hardSeventeen}
	require.Equal(t, int64(10), ResolveBlackjack(o, []state.Bet{bet(state.BlackjackMain, 0, 10)}).Net)

	o = BlackjackOutcome{Player: demoted, Dealer: softEighteen}
	require.Equal(t, int64(10), ResolveBlackjack(o, []state.Bet{bet(state.BlackjackMain, 0, 10)}).Net)
}
