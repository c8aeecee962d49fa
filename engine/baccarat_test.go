package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"casinoclient/cards"
	"casinoclient/state"
)

func TestResolveBaccarat_MainBets(t *testing.T) {
	playerWin := BaccaratOutcome{
		Player: []cards.Card{mk(0, 2), mk(1, 3)},          // 4+5 = 9
		Banker: []cards.Card{mk(2, cards.Ten), mk(3, 6)},  // 0+8 = 8
	}
	bankerWin7 := BaccaratOutcome{
		Player: []cards.Card{mk(0, 0), mk(1, 2)},          // 2+4 = 6
		Banker: []cards.Card{mk(2, 1), mk(3, 2)},          // 3+4 = 7
	}
	tied := BaccaratOutcome{
		Player: []cards.Card{mk(0, 5), mk(1, 6)},          // 7+8 = 15 -> 5
		Banker: []cards.Card{mk(2, 3), mk(3, cards.Jack)}, // 5+0 = 5
	}

	cases := []struct {
		name string
		o    BaccaratOutcome
		bet  state.Bet
		net  int64
	}{
		{"player wins", playerWin, bet(state.BaccaratPlayer, 0, 20), 20},
		{"player loses", bankerWin7, bet(state.BaccaratPlayer, 0, 20), -20},
		{"player pushes tie", tied, bet(state.BaccaratPlayer, 0, 20), 0},
		{"banker wins full", bankerWin7, bet(state.BaccaratBanker, 0, 100), 100},
		{"banker loses", playerWin, bet(state.BaccaratBanker, 0, 100), -100},
		{"banker pushes tie", tied, bet(state.BaccaratBanker, 0, 100), 0},
		{"tie pays eight", tied, bet(state.BaccaratTie, 0, 10), 80},
		{"tie loses", playerWin, bet(state.BaccaratTie, 0, 10), -10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ResolveBaccarat(tc.o, []state.Bet{tc.bet})
			require.Equal(t, tc.net, res.Net)
			require.Empty(t, res.Remaining)
		})
	}
}

func TestResolveBaccarat_LuckySix(t *testing.T) {
	twoCardSix := BaccaratOutcome{
		Player: []cards.Card{mk(0, 0), mk(1, 1)},            // 2+3 = 5
		Banker: []cards.Card{mk(2, cards.Ace), mk(3, 3)},    // 1+5 = 6
	}
	threeCardSix := BaccaratOutcome{
		Player: []cards.Card{mk(0, cards.Ten), mk(1, 3)},    // 0+5 = 5
		Banker: []cards.Card{mk(2, 0), mk(3, cards.Ace), mk(0, 1)}, // 2+1+3 = 6
	}
	bankerSeven := BaccaratOutcome{
		Player: []cards.Card{mk(0, 0), mk(1, 2)},            // 6
		Banker: []cards.Card{mk(2, 1), mk(3, 2)},            // 7
	}

	// A banker six pays half on the banker line.
	res := ResolveBaccarat(twoCardSix, []state.Bet{bet(state.BaccaratBanker, 0, 100)})
	require.Equal(t, int64(50), res.Net)
	require.Equal(t, []string{"BANKER pays 50"}, res.Lines)

	res = ResolveBaccarat(twoCardSix, []state.Bet{bet(state.BaccaratBanker, 0, 101)})
	require.Equal(t, int64(50), res.Net)

	res = ResolveBaccarat(bankerSeven, []state.Bet{bet(state.BaccaratBanker, 0, 100)})
	require.Equal(t, int64(100), res.Net)

	// Lucky 6 splits on the banker's card count.
	res = ResolveBaccarat(twoCardSix, []state.Bet{bet(state.BaccaratLucky6, 0, 10)})
	require.Equal(t, int64(120), res.Net)

	res = ResolveBaccarat(threeCardSix, []state.Bet{bet(state.BaccaratLucky6, 0, 10)})
	require.Equal(t, int64(200), res.Net)

	res = ResolveBaccarat(bankerSeven, []state.Bet{bet(state.BaccaratLucky6, 0, 10)})
	require.Equal(t, int64(-10), res.Net)
}

func TestResolveBaccarat_Pairs(t *testing.T) {
	pairUp := BaccaratOutcome{
		Player: []cards.Card{mk(0, cards.King), mk(1, cards.King), mk(2, 2)},
		Banker: []cards.Card{mk(2, 3), mk(3, 7)},
	}
	// The third card pairing does not count; only the first two do.
	latePair := BaccaratOutcome{
		Player: []cards.Card{mk(0, 3), mk(1, cards.King), mk(2, 3)},
		Banker: []cards.Card{mk(2, 6), mk(3, 6)},
	}

	res := ResolveBaccarat(pairUp, []state.Bet{bet(state.BaccaratPlayerPair, 0, 10)})
	require.Equal(t, int64(110), res.Net)

	res = ResolveBaccarat(pairUp, []state.Bet{bet(state.BaccaratBankerPair, 0, 10)})
	require.Equal(t, int64(-10), res.Net)

	res = ResolveBaccarat(latePair, []state.Bet{bet(state.BaccaratPlayerPair, 0, 10)})
	require.Equal(t, int64(-10), res.Net)

	res = ResolveBaccarat(latePair, []state.Bet{bet(state.BaccaratBankerPair, 0, 10)})
	require.Equal(t, int64(110), res.Net)
}
