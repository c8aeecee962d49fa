package poker

import "casinoclient/cards"

// EvaluateWild ranks a five-card hand where isWild marks substitutable
// cards. Each wild is tried as every card in the deck and the best
// resulting rank wins. isWild may be nil, in which case this is
// Evaluate5.
func EvaluateWild(hand [5]cards.Card, isWild func(cards.Card) bool) HandRank {
	if isWild == nil {
		return Evaluate5(hand)
	}
	var wilds []int
	for i, c := range hand {
		if isWild(c) {
			wilds = append(wilds, i)
		}
	}
	if len(wilds) == 0 {
		return Evaluate5(hand)
	}
	return bestSubstitution(hand, wilds)
}

func bestSubstitution(hand [5]cards.Card, wilds []int) HandRank {
	if len(wilds) == 0 {
		return Evaluate5(hand)
	}
	i, rest := wilds[0], wilds[1:]
	best := HandRank{}
	first := true
	for b := byte(0); b < 52; b++ {
		hand[i] = cards.Parse(b)
		r := bestSubstitution(hand, rest)
		if first || Compare(r, best) > 0 {
			best = r
			first = false
		}
	}
	return best
}
