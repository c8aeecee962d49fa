package poker

import (
	"sort"

	"casinoclient/cards"
)

// ThreeCategory orders three-card hands. Straights outrank flushes and
// trips outrank straights; with three cards the rarer shapes invert the
// five-card order.
type ThreeCategory uint8

const (
	ThreeHighCard ThreeCategory = iota
	ThreePair
	ThreeFlush
	ThreeStraight
	ThreeTrips
	ThreeStraightFlush
)

func (c ThreeCategory) String() string {
	switch c {
	case ThreeHighCard:
		return "high card"
	case ThreePair:
		return "pair"
	case ThreeFlush:
		return "flush"
	case ThreeStraight:
		return "straight"
	case ThreeTrips:
		return "three of a kind"
	case ThreeStraightFlush:
		return "straight flush"
	}
	return "unknown"
}

// ThreeRank is a ranked three-card hand; tiebreaks use the 0..12 scale.
type ThreeRank struct {
	Category  ThreeCategory
	Tiebreaks []uint8
}

// CompareThree returns -1, 0 or 1 as a ranks below, equal to or above b.
func CompareThree(a, b ThreeRank) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return -1
		}
		return 1
	}
	return compareTiebreaks(a.Tiebreaks, b.Tiebreaks)
}

// threeStraightHigh mirrors straightHigh for three distinct ranks; the
// A-2-3 wheel ranks below 4-high and reports the three as its high.
func threeStraightHigh(uniqueDesc []uint8) (uint8, bool) {
	if len(uniqueDesc) != 3 {
		return 0, false
	}
	if uniqueDesc[0] == cards.Ace && uniqueDesc[1] == 1 && uniqueDesc[2] == 0 {
		return 1, true
	}
	if uniqueDesc[0]-1 == uniqueDesc[1] && uniqueDesc[1]-1 == uniqueDesc[2] {
		return uniqueDesc[0], true
	}
	return 0, false
}

// Evaluate3 ranks a three-card poker hand.
func Evaluate3(hand [3]cards.Card) ThreeRank {
	flush := hand[0].Suit == hand[1].Suit && hand[1].Suit == hand[2].Suit

	ranks := []uint8{hand[0].Rank % 13, hand[1].Rank % 13, hand[2].Rank % 13}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	switch {
	case ranks[0] == ranks[2]:
		return ThreeRank{Category: ThreeTrips, Tiebreaks: []uint8{ranks[0]}}
	case ranks[0] == ranks[1]:
		return ThreeRank{Category: ThreePair, Tiebreaks: []uint8{ranks[0], ranks[2]}}
	case ranks[1] == ranks[2]:
		return ThreeRank{Category: ThreePair, Tiebreaks: []uint8{ranks[1], ranks[0]}}
	}

	high, straight := threeStraightHigh(ranks)
	switch {
	case straight && flush:
		return ThreeRank{Category: ThreeStraightFlush, Tiebreaks: []uint8{high}}
	case straight:
		return ThreeRank{Category: ThreeStraight, Tiebreaks: []uint8{high}}
	case flush:
		return ThreeRank{Category: ThreeFlush, Tiebreaks: ranks}
	}
	return ThreeRank{Category: ThreeHighCard, Tiebreaks: ranks}
}
