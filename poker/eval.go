// Package poker ranks five- and three-card hands with the exact category
// and tiebreak semantics the chain settles against.
package poker

import (
	"sort"

	"casinoclient/cards"
)

type HandCategory uint8

const (
	HighCard HandCategory = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "high card"
	case Pair:
		return "pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	}
	return "unknown"
}

// HandRank orders hands by category, then tiebreaks lexicographically.
// Tiebreak ranks use the 0..12 scale (12 = ace).
type HandRank struct {
	Category  HandCategory
	Tiebreaks []uint8
}

// Compare returns -1, 0 or 1 as a ranks below, equal to or above b.
func Compare(a, b HandRank) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return -1
		}
		return 1
	}
	return compareTiebreaks(a.Tiebreaks, b.Tiebreaks)
}

func compareTiebreaks(a, b []uint8) int {
	l := len(a)
	if len(b) > l {
		l = len(b)
	}
	for i := 0; i < l; i++ {
		var av, bv uint8
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av == bv {
			continue
		}
		if av < bv {
			return -1
		}
		return 1
	}
	return 0
}

type group struct {
	rank  uint8
	count uint8
}

// rankGroups buckets the hand by rank, ordered by count then rank,
// both descending.
func rankGroups(hand []cards.Card) []group {
	var counts [13]uint8
	for _, c := range hand {
		counts[c.Rank%13]++
	}
	groups := make([]group, 0, len(hand))
	for r := 12; r >= 0; r-- {
		if counts[r] > 0 {
			groups = append(groups, group{rank: uint8(r), count: counts[r]})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].count > groups[j].count })
	return groups
}

// straightHigh reports the straight's high rank given the distinct ranks
// in descending order. The wheel (A-2-3-4-5) ranks below the six-high
// straight and reports the five as its high card.
func straightHigh(uniqueDesc []uint8) (uint8, bool) {
	if len(uniqueDesc) != 5 {
		return 0, false
	}
	if uniqueDesc[0] == cards.Ace && uniqueDesc[1] == 3 && uniqueDesc[2] == 2 && uniqueDesc[3] == 1 && uniqueDesc[4] == 0 {
		return 3, true
	}
	for i := 1; i < len(uniqueDesc); i++ {
		if uniqueDesc[i-1]-1 != uniqueDesc[i] {
			return 0, false
		}
	}
	return uniqueDesc[0], true
}

// Evaluate5 ranks a five-card hand. Duplicate cards are legal input
// (wild substitution can produce them); five of a rank ranks as four of
// a kind with the same rank repeated as kicker.
func Evaluate5(hand [5]cards.Card) HandRank {
	flush := true
	for i := 1; i < 5; i++ {
		if hand[i].Suit != hand[0].Suit {
			flush = false
			break
		}
	}

	groups := rankGroups(hand[:])
	// With five distinct ranks the stable count sort leaves groups in
	// rank-descending order, which is what straightHigh needs.
	uniqueDesc := make([]uint8, 0, len(groups))
	for _, g := range groups {
		uniqueDesc = append(uniqueDesc, g.rank)
	}
	high, straight := straightHigh(uniqueDesc)

	switch {
	case straight && flush:
		return HandRank{Category: StraightFlush, Tiebreaks: []uint8{high}}
	case groups[0].count >= 4:
		kicker := groups[0].rank
		if len(groups) > 1 {
			kicker = groups[1].rank
		}
		return HandRank{Category: FourOfAKind, Tiebreaks: []uint8{groups[0].rank, kicker}}
	case groups[0].count == 3 && groups[1].count >= 2:
		return HandRank{Category: FullHouse, Tiebreaks: []uint8{groups[0].rank, groups[1].rank}}
	case flush:
		return HandRank{Category: Flush, Tiebreaks: ranksDesc(hand[:])}
	case straight:
		return HandRank{Category: Straight, Tiebreaks: []uint8{high}}
	case groups[0].count == 3:
		return HandRank{Category: ThreeOfAKind, Tiebreaks: groupTiebreaks(groups)}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandRank{Category: TwoPair, Tiebreaks: groupTiebreaks(groups)}
	case groups[0].count == 2:
		return HandRank{Category: Pair, Tiebreaks: groupTiebreaks(groups)}
	}
	return HandRank{Category: HighCard, Tiebreaks: ranksDesc(hand[:])}
}

// groupTiebreaks flattens grouped ranks in group order: multiples first,
// then kickers descending.
func groupTiebreaks(groups []group) []uint8 {
	out := make([]uint8, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.rank)
	}
	return out
}

func ranksDesc(hand []cards.Card) []uint8 {
	r := make([]uint8, 0, len(hand))
	for _, c := range hand {
		r = append(r, c.Rank%13)
	}
	sort.Slice(r, func(i, j int) bool { return r[i] > r[j] })
	return r
}

var combos7Choose5 = [21][5]int{
	{0, 1, 2, 3, 4},
	{0, 1, 2, 3, 5},
	{0, 1, 2, 3, 6},
	{0, 1, 2, 4, 5},
	{0, 1, 2, 4, 6},
	{0, 1, 2, 5, 6},
	{0, 1, 3, 4, 5},
	{0, 1, 3, 4, 6},
	{0, 1, 3, 5, 6},
	{0, 1, 4, 5, 6},
	{0, 2, 3, 4, 5},
	{0, 2, 3, 4, 6},
	{0, 2, 3, 5, 6},
	{0, 2, 4, 5, 6},
	{0, 3, 4, 5, 6},
	{1, 2, 3, 4, 5},
	{1, 2, 3, 4, 6},
	{1, 2, 3, 5, 6},
	{1, 2, 4, 5, 6},
	{1, 3, 4, 5, 6},
	{2, 3, 4, 5, 6},
}

// Evaluate7 ranks the best five-card hand out of seven.
func Evaluate7(hand [7]cards.Card) HandRank {
	var best HandRank
	for i, idx := range combos7Choose5 {
		r := Evaluate5([5]cards.Card{hand[idx[0]], hand[idx[1]], hand[idx[2]], hand[idx[3]], hand[idx[4]]})
		if i == 0 || Compare(r, best) > 0 {
			best = r
		}
	}
	return best
}
