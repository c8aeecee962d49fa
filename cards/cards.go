// Package cards holds the card model shared by the state decoders, the
// hand evaluator and the settlement engine.
package cards

// Suit identifiers, matching the chain's card byte layout (byte / 13).
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

// Rank indices on the chain's 0..12 scale (0 = deuce, 12 = ace).
const (
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

// Card is a single playing card. Rank is the 0..12 index the chain uses,
// Suit is 0..3, FaceDown marks cards the chain has not revealed yet.
// Identity is value-based; cards are copied, never shared.
type Card struct {
	Suit     uint8
	Rank     uint8
	FaceDown bool
}

// Parse maps a chain card byte to a Card: suit = b/13, rank = b%13.
// Any byte outside 0..51 (undealt slots arrive as 0xFF) maps to a fixed
// face-down default instead of an error.
func Parse(b byte) Card {
	if b >= 52 {
		return Card{FaceDown: true}
	}
	return Card{Suit: b / 13, Rank: b % 13}
}

// Byte is the inverse of Parse for face-up cards.
func (c Card) Byte() byte {
	return c.Suit*13 + c.Rank
}

// HighValue is the ace-high comparison value 2..14 used by hi-lo and war.
func (c Card) HighValue() int {
	return int(c.Rank) + 2
}

// IsRed reports a heart or diamond suit. Display convenience only; no game
// rule keys off card color.
func (c Card) IsRed() bool {
	return c.Suit == Diamonds || c.Suit == Hearts
}

const rankGlyphs = "23456789TJQKA"

func (c Card) String() string {
	if c.FaceDown || c.Rank > Ace || c.Suit > Spades {
		return "??"
	}
	var sch byte
	switch c.Suit {
	case Clubs:
		sch = 'c'
	case Diamonds:
		sch = 'd'
	case Hearts:
		sch = 'h'
	case Spades:
		sch = 's'
	}
	return string([]byte{rankGlyphs[c.Rank], sch})
}

// BlackjackValue totals a hand with aces counting 11 then demoting to 1
// one at a time while the hand would bust. soft reports whether an ace
// still counts as 11.
func BlackjackValue(hand []Card) (total int, soft bool) {
	aces := 0
	for _, c := range hand {
		switch {
		case c.Rank == Ace:
			aces++
			total += 11
		case c.Rank >= Ten:
			total += 10
		default:
			total += int(c.Rank) + 2
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// BaccaratValue totals a hand mod 10: aces count 1, tens and faces 0.
func BaccaratValue(hand []Card) int {
	sum := 0
	for _, c := range hand {
		switch {
		case c.Rank == Ace:
			sum++
		case c.Rank >= Ten:
			// zero
		default:
			sum += int(c.Rank) + 2
		}
	}
	return sum % 10
}
