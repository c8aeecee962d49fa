package state

// BetKind discriminates bet types. Values are scoped to their game; the
// numeric space restarts at zero per game, matching the chain's wire
// indices.
type BetKind uint8

// Craps bet kinds, in wire order.
const (
	CrapsPass BetKind = iota
	CrapsDontPass
	CrapsCome
	CrapsDontCome
	CrapsField
	CrapsYes
	CrapsNo
	CrapsBuy
	CrapsNext
	CrapsHardway
	CrapsAtsSmall
	CrapsAtsTall
	CrapsAtsAll
)

// Roulette bet kinds.
const (
	RouletteStraight BetKind = iota
	RouletteSplitH
	RouletteSplitV
	RouletteStreet
	RouletteCorner
	RouletteSixLine
	RouletteDozen
	RouletteColumn
	RouletteRed
	RouletteBlack
	RouletteEven
	RouletteOdd
	RouletteLow
	RouletteHigh
	RouletteZero
)

// Sic bo bet kinds. Compound targets pack into the Target byte: domino
// and hop3-hard as two 4-bit faces (hi nibble, lo nibble), hop masks as
// 6-bit face bitmasks (bit = face-1).
const (
	SicBoSmall BetKind = iota
	SicBoBig
	SicBoOdd
	SicBoEven
	SicBoSum
	SicBoSingleDie
	SicBoDouble
	SicBoTriple
	SicBoAnyTriple
	SicBoDomino
	SicBoHop3Easy
	SicBoHop3Hard
	SicBoHop4Easy
)

// Baccarat bet kinds.
const (
	BaccaratPlayer BetKind = iota
	BaccaratBanker
	BaccaratTie
	BaccaratPlayerPair
	BaccaratBankerPair
	BaccaratLucky6
)

// Single-bet and positional kinds for the card games.
const (
	BlackjackMain BetKind = 0

	ThreeCardAnte     BetKind = 0
	ThreeCardPlay     BetKind = 1
	ThreeCardPairPlus BetKind = 2

	UltimateAnte  BetKind = 0
	UltimateBlind BetKind = 1
	UltimateTrips BetKind = 2
	UltimatePlay  BetKind = 3

	VideoPokerMain BetKind = 0

	HiLoHi BetKind = 0
	HiLoLo BetKind = 1

	WarMain BetKind = 0
	WarTie  BetKind = 1
)

// BetStatus tracks come-style travel. A pending come/don't-come bet acts
// as its own come-out until it travels to a target.
type BetStatus uint8

const (
	BetOn BetStatus = iota
	BetPending
)

// Bet is one active wager. Target carries the bet's number where one
// applies (or a packed compound for sic bo). Odds is the true-odds
// backing for pass/come style bets. Progress is the all-tall-small
// coverage mask; it advances only through resolution.
type Bet struct {
	Kind     BetKind
	Target   uint8
	Status   BetStatus
	Amount   uint64
	Odds     uint64
	Progress uint16
}

// All-tall-small coverage bits: bits 0..4 cover totals 2..6, bits 5..9
// cover totals 8..12. A 7 has no bit.
const (
	AtsMaskSmall uint16 = 0x001F
	AtsMaskTall  uint16 = 0x03E0
	AtsMaskAll   uint16 = 0x03FF
)

// AtsBit returns the coverage bit for a total, or 0 for 7 and impossible
// totals.
func AtsBit(total uint8) uint16 {
	switch {
	case total >= 2 && total <= 6:
		return 1 << (total - 2)
	case total >= 8 && total <= 12:
		return 1 << (total - 3)
	}
	return 0
}
