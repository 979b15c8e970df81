package bridge

import (
	"cmp"
	"strconv"
	"strings"
)

// BiddingSuit is the denomination of a bid: one of the four suits or no
// trumps. Values are ordered Clubs < Diamonds < Hearts < Spades < NoTrumps.
type BiddingSuit uint8

const (
	ClubsBid    = BiddingSuit(Clubs)
	DiamondsBid = BiddingSuit(Diamonds)
	HeartsBid   = BiddingSuit(Hearts)
	SpadesBid   = BiddingSuit(Spades)
	NoTrumps    = BiddingSuit(4)
)

// Denomination lifts a card suit into a bidding suit.
func Denomination(s Suit) BiddingSuit {
	return BiddingSuit(s)
}

// Suit returns the trump suit, or false for no trumps.
func (b BiddingSuit) Suit() (Suit, bool) {
	if b >= NoTrumps {
		return 0, false
	}
	return Suit(b), true
}

// ParseBiddingSuit accepts "nt", "notrumps" or "no trumps", and otherwise
// defers to ParseSuit.
func ParseBiddingSuit(s string) (BiddingSuit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nt", "notrumps", "no trumps":
		return NoTrumps, nil
	}
	suit, err := ParseSuit(s)
	if err != nil {
		return 0, err
	}
	return Denomination(suit), nil
}

func (b BiddingSuit) String() string {
	if suit, ok := b.Suit(); ok {
		return suit.String()
	}
	return "NT"
}

const (
	MinLevel = 1
	MaxLevel = 7
)

// ContractBid is a level from 1 to 7 and a denomination. The zero value is
// not a valid bid; use NewContractBid or ParseContractBid.
type ContractBid struct {
	level uint8
	suit  BiddingSuit
}

// NewContractBid fails with BidLevelOutOfBounds unless 1 <= level <= 7.
func NewContractBid(level int, suit BiddingSuit) (ContractBid, error) {
	if level < MinLevel || level > MaxLevel {
		return ContractBid{}, BidLevelOutOfBounds
	}
	return ContractBid{level: uint8(level), suit: suit}, nil
}

// MustContractBid is like NewContractBid but panics on an invalid level.
func MustContractBid(level int, suit BiddingSuit) ContractBid {
	b, err := NewContractBid(level, suit)
	if err != nil {
		panic(err)
	}
	return b
}

func (b ContractBid) Level() int {
	return int(b.level)
}

func (b ContractBid) Suit() BiddingSuit {
	return b.suit
}

// Compare orders bids by level, then by denomination. It returns -1, 0 or +1
// like cmp.Compare.
func (b ContractBid) Compare(other ContractBid) int {
	if c := cmp.Compare(b.level, other.level); c != 0 {
		return c
	}
	return cmp.Compare(b.suit, other.suit)
}

func (b ContractBid) Less(other ContractBid) bool {
	return b.Compare(other) < 0
}

func (b ContractBid) Equal(other ContractBid) bool {
	return b == other
}

// ParseContractBid reads the level from the first character and the
// denomination from the rest, e.g. "1d", "3NT" or "4 hearts".
func ParseContractBid(s string) (ContractBid, error) {
	if len(s) < 1 {
		return ContractBid{}, TooShort
	}
	level, err := strconv.Atoi(s[:1])
	if err != nil {
		return ContractBid{}, BidLevelNotAnInteger
	}
	if level < MinLevel || level > MaxLevel {
		return ContractBid{}, BidLevelOutOfBounds
	}
	suit, err := ParseBiddingSuit(s[1:])
	if err != nil {
		return ContractBid{}, err
	}
	return ContractBid{level: uint8(level), suit: suit}, nil
}

// String renders the level followed by the suit symbol, e.g. "1♦" or "3NT".
func (b ContractBid) String() string {
	return strconv.Itoa(int(b.level)) + b.suit.String()
}

func (b ContractBid) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *ContractBid) UnmarshalText(text []byte) error {
	bid, err := ParseContractBid(string(text))
	if err != nil {
		return err
	}
	*b = bid
	return nil
}

// CallKind discriminates the variants of an AuctionBid.
type CallKind uint8

const (
	// kindNone is the zero AuctionBid, which is not a call.
	kindNone CallKind = iota
	KindBid
	KindPass
	KindDouble
	KindRedouble
)

// AuctionBid is a single call: a contract bid, Pass, Double or Redouble.
// Two AuctionBids are equal with == exactly when they are the same variant
// with the same payload.
type AuctionBid struct {
	kind CallKind
	bid  ContractBid
}

var (
	Pass     = AuctionBid{kind: KindPass}
	Double   = AuctionBid{kind: KindDouble}
	Redouble = AuctionBid{kind: KindRedouble}
)

// Bid wraps a contract bid as a call.
func Bid(b ContractBid) AuctionBid {
	return AuctionBid{kind: KindBid, bid: b}
}

// SuitBid builds a contract bid call, failing like NewContractBid.
func SuitBid(level int, suit BiddingSuit) (AuctionBid, error) {
	b, err := NewContractBid(level, suit)
	if err != nil {
		return AuctionBid{}, err
	}
	return Bid(b), nil
}

func (a AuctionBid) Kind() CallKind {
	return a.kind
}

// Valid is false for the zero AuctionBid, which is neither a bid nor a pass.
func (a AuctionBid) Valid() bool {
	return a.kind != kindNone
}

// ContractBid returns the wrapped bid, or false for Pass, Double and Redouble.
func (a AuctionBid) ContractBid() (ContractBid, bool) {
	if a.kind != KindBid {
		return ContractBid{}, false
	}
	return a.bid, true
}

// Ordering is the outcome of comparing two partially ordered values.
type Ordering int8

const (
	Less Ordering = iota - 1
	Equal
	Greater
	Incomparable
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "incomparable"
	}
}

// Compare orders two calls. Only two contract bids are comparable; any pairing
// involving Pass, Double or Redouble, including Pass against Pass, is
// Incomparable. Calls therefore must not be sorted as a mixed slice.
func (a AuctionBid) Compare(other AuctionBid) Ordering {
	if a.kind != KindBid || other.kind != KindBid {
		return Incomparable
	}
	return Ordering(a.bid.Compare(other.bid))
}

// Equal reports value equality: same variant, same payload. Unlike Compare it
// is defined for every pair.
func (a AuctionBid) Equal(other AuctionBid) bool {
	return a == other
}

// Less reports whether a is a strictly lower bid than other. It is false for
// every incomparable pair.
func (a AuctionBid) Less(other AuctionBid) bool {
	return a.Compare(other) == Less
}

// Greater reports whether a is a strictly higher bid than other. It is false
// for every incomparable pair.
func (a AuctionBid) Greater(other AuctionBid) bool {
	return a.Compare(other) == Greater
}

// ParseAuctionBid lowercases the text and drops all whitespace, then reads
// pass ("pass", "p", "no bid"), double ("double", "x", "dbl"), redouble
// ("redouble", "xx", "redbl") or a contract bid.
func ParseAuctionBid(s string) (AuctionBid, error) {
	massaged := stripSpace(strings.ToLower(s))
	switch massaged {
	case "pass", "p", "nobid":
		return Pass, nil
	case "double", "x", "dbl":
		return Double, nil
	case "redouble", "xx", "redbl":
		return Redouble, nil
	}
	bid, err := ParseContractBid(massaged)
	if err != nil {
		return AuctionBid{}, err
	}
	return Bid(bid), nil
}

// String renders "Pass", "Dbl", "Redbl" or the contract bid.
func (a AuctionBid) String() string {
	switch a.kind {
	case KindBid:
		return a.bid.String()
	case KindPass:
		return "Pass"
	case KindDouble:
		return "Dbl"
	case KindRedouble:
		return "Redbl"
	default:
		return "?"
	}
}

func (a AuctionBid) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *AuctionBid) UnmarshalText(text []byte) error {
	call, err := ParseAuctionBid(string(text))
	if err != nil {
		return err
	}
	*a = call
	return nil
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
