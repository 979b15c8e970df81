package bridge

import (
	"strconv"
	"strings"
	"unicode"
)

// Suit is one of the four card suits, ranked Clubs < Diamonds < Hearts < Spades.
type Suit uint8

const (
	Clubs    Suit = 0 // ♣
	Diamonds Suit = 1 // ♦
	Hearts   Suit = 2 // ♥
	Spades   Suit = 3 // ♠
)

// Suits returns the four suits in ascending order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// ParseSuit accepts a suit's name, its singular, its initial or its symbol,
// ignoring case and surrounding whitespace.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spades", "spade", "s", "♠":
		return Spades, nil
	case "hearts", "heart", "h", "♥":
		return Hearts, nil
	case "diamonds", "diamond", "d", "♦":
		return Diamonds, nil
	case "clubs", "club", "c", "♣":
		return Clubs, nil
	}
	return 0, SuitNotValid
}

// String returns the suit symbol.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Char returns the single letter used for the suit in card notation ("TH").
func (s Suit) Char() byte {
	return "CDHS"[s&3]
}

func suitFromChar(c byte) (Suit, error) {
	switch c {
	case 'S':
		return Spades, nil
	case 'H':
		return Hearts, nil
	case 'D':
		return Diamonds, nil
	case 'C':
		return Clubs, nil
	}
	return 0, SuitNotValid
}

// Rank is a card rank from Two (2) to Ace (14).
type Rank uint8

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Ranks returns the thirteen ranks in ascending order.
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// HighCardPoints is the Milton Work count: 4 for an ace down to 1 for a jack.
func (r Rank) HighCardPoints() int {
	switch r {
	case Jack:
		return 1
	case Queen:
		return 2
	case King:
		return 3
	case Ace:
		return 4
	default:
		return 0
	}
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Char returns the single character used for the rank in card notation.
// Ten is written as 'T'.
func (r Rank) Char() byte {
	if r == Ten {
		return 'T'
	}
	return r.String()[0]
}

// ParseRank converts a card-notation character ('2'-'9', 'T', 'J', 'Q', 'K', 'A').
func ParseRank(c byte) (Rank, error) {
	switch {
	case c >= '2' && c <= '9':
		return Rank(c - '0'), nil
	case c == 'T':
		return Ten, nil
	case c == 'J':
		return Jack, nil
	case c == 'Q':
		return Queen, nil
	case c == 'K':
		return King, nil
	case c == 'A':
		return Ace, nil
	}
	return 0, RankNotValid
}

// Card is a playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a Card, rejecting suits above Spades and ranks outside 2-14.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spades {
		return Card{}, SuitNotValid
	}
	if rank < Two || rank > Ace {
		return Card{}, RankNotValid
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCard reads the two character notation rank then suit, e.g. "TH" or
// "2c". Length is counted in characters, not bytes. The suit is validated
// before the rank.
func ParseCard(s string) (Card, error) {
	chars := []rune(strings.ToUpper(s))
	if len(chars) < 2 {
		return Card{}, TooShort
	}
	if len(chars) > 2 {
		return Card{}, TooLong
	}
	suit, err := suitFromChar(asciiOrZero(chars[1]))
	if err != nil {
		return Card{}, err
	}
	rank, err := ParseRank(asciiOrZero(chars[0]))
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: suit, Rank: rank}, nil
}

func asciiOrZero(r rune) byte {
	if r > unicode.MaxASCII {
		return 0
	}
	return byte(r)
}

// String renders the suit symbol followed by the rank, e.g. "♥10".
func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// Notation renders the card the way ParseCard reads it, e.g. "TH".
func (c Card) Notation() string {
	return string([]byte{c.Rank.Char(), c.Suit.Char()})
}
