package bridge

import (
	"slices"
	"strings"
)

// Hand holds one seat's cards grouped by suit, each suit sorted from the
// highest rank down.
type Hand struct {
	suits [4][]Card // indexed by Suit
}

func NewHand(cards []Card) Hand {
	var h Hand
	for _, c := range cards {
		h.suits[c.Suit&3] = append(h.suits[c.Suit&3], c)
	}
	for i := range h.suits {
		slices.SortFunc(h.suits[i], func(a, b Card) int {
			return int(b.Rank) - int(a.Rank)
		})
	}
	return h
}

// displayOrder is the conventional order suits are listed in a hand.
var displayOrder = [4]Suit{Spades, Hearts, Diamonds, Clubs}

func (h Hand) Len() int {
	n := 0
	for _, cards := range h.suits {
		n += len(cards)
	}
	return n
}

func (h Hand) IsEmpty() bool {
	return h.Len() == 0
}

// Cards returns every card, spades first.
func (h Hand) Cards() []Card {
	out := make([]Card, 0, h.Len())
	for _, s := range displayOrder {
		out = append(out, h.suits[s]...)
	}
	return out
}

// Suit returns the cards held in s, highest first.
func (h Hand) Suit(s Suit) []Card {
	return slices.Clone(h.suits[s&3])
}

// HCP is the total high card points held.
func (h Hand) HCP() int {
	total := 0
	for _, cards := range h.suits {
		for _, c := range cards {
			total += c.Rank.HighCardPoints()
		}
	}
	return total
}

// Distribution returns suit lengths in spades, hearts, diamonds, clubs order.
func (h Hand) Distribution() [4]int {
	var d [4]int
	for i, s := range displayOrder {
		d[i] = len(h.suits[s])
	}
	return d
}

// String lists each suit symbol followed by its ranks, e.g.
// "♠ A 5  ♥ A 10  ♦ —  ♣ 8 4". A void is shown as an em dash.
func (h Hand) String() string {
	parts := make([]string, 0, len(displayOrder))
	for _, s := range displayOrder {
		parts = append(parts, s.String()+" "+h.Ranks(s))
	}
	return strings.Join(parts, "  ")
}

// Ranks lists the ranks held in suit s, highest first and separated by
// spaces, or an em-dash when the suit is void.
func (h Hand) Ranks(s Suit) string {
	cards := h.suits[s&3]
	if len(cards) == 0 {
		return "—"
	}
	ranks := make([]string, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank.String()
	}
	return strings.Join(ranks, " ")
}
