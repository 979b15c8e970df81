package deck

import (
	"crypto/cipher"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"

	"github.com/luca-patrignani/parker/domain/bridge"
)

// Size is the number of cards in a bridge deck.
const Size = 52

// HandSize is the number of cards dealt to each seat.
const HandSize = Size / 4

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is a pack of cards together with the random stream used to shuffle it.
type Deck struct {
	cards  []bridge.Card
	stream cipher.Stream
}

// New returns a full deck in suit then rank order, shuffled from the suite's
// random stream.
func New() *Deck {
	return &Deck{
		cards:  fullDeck(),
		stream: suite.RandomStream(),
	}
}

// NewSeeded returns a full deck whose shuffles are reproducible: two decks
// with the same seed produce the same sequence of orders.
func NewSeeded(seed []byte) *Deck {
	return &Deck{
		cards:  fullDeck(),
		stream: suite.XOF(seed),
	}
}

func fullDeck() []bridge.Card {
	cards := make([]bridge.Card, 0, Size)
	for _, s := range bridge.Suits() {
		for _, r := range bridge.Ranks() {
			cards = append(cards, bridge.Card{Suit: s, Rank: r})
		}
	}
	return cards
}

// Cards returns a copy of the cards in their current order.
func (d *Deck) Cards() []bridge.Card {
	out := make([]bridge.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Deal splits the deck into four hands indexed by seat. North receives the
// last thirteen cards, East the thirteen before, then South, and West the
// first thirteen.
func (d *Deck) Deal() ([4]bridge.Hand, error) {
	var hands [4]bridge.Hand
	if len(d.cards) != Size {
		return hands, fmt.Errorf("cannot deal %d cards, need %d", len(d.cards), Size)
	}
	for _, seat := range bridge.Seats() {
		end := Size - int(seat)*HandSize
		hands[seat] = bridge.NewHand(d.cards[end-HandSize : end])
	}
	return hands, nil
}
