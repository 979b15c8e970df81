package deck

import (
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/luca-patrignani/parker/domain/bridge"
)

func TestNewDeck(t *testing.T) {
	d := New()
	check.Equal(t, Size, d.Len())

	seen := make(map[bridge.Card]bool)
	for _, c := range d.Cards() {
		if seen[c] {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c] = true
	}
	check.Equal(t, Size, len(seen))
}

func TestDeal(t *testing.T) {
	d := New()
	hands, err := d.Deal()
	assert.NoError(t, err)

	total := 0
	hcp := 0
	for _, seat := range bridge.Seats() {
		check.Equal(t, HandSize, hands[seat].Len())
		total += hands[seat].Len()
		hcp += hands[seat].HCP()
	}
	check.Equal(t, Size, total)
	check.Equal(t, 40, hcp)

	// Unshuffled: West gets the first thirteen cards, all clubs.
	check.Equal(t, [4]int{0, 0, 0, 13}, hands[bridge.West].Distribution())
	check.Equal(t, [4]int{13, 0, 0, 0}, hands[bridge.North].Distribution())
}

func TestDeal_WrongSize(t *testing.T) {
	d := &Deck{cards: fullDeck()[:51]}
	_, err := d.Deal()
	check.Error(t, err)
}

func TestDealAfterShuffle(t *testing.T) {
	d := New()
	assert.NoError(t, d.Shuffle())
	hands, err := d.Deal()
	assert.NoError(t, err)

	seen := make(map[bridge.Card]bool)
	for _, h := range hands {
		for _, c := range h.Cards() {
			seen[c] = true
		}
	}
	check.Equal(t, Size, len(seen))
}
