package deck

import (
	"crypto/cipher"
	"fmt"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"

	"github.com/luca-patrignani/parker/domain/bridge"
)

// Shuffle permutes the deck in place with a Fisher-Yates walk whose indices
// are read from the deck's random stream.
func (d *Deck) Shuffle() error {
	perm, err := permutation(len(d.cards), d.stream)
	if err != nil {
		return err
	}
	shuffled := make([]bridge.Card, len(d.cards))
	for i, p := range perm {
		shuffled[i] = d.cards[p]
	}
	d.cards = shuffled
	return nil
}

// permutation returns a uniformly random ordering of 0..size-1.
func permutation(size int, stream cipher.Stream) ([]int, error) {
	if stream == nil {
		return nil, fmt.Errorf("deck has no random stream")
	}
	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}
	for i := size - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm, nil
}

// Dealer draws a seat from the deck's random stream, so a seeded deck also
// reproduces who deals.
func (d *Deck) Dealer() (bridge.Seat, error) {
	if d.stream == nil {
		return 0, fmt.Errorf("deck has no random stream")
	}
	return bridge.Seat(random.Int(big.NewInt(4), d.stream).Int64()), nil
}
