package main

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/parker/application"
	"github.com/luca-patrignani/parker/domain/bridge"
	"github.com/luca-patrignani/parker/domain/deck"
	"github.com/luca-patrignani/parker/internal/config"
	"github.com/luca-patrignani/parker/store"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func hand(t *testing.T, notation ...string) bridge.Hand {
	t.Helper()
	cards := make([]bridge.Card, len(notation))
	for i, n := range notation {
		c, err := bridge.ParseCard(n)
		assert.NoError(t, err)
		cards[i] = c
	}
	return bridge.NewHand(cards)
}

func TestHandText(t *testing.T) {
	h := hand(t, "AS", "TS", "KH", "2C")
	want := strings.Join([]string{
		"♠ A 10",
		"♥ K",
		"♦ —",
		"♣ 2",
		"7 HCP",
	}, "\n")
	check.Equal(t, want, pterm.RemoveColorFromString(handText(h)))
}

func TestResultText(t *testing.T) {
	check.Equal(t, "Passed out.", pterm.RemoveColorFromString(resultText(bridge.Contract{}, false)))

	c, err := bridge.ParseContract("4Hx")
	assert.NoError(t, err)
	check.Equal(t, "Contract: 4♥x", pterm.RemoveColorFromString(resultText(c, true)))
}

func TestPickDealer(t *testing.T) {
	west := bridge.West
	seat, err := pickDealer(config.Config{Dealer: &west}, deck.New())
	assert.NoError(t, err)
	check.Equal(t, bridge.West, seat)

	a, err := pickDealer(config.Config{}, newDeck("seed"))
	assert.NoError(t, err)
	b, err := pickDealer(config.Config{}, newDeck("seed"))
	assert.NoError(t, err)
	check.Equal(t, a, b)
}

func TestHistoryRows(t *testing.T) {
	c, err := bridge.ParseContract("3NT")
	assert.NoError(t, err)
	rows := historyRows([]store.Summary{
		{ID: "a", Dealer: bridge.North, Closed: true, Contract: &c},
		{ID: "b", Dealer: bridge.East, Closed: true},
		{ID: "c", Dealer: bridge.South},
	})
	check.Equal(t, [][]string{
		{"Board", "Dealer", "Closed", "Contract"},
		{"a", "North", "yes", "3NT"},
		{"b", "East", "yes", "passed out"},
		{"c", "South", "no", "-"},
	}, rows)
}

func newTestTable(t *testing.T, dealer bridge.Seat) *application.Table {
	t.Helper()
	table, err := application.NewTable(dealer, newDeck("cmd-test"))
	assert.NoError(t, err)
	return table
}

// scripted answers prompts from calls, then fails with io.EOF.
func scripted(calls ...string) func(string) (string, error) {
	return func(string) (string, error) {
		if len(calls) == 0 {
			return "", io.EOF
		}
		c := calls[0]
		calls = calls[1:]
		return c, nil
	}
}

func TestBid_RepromptsAfterParseError(t *testing.T) {
	table := newTestTable(t, bridge.North)
	assert.NoError(t, bid(table, bridge.South, scripted("1c", "8c", "", "pass", "pass", "pass")))

	check.True(t, table.Closed())
	contract, ok := table.Contract()
	check.True(t, ok)
	check.Equal(t, "1♣", contract.String())
	check.Equal(t, 4, table.Auction().Len())
}

func TestBid_StopsWhenInputEnds(t *testing.T) {
	table := newTestTable(t, bridge.North)
	err := bid(table, bridge.South, scripted("1c", "pass"))
	check.True(t, errors.Is(err, io.EOF))
	check.False(t, table.Closed())
	check.Equal(t, 2, table.Auction().Len())
}
