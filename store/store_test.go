package store

import (
	"context"
	"os"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/luca-patrignani/parker/domain/bridge"
	"github.com/luca-patrignani/parker/ledger"
)

func record(t *testing.T, dealer bridge.Seat, calls ...string) *ledger.Blockchain {
	t.Helper()
	bc, err := ledger.NewBlockchain("", dealer)
	assert.NoError(t, err)
	for i, text := range calls {
		c, err := bridge.ParseAuctionBid(text)
		assert.NoError(t, err)
		assert.NoError(t, bc.Append(dealer.Add(i), c))
	}
	return bc
}

func TestBoardFromRecord(t *testing.T) {
	bc := record(t, bridge.East, "1h", "x", "pass", "pass", "pass")
	board, err := BoardFromRecord(bc)
	assert.NoError(t, err)

	check.Equal(t, bc.BoardID(), board.ID)
	check.Equal(t, bridge.East, board.Dealer)
	check.True(t, board.Closed)
	assert.NotNil(t, board.Contract)
	check.Equal(t, "1♥x", board.Contract.String())
	check.Equal(t, "1♥x", board.contractText())
	check.Equal(t, 6, len(board.Blocks))
}

func TestBoardFromRecord_PassedOut(t *testing.T) {
	board, err := BoardFromRecord(record(t, bridge.North, "p", "p", "p", "p"))
	assert.NoError(t, err)
	check.True(t, board.Closed)
	check.Nil(t, board.Contract)
	check.Nil(t, board.contractText())
}

func TestParseSummary(t *testing.T) {
	text := "4Sxx"
	s, err := parseSummary("b1", "West", true, &text)
	assert.NoError(t, err)
	check.Equal(t, bridge.West, s.Dealer)
	assert.NotNil(t, s.Contract)
	check.Equal(t, bridge.Redoubled, s.Contract.Status)

	s, err = parseSummary("b2", "South", false, nil)
	assert.NoError(t, err)
	check.Nil(t, s.Contract)

	_, err = parseSummary("b3", "Middle", false, nil)
	check.Error(t, err)
	bad := "9C"
	_, err = parseSummary("b4", "North", true, &bad)
	check.Error(t, err)
}

// TestSaveBoard runs against a real database and is skipped unless
// PARKER_TEST_DATABASE_URL points at one.
func TestSaveBoard(t *testing.T) {
	dsn := os.Getenv("PARKER_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("PARKER_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	assert.NoError(t, err)
	defer db.Close()
	assert.NoError(t, db.Ping(ctx))
	assert.NoError(t, db.Migrate(ctx))

	bc := record(t, bridge.South, "pass", "1nt", "pass", "3nt", "pass", "pass", "pass")
	board, err := BoardFromRecord(bc)
	assert.NoError(t, err)
	assert.NoError(t, db.SaveBoard(ctx, board))
	// saving twice replaces the calls instead of failing on the primary key
	assert.NoError(t, db.SaveBoard(ctx, board))

	dealer, calls, err := db.LoadCalls(ctx, board.ID)
	assert.NoError(t, err)
	check.Equal(t, bridge.South, dealer)
	check.Equal(t, 7, len(calls))
	check.Equal(t, "3NT", calls[3].String())

	recent, err := db.RecentBoards(ctx, 10)
	assert.NoError(t, err)
	found := false
	for _, s := range recent {
		if s.ID == board.ID {
			found = true
			assert.NotNil(t, s.Contract)
			check.Equal(t, "3NT", s.Contract.String())
		}
	}
	check.True(t, found)

	_, _, err = db.LoadCalls(ctx, "no-such-board")
	check.True(t, IsNotFound(err))
}
