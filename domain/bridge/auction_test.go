package bridge

import (
	"testing"

	"github.com/peterldowns/testy/check"
)

func gameWithSmallInterference(t *testing.T) *Auction {
	auction := NewAuction(South)
	auction.Append(Pass, Pass)
	auction.Append(mustCall(t, "1D"), mustCall(t, "1H"), mustCall(t, "1NT"), Pass)
	auction.Append(mustCall(t, "2NT"), Pass, mustCall(t, "3NT"))
	auction.Append(Pass, Pass, Pass)
	return auction
}

func threePasses() *Auction {
	auction := NewAuction(West)
	auction.Append(Pass, Pass, Pass)
	return auction
}

func TestAuctionTurn(t *testing.T) {
	auction := threePasses()
	check.Equal(t, South, auction.Turn())
	check.False(t, auction.Closed())

	fresh := NewAuction(East)
	check.Equal(t, East, fresh.Turn())
	check.Equal(t, East, fresh.Dealer())
	check.Equal(t, 0, fresh.Len())
}

func TestAuctionBySeat(t *testing.T) {
	auction := gameWithSmallInterference(t)

	check.Equal(t, []AuctionBid{Pass, mustCall(t, "1NT"), mustCall(t, "3NT")}, auction.BidsFor(South))
	check.Equal(t, []AuctionBid{Pass, Pass, Pass}, auction.BidsFor(West))
	check.Equal(t, []AuctionBid{mustCall(t, "1D"), mustCall(t, "2NT"), Pass}, auction.BidsFor(North))
	check.Equal(t, []AuctionBid{mustCall(t, "1H"), Pass, Pass}, auction.BidsFor(East))

	check.True(t, auction.Closed())
	check.Equal(t, 12, auction.Len())
}

func TestAuctionBidsFor_Empty(t *testing.T) {
	auction := NewAuction(North)
	auction.Append(mustCall(t, "1c"))
	check.Equal(t, 0, len(auction.BidsFor(East)))
	check.Equal(t, 1, len(auction.BidsFor(North)))
}

func TestAuctionCompletion(t *testing.T) {
	game := gameWithSmallInterference(t)
	check.True(t, game.Closed())
	contract, ok := game.Contract()
	check.True(t, ok)
	check.Equal(t, mustContract(t, "3NT"), contract)

	passes := threePasses()
	check.False(t, passes.Closed())
	_, ok = passes.Contract()
	check.False(t, ok)

	passes.Append(Pass)
	check.True(t, passes.Closed())
	_, ok = passes.Contract()
	check.False(t, ok)
}

func TestAuctionClosed_LooksOnlyAtLastThree(t *testing.T) {
	auction := NewAuction(North)
	auction.Append(mustCall(t, "1s"), Pass, Pass)
	check.False(t, auction.Closed())
	auction.Append(Pass)
	check.True(t, auction.Closed())

	auction.Append(mustCall(t, "2c"))
	check.False(t, auction.Closed())
	auction.Append(Pass, Pass, Pass)
	check.True(t, auction.Closed())

	doubled := NewAuction(North)
	doubled.Append(mustCall(t, "1s"), Double, Pass, Pass)
	check.False(t, doubled.Closed())
}

func TestAuctionContract_Doubles(t *testing.T) {
	auction := NewAuction(North)
	auction.Append(mustCall(t, "1h"), Double, Pass, Pass, Pass)
	contract, ok := auction.Contract()
	check.True(t, ok)
	check.Equal(t, mustContract(t, "1hx"), contract)

	auction = NewAuction(North)
	auction.Append(mustCall(t, "4s"), Double, Redouble, Pass, Pass, Pass)
	contract, ok = auction.Contract()
	check.True(t, ok)
	check.Equal(t, mustContract(t, "4sxx"), contract)

	// A double of an earlier bid does not carry over to a later one.
	auction = NewAuction(North)
	auction.Append(mustCall(t, "1c"), Double, mustCall(t, "1d"), Pass, Pass, Pass)
	contract, ok = auction.Contract()
	check.True(t, ok)
	check.Equal(t, mustContract(t, "1d"), contract)

	// The scan keeps the maximum status, whatever order the calls came in.
	auction = NewAuction(North)
	auction.Append(mustCall(t, "2h"), Redouble, Double)
	contract, ok = auction.Contract()
	check.True(t, ok)
	check.Equal(t, Redoubled, contract.Status)

	auction = NewAuction(North)
	auction.Append(Double, Redouble)
	_, ok = auction.Contract()
	check.False(t, ok)
}

func TestAuctionHighestBid(t *testing.T) {
	auction := NewAuction(North)
	_, ok := auction.HighestBid()
	check.False(t, ok)

	auction.Append(mustCall(t, "1c"), mustCall(t, "3h"), Double)
	bid, ok := auction.HighestBid()
	check.True(t, ok)
	check.Equal(t, mustBid(t, "3h"), bid)
}

func TestAuctionAppend_Permissive(t *testing.T) {
	auction := NewAuction(North)
	auction.Append(Redouble, mustCall(t, "7nt"), mustCall(t, "1c"), Pass, Pass, Pass)
	check.True(t, auction.Closed())
	auction.Append(mustCall(t, "2c"))
	check.Equal(t, 7, auction.Len())
	check.Equal(t, West, auction.Turn())
}

func TestAuctionSequence_IsCopy(t *testing.T) {
	auction := NewAuction(North)
	auction.Append(Pass)
	seq := auction.Sequence()
	seq[0] = Double
	check.Equal(t, []AuctionBid{Pass}, auction.Sequence())
}

func TestAuctionDisplay(t *testing.T) {
	check.Equal(t,
		"+-- N --+-- E --+-- S --+-- W --+\n"+
			"|       |       | Pass  | Pass  |\n"+
			"+-------+-------+-------+-------+\n"+
			"| 1♦    | 1♥    | 1NT   | Pass  |\n"+
			"+-------+-------+-------+-------+\n"+
			"| 2NT   | Pass  | 3NT   | Pass  |\n"+
			"+-------+-------+-------+-------+\n"+
			"| Pass  | Pass  |       |       |\n"+
			"+-------+-------+-------+-------+",
		gameWithSmallInterference(t).String())

	check.Equal(t,
		"+-- N --+-- E --+-- S --+-- W --+\n"+
			"|       |       |       | Pass  |\n"+
			"+-------+-------+-------+-------+\n"+
			"| Pass  | Pass  |       |       |\n"+
			"+-------+-------+-------+-------+",
		threePasses().String())

	check.Equal(t, "+-- N --+-- E --+-- S --+-- W --+", NewAuction(North).String())
}

func TestAuctionZeroCallIsNotABid(t *testing.T) {
	var call AuctionBid
	check.False(t, call.Valid())
	check.True(t, Pass.Valid())
	check.True(t, mustCall(t, "1c").Valid())
	_, ok := call.ContractBid()
	check.False(t, ok)
	check.Equal(t, Incomparable, call.Compare(mustCall(t, "1c")))

	auction := NewAuction(North)
	auction.Append(call, Pass, Pass, Pass)
	check.True(t, auction.Closed())
	_, ok = auction.Contract()
	check.False(t, ok)
	_, ok = auction.HighestBid()
	check.False(t, ok)
	check.NotEqual(t, "0♣", call.String())

	auction = NewAuction(North)
	auction.Append(mustCall(t, "2h"), call, Pass, Pass, Pass)
	contract, ok := auction.Contract()
	check.True(t, ok)
	check.Equal(t, mustContract(t, "2h"), contract)
}
