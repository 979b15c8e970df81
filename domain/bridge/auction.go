package bridge

import (
	"fmt"
	"strings"
)

const (
	tableHeader  = "+-- N --+-- E --+-- S --+-- W --+"
	tableDivider = "+-------+-------+-------+-------+"
)

// Auction is the sequence of calls made at one table, anchored to the dealer.
// The call at index i was made by dealer.Add(i).
//
// An Auction is not safe for concurrent mutation; hosts serving several
// clients must serialize calls to Append.
type Auction struct {
	dealer   Seat
	sequence []AuctionBid
}

// NewAuction opens an empty auction where dealer makes the first call.
func NewAuction(dealer Seat) *Auction {
	return &Auction{dealer: dealer}
}

func (a *Auction) Dealer() Seat {
	return a.dealer
}

// Append records calls in order. It never rejects a call: insufficient bids,
// doubles of partner and calls after the auction closed are all accepted.
func (a *Auction) Append(calls ...AuctionBid) {
	a.sequence = append(a.sequence, calls...)
}

// Sequence returns a copy of the calls made so far.
func (a *Auction) Sequence() []AuctionBid {
	out := make([]AuctionBid, len(a.sequence))
	copy(out, a.sequence)
	return out
}

func (a *Auction) Len() int {
	return len(a.sequence)
}

// Turn returns the seat due to make the next call.
func (a *Auction) Turn() Seat {
	return a.dealer.Add(len(a.sequence))
}

// BidsFor returns, oldest first, every call made by seat.
func (a *Auction) BidsFor(seat Seat) []AuctionBid {
	var calls []AuctionBid
	for i := seat.Distance(a.dealer); i < len(a.sequence); i += seatCount {
		calls = append(calls, a.sequence[i])
	}
	return calls
}

// Closed reports whether bidding is over: at least four calls were made and
// the last three are passes. Only the last three calls are inspected.
func (a *Auction) Closed() bool {
	n := len(a.sequence)
	if n < 4 {
		return false
	}
	for _, call := range a.sequence[n-3:] {
		if call != Pass {
			return false
		}
	}
	return true
}

// Contract resolves the auction by scanning backwards to the most recent
// contract bid. Doubles and redoubles made after that bid raise its status;
// a later redouble is never lowered by an earlier double. It returns false
// when no contract bid was ever made.
func (a *Auction) Contract() (Contract, bool) {
	status := Undoubled
	for i := len(a.sequence) - 1; i >= 0; i-- {
		call := a.sequence[i]
		switch call.kind {
		case KindPass:
			continue
		case KindDouble:
			status = max(status, Doubled)
		case KindRedouble:
			status = max(status, Redoubled)
		case KindBid:
			return Contract{Bid: call.bid, Status: status}, true
		}
	}
	return Contract{}, false
}

// HighestBid returns the most recent contract bid, ignoring doubles.
func (a *Auction) HighestBid() (ContractBid, bool) {
	for i := len(a.sequence) - 1; i >= 0; i-- {
		if bid, ok := a.sequence[i].ContractBid(); ok {
			return bid, true
		}
	}
	return ContractBid{}, false
}

// String renders the auction as a four column table headed N, E, S, W. Cells
// before the dealer's column on the first row are left blank.
func (a *Auction) String() string {
	cells := make([]string, 0, int(a.dealer)+len(a.sequence))
	for i := 0; i < a.dealer.Distance(North); i++ {
		cells = append(cells, "")
	}
	for _, call := range a.sequence {
		cells = append(cells, call.String())
	}

	var b strings.Builder
	b.WriteString(tableHeader)
	for start := 0; start < len(cells); start += seatCount {
		var row [seatCount]string
		copy(row[:], cells[start:])
		fmt.Fprintf(&b, "\n| %-5s | %-5s | %-5s | %-5s |\n", row[0], row[1], row[2], row[3])
		b.WriteString(tableDivider)
	}
	return b.String()
}
