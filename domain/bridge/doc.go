// Package bridge implements the bidding phase of contract bridge: the values
// exchanged at the table, their ordering, the text grammar used to enter them,
// and the auction that resolves them into a contract.
//
// # Core Types
//
// Seat: One of the four fixed positions, North, East, South and West, with
// modulo 4 rotation arithmetic.
//
// ContractBid: A level between 1 and 7 paired with a BiddingSuit (a suit or
// no trumps). Contract bids are totally ordered along the bidding ladder.
//
// AuctionBid: A single call made in turn. It is either a contract bid, Pass,
// Double or Redouble. Calls are only partially ordered: two contract bids can
// be compared, every other pairing is Incomparable.
//
// Auction: The dealer and the ordered sequence of calls. It answers whose turn
// it is, whether bidding is over, what each seat called and which contract the
// sequence resolves to.
//
// Card, Rank, Suit and Hand: The collaborator types used to deal and display
// the cards each seat holds while bidding.
//
// # Parsing
//
// Every value has a case-insensitive text grammar. Failures are reported as a
// ParseError, a closed set of conditions returned to the caller unchanged so
// it can re-prompt or give up.
//
// # Legality
//
// The auction is a bookkeeping layer. Append never rejects a call, even one
// that would be illegal at the table or one made after the auction closed.
// Legality, if required, belongs to the caller.
package bridge
