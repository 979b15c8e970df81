package ledger

import "github.com/luca-patrignani/parker/domain/bridge"

// GenesisCall marks the block that opens a board's record.
const GenesisCall = "genesis"

// Block is one entry in the record of an auction.
type Block struct {
	Index     int         `json:"index" cbor:"index"`
	Timestamp int64       `json:"timestamp" cbor:"timestamp"`
	PrevHash  string      `json:"prev_hash" cbor:"prev_hash"`
	Hash      string      `json:"hash" cbor:"-"`
	Seat      bridge.Seat `json:"seat" cbor:"seat"`
	Call      string      `json:"call" cbor:"call"`
	Metadata  Metadata    `json:"metadata" cbor:"metadata"`
}

type Metadata struct {
	BoardID string            `json:"board_id" cbor:"board_id"`
	Dealer  bridge.Seat       `json:"dealer" cbor:"dealer"`
	Extra   map[string]string `json:"extra,omitempty" cbor:"extra,omitempty"`
}

// AuctionBid parses the recorded call. It fails for the genesis block.
func (b Block) AuctionBid() (bridge.AuctionBid, error) {
	return bridge.ParseAuctionBid(b.Call)
}
