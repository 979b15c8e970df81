// Package ledger keeps a tamper-evident record of the calls made during one
// bridge auction.
//
// # Core Components
//
// Blockchain: An append-only log of calls with hash chaining. The genesis
// block names the board and its dealer; every later block holds the seat that
// called and the call itself.
//
// Block: A single recorded call, linked to its predecessor by hash.
//
// # Hashing
//
// Blocks are hashed over their CBOR Core Deterministic Encoding, so the same
// block always produces the same hash regardless of field order or platform.
//
// # Usage
//
// Create a blockchain for a board, append calls as they are made, and call
// Verify at any time to check the chain is intact. Replay rebuilds the
// bridge.Auction the record describes.
package ledger
