package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/luca-patrignani/parker/domain/bridge"
)

var (
	// ErrTurnMismatch is returned when a call is appended for a seat other
	// than the one whose turn it is.
	ErrTurnMismatch = errors.New("call out of turn")
	ErrEmpty        = errors.New("blockchain is empty")
	ErrInvalidCall  = errors.New("not a call")
	// ErrForeignBlock is returned when a block names a different board or
	// dealer than the genesis block of its chain.
	ErrForeignBlock = errors.New("block does not belong to this board")
)

var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
}

// NewBlockchain creates the record of a board dealt by dealer. An empty
// boardID is replaced by a random UUID. The genesis block has index 0 and
// previous hash "0".
func NewBlockchain(boardID string, dealer bridge.Seat) (*Blockchain, error) {
	if boardID == "" {
		boardID = uuid.NewString()
	}
	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Seat:      dealer,
		Call:      GenesisCall,
		Metadata:  Metadata{BoardID: boardID, Dealer: dealer},
	}
	hash, err := calculateHash(genesis)
	if err != nil {
		return nil, err
	}
	genesis.Hash = hash

	return &Blockchain{blocks: []Block{genesis}}, nil
}

// BoardID returns the identifier carried by the genesis block.
func (bc *Blockchain) BoardID() string {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return bc.blocks[0].Metadata.BoardID
}

// Turn returns the seat expected to make the next call.
func (bc *Blockchain) Turn() bridge.Seat {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return bc.turn()
}

func (bc *Blockchain) turn() bridge.Seat {
	return bc.blocks[0].Metadata.Dealer.Add(len(bc.blocks) - 1)
}

// Append records a call made by seat. The call is accepted whatever the state
// of the auction, but seat must be the one whose turn it is. The extra
// parameter can optionally carry additional metadata.
func (bc *Blockchain) Append(seat bridge.Seat, call bridge.AuctionBid, extra ...map[string]string) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if !call.Valid() {
		return ErrInvalidCall
	}
	if want := bc.turn(); seat != want {
		return fmt.Errorf("%w: %s called, %s to call", ErrTurnMismatch, seat, want)
	}

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := bc.blocks[len(bc.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Seat:      seat,
		Call:      call.String(),
		Metadata: Metadata{
			BoardID: latest.Metadata.BoardID,
			Dealer:  latest.Metadata.Dealer,
			Extra:   extraMsg,
		},
	}
	hash, err := calculateHash(newBlock)
	if err != nil {
		return err
	}
	newBlock.Hash = hash

	if err := validateBlock(newBlock, latest, bc.blocks[0]); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	bc.blocks = append(bc.blocks, newBlock)
	return nil
}

// GetLatest returns the most recently added block.
func (bc *Blockchain) GetLatest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, ErrEmpty
	}
	return bc.blocks[len(bc.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return bc.blocks[index], nil
}

// Blocks returns a copy of the chain, genesis first.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]Block, len(bc.blocks))
	copy(out, bc.blocks)
	return out
}

// Len returns the number of blocks, including genesis.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.blocks)
}

// Verify validates the whole chain: the genesis block, then each block's
// index continuity, previous hash linkage, hash and seat rotation.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return verify(bc.blocks)
}

func verify(blocks []Block) error {
	if len(blocks) == 0 {
		return ErrEmpty
	}

	genesis := blocks[0]
	if genesis.PrevHash != "0" || genesis.Index != 0 || genesis.Call != GenesisCall {
		return fmt.Errorf("invalid genesis block")
	}
	if genesis.Seat != genesis.Metadata.Dealer {
		return fmt.Errorf("invalid genesis block: seat %s is not the dealer %s", genesis.Seat, genesis.Metadata.Dealer)
	}
	hash, err := calculateHash(genesis)
	if err != nil {
		return err
	}
	if hash != genesis.Hash {
		return fmt.Errorf("invalid genesis hash: expected %s, got %s", hash, genesis.Hash)
	}

	for i := 1; i < len(blocks); i++ {
		if err := validateBlock(blocks[i], blocks[i-1], genesis); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// Replay verifies the chain and rebuilds the auction it records.
func (bc *Blockchain) Replay() (*bridge.Auction, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return Replay(bc.blocks)
}

// Replay rebuilds an auction from blocks previously taken from a Blockchain,
// for example after loading them from storage.
func Replay(blocks []Block) (*bridge.Auction, error) {
	if err := verify(blocks); err != nil {
		return nil, err
	}
	auction := bridge.NewAuction(blocks[0].Metadata.Dealer)
	for _, b := range blocks[1:] {
		call, err := b.AuctionBid()
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", b.Index, err)
		}
		auction.Append(call)
	}
	return auction, nil
}

// validateBlock checks a block against its predecessor and the genesis block
// of its chain.
func validateBlock(current, previous, genesis Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	expectedHash, err := calculateHash(current)
	if err != nil {
		return err
	}
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	if current.Metadata.BoardID != genesis.Metadata.BoardID || current.Metadata.Dealer != genesis.Metadata.Dealer {
		return fmt.Errorf("%w: block %d names board %s dealt by %s", ErrForeignBlock,
			current.Index, current.Metadata.BoardID, current.Metadata.Dealer)
	}
	if want := genesis.Metadata.Dealer.Add(current.Index - 1); current.Seat != want {
		return fmt.Errorf("%w: block %d called by %s, expected %s", ErrTurnMismatch, current.Index, current.Seat, want)
	}
	return nil
}

// calculateHash is the hex SHA-256 of the block's deterministic CBOR
// encoding. The Hash field itself is not encoded.
func calculateHash(block Block) (string, error) {
	data, err := encMode.Marshal(block)
	if err != nil {
		return "", fmt.Errorf("encode block %d: %w", block.Index, err)
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
