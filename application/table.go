// Package application ties the auction engine, the deal and the ledger into
// a single table that a front end can drive one call at a time.
package application

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/luca-patrignani/parker/domain/bridge"
	"github.com/luca-patrignani/parker/domain/deck"
	"github.com/luca-patrignani/parker/ledger"
)

// Table is one board in progress: four dealt hands, the auction and its
// tamper-evident record.
type Table struct {
	mu      sync.RWMutex
	hands   [4]bridge.Hand
	auction *bridge.Auction
	record  *ledger.Blockchain
	logger  *slog.Logger
}

type Option func(*Table)

// WithLogger sets the logger used to report calls. By default calls are
// reported to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTable deals d and opens the auction with dealer to call first. d must
// hold a full pack; it is dealt as is, so shuffle it beforehand.
func NewTable(dealer bridge.Seat, d *deck.Deck, opts ...Option) (*Table, error) {
	hands, err := d.Deal()
	if err != nil {
		return nil, fmt.Errorf("deal: %w", err)
	}
	record, err := ledger.NewBlockchain("", dealer)
	if err != nil {
		return nil, fmt.Errorf("open record: %w", err)
	}
	t := &Table{
		hands:   hands,
		auction: bridge.NewAuction(dealer),
		record:  record,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With("board", record.BoardID())
	t.logger.Debug("board dealt", "dealer", dealer)
	return t, nil
}

// Call parses text as a call by the seat whose turn it is and records it.
// Parse failures are returned unchanged, so callers can match them against
// the bridge.ParseError values. Legality against earlier calls is not
// checked, and calls after the auction closed are still recorded.
func (t *Table) Call(text string) (bridge.AuctionBid, error) {
	call, err := bridge.ParseAuctionBid(text)
	if err != nil {
		t.logger.Debug("rejected call", "input", text, "error", err)
		return bridge.AuctionBid{}, err
	}
	if err := t.Make(call); err != nil {
		return bridge.AuctionBid{}, err
	}
	return call, nil
}

// Make records an already parsed call for the seat whose turn it is.
func (t *Table) Make(call bridge.AuctionBid) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	seat := t.auction.Turn()
	if err := t.record.Append(seat, call); err != nil {
		return fmt.Errorf("record %s by %s: %w", call, seat, err)
	}
	t.auction.Append(call)

	t.logger.Info("call", "seat", seat, "call", call.String())
	if t.auction.Closed() {
		if c, ok := t.auction.Contract(); ok {
			t.logger.Info("auction closed", "contract", c.String())
		} else {
			t.logger.Info("auction closed", "contract", "passed out")
		}
	}
	return nil
}

func (t *Table) BoardID() string { return t.record.BoardID() }

func (t *Table) Dealer() bridge.Seat {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.auction.Dealer()
}

// Turn returns the seat expected to call next.
func (t *Table) Turn() bridge.Seat {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.auction.Turn()
}

func (t *Table) Closed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.auction.Closed()
}

// Contract returns the contract reached so far; ok is false while nobody has
// bid.
func (t *Table) Contract() (bridge.Contract, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.auction.Contract()
}

func (t *Table) Hand(seat bridge.Seat) bridge.Hand {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hands[seat]
}

// Auction returns a snapshot of the auction that is safe to keep after
// further calls.
func (t *Table) Auction() *bridge.Auction {
	t.mu.RLock()
	defer t.mu.RUnlock()
	snap := bridge.NewAuction(t.auction.Dealer())
	snap.Append(t.auction.Sequence()...)
	return snap
}

// Record returns the ledger of the board.
func (t *Table) Record() *ledger.Blockchain { return t.record }
