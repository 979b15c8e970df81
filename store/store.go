package store

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luca-patrignani/parker/domain/bridge"
	"github.com/luca-patrignani/parker/ledger"
)

//go:embed schema.sql
var schema embed.FS

type DB struct{ *pgxpool.Pool }

func Open(ctx context.Context, dsn string) (*DB, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close()                         { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func (db *DB) Migrate(ctx context.Context) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

// Board is a finished (or abandoned) board ready to be persisted.
type Board struct {
	ID       string
	Dealer   bridge.Seat
	Closed   bool
	Contract *bridge.Contract // nil when passed out or unfinished
	Blocks   []ledger.Block   // genesis first
}

// BoardFromRecord verifies the record, replays it and captures the outcome.
func BoardFromRecord(record *ledger.Blockchain) (Board, error) {
	blocks := record.Blocks()
	auction, err := ledger.Replay(blocks)
	if err != nil {
		return Board{}, fmt.Errorf("replay board %s: %w", record.BoardID(), err)
	}
	board := Board{
		ID:     record.BoardID(),
		Dealer: auction.Dealer(),
		Closed: auction.Closed(),
		Blocks: blocks,
	}
	if c, ok := auction.Contract(); ok {
		board.Contract = &c
	}
	return board, nil
}

// contractText is the column value for a board's contract.
func (b Board) contractText() any {
	if b.Contract == nil {
		return nil
	}
	return b.Contract.String()
}

// SaveBoard writes the board and all its calls in one transaction. Saving the
// same board again replaces its calls.
func (db *DB) SaveBoard(ctx context.Context, b Board) error {
	return pgx.BeginFunc(ctx, db.Pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO boards(id, dealer, closed, contract)
			VALUES ($1,$2,$3,$4)
			ON CONFLICT (id) DO UPDATE
			  SET closed = EXCLUDED.closed,
			      contract = EXCLUDED.contract
		`, b.ID, b.Dealer.String(), b.Closed, b.contractText()); err != nil {
			return fmt.Errorf("insert board %s: %w", b.ID, err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM calls WHERE board_id = $1`, b.ID); err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, blk := range b.Blocks {
			if blk.Index == 0 {
				continue
			}
			batch.Queue(`
				INSERT INTO calls(board_id, idx, seat, call, called_at, prev_hash, hash)
				VALUES ($1,$2,$3,$4,$5,$6,$7)
			`, b.ID, blk.Index, blk.Seat.String(), blk.Call, blk.Timestamp, blk.PrevHash, blk.Hash)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}

// Summary is one row of the board history.
type Summary struct {
	ID       string
	Dealer   bridge.Seat
	Closed   bool
	Contract *bridge.Contract
}

// RecentBoards lists the most recently saved boards, newest first.
func (db *DB) RecentBoards(ctx context.Context, limit int) ([]Summary, error) {
	rows, err := db.Query(ctx, `
		SELECT id, dealer, closed, contract
		  FROM boards
		 ORDER BY created_at DESC
		 LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			id, dealer string
			closed     bool
			contract   *string
		)
		if err := rows.Scan(&id, &dealer, &closed, &contract); err != nil {
			return nil, err
		}
		s, err := parseSummary(id, dealer, closed, contract)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func parseSummary(id, dealer string, closed bool, contract *string) (Summary, error) {
	seat, err := bridge.ParseSeat(dealer)
	if err != nil {
		return Summary{}, fmt.Errorf("board %s dealer %q: %w", id, dealer, err)
	}
	s := Summary{ID: id, Dealer: seat, Closed: closed}
	if contract != nil {
		c, err := bridge.ParseContract(*contract)
		if err != nil {
			return Summary{}, fmt.Errorf("board %s contract %q: %w", id, *contract, err)
		}
		s.Contract = &c
	}
	return s, nil
}

// LoadCalls returns the recorded calls of a board in order. It returns
// pgx.ErrNoRows when the board is unknown.
func (db *DB) LoadCalls(ctx context.Context, boardID string) (bridge.Seat, []bridge.AuctionBid, error) {
	var dealer string
	err := db.QueryRow(ctx, `SELECT dealer FROM boards WHERE id = $1`, boardID).Scan(&dealer)
	if err != nil {
		return 0, nil, err
	}
	seat, err := bridge.ParseSeat(dealer)
	if err != nil {
		return 0, nil, err
	}

	rows, err := db.Query(ctx, `SELECT call FROM calls WHERE board_id = $1 ORDER BY idx`, boardID)
	if err != nil {
		return 0, nil, err
	}
	texts, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return 0, nil, err
	}
	calls := make([]bridge.AuctionBid, 0, len(texts))
	for _, t := range texts {
		c, err := bridge.ParseAuctionBid(t)
		if err != nil {
			return 0, nil, fmt.Errorf("board %s call %q: %w", boardID, t, err)
		}
		calls = append(calls, c)
	}
	return seat, calls, nil
}

// IsNotFound reports whether err means the requested board does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
