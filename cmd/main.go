package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/parker/application"
	"github.com/luca-patrignani/parker/domain/bridge"
	"github.com/luca-patrignani/parker/domain/deck"
	"github.com/luca-patrignani/parker/internal/config"
	"github.com/luca-patrignani/parker/store"
)

const usage = `usage: %s [command]

commands:
  play          deal a board and run its auction (default)
  history       list the most recently saved boards
  show <board>  print the auction of a saved board
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(cfg.LogLevel))
	logger := slog.New(handler)
	slog.SetDefault(logger)

	cmd := "play"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	ctx := context.Background()
	switch {
	case cmd == "play" && len(os.Args) <= 2:
		err = play(ctx, cfg, logger)
	case cmd == "history" && len(os.Args) == 2:
		err = history(ctx, cfg)
	case cmd == "show" && len(os.Args) == 3:
		err = show(ctx, cfg, os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, usage, os.Args[0])
		os.Exit(2)
	}
	if err != nil {
		logger.Error(cmd+" failed", "error", err)
		os.Exit(1)
	}
}

func play(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("arker", pterm.FgDarkGray.ToStyle()),
	).Render()

	d := newDeck(cfg.Seed)
	spinner, _ := pterm.DefaultSpinner.Start("Shuffling the cards ...")
	if err := d.Shuffle(); err != nil {
		spinner.Fail()
		return err
	}
	spinner.Success()

	dealer, err := pickDealer(cfg, d)
	if err != nil {
		return err
	}
	table, err := application.NewTable(dealer, d, application.WithLogger(logger))
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Board %s, %s deals. You sit %s.", table.BoardID(), dealer, cfg.Seat)
	pterm.Println(handBox(cfg.Seat, table.Hand(cfg.Seat), true))

	if err := bid(table, cfg.Seat, promptCall); err != nil {
		return err
	}
	pterm.Println(resultText(table.Contract()))
	renderDeal(table, cfg.Seat)

	if cfg.DatabaseURL == "" {
		return nil
	}
	return save(ctx, cfg.DatabaseURL, table)
}

func promptCall(prompt string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
}

// bid asks the seat on turn for a call until the auction closes. Unparsable
// calls are reported and asked again; a failing read ends the auction.
func bid(table *application.Table, local bridge.Seat, read func(prompt string) (string, error)) error {
	for !table.Closed() {
		prompt := fmt.Sprintf("%s to call", seatLabel(table.Turn(), local))
		text, err := read(prompt)
		if err != nil {
			return fmt.Errorf("read call: %w", err)
		}
		if _, err := table.Call(text); err != nil {
			pterm.Error.Printfln("%q: %s", text, err)
			continue
		}
		pterm.Println(auctionBox(table.Auction()))
	}
	return nil
}

func newDeck(seed string) *deck.Deck {
	if seed == "" {
		return deck.New()
	}
	return deck.NewSeeded([]byte(seed))
}

func pickDealer(cfg config.Config, d *deck.Deck) (bridge.Seat, error) {
	if cfg.Dealer != nil {
		return *cfg.Dealer, nil
	}
	return d.Dealer()
}

func save(ctx context.Context, dsn string, table *application.Table) error {
	board, err := store.BoardFromRecord(table.Record())
	if err != nil {
		return err
	}
	db, err := openStore(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	spinner, _ := pterm.DefaultSpinner.Start("Saving the board ...")
	if err := db.SaveBoard(ctx, board); err != nil {
		spinner.Fail()
		return err
	}
	spinner.Success()
	return nil
}

func history(ctx context.Context, cfg config.Config) error {
	db, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	boards, err := db.RecentBoards(ctx, 20)
	if err != nil {
		return err
	}
	if len(boards) == 0 {
		pterm.Info.Println("No boards saved yet.")
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithData(historyRows(boards)).Render()
}

func show(ctx context.Context, cfg config.Config, boardID string) error {
	db, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	dealer, calls, err := db.LoadCalls(ctx, boardID)
	if store.IsNotFound(err) {
		return fmt.Errorf("board %s not found", boardID)
	}
	if err != nil {
		return err
	}
	auction := bridge.NewAuction(dealer)
	auction.Append(calls...)
	pterm.Println(auctionBox(auction))
	pterm.Println(resultText(auction.Contract()))
	return nil
}

func openStore(ctx context.Context, dsn string) (*store.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%s is not set", config.EnvDatabaseURL)
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := store.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
