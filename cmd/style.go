package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/parker/application"
	"github.com/luca-patrignani/parker/domain/bridge"
	"github.com/luca-patrignani/parker/store"
)

var displaySuits = []bridge.Suit{bridge.Spades, bridge.Hearts, bridge.Diamonds, bridge.Clubs}

func suitColor(s bridge.Suit) pterm.Color {
	if s == bridge.Hearts || s == bridge.Diamonds {
		return pterm.FgLightRed
	}
	return pterm.FgLightWhite
}

// handText lays a hand out one suit per line, highest suit first.
func handText(h bridge.Hand) string {
	lines := make([]string, 0, len(displaySuits)+1)
	for _, s := range displaySuits {
		lines = append(lines, suitColor(s).Sprint(s.String())+" "+h.Ranks(s))
	}
	lines = append(lines, pterm.Sprintf("%d HCP", h.HCP()))
	return strings.Join(lines, "\n")
}

func handBox(seat bridge.Seat, h bridge.Hand, main bool) string {
	hpadding := 2
	if main {
		hpadding = 4
	}
	pbox := pterm.DefaultBox.WithLeftPadding(hpadding).WithRightPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(seat.String()).WithTitleTopLeft().Sprint(handText(h))
}

func seatLabel(seat, local bridge.Seat) string {
	if seat == local {
		return pterm.LightCyan(seat.String() + " (you)")
	}
	return pterm.LightCyan(seat.String())
}

// colorSuits paints the suit symbols of a rendered auction or contract.
func colorSuits(s string) string {
	for _, suit := range bridge.Suits() {
		sym := suit.String()
		s = strings.ReplaceAll(s, sym, suitColor(suit).Sprint(sym))
	}
	return s
}

func auctionBox(a *bridge.Auction) string {
	pbox := pterm.DefaultBox.WithLeftPadding(1).WithRightPadding(1)
	body := strings.Trim(a.String(), "\n")
	return pbox.WithTitle(pterm.LightYellow("|AUCTION|")).WithTitleTopCenter().Sprint(colorSuits(body))
}

func resultText(c bridge.Contract, ok bool) string {
	if !ok {
		return pterm.LightYellow("Passed out.")
	}
	return pterm.LightGreen("Contract: ") + colorSuits(c.String())
}

// renderDeal shows all four hands once the auction is over, partner above
// and the local seat below.
func renderDeal(table *application.Table, local bridge.Seat) {
	panel := func(s bridge.Seat) pterm.Panel {
		return pterm.Panel{Data: handBox(s, table.Hand(s), s == local)}
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{panel(local.Add(2))},
		{panel(local.Add(1)), panel(local.Add(3))},
		{panel(local)},
	}).Render()
}

func historyRows(boards []store.Summary) [][]string {
	rows := [][]string{{"Board", "Dealer", "Closed", "Contract"}}
	for _, b := range boards {
		contract := "passed out"
		if b.Contract != nil {
			contract = colorSuits(b.Contract.String())
		} else if !b.Closed {
			contract = "-"
		}
		closed := "no"
		if b.Closed {
			closed = "yes"
		}
		rows = append(rows, []string{b.ID, b.Dealer.String(), closed, contract})
	}
	return rows
}
