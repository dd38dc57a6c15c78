// Package oddstable flattens a provider odds response into the
// display-ready table the frontend renders: one row per bookmaker per
// event, markets pre-formatted as strings.
package oddstable

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AAAZZZR/gambledashboard-backend/internal/bookmakers"
	"github.com/AAAZZZR/gambledashboard-backend/internal/upstream"
)

// Columns is the fixed header list for the odds table
var Columns = []string{"bookmaker", "match", "h2h", "spreads", "totals", "start", "bookmaker_url"}

// Row is one bookmaker's line for one event
type Row struct {
	Bookmaker    string  `json:"bookmaker"`
	BookmakerURL *string `json:"bookmaker_url"`
	Match        string  `json:"match"`
	Start        string  `json:"start"`
	H2H          string  `json:"h2h"`
	Spreads      string  `json:"spreads"`
	Totals       string  `json:"totals"`
}

// Match groups the rows of one event
type Match struct {
	ID    string `json:"id"`
	Match string `json:"match"`
	Start string `json:"start"`
	Rows  []Row  `json:"rows"`
}

// Table is the full odds table payload
type Table struct {
	Columns []string `json:"columns"`
	Matches []Match  `json:"matches"`
}

// Build converts upstream events into the table form. Bookmaker identity
// goes through the registry so aliases collapse and display names are
// canonical; rows within an event are sorted by display name,
// case-insensitively, with ties keeping feed order.
func Build(events []upstream.Event) Table {
	table := Table{Columns: Columns, Matches: make([]Match, 0, len(events))}

	for _, ev := range events {
		matchLabel := fmt.Sprintf("%s vs %s", teamLabel(ev.HomeTeam), teamLabel(ev.AwayTeam))

		rows := make([]Row, 0, len(ev.Bookmakers))
		for _, bm := range ev.Bookmakers {
			meta := bookmakers.Resolve(bm.Key, bm.Title)
			rows = append(rows, Row{
				Bookmaker:    meta.Name,
				BookmakerURL: meta.URL,
				Match:        matchLabel,
				Start:        ev.CommenceTime,
				H2H:          formatH2H(pickMarket(bm.Markets, "h2h")),
				Spreads:      formatSpreads(pickMarket(bm.Markets, "spreads")),
				Totals:       formatTotals(pickMarket(bm.Markets, "totals")),
			})
		}

		sort.SliceStable(rows, func(i, j int) bool {
			return strings.ToLower(rows[i].Bookmaker) < strings.ToLower(rows[j].Bookmaker)
		})

		table.Matches = append(table.Matches, Match{
			ID:    ev.ID,
			Match: matchLabel,
			Start: ev.CommenceTime,
			Rows:  rows,
		})
	}

	return table
}

func teamLabel(name *string) string {
	if name == nil {
		return "?"
	}
	return *name
}

// pickMarket returns the first market with the given key, nil if none
func pickMarket(markets []upstream.Market, key string) *upstream.Market {
	for i := range markets {
		if markets[i].Key == key {
			return &markets[i]
		}
	}
	return nil
}

// Formatting is best effort: outcomes missing a required field are
// skipped, and a missing market yields an empty column rather than an
// error, so one malformed bookmaker entry cannot blank the whole table.

func formatH2H(market *upstream.Market) string {
	if market == nil {
		return ""
	}
	parts := make([]string, 0, len(market.Outcomes))
	for _, o := range market.Outcomes {
		if o.Name == nil || o.Price == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", *o.Name, *o.Price))
	}
	return strings.Join(parts, " / ")
}

func formatSpreads(market *upstream.Market) string {
	if market == nil {
		return ""
	}
	parts := make([]string, 0, len(market.Outcomes))
	for _, o := range market.Outcomes {
		if o.Name == nil || o.Point == nil || o.Price == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s(%v): %v", *o.Name, *o.Point, *o.Price))
	}
	return strings.Join(parts, " / ")
}

func formatTotals(market *upstream.Market) string {
	if market == nil {
		return ""
	}
	parts := make([]string, 0, len(market.Outcomes))
	for _, o := range market.Outcomes {
		if o.Name == nil || o.Point == nil || o.Price == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %v: %v", *o.Name, *o.Point, *o.Price))
	}
	return strings.Join(parts, " / ")
}
