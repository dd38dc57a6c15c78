// Package aggregate reshapes flat snapshot rows into the nested per-event
// entities the API serves. All functions are pure transforms over row
// slices already filtered to the relevant snapshot scope by the store.
package aggregate

import (
	"sort"
	"time"

	"github.com/AAAZZZR/gambledashboard-backend/pkg/models"
)

// price converts a scanned quotation to its API form. The snapshot table
// uses NULL or 0 for "not offered"; a zero price is never a valid
// quotation, so both collapse to nil.
func price(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

// bookmakerOdds builds one bookmaker's market view from a snapshot row
func bookmakerOdds(row models.OddsSnapshotRow) models.BookmakerOdds {
	snapshotAt := row.SnapshotAt
	return models.BookmakerOdds{
		BookmakerKey:   row.BookmakerKey,
		BookmakerTitle: row.BookmakerTitle,
		LastUpdate:     &snapshotAt,
		H2H: models.H2HOdds{
			Home: price(row.HomeH2HPrice),
			Away: price(row.AwayH2HPrice),
		},
		Spreads: models.SpreadOdds{
			Home: models.PricePoint{Price: price(row.HomeSpreadPrice), Point: price(row.HomeSpreadPoint)},
			Away: models.PricePoint{Price: price(row.AwaySpreadPrice), Point: price(row.AwaySpreadPoint)},
		},
		Totals: models.TotalOdds{
			Over:  models.PricePoint{Price: price(row.OverTotalPrice), Point: price(row.OverTotalPoint)},
			Under: models.PricePoint{Price: price(row.UnderTotalPrice), Point: price(row.UnderTotalPoint)},
		},
	}
}

// BuildEvents groups snapshot rows into events. The first row seen for an
// event seeds its identity fields; later rows only contribute bookmaker
// entries. Events come back sorted by commence time ascending, bookmakers
// in row order within each event. IsLive is recomputed against now on
// every call so cached row sets never serve stale liveness.
func BuildEvents(sportKey string, rows []models.OddsSnapshotRow, now time.Time) []models.Event {
	order := make([]string, 0)
	byID := make(map[string]*models.Event)

	for _, row := range rows {
		ev, ok := byID[row.EventID]
		if !ok {
			ev = &models.Event{
				EventID:      row.EventID,
				SportKey:     sportKey,
				HomeTeam:     row.HomeTeam,
				AwayTeam:     row.AwayTeam,
				CommenceTime: row.CommenceTime,
				IsLive:       !row.CommenceTime.After(now),
			}
			byID[row.EventID] = ev
			order = append(order, row.EventID)
		}
		ev.Bookmakers = append(ev.Bookmakers, bookmakerOdds(row))
	}

	events := make([]models.Event, 0, len(order))
	for _, id := range order {
		events = append(events, *byID[id])
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CommenceTime.Before(events[j].CommenceTime)
	})
	return events
}

// BuildEventDetail builds the detail view for a single event from its
// latest-snapshot rows, including the cross-bookmaker head-to-head
// comparison. Returns nil when rows is empty; the caller maps that to
// not-found.
func BuildEventDetail(eventID string, rows []models.OddsSnapshotRow) *models.EventDetail {
	if len(rows) == 0 {
		return nil
	}

	first := rows[0]
	detail := &models.EventDetail{
		EventID:        eventID,
		SportKey:       first.SportKey,
		HomeTeam:       first.HomeTeam,
		AwayTeam:       first.AwayTeam,
		CommenceTime:   first.CommenceTime,
		CurrentOdds:    make([]models.BookmakerOdds, 0, len(rows)),
		OddsComparison: make(map[string]models.PriceStats),
	}

	var homePrices, awayPrices []float64
	for _, row := range rows {
		detail.CurrentOdds = append(detail.CurrentOdds, bookmakerOdds(row))
		if p := price(row.HomeH2HPrice); p != nil {
			homePrices = append(homePrices, *p)
		}
		if p := price(row.AwayH2HPrice); p != nil {
			awayPrices = append(awayPrices, *p)
		}
	}

	if stats, ok := priceStats(homePrices); ok {
		detail.OddsComparison["h2h_home"] = stats
	}
	if stats, ok := priceStats(awayPrices); ok {
		detail.OddsComparison["h2h_away"] = stats
	}
	return detail
}

// priceStats computes best/worst/average over the quoted prices for one
// market side. ok is false when no bookmaker quoted the side.
func priceStats(prices []float64) (models.PriceStats, bool) {
	if len(prices) == 0 {
		return models.PriceStats{}, false
	}
	stats := models.PriceStats{Best: prices[0], Worst: prices[0]}
	var sum float64
	for _, p := range prices {
		if p > stats.Best {
			stats.Best = p
		}
		if p < stats.Worst {
			stats.Worst = p
		}
		sum += p
	}
	stats.Average = sum / float64(len(prices))
	return stats, true
}
