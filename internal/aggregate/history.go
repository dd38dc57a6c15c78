package aggregate

import "github.com/AAAZZZR/gambledashboard-backend/pkg/models"

// Market types accepted by the history endpoint
const (
	MarketH2H     = "h2h"
	MarketSpreads = "spreads"
	MarketTotals  = "totals"
)

// ValidMarketType reports whether s is one of the enumerated market types
func ValidMarketType(s string) bool {
	switch s {
	case MarketH2H, MarketSpreads, MarketTotals:
		return true
	}
	return false
}

// BuildHistory projects time-ordered snapshot rows into charting points
// for one market type. Rows arrive already filtered to the look-back
// window (and optionally one bookmaker); each row yields one point whose
// Values shape depends on the market type.
func BuildHistory(eventID string, homeTeam, awayTeam *string, marketType string, bookmaker *string, rows []models.OddsSnapshotRow) models.OddsHistory {
	history := models.OddsHistory{
		EventID:    eventID,
		HomeTeam:   homeTeam,
		AwayTeam:   awayTeam,
		MarketType: marketType,
		Bookmaker:  bookmaker,
		History:    make([]models.OddsHistoryPoint, 0, len(rows)),
	}

	for _, row := range rows {
		point := models.OddsHistoryPoint{
			Timestamp:  row.SnapshotAt,
			Bookmaker:  row.BookmakerKey,
			MarketType: marketType,
		}
		switch marketType {
		case MarketH2H:
			point.Values = map[string]*float64{
				"home": price(row.HomeH2HPrice),
				"away": price(row.AwayH2HPrice),
			}
		case MarketSpreads:
			point.Values = map[string]*float64{
				"home_price": price(row.HomeSpreadPrice),
				"home_point": price(row.HomeSpreadPoint),
				"away_price": price(row.AwaySpreadPrice),
				"away_point": price(row.AwaySpreadPoint),
			}
		case MarketTotals:
			point.Values = map[string]*float64{
				"over_price":  price(row.OverTotalPrice),
				"over_point":  price(row.OverTotalPoint),
				"under_price": price(row.UnderTotalPrice),
				"under_point": price(row.UnderTotalPoint),
			}
		}
		history.History = append(history.History, point)
	}
	return history
}
