package models

import "time"

// OddsSnapshotRow is one row of the denormalized snapshot table: one
// (event, bookmaker, snapshot time) tuple with up to three market
// quotations. Nil price/point fields mean the bookmaker did not offer
// that line at the snapshot.
type OddsSnapshotRow struct {
	EventID        string    `json:"event_id"`
	SportKey       string    `json:"sport_key"`
	HomeTeam       *string   `json:"home_team"`
	AwayTeam       *string   `json:"away_team"`
	CommenceTime   time.Time `json:"commence_time"`
	BookmakerKey   string    `json:"bookmaker_key"`
	BookmakerTitle *string   `json:"bookmaker_title"`
	SnapshotAt     time.Time `json:"snapshot_at"`

	HomeH2HPrice *float64 `json:"home_h2h_price"`
	AwayH2HPrice *float64 `json:"away_h2h_price"`

	HomeSpreadPrice *float64 `json:"home_spread_price"`
	HomeSpreadPoint *float64 `json:"home_spread_point"`
	AwaySpreadPrice *float64 `json:"away_spread_price"`
	AwaySpreadPoint *float64 `json:"away_spread_point"`

	OverTotalPrice  *float64 `json:"over_total_price"`
	OverTotalPoint  *float64 `json:"over_total_point"`
	UnderTotalPrice *float64 `json:"under_total_price"`
	UnderTotalPoint *float64 `json:"under_total_point"`
}

// SportCount is one sport's distinct upcoming-event count at the
// latest snapshot
type SportCount struct {
	SportKey   string `json:"sport_key"`
	EventCount int    `json:"event_count"`
}
