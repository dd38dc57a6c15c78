package models

import "time"

// Sport summarizes one sport for the frontend sports menu
type Sport struct {
	SportKey   string `json:"sport_key"`
	SportName  string `json:"sport_name"`
	EventCount int    `json:"event_count"`
}

// PricePoint is an optional price/point quotation pair.
// Both fields are nil when the bookmaker does not offer the line.
type PricePoint struct {
	Price *float64 `json:"price"`
	Point *float64 `json:"point"`
}

// H2HOdds holds head-to-head prices for both sides
type H2HOdds struct {
	Home *float64 `json:"home"`
	Away *float64 `json:"away"`
}

// SpreadOdds holds spread quotations for both sides
type SpreadOdds struct {
	Home PricePoint `json:"home"`
	Away PricePoint `json:"away"`
}

// TotalOdds holds over/under quotations
type TotalOdds struct {
	Over  PricePoint `json:"over"`
	Under PricePoint `json:"under"`
}

// BookmakerOdds is one bookmaker's view of an event at one snapshot
type BookmakerOdds struct {
	BookmakerKey   string     `json:"bookmaker_key"`
	BookmakerTitle *string    `json:"bookmaker_title"`
	H2H            H2HOdds    `json:"h2h"`
	Spreads        SpreadOdds `json:"spreads"`
	Totals         TotalOdds  `json:"totals"`
	LastUpdate     *time.Time `json:"last_update"`
}

// Event aggregates all bookmaker odds for one sporting event
type Event struct {
	EventID      string          `json:"event_id"`
	SportKey     string          `json:"sport_key"`
	HomeTeam     *string         `json:"home_team"`
	AwayTeam     *string         `json:"away_team"`
	CommenceTime time.Time       `json:"commence_time"`
	Bookmakers   []BookmakerOdds `json:"bookmakers"`
	IsLive       bool            `json:"is_live"`
}

// PriceStats summarizes one side of a market across bookmakers
type PriceStats struct {
	Best    float64 `json:"best"`
	Worst   float64 `json:"worst"`
	Average float64 `json:"average"`
}

// EventDetail is the detail-page view of an event. OddsComparison is keyed
// by market side ("h2h_home", "h2h_away"); a side with no quoted prices is
// omitted from the map entirely.
type EventDetail struct {
	EventID        string                `json:"event_id"`
	SportKey       string                `json:"sport_key"`
	HomeTeam       *string               `json:"home_team"`
	AwayTeam       *string               `json:"away_team"`
	CommenceTime   time.Time             `json:"commence_time"`
	CurrentOdds    []BookmakerOdds       `json:"current_odds"`
	OddsComparison map[string]PriceStats `json:"odds_comparison"`
}

// Bookmaker is one distinct (key, title) pair observed in storage
type Bookmaker struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}
