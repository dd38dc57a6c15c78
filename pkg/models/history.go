package models

import "time"

// OddsHistoryPoint is one (snapshot, bookmaker) sample of a single market.
// Values keys depend on the market type: h2h carries home/away, spreads and
// totals carry the price/point pairs for each side. A key is always present;
// its value is nil when the bookmaker did not offer that line.
type OddsHistoryPoint struct {
	Timestamp  time.Time           `json:"timestamp"`
	Bookmaker  string              `json:"bookmaker"`
	MarketType string              `json:"market_type"`
	Values     map[string]*float64 `json:"values"`
}

// OddsHistory is the charting payload for one event and market type
type OddsHistory struct {
	EventID    string             `json:"event_id"`
	HomeTeam   *string            `json:"home_team"`
	AwayTeam   *string            `json:"away_team"`
	MarketType string             `json:"market_type"`
	Bookmaker  *string            `json:"bookmaker"`
	History    []OddsHistoryPoint `json:"history"`
}
