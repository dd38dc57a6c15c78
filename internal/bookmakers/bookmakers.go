// Package bookmakers holds the static bookmaker identity tables: website
// URLs, key aliases, and canonical display names. All lookups are total
// over immutable maps, so the package is safe for concurrent use with no
// locking.
package bookmakers

import "strings"

// bookmakerURLs maps normalized bookmaker keys (The Odds API keys) to
// official website URLs. Keys not listed here simply have no URL.
var bookmakerURLs = map[string]string{
	"betright":      "https://www.betright.com.au/",
	"betfair_ex_au": "https://www.betfair.com.au/exchange/",
	"betr":          "https://www.betr.com.au/",
	"boombet":       "https://www.boombet.com.au/",
	"ladbrokes":     "https://www.ladbrokes.com.au/",
	"neds":          "https://www.neds.com.au/",
	"playup":        "https://www.playup.com.au/",
	"pointsbetau":   "https://pointsbet.com.au/",
	"sportsbet":     "https://www.sportsbet.com.au/",
	"tab":           "https://www.tab.com.au/",
	"tabtouch":      "https://www.tabtouch.com.au/",
	"unibet":        "https://www.unibet.com.au/",
}

// aliases maps variant keys seen in provider feeds to the canonical key
var aliases = map[string]string{
	"bet_right":    "betright",
	"betfair":      "betfair_ex_au",
	"pointsbet":    "pointsbetau",
	"sportsbet_au": "sportsbet",
	"unibet_au":    "unibet",
	"tab_au":       "tab",
}

// canonicalNames overrides the display name for brands whose provider
// title is not the common usage
var canonicalNames = map[string]string{
	"betfair_ex_au": "Betfair",
	"pointsbetau":   "PointsBet (AU)",
	"sportsbet":     "SportsBet",
	"tab":           "TAB",
}

// Meta is the resolved identity of a bookmaker. URL is nil when the
// bookmaker has no known website entry.
type Meta struct {
	Key  string  `json:"key"`
	Name string  `json:"name"`
	URL  *string `json:"url"`
}

// Normalize trims and lowercases a bookmaker key and resolves it through
// the alias table. Empty input yields empty output. Idempotent: aliases
// never map to other aliases.
func Normalize(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		return ""
	}
	if canonical, ok := aliases[k]; ok {
		return canonical
	}
	return k
}

// Resolve returns the full identity for a bookmaker key. The display name
// falls back to the provider-supplied title, then to the raw key. Unknown
// bookmakers resolve to their own key with no URL; Resolve never fails.
func Resolve(key, title string) Meta {
	nk := Normalize(key)

	name := canonicalNames[nk]
	if name == "" {
		name = title
	}
	if name == "" {
		name = key
	}

	meta := Meta{Key: nk, Name: name}
	if meta.Key == "" {
		meta.Key = key
	}
	if url, ok := bookmakerURLs[nk]; ok {
		meta.URL = &url
	}
	return meta
}
