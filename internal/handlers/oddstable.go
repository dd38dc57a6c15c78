package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/AAAZZZR/gambledashboard-backend/internal/oddstable"
	"github.com/AAAZZZR/gambledashboard-backend/internal/upstream"
)

// OddsTableHandler proxies The Odds API and reshapes its response into
// the display table
type OddsTableHandler struct {
	client *upstream.Client
}

// NewOddsTableHandler creates a new odds table handler
func NewOddsTableHandler(client *upstream.Client) *OddsTableHandler {
	return &OddsTableHandler{client: client}
}

// GetOddsTable fetches provider odds for one sport and returns them as a
// flattened per-bookmaker table.
// Query params: sport (required), regions (default au),
// markets (default h2h,spreads,totals), oddsFormat (default decimal),
// dateFormat (default iso).
func (h *OddsTableHandler) GetOddsTable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	sport := r.URL.Query().Get("sport")
	if sport == "" {
		respondError(w, http.StatusBadRequest, "sport is required", nil)
		return
	}

	query := upstream.OddsQuery{
		Sport:      sport,
		Regions:    listParam(r, "regions", []string{"au"}),
		Markets:    listParam(r, "markets", []string{"h2h", "spreads", "totals"}),
		OddsFormat: stringParam(r, "oddsFormat", "decimal"),
		DateFormat: stringParam(r, "dateFormat", "iso"),
	}

	resp, err := h.client.FetchOdds(ctx, query)
	if err != nil {
		respondError(w, http.StatusBadGateway, "odds provider unavailable", err)
		return
	}

	// Non-success from the provider passes through with its original
	// status and body so callers keep the provider's diagnostic.
	if !resp.OK() {
		respondJSON(w, resp.StatusCode, map[string]interface{}{
			"error": string(resp.Body),
		})
		return
	}

	var events []upstream.Event
	if err := json.Unmarshal(resp.Body, &events); err != nil {
		respondError(w, http.StatusBadGateway, "failed to decode provider response", err)
		return
	}

	respondJSON(w, http.StatusOK, oddstable.Build(events))
}

// listParam collects a repeatable query parameter, also splitting
// comma-separated values. Returns def when the parameter is absent.
func listParam(r *http.Request, param string, def []string) []string {
	raw := r.URL.Query()[param]
	if len(raw) == 0 {
		return def
	}
	var values []string
	for _, entry := range raw {
		for _, v := range strings.Split(entry, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	if len(values) == 0 {
		return def
	}
	return values
}

func stringParam(r *http.Request, param, def string) string {
	if v := r.URL.Query().Get(param); v != "" {
		return v
	}
	return def
}
