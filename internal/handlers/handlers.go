package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/AAAZZZR/gambledashboard-backend/internal/aggregate"
	"github.com/AAAZZZR/gambledashboard-backend/internal/cache"
	"github.com/AAAZZZR/gambledashboard-backend/internal/db"
	"github.com/AAAZZZR/gambledashboard-backend/pkg/models"
	"github.com/go-chi/chi/v5"
)

// sportNames maps sport keys to display names for the sports menu.
// Unmapped keys fall back to the key itself.
var sportNames = map[string]string{
	"australianfootball_afl": "Australian Football AFL",
	"aussierules_afl":        "Australian Football AFL",
	"soccer_epl":             "English Premier League",
	"basketball_nba":         "NBA Basketball",
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	store db.OddsStore
	cache *cache.Cache
}

// NewHandler creates a new handler with dependencies. cache may be nil.
func NewHandler(store db.OddsStore, c *cache.Cache) *Handler {
	return &Handler{
		store: store,
		cache: c,
	}
}

// Root returns the service banner with the endpoint listing
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Sports Odds API Running",
		"version": "2.0.0",
		"endpoints": map[string]string{
			"/api/sports":                    "Get all sports",
			"/api/sports/{sport_key}/events": "Get all events and odds for specific sport",
			"/api/events/{event_id}":         "Get event details",
			"/api/events/{event_id}/history": "Get event odds history",
			"/api/bookmakers":                "Get all bookmakers",
			"/api/odds_table":                "Get formatted odds table from provider",
		},
	})
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	// Check database connectivity
	if err := h.store.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unhealthy", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "oddsboard",
	})
}

// GetSports lists every sport with its upcoming-event count at the
// latest snapshot. Sports with no upcoming events still appear with
// count 0.
func (h *Handler) GetSports(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	counts, ok := h.cache.GetSports(ctx)
	if !ok {
		var err error
		counts, err = h.store.ListSports(ctx)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to retrieve sports", err)
			return
		}
		h.cache.SetSports(ctx, counts)
	}

	sports := make([]models.Sport, 0, len(counts))
	for _, c := range counts {
		name, ok := sportNames[c.SportKey]
		if !ok {
			name = c.SportKey
		}
		sports = append(sports, models.Sport{
			SportKey:   c.SportKey,
			SportName:  name,
			EventCount: c.EventCount,
		})
	}

	respondJSON(w, http.StatusOK, sports)
}

// GetSportEvents lists upcoming events with all bookmaker odds for one
// sport, taken from the sport's latest snapshot
func (h *Handler) GetSportEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sportKey := chi.URLParam(r, "sportKey")
	if sportKey == "" {
		respondError(w, http.StatusBadRequest, "sport_key is required", nil)
		return
	}

	rows, ok := h.cache.GetSportRows(ctx, sportKey)
	if !ok {
		var err error
		rows, err = h.store.ListSportEventRows(ctx, sportKey)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to retrieve events", err)
			return
		}
		h.cache.SetSportRows(ctx, sportKey, rows)
	}

	// is_live depends on the request clock, never on cache age
	events := aggregate.BuildEvents(sportKey, rows, time.Now())
	respondJSON(w, http.StatusOK, events)
}

// GetEventDetail returns one event's latest odds plus the
// cross-bookmaker comparison; 404 when the event id is unknown
func (h *Handler) GetEventDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		respondError(w, http.StatusBadRequest, "event_id is required", nil)
		return
	}

	rows, err := h.store.ListEventRows(ctx, eventID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve event", err)
		return
	}

	detail := aggregate.BuildEventDetail(eventID, rows)
	if detail == nil {
		respondError(w, http.StatusNotFound, "event not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// GetEventHistory returns the odds history for one event and market type.
// Query params: market_type (h2h|spreads|totals, default h2h),
// bookmaker (optional), hours (1-168, default 72).
func (h *Handler) GetEventHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		respondError(w, http.StatusBadRequest, "event_id is required", nil)
		return
	}

	marketType := r.URL.Query().Get("market_type")
	if marketType == "" {
		marketType = aggregate.MarketH2H
	}
	if !aggregate.ValidMarketType(marketType) {
		respondError(w, http.StatusUnprocessableEntity, "market_type must be one of h2h, spreads, totals", nil)
		return
	}

	hours := 72
	if hoursStr := r.URL.Query().Get("hours"); hoursStr != "" {
		parsed, err := strconv.Atoi(hoursStr)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "hours must be an integer", nil)
			return
		}
		hours = parsed
	}
	if hours < 1 || hours > 168 {
		respondError(w, http.StatusUnprocessableEntity, "hours must be between 1 and 168", nil)
		return
	}

	bookmakerKey := r.URL.Query().Get("bookmaker")

	// The event must exist regardless of the window; an empty window on a
	// known event is success with an empty history.
	home, away, found, err := h.store.EventTeams(ctx, eventID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve event", err)
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "event not found", nil)
		return
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	rows, err := h.store.ListHistoryRows(ctx, eventID, bookmakerKey, since)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve odds history", err)
		return
	}

	var bookmaker *string
	if bookmakerKey != "" {
		bookmaker = &bookmakerKey
	}

	history := aggregate.BuildHistory(eventID, home, away, marketType, bookmaker, rows)
	respondJSON(w, http.StatusOK, history)
}

// GetBookmakers lists the distinct bookmakers observed in storage
func (h *Handler) GetBookmakers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	bookmakers, err := h.store.ListBookmakers(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve bookmakers", err)
		return
	}
	if bookmakers == nil {
		bookmakers = []models.Bookmaker{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"bookmakers": bookmakers,
		"total":      len(bookmakers),
	})
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("error encoding response: %v\n", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errResp := models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}

	if err != nil {
		fmt.Printf("error: %s - %v\n", message, err)
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		fmt.Printf("error encoding error response: %v\n", err)
	}
}
