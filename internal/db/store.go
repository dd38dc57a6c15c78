package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AAAZZZR/gambledashboard-backend/pkg/models"
	_ "github.com/lib/pq"
)

// OddsStore defines the read operations over the odds snapshot table.
// The table is append-only and populated by an external collector; every
// query scopes itself to the latest snapshot where odds comparability
// matters.
type OddsStore interface {
	// ListSports returns every distinct sport key with its count of
	// distinct future-commencing events at the latest global snapshot.
	// Sports with no upcoming events still appear with count 0.
	ListSports(ctx context.Context) ([]models.SportCount, error)

	// ListSportEventRows returns all rows at the latest snapshot for the
	// sport, restricted to events commencing in the future, ordered by
	// commence time, event id, bookmaker key.
	ListSportEventRows(ctx context.Context, sportKey string) ([]models.OddsSnapshotRow, error)

	// ListEventRows returns all rows for one event at that event's latest
	// snapshot, ordered by bookmaker key. Empty result means the event is
	// unknown.
	ListEventRows(ctx context.Context, eventID string) ([]models.OddsSnapshotRow, error)

	// EventTeams returns the team names for an event, found=false when no
	// rows exist for the id at any snapshot.
	EventTeams(ctx context.Context, eventID string) (home, away *string, found bool, err error)

	// ListHistoryRows returns rows for one event with snapshot_at >= since,
	// optionally filtered to one bookmaker key, ordered by snapshot time
	// then bookmaker key.
	ListHistoryRows(ctx context.Context, eventID, bookmakerKey string, since time.Time) ([]models.OddsSnapshotRow, error)

	// ListBookmakers returns the distinct (key, title) pairs observed in
	// storage, ordered by key.
	ListBookmakers(ctx context.Context) ([]models.Bookmaker, error)

	Close() error
	Ping(ctx context.Context) error
}

// Client implements OddsStore over Postgres
type Client struct {
	db *sql.DB
}

// NewClient opens a Postgres connection pool and verifies connectivity
func NewClient(dsn string) (*Client, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{db: db}, nil
}

const snapshotColumns = `
	event_id, sport_key, home_team, away_team, commence_time,
	bookmaker_key, bookmaker_title, snapshot_at,
	home_h2h_price, away_h2h_price,
	home_spread_price, home_spread_point, away_spread_price, away_spread_point,
	over_total_price, over_total_point, under_total_price, under_total_point
`

// ListSports retrieves every sport with its upcoming-event count
func (c *Client) ListSports(ctx context.Context) ([]models.SportCount, error) {
	query := `
		WITH latest_snapshot AS (
			SELECT MAX(snapshot_at) AS latest_at
			FROM odds_snapshots
		),
		current_events AS (
			SELECT sport_key, COUNT(DISTINCT event_id) AS event_count
			FROM odds_snapshots o
			CROSS JOIN latest_snapshot ls
			WHERE o.snapshot_at = ls.latest_at
			  AND o.commence_time >= NOW()
			GROUP BY sport_key
		)
		SELECT DISTINCT o.sport_key, COALESCE(ce.event_count, 0) AS event_count
		FROM odds_snapshots o
		LEFT JOIN current_events ce ON o.sport_key = ce.sport_key
		ORDER BY o.sport_key
	`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query sports: %w", err)
	}
	defer rows.Close()

	var sports []models.SportCount
	for rows.Next() {
		var s models.SportCount
		if err := rows.Scan(&s.SportKey, &s.EventCount); err != nil {
			return nil, fmt.Errorf("scan sport: %w", err)
		}
		sports = append(sports, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sports: %w", err)
	}

	return sports, nil
}

// ListSportEventRows retrieves latest-snapshot rows for upcoming events
// of one sport
func (c *Client) ListSportEventRows(ctx context.Context, sportKey string) ([]models.OddsSnapshotRow, error) {
	query := `
		WITH latest_snapshot AS (
			SELECT MAX(snapshot_at) AS latest_at
			FROM odds_snapshots
			WHERE sport_key = $1
		),
		relevant_events AS (
			SELECT DISTINCT event_id
			FROM odds_snapshots o
			CROSS JOIN latest_snapshot ls
			WHERE o.sport_key = $1
			  AND o.snapshot_at = ls.latest_at
			  AND o.commence_time > NOW()
		)
		SELECT ` + snapshotColumns + `
		FROM odds_snapshots o
		CROSS JOIN latest_snapshot ls
		WHERE o.sport_key = $1
		  AND o.snapshot_at = ls.latest_at
		  AND o.event_id IN (SELECT event_id FROM relevant_events)
		ORDER BY o.commence_time, o.event_id, o.bookmaker_key
	`

	rows, err := c.db.QueryContext(ctx, query, sportKey)
	if err != nil {
		return nil, fmt.Errorf("query sport events: %w", err)
	}
	defer rows.Close()

	return scanSnapshotRows(rows)
}

// ListEventRows retrieves one event's rows at its latest snapshot
func (c *Client) ListEventRows(ctx context.Context, eventID string) ([]models.OddsSnapshotRow, error) {
	query := `
		WITH latest_snapshot AS (
			SELECT MAX(snapshot_at) AS latest_at
			FROM odds_snapshots
			WHERE event_id = $1
		)
		SELECT ` + snapshotColumns + `
		FROM odds_snapshots o
		CROSS JOIN latest_snapshot ls
		WHERE o.event_id = $1
		  AND o.snapshot_at = ls.latest_at
		ORDER BY o.bookmaker_key
	`

	rows, err := c.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("query event rows: %w", err)
	}
	defer rows.Close()

	return scanSnapshotRows(rows)
}

// EventTeams looks up an event's team names regardless of snapshot age
func (c *Client) EventTeams(ctx context.Context, eventID string) (*string, *string, bool, error) {
	query := `
		SELECT home_team, away_team
		FROM odds_snapshots
		WHERE event_id = $1
		LIMIT 1
	`

	var home, away sql.NullString
	err := c.db.QueryRowContext(ctx, query, eventID).Scan(&home, &away)
	if err == sql.ErrNoRows {
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, fmt.Errorf("query event teams: %w", err)
	}

	return nullString(home), nullString(away), true, nil
}

// ListHistoryRows retrieves time-ordered rows for one event within the
// look-back window
func (c *Client) ListHistoryRows(ctx context.Context, eventID, bookmakerKey string, since time.Time) ([]models.OddsSnapshotRow, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM odds_snapshots o
		WHERE o.event_id = $1
		  AND o.snapshot_at >= $2
	`
	args := []interface{}{eventID, since}

	if bookmakerKey != "" {
		query += " AND o.bookmaker_key = $3"
		args = append(args, bookmakerKey)
	}

	query += " ORDER BY o.snapshot_at ASC, o.bookmaker_key"

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history rows: %w", err)
	}
	defer rows.Close()

	return scanSnapshotRows(rows)
}

// ListBookmakers retrieves the distinct bookmakers observed in storage
func (c *Client) ListBookmakers(ctx context.Context) ([]models.Bookmaker, error) {
	query := `
		SELECT DISTINCT bookmaker_key, bookmaker_title
		FROM odds_snapshots
		WHERE bookmaker_title IS NOT NULL
		ORDER BY bookmaker_key
	`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query bookmakers: %w", err)
	}
	defer rows.Close()

	var bookmakers []models.Bookmaker
	for rows.Next() {
		var b models.Bookmaker
		if err := rows.Scan(&b.Key, &b.Title); err != nil {
			return nil, fmt.Errorf("scan bookmaker: %w", err)
		}
		bookmakers = append(bookmakers, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookmakers: %w", err)
	}

	return bookmakers, nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping checks database connectivity
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func scanSnapshotRows(rows *sql.Rows) ([]models.OddsSnapshotRow, error) {
	var result []models.OddsSnapshotRow
	for rows.Next() {
		var (
			r          models.OddsSnapshotRow
			home, away sql.NullString
			title      sql.NullString
			prices     [10]sql.NullFloat64
		)
		if err := rows.Scan(
			&r.EventID, &r.SportKey, &home, &away, &r.CommenceTime,
			&r.BookmakerKey, &title, &r.SnapshotAt,
			&prices[0], &prices[1],
			&prices[2], &prices[3], &prices[4], &prices[5],
			&prices[6], &prices[7], &prices[8], &prices[9],
		); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}

		r.HomeTeam = nullString(home)
		r.AwayTeam = nullString(away)
		r.BookmakerTitle = nullString(title)
		r.HomeH2HPrice = nullFloat(prices[0])
		r.AwayH2HPrice = nullFloat(prices[1])
		r.HomeSpreadPrice = nullFloat(prices[2])
		r.HomeSpreadPoint = nullFloat(prices[3])
		r.AwaySpreadPrice = nullFloat(prices[4])
		r.AwaySpreadPoint = nullFloat(prices[5])
		r.OverTotalPrice = nullFloat(prices[6])
		r.OverTotalPoint = nullFloat(prices[7])
		r.UnderTotalPrice = nullFloat(prices[8])
		r.UnderTotalPoint = nullFloat(prices[9])

		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot rows: %w", err)
	}

	return result, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
