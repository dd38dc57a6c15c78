package oddstable_test

import (
	"reflect"
	"testing"

	"github.com/AAAZZZR/gambledashboard-backend/internal/oddstable"
	"github.com/AAAZZZR/gambledashboard-backend/internal/upstream"
)

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

func h2hMarket() upstream.Market {
	return upstream.Market{
		Key: "h2h",
		Outcomes: []upstream.Outcome{
			{Name: sptr("Collingwood"), Price: fptr(1.85)},
			{Name: sptr("Carlton"), Price: fptr(2.05)},
		},
	}
}

func TestBuild_Columns(t *testing.T) {
	table := oddstable.Build(nil)

	want := []string{"bookmaker", "match", "h2h", "spreads", "totals", "start", "bookmaker_url"}
	if !reflect.DeepEqual(table.Columns, want) {
		t.Errorf("expected columns %v, got %v", want, table.Columns)
	}
	if len(table.Matches) != 0 {
		t.Errorf("expected no matches, got %d", len(table.Matches))
	}
}

func TestBuild_FormatsMarkets(t *testing.T) {
	events := []upstream.Event{
		{
			ID:           "ev1",
			HomeTeam:     sptr("Collingwood"),
			AwayTeam:     sptr("Carlton"),
			CommenceTime: "2025-08-30T09:00:00Z",
			Bookmakers: []upstream.Bookmaker{
				{
					Key:   "sportsbet",
					Title: "Sportsbet",
					Markets: []upstream.Market{
						h2hMarket(),
						{
							Key: "spreads",
							Outcomes: []upstream.Outcome{
								{Name: sptr("Collingwood"), Point: fptr(-10.5), Price: fptr(1.9)},
								{Name: sptr("Carlton"), Point: fptr(10.5), Price: fptr(1.9)},
							},
						},
						{
							Key: "totals",
							Outcomes: []upstream.Outcome{
								{Name: sptr("Over"), Point: fptr(160.5), Price: fptr(1.87)},
								{Name: sptr("Under"), Point: fptr(160.5), Price: fptr(1.93)},
							},
						},
					},
				},
			},
		},
	}

	table := oddstable.Build(events)

	if len(table.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(table.Matches))
	}

	match := table.Matches[0]
	if match.ID != "ev1" {
		t.Errorf("expected match id ev1, got %q", match.ID)
	}
	if match.Match != "Collingwood vs Carlton" {
		t.Errorf("unexpected match label %q", match.Match)
	}

	row := match.Rows[0]
	if row.Bookmaker != "SportsBet" {
		t.Errorf("expected canonical name SportsBet, got %q", row.Bookmaker)
	}
	if row.BookmakerURL == nil || *row.BookmakerURL != "https://www.sportsbet.com.au/" {
		t.Errorf("expected sportsbet URL, got %v", row.BookmakerURL)
	}
	if row.H2H != "Collingwood: 1.85 / Carlton: 2.05" {
		t.Errorf("unexpected h2h column %q", row.H2H)
	}
	if row.Spreads != "Collingwood(-10.5): 1.9 / Carlton(10.5): 1.9" {
		t.Errorf("unexpected spreads column %q", row.Spreads)
	}
	if row.Totals != "Over 160.5: 1.87 / Under 160.5: 1.93" {
		t.Errorf("unexpected totals column %q", row.Totals)
	}
	if row.Start != "2025-08-30T09:00:00Z" {
		t.Errorf("unexpected start %q", row.Start)
	}
}

func TestBuild_MissingTeamsUseQuestionMark(t *testing.T) {
	events := []upstream.Event{{ID: "ev1", AwayTeam: sptr("Carlton")}}

	table := oddstable.Build(events)

	if table.Matches[0].Match != "? vs Carlton" {
		t.Errorf("expected '? vs Carlton', got %q", table.Matches[0].Match)
	}
}

func TestBuild_MalformedMarketYieldsEmptyColumn(t *testing.T) {
	events := []upstream.Event{
		{
			ID:       "ev1",
			HomeTeam: sptr("Collingwood"),
			AwayTeam: sptr("Carlton"),
			Bookmakers: []upstream.Bookmaker{
				{
					Key:   "neds",
					Title: "Neds",
					Markets: []upstream.Market{
						// Spread outcomes missing points: skipped, column empty
						{
							Key: "spreads",
							Outcomes: []upstream.Outcome{
								{Name: sptr("Collingwood"), Price: fptr(1.9)},
							},
						},
					},
				},
			},
		},
	}

	table := oddstable.Build(events)

	row := table.Matches[0].Rows[0]
	if row.Spreads != "" {
		t.Errorf("expected empty spreads column, got %q", row.Spreads)
	}
	if row.H2H != "" || row.Totals != "" {
		t.Errorf("expected empty columns for absent markets, got h2h=%q totals=%q", row.H2H, row.Totals)
	}
}

func TestBuild_PartialOutcomesSkipped(t *testing.T) {
	events := []upstream.Event{
		{
			ID: "ev1",
			Bookmakers: []upstream.Bookmaker{
				{
					Key: "tab",
					Markets: []upstream.Market{
						{
							Key: "h2h",
							Outcomes: []upstream.Outcome{
								{Name: sptr("Collingwood"), Price: fptr(1.85)},
								{Name: sptr("Carlton")}, // no price, skipped
							},
						},
					},
				},
			},
		},
	}

	table := oddstable.Build(events)

	if got := table.Matches[0].Rows[0].H2H; got != "Collingwood: 1.85" {
		t.Errorf("expected partial outcome to be skipped, got %q", got)
	}
}

func TestBuild_RowsSortedByDisplayName(t *testing.T) {
	events := []upstream.Event{
		{
			ID: "ev1",
			Bookmakers: []upstream.Bookmaker{
				{Key: "tab", Title: "TAB"},
				{Key: "boombet", Title: "BoomBet"},
				{Key: "neds", Title: "neds"},
				{Key: "ladbrokes", Title: "Ladbrokes"},
			},
		},
	}

	table := oddstable.Build(events)

	var got []string
	for _, row := range table.Matches[0].Rows {
		got = append(got, row.Bookmaker)
	}

	// Case-insensitive alphabetical order
	want := []string{"BoomBet", "Ladbrokes", "neds", "TAB"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
}

func TestBuild_SortIsStable(t *testing.T) {
	// Same resolved display name: feed order must be preserved
	events := []upstream.Event{
		{
			ID: "ev1",
			Bookmakers: []upstream.Bookmaker{
				{
					Key: "first", Title: "Same Name",
					Markets: []upstream.Market{{Key: "h2h", Outcomes: []upstream.Outcome{
						{Name: sptr("Collingwood"), Price: fptr(1.80)},
					}}},
				},
				{
					Key: "second", Title: "Same Name",
					Markets: []upstream.Market{{Key: "h2h", Outcomes: []upstream.Outcome{
						{Name: sptr("Collingwood"), Price: fptr(1.90)},
					}}},
				},
			},
		},
	}

	table := oddstable.Build(events)

	rows := table.Matches[0].Rows
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].H2H != "Collingwood: 1.8" || rows[1].H2H != "Collingwood: 1.9" {
		t.Errorf("tie did not preserve feed order: %q then %q", rows[0].H2H, rows[1].H2H)
	}
}

func TestBuild_AliasedKeysShareIdentity(t *testing.T) {
	events := []upstream.Event{
		{
			ID: "ev1",
			Bookmakers: []upstream.Bookmaker{
				{Key: "pointsbet", Title: "PointsBet"},
			},
		},
	}

	table := oddstable.Build(events)

	row := table.Matches[0].Rows[0]
	if row.Bookmaker != "PointsBet (AU)" {
		t.Errorf("expected canonical PointsBet (AU), got %q", row.Bookmaker)
	}
	if row.BookmakerURL == nil || *row.BookmakerURL != "https://pointsbet.com.au/" {
		t.Errorf("expected pointsbet URL via alias, got %v", row.BookmakerURL)
	}
}
