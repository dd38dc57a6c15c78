package bookmakers_test

import (
	"testing"

	"github.com/AAAZZZR/gambledashboard-backend/internal/bookmakers"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"Empty input", "", ""},
		{"Whitespace only", "   ", ""},
		{"Lowercases", "SportsBet", "sportsbet"},
		{"Trims and lowercases", "  TAB  ", "tab"},
		{"Alias bet_right", "bet_right", "betright"},
		{"Alias betfair", "betfair", "betfair_ex_au"},
		{"Alias pointsbet", "pointsbet", "pointsbetau"},
		{"Alias sportsbet_au", "sportsbet_au", "sportsbet"},
		{"Alias unibet_au", "unibet_au", "unibet"},
		{"Alias tab_au", "tab_au", "tab"},
		{"Unknown key passes through", "somebook", "somebook"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bookmakers.Normalize(tt.key)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.key, got, tt.want)
			}

			// Normalizing a normalized key must be a no-op
			if again := bookmakers.Normalize(got); again != got {
				t.Errorf("Normalize not idempotent: Normalize(%q) = %q", got, again)
			}
		})
	}
}

func TestResolve_KnownBookmaker(t *testing.T) {
	meta := bookmakers.Resolve("tab", "")

	if meta.Key != "tab" {
		t.Errorf("expected key 'tab', got %q", meta.Key)
	}
	if meta.Name != "TAB" {
		t.Errorf("expected name 'TAB', got %q", meta.Name)
	}
	if meta.URL == nil || *meta.URL != "https://www.tab.com.au/" {
		t.Errorf("expected TAB URL, got %v", meta.URL)
	}
}

func TestResolve_AliasResolvesToCanonical(t *testing.T) {
	meta := bookmakers.Resolve("betfair", "Betfair Exchange")

	if meta.Key != "betfair_ex_au" {
		t.Errorf("expected key 'betfair_ex_au', got %q", meta.Key)
	}
	if meta.Name != "Betfair" {
		t.Errorf("expected canonical name 'Betfair', got %q", meta.Name)
	}
	if meta.URL == nil || *meta.URL != "https://www.betfair.com.au/exchange/" {
		t.Errorf("expected Betfair URL, got %v", meta.URL)
	}
}

func TestResolve_UnknownBookmaker(t *testing.T) {
	meta := bookmakers.Resolve("unknownkey", "Some Title")

	if meta.Key != "unknownkey" {
		t.Errorf("expected key 'unknownkey', got %q", meta.Key)
	}
	if meta.Name != "Some Title" {
		t.Errorf("expected title fallback 'Some Title', got %q", meta.Name)
	}
	if meta.URL != nil {
		t.Errorf("expected no URL for unknown key, got %v", *meta.URL)
	}
}

func TestResolve_FallbackToRawKey(t *testing.T) {
	meta := bookmakers.Resolve("mysterybook", "")

	if meta.Name != "mysterybook" {
		t.Errorf("expected raw key fallback, got %q", meta.Name)
	}
}

func TestResolve_EmptyInput(t *testing.T) {
	meta := bookmakers.Resolve("", "")

	if meta.Key != "" || meta.Name != "" || meta.URL != nil {
		t.Errorf("expected fully empty meta, got %+v", meta)
	}
}
