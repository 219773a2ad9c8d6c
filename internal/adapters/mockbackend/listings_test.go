package mockbackend

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/adapters/apiclient"
)

func newTestBackend() *Backend {
	return New(Config{}) // без искусственной задержки
}

func searchListings(t *testing.T, b *Backend, params map[string]any) []listingRecord {
	t.Helper()

	data, err := b.Respond(context.Background(), "/listings", apiclient.RequestOptions{Params: params})
	if err != nil {
		t.Fatalf("Respond(/listings) error = %v", err)
	}

	var page struct {
		Listings []listingRecord `json:"listings"`
		Total    int             `json:"total"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		t.Fatalf("unmarshal listings: %v", err)
	}
	if page.Total != len(page.Listings) {
		t.Errorf("total = %d; want %d", page.Total, len(page.Listings))
	}
	return page.Listings
}

func TestListingsNoFilters(t *testing.T) {
	listings := searchListings(t, newTestBackend(), nil)
	if len(listings) != 6 {
		t.Fatalf("got %d listings; want 6", len(listings))
	}
}

func TestListingsSearchByCity(t *testing.T) {
	listings := searchListings(t, newTestBackend(), map[string]any{"search": "cluj"})
	if len(listings) != 1 {
		t.Fatalf("got %d listings; want 1", len(listings))
	}
	if listings[0].Location != "Cluj-Napoca" {
		t.Errorf("Location = %q; want Cluj-Napoca", listings[0].Location)
	}
}

// Поиск не должен зависеть от диакритики: "brasov" находит "Brașov"
func TestListingsSearchIgnoresDiacritics(t *testing.T) {
	listings := searchListings(t, newTestBackend(), map[string]any{"search": "brasov"})
	if len(listings) != 1 {
		t.Fatalf("got %d listings; want 1", len(listings))
	}
	if listings[0].Location != "Brașov" {
		t.Errorf("Location = %q; want Brașov", listings[0].Location)
	}
}

func TestListingsSearchByDescription(t *testing.T) {
	listings := searchListings(t, newTestBackend(), map[string]any{"search": "mobilat"})
	if len(listings) != 1 {
		t.Fatalf("got %d listings; want 1", len(listings))
	}
	if listings[0].ID != 2 {
		t.Errorf("ID = %d; want 2", listings[0].ID)
	}
}

func TestListingsTypeFilters(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]any
		want     int
		wantType string
	}{
		{"for rent only", map[string]any{"forRent": true}, 5, "rent"},
		{"for sale only", map[string]any{"forSale": true}, 1, "sale"},
		{"both flags keep everything", map[string]any{"forRent": true, "forSale": true}, 6, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listings := searchListings(t, newTestBackend(), tt.params)
			if len(listings) != tt.want {
				t.Fatalf("got %d listings; want %d", len(listings), tt.want)
			}
			if tt.wantType != "" {
				for _, l := range listings {
					if l.Type != tt.wantType {
						t.Errorf("listing %d type = %q; want %q", l.ID, l.Type, tt.wantType)
					}
				}
			}
		})
	}
}

func TestListingsTwoPlusRooms(t *testing.T) {
	listings := searchListings(t, newTestBackend(), map[string]any{"twoPlusRooms": true})
	if len(listings) != 5 {
		t.Fatalf("got %d listings; want 5", len(listings))
	}
	for _, l := range listings {
		if l.Rooms < 2 {
			t.Errorf("listing %d has %d rooms; filter must exclude it", l.ID, l.Rooms)
		}
	}
}

func TestListingsCombinedFilters(t *testing.T) {
	listings := searchListings(t, newTestBackend(), map[string]any{
		"search":       "apartament",
		"forRent":      true,
		"twoPlusRooms": true,
	})
	// аренда + минимум 2 комнаты + "apartament" в описании: 1, 3, 5, 6
	if len(listings) != 4 {
		t.Fatalf("got %d listings; want 4", len(listings))
	}
}

func TestStats(t *testing.T) {
	data, err := newTestBackend().Respond(context.Background(), "/stats", apiclient.RequestOptions{})
	if err != nil {
		t.Fatalf("Respond(/stats) error = %v", err)
	}

	var stats struct {
		TotalListings     int `json:"totalListings"`
		VerifiedLandlords int `json:"verifiedLandlords"`
		ActiveUsers       int `json:"activeUsers"`
	}
	if err := json.Unmarshal(data, &stats); err != nil {
		t.Fatalf("unmarshal stats: %v", err)
	}
	if stats.TotalListings != 1250 || stats.VerifiedLandlords != 340 || stats.ActiveUsers != 5200 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestUnknownEndpointReturnsEmptyObject(t *testing.T) {
	data, err := newTestBackend().Respond(context.Background(), "/does-not-exist", apiclient.RequestOptions{})
	if err != nil {
		t.Fatalf("Respond error = %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("body = %s; want {}", data)
	}
}

func TestRespondHonoursCancelledContext(t *testing.T) {
	b := New(Config{Delay: 300 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := b.Respond(ctx, "/stats", apiclient.RequestOptions{}); err == nil {
		t.Fatal("Respond() = nil error; want context error during delay")
	}
}
