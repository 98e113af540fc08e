package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/repository/memstore"
)

func newServices(s *memstore.Store) (*SearchService, *AggregationService) {
	aggregate := NewAggregationService(s.Venues(), s.Artists(), s.Shows())
	return NewSearchService(s.Venues(), s.Artists(), aggregate), aggregate
}

func addArtist(t *testing.T, s *memstore.Store, name string) int {
	t.Helper()
	artist := &models.Artist{Name: name, City: "San Francisco", State: "CA"}
	if err := s.Artists().Create(context.Background(), artist); err != nil {
		t.Fatalf("create artist: %v", err)
	}
	return artist.ID
}

func addVenue(t *testing.T, s *memstore.Store, name, city, state string) int {
	t.Helper()
	venue := &models.Venue{Name: name, City: city, State: state}
	if err := s.Venues().Create(context.Background(), venue); err != nil {
		t.Fatalf("create venue: %v", err)
	}
	return venue.ID
}

func addShow(t *testing.T, s *memstore.Store, venueID, artistID int, start time.Time) {
	t.Helper()
	if err := s.Shows().Create(context.Background(), &models.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}); err != nil {
		t.Fatalf("create show: %v", err)
	}
}

func TestSearchArtistsForBand(t *testing.T) {
	s := memstore.New()
	for _, name := range []string{"Guns N Petals", "Matt Quevado", "The Wild Sax Band"} {
		addArtist(t, s, name)
	}
	search, _ := newServices(s)

	result, err := search.Artists(context.Background(), "band")
	if err != nil {
		t.Fatalf("Artists: %v", err)
	}
	if result.Count != 1 || len(result.Data) != 1 {
		t.Fatalf("expected one hit, got %+v", result)
	}
	if result.Data[0].Name != "The Wild Sax Band" {
		t.Fatalf("unexpected hit %+v", result.Data[0])
	}
}

func TestSearchResultsContainTerm(t *testing.T) {
	s := memstore.New()
	names := []string{"The Musical Hop", "Park Square Live Music & Coffee", "The Dueling Pianos Bar", "Hop Scotch"}
	for _, name := range names {
		addVenue(t, s, name, "San Francisco", "CA")
	}
	search, _ := newServices(s)

	for _, term := range []string{"hop", "MUSIC", "bar", "zzz"} {
		result, err := search.Venues(context.Background(), term)
		if err != nil {
			t.Fatalf("Venues(%q): %v", term, err)
		}
		if result.Count != len(result.Data) {
			t.Fatalf("count %d does not match %d hits", result.Count, len(result.Data))
		}
		want := 0
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), strings.ToLower(term)) {
				want++
			}
		}
		if result.Count != want {
			t.Fatalf("term %q: expected %d hits, got %d", term, want, result.Count)
		}
		for _, item := range result.Data {
			if !strings.Contains(strings.ToLower(item.Name), strings.ToLower(term)) {
				t.Fatalf("term %q: hit %q does not contain term", term, item.Name)
			}
		}
	}
}

func TestEmptySearchTermMatchesEverything(t *testing.T) {
	s := memstore.New()
	addArtist(t, s, "A")
	addArtist(t, s, "B")
	search, _ := newServices(s)

	result, err := search.Artists(context.Background(), "")
	if err != nil {
		t.Fatalf("Artists: %v", err)
	}
	if result.Count != 2 {
		t.Fatalf("expected 2 hits, got %d", result.Count)
	}
}

func TestSearchCountsAllShows(t *testing.T) {
	s := memstore.New()
	venueID := addVenue(t, s, "The Musical Hop", "San Francisco", "CA")
	artistID := addArtist(t, s, "Guns N Petals")
	addShow(t, s, venueID, artistID, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC))
	addShow(t, s, venueID, artistID, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC))
	search, _ := newServices(s)

	result, err := search.Venues(context.Background(), "hop")
	if err != nil {
		t.Fatalf("Venues: %v", err)
	}
	if result.Data[0].NumUpcomingShows != 2 {
		t.Fatalf("expected past and future shows counted, got %d", result.Data[0].NumUpcomingShows)
	}
}
