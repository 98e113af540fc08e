package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

func seed(t *testing.T, s *Store) (venueID, artistID int) {
	t.Helper()
	ctx := context.Background()

	venue := &models.Venue{Name: "The Hall", City: "Austin", State: "TX", Genres: []string{"Jazz"}}
	if err := s.Venues().Create(ctx, venue); err != nil {
		t.Fatalf("create venue: %v", err)
	}
	artist := &models.Artist{Name: "The Band", City: "Austin", State: "TX"}
	if err := s.Artists().Create(ctx, artist); err != nil {
		t.Fatalf("create artist: %v", err)
	}
	return venue.ID, artist.ID
}

func TestIDsAreAssignedInOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		v := &models.Venue{Name: "V", City: "C", State: "S"}
		if err := s.Venues().Create(ctx, v); err != nil {
			t.Fatalf("create: %v", err)
		}
		if v.ID != i {
			t.Fatalf("expected id %d, got %d", i, v.ID)
		}
	}
}

func TestStoredGenresAreCopied(t *testing.T) {
	s := New()
	venueID, _ := seed(t, s)

	got, err := s.Venues().GetByID(context.Background(), venueID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	got.Genres[0] = "Changed"

	again, _ := s.Venues().GetByID(context.Background(), venueID)
	if again.Genres[0] != "Jazz" {
		t.Fatalf("stored genres were mutated: %v", again.Genres)
	}
}

func TestGetMissingIsNotFound(t *testing.T) {
	s := New()

	if _, err := s.Venues().GetByID(context.Background(), 999999); !errors.Is(err, interfaces.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Artists().GetByID(context.Background(), 1); !errors.Is(err, interfaces.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestShowRequiresExistingVenueAndArtist(t *testing.T) {
	s := New()
	venueID, artistID := seed(t, s)
	ctx := context.Background()

	err := s.Shows().Create(ctx, &models.Show{VenueID: 42, ArtistID: artistID, StartTime: time.Now()})
	if !errors.Is(err, interfaces.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	err = s.Shows().Create(ctx, &models.Show{VenueID: venueID, ArtistID: 42, StartTime: time.Now()})
	if !errors.Is(err, interfaces.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	count, _ := s.Shows().Count(ctx, interfaces.ShowFilter{})
	if count != 0 {
		t.Fatalf("failed creates must not store shows, got %d", count)
	}
}

func TestShowListJoinsNamesAndHonoursLimit(t *testing.T) {
	s := New()
	venueID, artistID := seed(t, s)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := s.Shows().Create(ctx, &models.Show{VenueID: venueID, ArtistID: artistID, StartTime: time.Now()}); err != nil {
			t.Fatalf("create show: %v", err)
		}
	}

	shows, err := s.Shows().List(ctx, interfaces.ShowFilter{VenueID: venueID, Limit: 3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(shows) != 3 {
		t.Fatalf("expected 3 shows, got %d", len(shows))
	}
	if shows[0].VenueName != "The Hall" || shows[0].ArtistName != "The Band" {
		t.Fatalf("unexpected listing %+v", shows[0])
	}
	if shows[0].ID != 1 || shows[2].ID != 3 {
		t.Fatalf("expected shows ordered by id, got %+v", shows)
	}

	count, _ := s.Shows().Count(ctx, interfaces.ShowFilter{ArtistID: artistID})
	if count != 5 {
		t.Fatalf("expected 5, got %d", count)
	}
}

func TestUpdateAppliesOnlySetFields(t *testing.T) {
	s := New()
	venueID, _ := seed(t, s)
	ctx := context.Background()

	phone := "555-0100"
	if err := s.Venues().Update(ctx, venueID, &models.UpdateVenueRequest{Phone: &phone}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	venue, _ := s.Venues().GetByID(ctx, venueID)
	if venue.Phone != phone || venue.Name != "The Hall" || len(venue.Genres) != 1 {
		t.Fatalf("unexpected venue after update %+v", venue)
	}

	if err := s.Venues().Update(ctx, 77, &models.UpdateVenueRequest{Phone: &phone}); !errors.Is(err, interfaces.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDistinctKeepsFirstAppearanceOrder(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, city := range []string{"Boston", "Austin", "Boston"} {
		if err := s.Venues().Create(ctx, &models.Venue{Name: "V", City: city, State: "S"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	cities, err := s.Venues().Distinct(ctx, "city")
	if err != nil {
		t.Fatalf("Distinct: %v", err)
	}
	if len(cities) != 2 || cities[0] != "Boston" || cities[1] != "Austin" {
		t.Fatalf("unexpected cities %v", cities)
	}

	if _, err := s.Venues().Distinct(ctx, "phone"); err == nil {
		t.Fatalf("expected error for unsupported column")
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	s := New()
	seed(t, s)

	artists, err := s.Artists().Search(context.Background(), "BAND")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(artists) != 1 {
		t.Fatalf("expected one match, got %d", len(artists))
	}
}

func TestCreateHonoursCancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Venues().Create(ctx, &models.Venue{Name: "V", City: "C", State: "S"})
	if !errors.Is(err, interfaces.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}
