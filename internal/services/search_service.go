package services

import (
	"context"
	"fmt"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

// ShowCounter reports how many shows reference an entity.
type ShowCounter interface {
	UpcomingShowCount(ctx context.Context, kind models.EntityKind, id int) (int, error)
}

// SearchService runs name searches and decorates each hit with its show count.
type SearchService struct {
	venues  interfaces.VenueRepository
	artists interfaces.ArtistRepository
	counter ShowCounter
}

func NewSearchService(venues interfaces.VenueRepository, artists interfaces.ArtistRepository, counter ShowCounter) *SearchService {
	return &SearchService{venues: venues, artists: artists, counter: counter}
}

func (s *SearchService) Venues(ctx context.Context, term string) (*models.SearchResult, error) {
	venues, err := s.venues.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}

	result := &models.SearchResult{Count: len(venues), Data: make([]models.SearchItem, 0, len(venues))}
	for _, venue := range venues {
		count, err := s.counter.UpcomingShowCount(ctx, models.KindVenue, venue.ID)
		if err != nil {
			return nil, fmt.Errorf("search venues: %w", err)
		}
		result.Data = append(result.Data, models.SearchItem{ID: venue.ID, Name: venue.Name, NumUpcomingShows: count})
	}
	return result, nil
}

func (s *SearchService) Artists(ctx context.Context, term string) (*models.SearchResult, error) {
	artists, err := s.artists.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}

	result := &models.SearchResult{Count: len(artists), Data: make([]models.SearchItem, 0, len(artists))}
	for _, artist := range artists {
		count, err := s.counter.UpcomingShowCount(ctx, models.KindArtist, artist.ID)
		if err != nil {
			return nil, fmt.Errorf("search artists: %w", err)
		}
		result.Data = append(result.Data, models.SearchItem{ID: artist.ID, Name: artist.Name, NumUpcomingShows: count})
	}
	return result, nil
}
