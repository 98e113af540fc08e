package services

import (
	"context"
	"fmt"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

// DetailShowLimit caps the shows listed on a venue or artist page.
const DetailShowLimit = 3

// AggregationService builds the grouped and joined views over the store.
type AggregationService struct {
	venues  interfaces.VenueRepository
	artists interfaces.ArtistRepository
	shows   interfaces.ShowRepository
}

func NewAggregationService(venues interfaces.VenueRepository, artists interfaces.ArtistRepository, shows interfaces.ShowRepository) *AggregationService {
	return &AggregationService{venues: venues, artists: artists, shows: shows}
}

// VenuesByCity returns one area per distinct venue city, in the store's
// distinct-value order, with the venues of that city ordered by name. The
// area's state is taken from the first venue in the group.
func (s *AggregationService) VenuesByCity(ctx context.Context) ([]models.CityArea, error) {
	cities, err := s.venues.Distinct(ctx, "city")
	if err != nil {
		return nil, fmt.Errorf("venues by city: %w", err)
	}

	areas := make([]models.CityArea, 0, len(cities))
	for _, city := range cities {
		venues, err := s.venues.List(ctx, interfaces.VenueFilter{City: city, OrderBy: "name"})
		if err != nil {
			return nil, fmt.Errorf("venues in %s: %w", city, err)
		}
		if len(venues) == 0 {
			continue
		}

		area := models.CityArea{
			City:   venues[0].City,
			State:  venues[0].State,
			Venues: make([]models.VenueSummary, 0, len(venues)),
		}
		for _, venue := range venues {
			area.Venues = append(area.Venues, models.VenueSummary{ID: venue.ID, Name: venue.Name})
		}
		areas = append(areas, area)
	}
	return areas, nil
}

// UpcomingShowCount counts the shows that reference the entity. It counts
// every show regardless of start time.
func (s *AggregationService) UpcomingShowCount(ctx context.Context, kind models.EntityKind, id int) (int, error) {
	var filter interfaces.ShowFilter
	switch kind {
	case models.KindVenue:
		filter.VenueID = id
	case models.KindArtist:
		filter.ArtistID = id
	default:
		return 0, fmt.Errorf("upcoming shows: unknown kind %q", kind)
	}
	return s.shows.Count(ctx, filter)
}

// VenueDetail loads a venue with up to DetailShowLimit of its shows. Shows
// are not split by start time: the same list is reported as past and
// upcoming.
func (s *AggregationService) VenueDetail(ctx context.Context, id int) (*models.VenueDetail, error) {
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.shows.List(ctx, interfaces.ShowFilter{VenueID: id, Limit: DetailShowLimit})
	if err != nil {
		return nil, fmt.Errorf("shows for venue %d: %w", id, err)
	}

	return &models.VenueDetail{
		Venue:              *venue,
		PastShows:          shows,
		UpcomingShows:      shows,
		PastShowsCount:     len(shows),
		UpcomingShowsCount: len(shows),
	}, nil
}

// ArtistDetail is VenueDetail for artists.
func (s *AggregationService) ArtistDetail(ctx context.Context, id int) (*models.ArtistDetail, error) {
	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.shows.List(ctx, interfaces.ShowFilter{ArtistID: id, Limit: DetailShowLimit})
	if err != nil {
		return nil, fmt.Errorf("shows for artist %d: %w", id, err)
	}

	return &models.ArtistDetail{
		Artist:             *artist,
		PastShows:          shows,
		UpcomingShows:      shows,
		PastShowsCount:     len(shows),
		UpcomingShowsCount: len(shows),
	}, nil
}
