// Package memstore is an in-memory implementation of the venue, artist and
// show repositories. Ids are assigned from per-table counters and never
// reused. Each mutation is applied under the store lock, so it either
// happens completely or not at all.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

type Store struct {
	mu sync.RWMutex

	venues  map[int]models.Venue
	artists map[int]models.Artist
	shows   map[int]models.Show

	lastVenueID  int
	lastArtistID int
	lastShowID   int

	now func() time.Time
}

func New() *Store {
	return &Store{
		venues:  make(map[int]models.Venue),
		artists: make(map[int]models.Artist),
		shows:   make(map[int]models.Show),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Venues() interfaces.VenueRepository   { return &venueStore{s} }
func (s *Store) Artists() interfaces.ArtistRepository { return &artistStore{s} }
func (s *Store) Shows() interfaces.ShowRepository     { return &showStore{s} }

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func containsFold(name, term string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Venues

type venueStore struct{ s *Store }

func (r *venueStore) Create(ctx context.Context, venue *models.Venue) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("create venue: %w: %w", interfaces.ErrStorage, err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastVenueID++
	now := r.s.now()
	venue.ID = r.s.lastVenueID
	venue.Genres = cloneStrings(venue.Genres)
	venue.CreatedAt = now
	venue.UpdatedAt = now

	stored := *venue
	stored.Genres = cloneStrings(venue.Genres)
	r.s.venues[venue.ID] = stored
	return nil
}

func (r *venueStore) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	venue, ok := r.s.venues[id]
	if !ok {
		return nil, fmt.Errorf("get venue: %w", interfaces.ErrNotFound)
	}
	venue.Genres = cloneStrings(venue.Genres)
	return &venue, nil
}

func (r *venueStore) List(ctx context.Context, filter interfaces.VenueFilter) ([]models.Venue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	venues := []models.Venue{}
	for _, id := range sortedIDs(r.s.venues) {
		venue := r.s.venues[id]
		if filter.City != "" && venue.City != filter.City {
			continue
		}
		if filter.State != "" && venue.State != filter.State {
			continue
		}
		venue.Genres = cloneStrings(venue.Genres)
		venues = append(venues, venue)
	}

	switch filter.OrderBy {
	case "", "id":
	case "name":
		sort.SliceStable(venues, func(i, j int) bool { return venues[i].Name < venues[j].Name })
	default:
		return nil, fmt.Errorf("list venues: unsupported order %q", filter.OrderBy)
	}
	return venues, nil
}

func (r *venueStore) Search(ctx context.Context, term string) ([]models.Venue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	venues := []models.Venue{}
	for _, id := range sortedIDs(r.s.venues) {
		venue := r.s.venues[id]
		if containsFold(venue.Name, term) {
			venue.Genres = cloneStrings(venue.Genres)
			venues = append(venues, venue)
		}
	}
	return venues, nil
}

func (r *venueStore) Update(ctx context.Context, id int, req *models.UpdateVenueRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	venue, ok := r.s.venues[id]
	if !ok {
		return fmt.Errorf("update venue: %w", interfaces.ErrNotFound)
	}
	req.Apply(&venue)
	venue.UpdatedAt = r.s.now()
	r.s.venues[id] = venue
	return nil
}

// Distinct returns values in order of first appearance by id.
func (r *venueStore) Distinct(ctx context.Context, column string) ([]string, error) {
	var pick func(models.Venue) string
	switch column {
	case "city":
		pick = func(v models.Venue) string { return v.City }
	case "state":
		pick = func(v models.Venue) string { return v.State }
	default:
		return nil, fmt.Errorf("distinct venues: unsupported column %q", column)
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := make(map[string]bool)
	var values []string
	for _, id := range sortedIDs(r.s.venues) {
		value := pick(r.s.venues[id])
		if !seen[value] {
			seen[value] = true
			values = append(values, value)
		}
	}
	return values, nil
}

// Artists

type artistStore struct{ s *Store }

func (r *artistStore) Create(ctx context.Context, artist *models.Artist) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("create artist: %w: %w", interfaces.ErrStorage, err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastArtistID++
	now := r.s.now()
	artist.ID = r.s.lastArtistID
	artist.Genres = cloneStrings(artist.Genres)
	artist.CreatedAt = now
	artist.UpdatedAt = now

	stored := *artist
	stored.Genres = cloneStrings(artist.Genres)
	r.s.artists[artist.ID] = stored
	return nil
}

func (r *artistStore) GetByID(ctx context.Context, id int) (*models.Artist, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	artist, ok := r.s.artists[id]
	if !ok {
		return nil, fmt.Errorf("get artist: %w", interfaces.ErrNotFound)
	}
	artist.Genres = cloneStrings(artist.Genres)
	return &artist, nil
}

func (r *artistStore) List(ctx context.Context, filter interfaces.ArtistFilter) ([]models.Artist, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	artists := []models.Artist{}
	for _, id := range sortedIDs(r.s.artists) {
		artist := r.s.artists[id]
		if filter.City != "" && artist.City != filter.City {
			continue
		}
		if filter.State != "" && artist.State != filter.State {
			continue
		}
		artist.Genres = cloneStrings(artist.Genres)
		artists = append(artists, artist)
	}

	switch filter.OrderBy {
	case "", "id":
	case "name":
		sort.SliceStable(artists, func(i, j int) bool { return artists[i].Name < artists[j].Name })
	default:
		return nil, fmt.Errorf("list artists: unsupported order %q", filter.OrderBy)
	}
	return artists, nil
}

func (r *artistStore) Search(ctx context.Context, term string) ([]models.Artist, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	artists := []models.Artist{}
	for _, id := range sortedIDs(r.s.artists) {
		artist := r.s.artists[id]
		if containsFold(artist.Name, term) {
			artist.Genres = cloneStrings(artist.Genres)
			artists = append(artists, artist)
		}
	}
	return artists, nil
}

func (r *artistStore) Update(ctx context.Context, id int, req *models.UpdateArtistRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	artist, ok := r.s.artists[id]
	if !ok {
		return fmt.Errorf("update artist: %w", interfaces.ErrNotFound)
	}
	req.Apply(&artist)
	artist.UpdatedAt = r.s.now()
	r.s.artists[id] = artist
	return nil
}

// Shows

type showStore struct{ s *Store }

func (r *showStore) Create(ctx context.Context, show *models.Show) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("create show: %w: %w", interfaces.ErrStorage, err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.venues[show.VenueID]; !ok {
		return fmt.Errorf("create show: %w: venue %d does not exist", interfaces.ErrConflict, show.VenueID)
	}
	if _, ok := r.s.artists[show.ArtistID]; !ok {
		return fmt.Errorf("create show: %w: artist %d does not exist", interfaces.ErrConflict, show.ArtistID)
	}

	r.s.lastShowID++
	show.ID = r.s.lastShowID
	show.CreatedAt = r.s.now()
	r.s.shows[show.ID] = *show
	return nil
}

func (r *showStore) List(ctx context.Context, filter interfaces.ShowFilter) ([]models.ShowListing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	listings := []models.ShowListing{}
	for _, id := range sortedIDs(r.s.shows) {
		show := r.s.shows[id]
		if !matches(show, filter) {
			continue
		}
		venue := r.s.venues[show.VenueID]
		artist := r.s.artists[show.ArtistID]
		listings = append(listings, models.ShowListing{
			ID:              show.ID,
			VenueID:         venue.ID,
			VenueName:       venue.Name,
			VenueImageLink:  venue.ImageLink,
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       show.StartTime,
		})
		if filter.Limit > 0 && len(listings) == filter.Limit {
			break
		}
	}
	return listings, nil
}

func (r *showStore) Count(ctx context.Context, filter interfaces.ShowFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, show := range r.s.shows {
		if matches(show, filter) {
			count++
		}
	}
	return count, nil
}

func matches(show models.Show, filter interfaces.ShowFilter) bool {
	if filter.VenueID != 0 && show.VenueID != filter.VenueID {
		return false
	}
	if filter.ArtistID != 0 && show.ArtistID != filter.ArtistID {
		return false
	}
	return true
}
