package interfaces

import (
	"context"

	"fyyur/internal/models"
)

// VenueFilter narrows List. Empty fields do not filter. OrderBy is "id"
// (default) or "name".
type VenueFilter struct {
	City    string
	State   string
	OrderBy string
}

// VenueRepository defines the interface for venue data operations
type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id int) (*models.Venue, error)
	List(ctx context.Context, filter VenueFilter) ([]models.Venue, error)
	// Search matches name case-insensitively against term as a substring,
	// in id order. An empty term matches every venue.
	Search(ctx context.Context, term string) ([]models.Venue, error)
	Update(ctx context.Context, id int, req *models.UpdateVenueRequest) error
	// Distinct returns the distinct values of column ("city" or "state").
	Distinct(ctx context.Context, column string) ([]string, error)
}
