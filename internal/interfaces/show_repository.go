package interfaces

import (
	"context"

	"fyyur/internal/models"
)

// ShowFilter selects shows by venue and/or artist. Zero ids do not filter;
// Limit <= 0 means no limit.
type ShowFilter struct {
	VenueID  int
	ArtistID int
	Limit    int
}

// ShowRepository defines the interface for show data operations
type ShowRepository interface {
	// Create fails with ErrConflict when the venue or artist does not exist.
	Create(ctx context.Context, show *models.Show) error
	List(ctx context.Context, filter ShowFilter) ([]models.ShowListing, error)
	Count(ctx context.Context, filter ShowFilter) (int, error)
}
