package interfaces

import (
	"context"

	"fyyur/internal/models"
)

type ArtistFilter struct {
	City    string
	State   string
	OrderBy string
}

// ArtistRepository defines the interface for artist data operations
type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	GetByID(ctx context.Context, id int) (*models.Artist, error)
	List(ctx context.Context, filter ArtistFilter) ([]models.Artist, error)
	Search(ctx context.Context, term string) ([]models.Artist, error)
	Update(ctx context.Context, id int, req *models.UpdateArtistRequest) error
}
