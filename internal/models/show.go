package models

import "time"

// EntityKind names a show-owning entity.
type EntityKind string

const (
	KindVenue  EntityKind = "venue"
	KindArtist EntityKind = "artist"
)

type Show struct {
	ID        int       `json:"id" db:"id"`
	VenueID   int       `json:"venue_id" db:"venue_id"`
	ArtistID  int       `json:"artist_id" db:"artist_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ShowListing is a show joined with the names and images of its venue and artist.
type ShowListing struct {
	ID              int       `json:"id"`
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

type CreateShowRequest struct {
	VenueID   int       `json:"venue_id" form:"venue_id" validate:"required,gt=0"`
	ArtistID  int       `json:"artist_id" form:"artist_id" validate:"required,gt=0"`
	StartTime time.Time `json:"start_time" form:"start_time" validate:"required"`
}

func (req *CreateShowRequest) Show() *Show {
	return &Show{
		VenueID:   req.VenueID,
		ArtistID:  req.ArtistID,
		StartTime: req.StartTime.UTC(),
	}
}
