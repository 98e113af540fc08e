package models

import "time"

type Artist struct {
	ID                 int       `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	City               string    `json:"city" db:"city"`
	State              string    `json:"state" db:"state"`
	Phone              string    `json:"phone" db:"phone"`
	Genres             []string  `json:"genres" db:"genres"`
	ImageLink          string    `json:"image_link" db:"image_link"`
	FacebookLink       string    `json:"facebook_link" db:"facebook_link"`
	Website            string    `json:"website" db:"website"`
	SeekingVenue       bool      `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description" db:"seeking_description"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

type CreateArtistRequest struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,max=120"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,max=120"`
	Genres             []string `json:"genres" form:"genres" validate:"dive,required,max=120"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `json:"website" form:"website" validate:"omitempty,url,max=500"`
	SeekingVenue       bool     `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"omitempty,max=500"`
}

func (req *CreateArtistRequest) Artist() *Artist {
	genres := req.Genres
	if genres == nil {
		genres = []string{}
	}
	return &Artist{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		Genres:             genres,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		Website:            req.Website,
		SeekingVenue:       req.SeekingVenue,
		SeekingDescription: req.SeekingDescription,
	}
}

type UpdateArtistRequest struct {
	Name               *string   `json:"name,omitempty" form:"name" validate:"omitnil,min=1,max=255"`
	City               *string   `json:"city,omitempty" form:"city" validate:"omitnil,min=1,max=120"`
	State              *string   `json:"state,omitempty" form:"state" validate:"omitnil,min=1,max=120"`
	Phone              *string   `json:"phone,omitempty" form:"phone" validate:"omitnil,max=120"`
	Genres             *[]string `json:"genres,omitempty" form:"genres" validate:"omitnil,dive,required,max=120"`
	ImageLink          *string   `json:"image_link,omitempty" form:"image_link" validate:"omitnil,eq=|url,max=500"`
	FacebookLink       *string   `json:"facebook_link,omitempty" form:"facebook_link" validate:"omitnil,eq=|url,max=120"`
	Website            *string   `json:"website,omitempty" form:"website" validate:"omitnil,eq=|url,max=500"`
	SeekingVenue       *bool     `json:"seeking_venue,omitempty" form:"seeking_venue"`
	SeekingDescription *string   `json:"seeking_description,omitempty" form:"seeking_description" validate:"omitnil,max=500"`
}

func (req *UpdateArtistRequest) Apply(a *Artist) {
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.City != nil {
		a.City = *req.City
	}
	if req.State != nil {
		a.State = *req.State
	}
	if req.Phone != nil {
		a.Phone = *req.Phone
	}
	if req.Genres != nil {
		a.Genres = append([]string{}, (*req.Genres)...)
	}
	if req.ImageLink != nil {
		a.ImageLink = *req.ImageLink
	}
	if req.FacebookLink != nil {
		a.FacebookLink = *req.FacebookLink
	}
	if req.Website != nil {
		a.Website = *req.Website
	}
	if req.SeekingVenue != nil {
		a.SeekingVenue = *req.SeekingVenue
	}
	if req.SeekingDescription != nil {
		a.SeekingDescription = *req.SeekingDescription
	}
}

type ArtistSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ArtistDetail is the artist page payload.
type ArtistDetail struct {
	Artist
	PastShows          []ShowListing `json:"past_shows"`
	UpcomingShows      []ShowListing `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}
