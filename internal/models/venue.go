package models

import "time"

type Venue struct {
	ID                 int       `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	City               string    `json:"city" db:"city"`
	State              string    `json:"state" db:"state"`
	Address            string    `json:"address" db:"address"`
	Phone              string    `json:"phone" db:"phone"`
	Genres             []string  `json:"genres" db:"genres"`
	ImageLink          string    `json:"image_link" db:"image_link"`
	FacebookLink       string    `json:"facebook_link" db:"facebook_link"`
	Website            string    `json:"website" db:"website"`
	SeekingTalent      bool      `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description" db:"seeking_description"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// CreateVenueRequest is the submitted venue creation form.
type CreateVenueRequest struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,max=120"`
	Address            string   `json:"address" form:"address" validate:"omitempty,max=120"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,max=120"`
	Genres             []string `json:"genres" form:"genres" validate:"dive,required,max=120"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `json:"website" form:"website" validate:"omitempty,url,max=500"`
	SeekingTalent      bool     `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"omitempty,max=500"`
}

// Venue builds the record to persist. Genres is never nil.
func (req *CreateVenueRequest) Venue() *Venue {
	genres := req.Genres
	if genres == nil {
		genres = []string{}
	}
	return &Venue{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Address:            req.Address,
		Phone:              req.Phone,
		Genres:             genres,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		Website:            req.Website,
		SeekingTalent:      req.SeekingTalent,
		SeekingDescription: req.SeekingDescription,
	}
}

// UpdateVenueRequest overwrites only the fields that are set.
type UpdateVenueRequest struct {
	Name               *string   `json:"name,omitempty" form:"name" validate:"omitnil,min=1,max=255"`
	City               *string   `json:"city,omitempty" form:"city" validate:"omitnil,min=1,max=120"`
	State              *string   `json:"state,omitempty" form:"state" validate:"omitnil,min=1,max=120"`
	Address            *string   `json:"address,omitempty" form:"address" validate:"omitnil,max=120"`
	Phone              *string   `json:"phone,omitempty" form:"phone" validate:"omitnil,max=120"`
	Genres             *[]string `json:"genres,omitempty" form:"genres" validate:"omitnil,dive,required,max=120"`
	ImageLink          *string   `json:"image_link,omitempty" form:"image_link" validate:"omitnil,eq=|url,max=500"`
	FacebookLink       *string   `json:"facebook_link,omitempty" form:"facebook_link" validate:"omitnil,eq=|url,max=120"`
	Website            *string   `json:"website,omitempty" form:"website" validate:"omitnil,eq=|url,max=500"`
	SeekingTalent      *bool     `json:"seeking_talent,omitempty" form:"seeking_talent"`
	SeekingDescription *string   `json:"seeking_description,omitempty" form:"seeking_description" validate:"omitnil,max=500"`
}

// Apply copies the set fields onto v.
func (req *UpdateVenueRequest) Apply(v *Venue) {
	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.City != nil {
		v.City = *req.City
	}
	if req.State != nil {
		v.State = *req.State
	}
	if req.Address != nil {
		v.Address = *req.Address
	}
	if req.Phone != nil {
		v.Phone = *req.Phone
	}
	if req.Genres != nil {
		v.Genres = append([]string{}, (*req.Genres)...)
	}
	if req.ImageLink != nil {
		v.ImageLink = *req.ImageLink
	}
	if req.FacebookLink != nil {
		v.FacebookLink = *req.FacebookLink
	}
	if req.Website != nil {
		v.Website = *req.Website
	}
	if req.SeekingTalent != nil {
		v.SeekingTalent = *req.SeekingTalent
	}
	if req.SeekingDescription != nil {
		v.SeekingDescription = *req.SeekingDescription
	}
}

// VenueSummary is the {id, name} pair used in city listings.
type VenueSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CityArea groups the venues of one city.
type CityArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueDetail is the venue page payload.
type VenueDetail struct {
	Venue
	PastShows          []ShowListing `json:"past_shows"`
	UpcomingShows      []ShowListing `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}
