package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
	"fyyur/internal/services"
)

type VenueHandler struct {
	*BaseHandler
	repo      interfaces.VenueRepository
	search    *services.SearchService
	aggregate *services.AggregationService
}

func NewVenueHandler(base *BaseHandler, repo interfaces.VenueRepository, search *services.SearchService, aggregate *services.AggregationService) *VenueHandler {
	return &VenueHandler{
		BaseHandler: base,
		repo:        repo,
		search:      search,
		aggregate:   aggregate,
	}
}

func venueURL(id int) string {
	return fmt.Sprintf("/venues/%d", id)
}

// List renders venues grouped by city.
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	areas, err := h.aggregate.VenuesByCity(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/venues.html", map[string]any{"areas": areas})
}

func (h *VenueHandler) Search(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	term := searchTerm(form)
	results, err := h.search.Venues(r.Context(), term)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/search_venues.html", map[string]any{
		"results":     results,
		"search_term": term,
	})
}

func (h *VenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	venue, err := h.aggregate.VenueDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/show_venue.html", map[string]any{"venue": venue})
}

func (h *VenueHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "forms/new_venue.html", map[string]any{
		"form": models.CreateVenueRequest{Genres: []string{}},
	})
}

// Create lists a venue. A form that fails validation is rendered again with
// 400 and the field errors. A write the store rolled back is reported as a
// flash on the home page with 200.
func (h *VenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	req, err := decodeCreateVenue(form)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		h.render(w, r, http.StatusBadRequest, "forms/new_venue.html", map[string]any{
			"form":   req,
			"errors": fieldErrors(err),
		}, "Venue "+req.Name+" could not be listed. Please correct the highlighted fields.")
		return
	}

	venue := req.Venue()
	if err := h.repo.Create(r.Context(), venue); err != nil {
		if !interfaces.IsPersistenceError(err) {
			h.serverError(w, r, err)
			return
		}
		log.Printf("Venue %q was not listed: %v", req.Name, err)
		h.render(w, r, http.StatusOK, "pages/home.html", nil,
			"An error occurred. Venue "+req.Name+" could not be listed.")
		return
	}

	h.render(w, r, http.StatusOK, "pages/home.html", nil,
		"Venue "+venue.Name+" was successfully listed!")
}

// Delete is not supported yet.
func (h *VenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

func (h *VenueHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	venue, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "forms/edit_venue.html", map[string]any{
		"form":  venueForm(venue),
		"venue": venue,
	})
}

// Edit applies the submitted fields to a venue. Validation failures are
// rendered with 400 and rolled back writes redirect with a flash.
func (h *VenueHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	venue, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	form, err := parseForm(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	req, err := decodeUpdateVenue(form)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		h.render(w, r, http.StatusBadRequest, "forms/edit_venue.html", map[string]any{
			"form":   venueForm(venue),
			"venue":  venue,
			"errors": fieldErrors(err),
		}, "Venue "+venue.Name+" could not be edited. Please correct the highlighted fields.")
		return
	}

	if err := h.repo.Update(r.Context(), id, &req); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		if !interfaces.IsPersistenceError(err) {
			h.serverError(w, r, err)
			return
		}
		log.Printf("Venue %d was not edited: %v", id, err)
		h.redirect(w, r, venueURL(id), "An error occurred. Venue "+venue.Name+" could not be edited.")
		return
	}

	name := venue.Name
	if req.Name != nil {
		name = *req.Name
	}
	h.redirect(w, r, venueURL(id), "Venue "+name+" was successfully edited!")
}

// venueForm pre-fills the edit form from the stored record.
func venueForm(v *models.Venue) models.CreateVenueRequest {
	return models.CreateVenueRequest{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}
