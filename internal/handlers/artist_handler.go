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

type ArtistHandler struct {
	*BaseHandler
	repo      interfaces.ArtistRepository
	search    *services.SearchService
	aggregate *services.AggregationService
}

func NewArtistHandler(base *BaseHandler, repo interfaces.ArtistRepository, search *services.SearchService, aggregate *services.AggregationService) *ArtistHandler {
	return &ArtistHandler{
		BaseHandler: base,
		repo:        repo,
		search:      search,
		aggregate:   aggregate,
	}
}

func artistURL(id int) string {
	return fmt.Sprintf("/artists/%d", id)
}

func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.repo.List(r.Context(), interfaces.ArtistFilter{})
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	summaries := make([]models.ArtistSummary, 0, len(artists))
	for _, artist := range artists {
		summaries = append(summaries, models.ArtistSummary{ID: artist.ID, Name: artist.Name})
	}
	h.render(w, r, http.StatusOK, "pages/artists.html", map[string]any{"artists": summaries})
}

func (h *ArtistHandler) Search(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	term := searchTerm(form)
	results, err := h.search.Artists(r.Context(), term)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/search_artists.html", map[string]any{
		"results":     results,
		"search_term": term,
	})
}

func (h *ArtistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	artist, err := h.aggregate.ArtistDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/show_artist.html", map[string]any{"artist": artist})
}

func (h *ArtistHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "forms/new_artist.html", map[string]any{
		"form": models.CreateArtistRequest{Genres: []string{}},
	})
}

// Create lists an artist. Validation failures render the form again with
// 400; a rolled back write is flashed on the home page.
func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	req, err := decodeCreateArtist(form)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		h.render(w, r, http.StatusBadRequest, "forms/new_artist.html", map[string]any{
			"form":   req,
			"errors": fieldErrors(err),
		}, "Artist "+req.Name+" could not be listed. Please correct the highlighted fields.")
		return
	}

	artist := req.Artist()
	if err := h.repo.Create(r.Context(), artist); err != nil {
		if !interfaces.IsPersistenceError(err) {
			h.serverError(w, r, err)
			return
		}
		log.Printf("Artist %q was not listed: %v", req.Name, err)
		h.render(w, r, http.StatusOK, "pages/home.html", nil,
			"An error occurred. Artist "+req.Name+" could not be listed.")
		return
	}

	h.render(w, r, http.StatusOK, "pages/home.html", nil,
		"Artist "+artist.Name+" was successfully listed!")
}

func (h *ArtistHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	artist, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "forms/edit_artist.html", map[string]any{
		"form":   artistForm(artist),
		"artist": artist,
	})
}

func (h *ArtistHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	artist, err := h.repo.GetByID(r.Context(), id)
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

	req, err := decodeUpdateArtist(form)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		h.render(w, r, http.StatusBadRequest, "forms/edit_artist.html", map[string]any{
			"form":   artistForm(artist),
			"artist": artist,
			"errors": fieldErrors(err),
		}, "Artist "+artist.Name+" could not be edited. Please correct the highlighted fields.")
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
		log.Printf("Artist %d was not edited: %v", id, err)
		h.redirect(w, r, artistURL(id), "An error occurred. Artist "+artist.Name+" could not be edited.")
		return
	}

	name := artist.Name
	if req.Name != nil {
		name = *req.Name
	}
	h.redirect(w, r, artistURL(id), "Artist "+name+" was successfully edited!")
}

func artistForm(a *models.Artist) models.CreateArtistRequest {
	return models.CreateArtistRequest{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}
