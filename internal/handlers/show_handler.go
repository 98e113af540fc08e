package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

const (
	showListedFlash    = "Show was successfully listed!"
	showNotListedFlash = "An error occurred. Show could not be listed."
)

type ShowHandler struct {
	*BaseHandler
	shows   interfaces.ShowRepository
	venues  interfaces.VenueRepository
	artists interfaces.ArtistRepository
	now     func() time.Time
}

func NewShowHandler(base *BaseHandler, shows interfaces.ShowRepository, venues interfaces.VenueRepository, artists interfaces.ArtistRepository) *ShowHandler {
	return &ShowHandler{
		BaseHandler: base,
		shows:       shows,
		venues:      venues,
		artists:     artists,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (h *ShowHandler) List(w http.ResponseWriter, r *http.Request) {
	shows, err := h.shows.List(r.Context(), interfaces.ShowFilter{})
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "pages/shows.html", map[string]any{"shows": shows})
}

func (h *ShowHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "forms/new_show.html", map[string]any{
		"form": models.CreateShowRequest{StartTime: h.now()},
	})
}

// Create lists a show. Undecodable or invalid input renders the form again
// with 400. A rolled back write is reported as a flash on the home page.
func (h *ShowHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	req, errs := decodeCreateShow(form, h.now())
	if len(errs) == 0 {
		if err := h.Validator.Struct(req); err != nil {
			errs = fieldErrors(err)
		}
	}
	if len(errs) > 0 {
		h.render(w, r, http.StatusBadRequest, "forms/new_show.html", map[string]any{
			"form":   req,
			"errors": errs,
		}, "Show could not be listed. Please correct the highlighted fields.")
		return
	}

	if _, err := h.venues.GetByID(r.Context(), req.VenueID); err != nil {
		h.showLookupFailed(w, r, err)
		return
	}
	if _, err := h.artists.GetByID(r.Context(), req.ArtistID); err != nil {
		h.showLookupFailed(w, r, err)
		return
	}

	if err := h.shows.Create(r.Context(), req.Show()); err != nil {
		if !interfaces.IsPersistenceError(err) {
			h.serverError(w, r, err)
			return
		}
		log.Printf("Show (venue %d, artist %d) was not listed: %v", req.VenueID, req.ArtistID, err)
		h.render(w, r, http.StatusOK, "pages/home.html", nil, showNotListedFlash)
		return
	}
	h.render(w, r, http.StatusOK, "pages/home.html", nil, showListedFlash)
}

// showLookupFailed answers 404 for an unknown venue or artist and the
// failure notice for anything else.
func (h *ShowHandler) showLookupFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, interfaces.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	log.Printf("Show was not listed: %v", err)
	h.render(w, r, http.StatusOK, "pages/home.html", nil, showNotListedFlash)
}
