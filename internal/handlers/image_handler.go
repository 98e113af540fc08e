package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
	"fyyur/internal/services"
)

const maxImageSize = 10 << 20 // 10MB

var errNotAnImage = errors.New("uploaded file is not an image")

// ImageHandler uploads venue and artist pictures and stores their URL in
// image_link.
type ImageHandler struct {
	*BaseHandler
	images  services.ImageStore
	venues  interfaces.VenueRepository
	artists interfaces.ArtistRepository
}

func NewImageHandler(base *BaseHandler, images services.ImageStore, venues interfaces.VenueRepository, artists interfaces.ArtistRepository) *ImageHandler {
	return &ImageHandler{
		BaseHandler: base,
		images:      images,
		venues:      venues,
		artists:     artists,
	}
}

func (h *ImageHandler) UploadVenueImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	venue, err := h.venues.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	failed := "An error occurred. Image for venue " + venue.Name + " could not be uploaded."
	link, err := h.upload(w, r, "venues")
	if err != nil {
		log.Printf("Image for venue %d was not uploaded: %v", id, err)
		h.redirect(w, r, venueURL(id), failed)
		return
	}

	if err := h.venues.Update(r.Context(), id, &models.UpdateVenueRequest{ImageLink: &link}); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		log.Printf("Image link for venue %d was not saved: %v", id, err)
		h.redirect(w, r, venueURL(id), failed)
		return
	}
	h.redirect(w, r, venueURL(id), "Image for venue "+venue.Name+" was successfully uploaded!")
}

func (h *ImageHandler) UploadArtistImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	artist, err := h.artists.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	failed := "An error occurred. Image for artist " + artist.Name + " could not be uploaded."
	link, err := h.upload(w, r, "artists")
	if err != nil {
		log.Printf("Image for artist %d was not uploaded: %v", id, err)
		h.redirect(w, r, artistURL(id), failed)
		return
	}

	if err := h.artists.Update(r.Context(), id, &models.UpdateArtistRequest{ImageLink: &link}); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		log.Printf("Image link for artist %d was not saved: %v", id, err)
		h.redirect(w, r, artistURL(id), failed)
		return
	}
	h.redirect(w, r, artistURL(id), "Image for artist "+artist.Name+" was successfully uploaded!")
}

// upload stores the multipart "image" file and returns its URL.
func (h *ImageHandler) upload(w http.ResponseWriter, r *http.Request, folder string) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1<<20)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		return "", fmt.Errorf("parse form: %w", err)
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", errNotAnImage
	}

	return h.images.Upload(r.Context(), folder, header.Filename, contentType, file)
}
