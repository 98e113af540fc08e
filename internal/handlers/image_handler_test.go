package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"

	"fyyur/internal/models"
	"fyyur/internal/repository/memstore"
)

type fakeImageStore struct {
	folder string
	body   string
	err    error
}

func (f *fakeImageStore) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.folder = folder
	f.body = string(b)
	return "https://cdn.example.com/" + folder + "/" + filename, nil
}

func imageRequest(t *testing.T, target, filename, contentType, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	part.Write([]byte(content))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newImageRouter(images *fakeImageStore) (*chi.Mux, *memstore.Store) {
	s := memstore.New()
	h := NewImageHandler(NewBaseHandler(JSONRenderer{}), images, s.Venues(), s.Artists())
	r := chi.NewRouter()
	r.Post("/venues/{id}/image", h.UploadVenueImage)
	r.Post("/artists/{id}/image", h.UploadArtistImage)
	return r, s
}

func TestUploadVenueImageStoresLink(t *testing.T) {
	images := &fakeImageStore{}
	r, s := newImageRouter(images)
	if err := s.Venues().Create(context.Background(), &models.Venue{Name: "The Hall", City: "Austin", State: "TX"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, imageRequest(t, "/venues/1/image", "hall.png", "image/png", "png-bytes"))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d (%s)", w.Code, w.Body.String())
	}
	if images.folder != "venues" || images.body != "png-bytes" {
		t.Fatalf("unexpected upload %+v", images)
	}
	venue, _ := s.Venues().GetByID(context.Background(), 1)
	if venue.ImageLink != "https://cdn.example.com/venues/hall.png" {
		t.Fatalf("unexpected image link %q", venue.ImageLink)
	}
}

func TestUploadArtistImageRejectsNonImage(t *testing.T) {
	images := &fakeImageStore{}
	r, s := newImageRouter(images)
	if err := s.Artists().Create(context.Background(), &models.Artist{Name: "The Band", City: "Austin", State: "TX"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, imageRequest(t, "/artists/1/image", "notes.txt", "text/plain", "hello"))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d", w.Code)
	}
	if images.folder != "" {
		t.Fatalf("non-image must not be uploaded")
	}
	artist, _ := s.Artists().GetByID(context.Background(), 1)
	if artist.ImageLink != "" {
		t.Fatalf("image link must be unchanged, got %q", artist.ImageLink)
	}
}

func TestUploadImageStoreFailureKeepsLink(t *testing.T) {
	images := &fakeImageStore{err: errors.New("bucket unavailable")}
	r, s := newImageRouter(images)
	if err := s.Venues().Create(context.Background(), &models.Venue{Name: "The Hall", City: "Austin", State: "TX", ImageLink: "https://old"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, imageRequest(t, "/venues/1/image", "hall.png", "image/png", "png-bytes"))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d", w.Code)
	}
	venue, _ := s.Venues().GetByID(context.Background(), 1)
	if venue.ImageLink != "https://old" {
		t.Fatalf("image link must be unchanged, got %q", venue.ImageLink)
	}
}

func TestUploadImageUnknownVenue(t *testing.T) {
	r, _ := newImageRouter(&fakeImageStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, imageRequest(t, "/venues/3/image", "hall.png", "image/png", "png-bytes"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}
