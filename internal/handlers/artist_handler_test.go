package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"
	"testing"
)

func fullArtistForm() url.Values {
	return url.Values{
		"name":                {"Guns N Petals"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"phone":               {"326-123-5000"},
		"genres":              {"Rock n Roll"},
		"image_link":          {"https://images.example.com/petals.jpg"},
		"facebook_link":       {"https://www.facebook.com/GunsNPetals"},
		"website":             {"https://www.gunsnpetalsband.com"},
		"seeking_venue":       {"y"},
		"seeking_description": {"Looking for shows to perform at in the San Francisco Bay Area!"},
	}
}

func TestCreateArtistRoundTripsEveryField(t *testing.T) {
	app := newMemoryApp()

	w := postForm(app.router, "/artists/create", fullArtistForm())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	w = get(app.router, "/artists/1")
	if w.Code != http.StatusOK {
		t.Fatalf("get artist: expected 200 got %d", w.Code)
	}
	var resp struct {
		Data struct {
			Artist struct {
				Name               string   `json:"name"`
				City               string   `json:"city"`
				State              string   `json:"state"`
				Phone              string   `json:"phone"`
				Genres             []string `json:"genres"`
				ImageLink          string   `json:"image_link"`
				FacebookLink       string   `json:"facebook_link"`
				Website            string   `json:"website"`
				SeekingVenue       bool     `json:"seeking_venue"`
				SeekingDescription string   `json:"seeking_description"`
			} `json:"artist"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	got := resp.Data.Artist
	if got.Name != "Guns N Petals" || got.City != "San Francisco" || got.State != "CA" || got.Phone != "326-123-5000" {
		t.Fatalf("unexpected artist %+v", got)
	}
	if want := []string{"Rock n Roll"}; !reflect.DeepEqual(got.Genres, want) {
		t.Fatalf("expected genres %v, got %v", want, got.Genres)
	}
	if got.ImageLink != "https://images.example.com/petals.jpg" ||
		got.FacebookLink != "https://www.facebook.com/GunsNPetals" ||
		got.Website != "https://www.gunsnpetalsband.com" {
		t.Fatalf("unexpected links %+v", got)
	}
	if !got.SeekingVenue || got.SeekingDescription != "Looking for shows to perform at in the San Francisco Bay Area!" {
		t.Fatalf("unexpected seeking fields %+v", got)
	}
}

func TestEditArtistFullFormWithBlankOptionalFields(t *testing.T) {
	app := newMemoryApp()
	if w := postForm(app.router, "/artists/create", fullArtistForm()); w.Code != http.StatusOK {
		t.Fatalf("create: expected 200 got %d", w.Code)
	}

	edit := url.Values{
		"name":                {"Guns N Petals"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"phone":               {"326-123-5000"},
		"genres":              {"Rock n Roll", "Blues"},
		"image_link":          {"https://images.example.com/petals.jpg"},
		"facebook_link":       {""},
		"website":             {""},
		"seeking_description": {""},
	}
	w := postForm(app.router, "/artists/1/edit", edit)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d (%s)", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/artists/1" {
		t.Fatalf("expected redirect to /artists/1, got %q", loc)
	}

	got, err := app.store.Artists().GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FacebookLink != "" || got.Website != "" {
		t.Fatalf("expected blank links to clear the stored ones, got %+v", got)
	}
	if got.ImageLink != "https://images.example.com/petals.jpg" {
		t.Fatalf("unexpected image link %q", got.ImageLink)
	}
	if got.SeekingVenue {
		t.Fatalf("expected an unchecked box to turn seeking_venue off")
	}
	if want := []string{"Rock n Roll", "Blues"}; !reflect.DeepEqual(got.Genres, want) {
		t.Fatalf("expected genres %v, got %v", want, got.Genres)
	}
}
