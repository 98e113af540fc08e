package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"

	"fyyur/internal/models"
)

const maxFormMemory = 32 << 20 // 32MB

var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// showFieldKinds names what a show field must hold when it cannot be decoded.
var showFieldKinds = map[string]string{
	"venue_id":   "integer",
	"artist_id":  "integer",
	"start_time": "datetime",
}

// formDecoder fills request schemas from submitted forms. Pointer fields
// stay nil for fields that were not submitted.
var formDecoder = newFormDecoder()

func newFormDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.RegisterCustomTypeFunc(decodeText, "")
	d.RegisterCustomTypeFunc(decodeList, []string{})
	d.RegisterCustomTypeFunc(decodeCheckbox, false)
	d.RegisterCustomTypeFunc(decodeStartTime, time.Time{})
	return d
}

func decodeText(vals []string) (interface{}, error) {
	return strings.TrimSpace(vals[0]), nil
}

// decodeList collects repeated values and comma separated parts, never nil.
func decodeList(vals []string) (interface{}, error) {
	out := []string{}
	for _, v := range vals {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out, nil
}

// decodeCheckbox accepts the values browsers and WTForms send for a checked box.
func decodeCheckbox(vals []string) (interface{}, error) {
	switch strings.ToLower(strings.TrimSpace(vals[0])) {
	case "y", "yes", "on", "true", "1":
		return true, nil
	}
	return false, nil
}

// decodeStartTime leaves an empty value as the zero time.
func decodeStartTime(vals []string) (interface{}, error) {
	value := strings.TrimSpace(vals[0])
	if value == "" {
		return time.Time{}, nil
	}
	return parseStartTime(value)
}

func parseForm(r *http.Request) (url.Values, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, err
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}

// searchTerm is matched as submitted, surrounding spaces included.
func searchTerm(values url.Values) string {
	return values.Get("search_term")
}

func decodeCreateVenue(values url.Values) (models.CreateVenueRequest, error) {
	var req models.CreateVenueRequest
	err := formDecoder.Decode(&req, values)
	return req, err
}

func decodeCreateArtist(values url.Values) (models.CreateArtistRequest, error) {
	var req models.CreateArtistRequest
	err := formDecoder.Decode(&req, values)
	return req, err
}

// fullEditForm reports whether the submission is the whole edit form rather
// than a partial update. Browsers leave unchecked boxes and empty
// multi-selects out of a form, so on a full form their absence means false
// and no genres.
func fullEditForm(values url.Values) bool {
	return values.Has("name")
}

func decodeUpdateVenue(values url.Values) (models.UpdateVenueRequest, error) {
	var req models.UpdateVenueRequest
	if err := formDecoder.Decode(&req, values); err != nil {
		return req, err
	}
	if fullEditForm(values) {
		if req.SeekingTalent == nil {
			req.SeekingTalent = new(bool)
		}
		if req.Genres == nil {
			req.Genres = &[]string{}
		}
	}
	return req, nil
}

func decodeUpdateArtist(values url.Values) (models.UpdateArtistRequest, error) {
	var req models.UpdateArtistRequest
	if err := formDecoder.Decode(&req, values); err != nil {
		return req, err
	}
	if fullEditForm(values) {
		if req.SeekingVenue == nil {
			req.SeekingVenue = new(bool)
		}
		if req.Genres == nil {
			req.Genres = &[]string{}
		}
	}
	return req, nil
}

// decodeCreateShow decodes the show form. A missing start_time defaults
// to now. Fields that cannot be decoded are reported in the returned map.
func decodeCreateShow(values url.Values, now time.Time) (models.CreateShowRequest, map[string]string) {
	var req models.CreateShowRequest
	errs := map[string]string{}

	if err := formDecoder.Decode(&req, values); err != nil {
		var decodeErrs form.DecodeErrors
		if !errors.As(err, &decodeErrs) {
			errs["form"] = err.Error()
		}
		for field := range decodeErrs {
			kind, ok := showFieldKinds[field]
			if !ok {
				kind = "invalid"
			}
			errs[field] = kind
		}
	}

	if req.StartTime.IsZero() {
		req.StartTime = now
	}
	return req, errs
}

func parseStartTime(value string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("unrecognised start_time format")
}

// fieldErrors flattens validator errors into field -> failed tag.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = fe.Tag()
		}
		return out
	}
	out["form"] = err.Error()
	return out
}
