package handlers

import "net/http"

// Page is the plain data handed to a Renderer: the template to render, the
// flash messages to show and the template data.
type Page struct {
	Template string         `json:"template"`
	Flashes  []string       `json:"flashes,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// Renderer turns a Page into a response body.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page Page) error
}

// JSONRenderer writes pages as JSON documents.
type JSONRenderer struct{}

func (JSONRenderer) Render(w http.ResponseWriter, status int, page Page) error {
	return WriteJSON(w, status, page)
}
