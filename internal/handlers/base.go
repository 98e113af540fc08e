// internal/handlers/base.go
package handlers

import (
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// BaseHandler carries what every page handler needs: the renderer and the
// input validator.
type BaseHandler struct {
	Renderer  Renderer
	Validator *validator.Validate
}

func NewBaseHandler(renderer Renderer) *BaseHandler {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &BaseHandler{
		Renderer:  renderer,
		Validator: v,
	}
}

// render writes the page together with any flashes left by a previous
// redirect, followed by the given ones.
func (h *BaseHandler) render(w http.ResponseWriter, r *http.Request, status int, template string, data map[string]any, flashes ...string) {
	page := Page{
		Template: template,
		Flashes:  append(popFlashes(w, r), flashes...),
		Data:     data,
	}
	if err := h.Renderer.Render(w, status, page); err != nil {
		log.Printf("Error rendering %s: %v", template, err)
	}
}

// redirect sends a 303 to target, carrying flashes to the next page.
func (h *BaseHandler) redirect(w http.ResponseWriter, r *http.Request, target string, flashes ...string) {
	setFlashes(w, flashes)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *BaseHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "pages/home.html", nil)
}

func (h *BaseHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "errors/404.html", nil)
}

func (h *BaseHandler) ServerError(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusInternalServerError, "errors/500.html", nil)
}

func (h *BaseHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	h.ServerError(w, r)
}

func (h *BaseHandler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("%s %s: bad request: %v", r.Method, r.URL.Path, err)
	h.render(w, r, http.StatusBadRequest, "errors/400.html", map[string]any{"error": err.Error()})
}

// pathID reads the positive integer {id} URL parameter.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
