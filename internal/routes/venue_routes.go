package routes

import (
	"github.com/go-chi/chi/v5"

	"fyyur/internal/handlers"
	"fyyur/internal/interfaces"
	"fyyur/internal/services"
)

func RegisterVenueRoutes(r chi.Router, base *handlers.BaseHandler, repo interfaces.VenueRepository, search *services.SearchService, aggregate *services.AggregationService, uploads *handlers.ImageHandler) {
	handler := handlers.NewVenueHandler(base, repo, search, aggregate)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/search", handler.Search)
		r.Get("/create", handler.CreateForm)
		r.Post("/create", handler.Create)
		r.Get("/{id:[0-9]+}", handler.Get)
		r.Delete("/{id:[0-9]+}", handler.Delete)
		r.Get("/{id:[0-9]+}/edit", handler.EditForm)
		r.Post("/{id:[0-9]+}/edit", handler.Edit)
		if uploads != nil {
			r.Post("/{id:[0-9]+}/image", uploads.UploadVenueImage)
		}
	})
}
