package routes

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fyyur/internal/config"
	"fyyur/internal/handlers"
	"fyyur/internal/interfaces"
	appmiddleware "fyyur/internal/middleware"
	"fyyur/internal/repository"
	"fyyur/internal/repository/memstore"
	"fyyur/internal/services"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Stores bundles the repositories the routes are served from. Pinger is nil
// for backends without a database connection.
type Stores struct {
	Venues  interfaces.VenueRepository
	Artists interfaces.ArtistRepository
	Shows   interfaces.ShowRepository
	Pinger  Pinger
}

func PostgresStores(db *sql.DB) Stores {
	return Stores{
		Venues:  repository.NewVenueRepository(db),
		Artists: repository.NewArtistRepository(db),
		Shows:   repository.NewShowRepository(db),
		Pinger:  db,
	}
}

func MemoryStores(store *memstore.Store) Stores {
	return Stores{
		Venues:  store.Venues(),
		Artists: store.Artists(),
		Shows:   store.Shows(),
	}
}

// SetupRoutes builds the router. Image upload routes are registered only
// when images is not nil.
func SetupRoutes(stores Stores, cfg *config.Config, images services.ImageStore) *chi.Mux {
	base := handlers.NewBaseHandler(handlers.JSONRenderer{})
	aggregate := services.NewAggregationService(stores.Venues, stores.Artists, stores.Shows)
	search := services.NewSearchService(stores.Venues, stores.Artists, aggregate)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(appmiddleware.Recoverer(http.HandlerFunc(base.ServerError)))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(base.NotFound)

	r.Get("/", base.Home)
	r.Get("/health", healthHandler(stores.Pinger))
	RegisterSwaggerRoutes(r)

	var uploads *handlers.ImageHandler
	if images != nil {
		uploads = handlers.NewImageHandler(base, images, stores.Venues, stores.Artists)
	}

	RegisterVenueRoutes(r, base, stores.Venues, search, aggregate, uploads)
	RegisterArtistRoutes(r, base, stores.Artists, search, aggregate, uploads)
	RegisterShowRoutes(r, base, stores)

	return r
}

type dbHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthResponse struct {
	Status string   `json:"status"`
	DB     dbHealth `json:"db"`
}

func healthHandler(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok", DB: dbHealth{Status: "ok"}}
		status := http.StatusOK

		if pinger == nil {
			resp.DB.Status = "memory"
		} else {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pinger.PingContext(ctx); err != nil {
				resp.Status = "degraded"
				resp.DB = dbHealth{Status: "down", Error: err.Error()}
				status = http.StatusServiceUnavailable
			}
		}

		if err := handlers.WriteJSON(w, status, resp); err != nil {
			log.Printf("Error writing health response: %v", err)
		}
	}
}
