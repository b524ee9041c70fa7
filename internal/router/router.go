package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/Vivek13121/TripWeave/docs"
	"github.com/Vivek13121/TripWeave/internal/api/activity"
	"github.com/Vivek13121/TripWeave/internal/api/itinerary"
)

// Config contains dependencies needed for the router setup
type Config struct {
	ItineraryHandler *itinerary.HandlerImpl
	// ActivityHandler is nil when no catalog database is configured.
	ActivityHandler *activity.HandlerImpl
	AllowedOrigins  []string
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (like logger, requestID, recoverer) are expected
// to be applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any major browsers
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/itinerary/plan", cfg.ItineraryHandler.PlanItinerary)

		if cfg.ActivityHandler != nil {
			r.Get("/destinations/{destination}/activities", cfg.ActivityHandler.ListActivities)
			r.Post("/destinations/{destination}/activities", cfg.ActivityHandler.AddActivities)
		}
	})

	return r
}
