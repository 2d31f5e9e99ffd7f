// internal/routes/routes.go
package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"scm/internal/config"
	"scm/internal/handlers"
	"scm/internal/interfaces"
	"scm/internal/metrics"
	authmw "scm/internal/middleware"
)

// Deps are the collaborators the router is built from.
type Deps struct {
	Config   *config.Config
	Sessions interfaces.DraftSessionRepository
	Registry *prometheus.Registry
	Logger   logrus.FieldLogger
}

func SetupRoutes(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	m := metrics.New(deps.Registry, deps.Sessions)

	r.Get("/", handlers.Root)
	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	RegisterSwaggerRoutes(r)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		if deps.Config.AuthEnabled() {
			r.Use(authmw.JWTAuth(deps.Config.JWTSecret))
		}
		RegisterDraftRoutes(r, deps.Sessions, m, deps.Logger)
	})

	r.NotFound(handlers.NotFound)

	return r
}
