package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/skinaid/skinaid-web/internal/api/handlers"
	"github.com/skinaid/skinaid-web/internal/api/middleware"
	"github.com/skinaid/skinaid-web/internal/config"
	"github.com/skinaid/skinaid-web/internal/metrics"
	"github.com/skinaid/skinaid-web/internal/places"
	"github.com/skinaid/skinaid-web/internal/service"
)

func NewRouter(services *service.Services, placesClient *places.Client, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(collector.Middleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler(registry))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	usersHandler := handlers.NewUsersHandler(services.Auth)
	historyHandler := handlers.NewHistoryHandler(services.History)
	nearbyHandler := handlers.NewNearbyHandler(placesClient, cfg.GoogleMapsAPIKey, collector)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})
		r.Get("/users", usersHandler.List)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/history", func(r chi.Router) {
				r.Get("/", historyHandler.Get)
				r.Post("/chat", historyHandler.SaveChat)
				r.Get("/chat/{id}", historyHandler.GetConversation)
				r.Post("/classification", historyHandler.SaveClassification)
			})

			r.Get("/nearby/dermatologists", nearbyHandler.Dermatologists)
		})
	})

	return r
}
