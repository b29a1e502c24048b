package api

import (
	"net/http"

	"github.com/dom/snowseeker/internal/api/handlers"
	"github.com/dom/snowseeker/internal/api/middleware"
	"github.com/dom/snowseeker/internal/config"
	"github.com/dom/snowseeker/internal/metrics"
	"github.com/dom/snowseeker/internal/service"
	"github.com/dom/snowseeker/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

func NewRouter(services *service.Services, hub *websocket.Hub, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{Logger: log.StandardLogger(), NoColor: true}))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.Prometheus)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	// Initialize handlers
	resortHandler := handlers.NewResortHandler(services.Resort)
	favoriteHandler := handlers.NewFavoriteHandler(services.Favorite)
	wsHandler := handlers.NewWebSocketHandler(hub, cfg.CORSOrigin)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/resorts", func(r chi.Router) {
			r.Get("/", resortHandler.List)
			r.Get("/{id}", resortHandler.Get)
			r.Put("/{id}/favorite", favoriteHandler.Add)
			r.Delete("/{id}/favorite", favoriteHandler.Remove)
		})

		r.Get("/favorites", favoriteHandler.List)
		r.Get("/facilities", resortHandler.Facilities)

		// WebSocket endpoint
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
