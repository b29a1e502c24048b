package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/snowseeker/internal/api"
	"github.com/dom/snowseeker/internal/catalog"
	"github.com/dom/snowseeker/internal/config"
	"github.com/dom/snowseeker/internal/favorites"
	"github.com/dom/snowseeker/internal/logging"
	"github.com/dom/snowseeker/internal/metrics"
	"github.com/dom/snowseeker/internal/repository"
	"github.com/dom/snowseeker/internal/repository/postgres"
	"github.com/dom/snowseeker/internal/repository/sqlite"
	"github.com/dom/snowseeker/internal/service"
	"github.com/dom/snowseeker/internal/websocket"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logFile, err := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	defer logFile.Close()

	// Load the resort catalog
	provider, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	metrics.CatalogResorts.Set(float64(provider.Len()))
	log.Infof("Catalog loaded with %d resorts", provider.Len())

	// Initialize storage
	repos, err := openRepositories(cfg)
	if err != nil {
		log.Fatalf("failed to open %s storage: %v", cfg.StorageDriver, err)
	}
	defer repos.Close()

	store := favorites.Load(context.Background(), repos.Preference)
	log.Infof("Loaded %d favorites", store.Count())

	// Initialize WebSocket hub
	hub := websocket.NewHub(store.IDs)
	go hub.Run()
	unsubscribe := store.Subscribe(hub.BroadcastFavoriteChanged)
	defer unsubscribe()

	// Initialize services
	services := service.NewServices(provider, store)

	// Initialize router
	router := api.NewRouter(services, hub, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Server starting on port %s (%s, storage=%s)", cfg.Port, cfg.Environment, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hub.Stop()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}

func loadCatalog(cfg *config.Config) (*catalog.Provider, error) {
	if cfg.CatalogPath == "" {
		return catalog.LoadEmbedded()
	}
	return catalog.LoadFile(cfg.CatalogPath)
}

func openRepositories(cfg *config.Config) (*repository.Repositories, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := postgres.NewConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return postgres.NewRepositories(db), nil
	default:
		store, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Infof("Using SQLite preferences at %s", cfg.SQLitePath)
		return sqlite.NewRepositories(store), nil
	}
}
