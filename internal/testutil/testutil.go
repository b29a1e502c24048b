package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dom/snowseeker/internal/api"
	"github.com/dom/snowseeker/internal/catalog"
	"github.com/dom/snowseeker/internal/config"
	"github.com/dom/snowseeker/internal/favorites"
	repoPostgres "github.com/dom/snowseeker/internal/repository/postgres"
	"github.com/dom/snowseeker/internal/repository/sqlite"
	"github.com/dom/snowseeker/internal/service"
	"github.com/dom/snowseeker/internal/websocket"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a migrated connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_snowseeker"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := repoPostgres.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	for _, table := range []string{"preferences"} {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// TestConfig returns a configuration suitable for testing
func TestConfig(t *testing.T) *config.Config {
	cfg := config.Defaults()
	cfg.Port = "0" // Random port
	cfg.Environment = "test"
	cfg.SQLitePath = filepath.Join(t.TempDir(), "preferences.sqlite")
	cfg.LogLevel = "warn"
	return cfg
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	Store    *favorites.Store
	Prefs    *sqlite.Store
	Catalog  *catalog.Provider
	Services *service.Services
	Hub      *websocket.Hub
	Config   *config.Config
}

// NewTestServer creates a complete test server backed by a throwaway SQLite
// file and the bundled catalog.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	provider, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return NewTestServerWithCatalog(t, provider)
}

// NewTestServerWithCatalog is NewTestServer with a caller-supplied catalog.
func NewTestServerWithCatalog(t *testing.T, provider *catalog.Provider) *TestServer {
	t.Helper()

	cfg := TestConfig(t)

	prefs, err := sqlite.New(cfg.SQLitePath)
	if err != nil {
		t.Fatalf("failed to open sqlite store: %v", err)
	}

	store := favorites.Load(context.Background(), prefs)
	hub := websocket.NewHub(store.IDs)
	go hub.Run()
	unsubscribe := store.Subscribe(hub.BroadcastFavoriteChanged)

	services := service.NewServices(provider, store)
	router := api.NewRouter(services, hub, cfg)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		Store:    store,
		Prefs:    prefs,
		Catalog:  provider,
		Services: services,
		Hub:      hub,
		Config:   cfg,
	}

	t.Cleanup(func() {
		unsubscribe()
		hub.Stop()
		server.Close()
		prefs.Close()
	})

	return ts
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api/v1%s", ts.Server.URL, path)
}

// WebSocketURL returns the WebSocket endpoint URL
func (ts *TestServer) WebSocketURL() string {
	wsURL := "ws" + ts.Server.URL[4:] // Replace "http" with "ws"
	return wsURL + "/api/v1/ws"
}
