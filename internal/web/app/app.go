package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	httpapi "github.com/midas-agency/midas/internal/web/http"
	"github.com/midas-agency/midas/internal/web/lowcode"
	"github.com/midas-agency/midas/internal/web/metrics"
	"github.com/midas-agency/midas/internal/web/service"
	"github.com/midas-agency/midas/internal/web/session"
	"github.com/midas-agency/midas/internal/web/store"
	"github.com/midas-agency/midas/internal/web/store/drivers/postgrest"
	"github.com/midas-agency/midas/internal/web/store/drivers/sqlite"
	"github.com/midas-agency/midas/pkg/slogx"
)

const (
	// BuildVersion is the version reported by the health endpoints and the
	// startup log. Release builds override it with -ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the web service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db        store.Store
	directory *lowcode.Client
	sessions  *session.Manager
	registry  *prometheus.Registry
	collector *metrics.Collector

	// Services
	authService      *service.AuthService
	directoryService *service.DirectoryService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "web",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initStore(); err != nil {
		return nil, err
	}
	app.initDirectory()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("web service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"store_driver", app.cfg.StoreDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down web service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("web service stopped")
	return nil
}

// initStore selects and initializes the account store driver per the
// configuration. The unavailable driver is a deliberate choice, not an
// error: the marketing site still serves without a portal backend.
func (app *Application) initStore() error {
	switch app.cfg.StoreDriver {
	case DriverPostgrest:
		app.db = postgrest.New(app.cfg.StoreURL, app.cfg.StoreKey)
		app.logger.Info("account store: managed backend", "url", app.cfg.StoreURL)

	case DriverSQLite:
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}
		app.db = db
		app.logger.Info("account store: sqlite", "file", app.cfg.DatabaseFile)

	case DriverUnavailable:
		app.db = store.Unavailable{}
		app.logger.Warn("account store not configured, portal endpoints will be unavailable")

	default:
		return fmt.Errorf("unknown store driver %q", app.cfg.StoreDriver)
	}

	return nil
}

// initDirectory wires the low-code table client when configured. A missing
// configuration leaves the client nil; the directory service reports that
// as unavailable rather than faking an empty roster.
func (app *Application) initDirectory() {
	client, err := lowcode.New(lowcode.Config{
		BaseURL: app.cfg.LowcodeURL,
		Token:   app.cfg.LowcodeToken,
		Project: app.cfg.LowcodeProject,
		Table:   app.cfg.LowcodeTable,
		View:    app.cfg.LowcodeView,
	})
	if err != nil {
		app.logger.Warn("directory backend not configured, KOL listing will be unavailable")
		return
	}
	app.directory = client
	app.logger.Info("directory backend configured",
		"project", app.cfg.LowcodeProject,
		"table", app.cfg.LowcodeTable,
	)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.sessions = session.NewManager(app.cfg.CookieSecure)

	app.registry = prometheus.NewRegistry()
	app.collector = metrics.NewCollector(app.registry)

	app.authService = service.NewAuthService(app.db)
	app.directoryService = service.NewDirectoryService(app.directory)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.directory,
		app.sessions,
		app.collector,
		app.registry,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.DirectoryService = app.directoryService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
