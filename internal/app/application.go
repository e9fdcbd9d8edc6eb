package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/adapters/api"
	"weatherwidget.app/internal/adapters/infrastructure"
	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/ports"
)

const sessionJanitorInterval = time.Minute

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Adapters
	sessions   *api.SessionStore
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(DependencyConfig{
		Weather: cfg.Weather,
		Log:     cfg.Log,
	}, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeAdapters() error {
	logger := a.ports.Logger
	logger.Info("Initializing adapters...")

	if err := api.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	widget := a.ports.ConfigProvider.GetWidgetConfig()

	sessions, err := api.NewSessionStore(api.SessionStoreParams{
		Factory: a.deps.SessionFactory(),
		TTL:     widget.SessionTTL,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("create session store: %w", err)
	}
	a.sessions = sessions

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		WeatherAPIChecker: infrastructure.NewWeatherAPIHealthChecker(
			a.ports.WeatherProvider, a.ports.ConfigProvider.GetProviderConfig()),
		SessionChecker: infrastructure.NewSessionHealthChecker(sessions),
		ConfigProvider: a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:         a.config.Server.Port,
			DefaultPlace: widget.DefaultPlace,
			StaticDir:    a.config.Server.StaticDir,
			SessionTTL:   int(widget.SessionTTL.Seconds()),
		},
		Sessions:       sessions,
		HealthChecker:  systemHealthChecker,
		Logger:         logger,
		MetricsHandler: a.deps.MetricsHandler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	logger := a.ports.Logger
	logger.Info("Starting application...")

	go a.sessions.Run(ctx, sessionJanitorInterval)

	logger.Info("Starting HTTP server", ports.F("port", a.config.Server.Port))
	if err := a.httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	logger := a.ports.Logger
	logger.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		logger.Error("Error shutting down HTTP server", ports.F("error", err.Error()))
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.sessions.Close()

	if err := a.deps.Cleanup(); err != nil {
		logger.Warn("Error closing provider log file", ports.F("error", err.Error()))
	}

	logger.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// Sessions returns the widget session store
func (a *Application) Sessions() *api.SessionStore {
	return a.sessions
}
