// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to widget operations
package api

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

//go:embed web/templates/*.tmpl
var templateFS embed.FS

const sessionCookieName = "widget_session"

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port         int
	DefaultPlace string
	StaticDir    string
	SessionTTL   int // seconds, used as cookie max-age
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	config        ServerConfig
	sessions      *SessionStore
	healthChecker ports.SystemHealthChecker
	logger        ports.Logger
	metrics       http.Handler
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	Sessions       *SessionStore
	HealthChecker  ports.SystemHealthChecker
	Logger         ports.Logger
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	tmpl, err := template.ParseFS(templateFS, "web/templates/*.tmpl")
	if err != nil {
		return nil, errors.NewConfigurationError("parse page templates", err)
	}

	metrics := opts.MetricsHandler
	if metrics == nil {
		metrics = promhttp.Handler()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	server := &HTTPServerAdapter{
		router:        router,
		config:        opts.Config,
		sessions:      opts.Sessions,
		healthChecker: opts.HealthChecker,
		logger:        opts.Logger,
		metrics:       metrics,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Sessions == nil {
		return errors.NewValidationError("session store is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/", s.getPage)

	api := s.router.Group("/api")
	{
		api.POST("/search", s.search)
		api.POST("/dismiss", s.dismiss)
		api.GET("/view", s.getView)
		api.GET("/health", s.getHealth)
	}

	s.router.GET("/metrics", gin.WrapH(s.metrics))
	s.setupStaticFiles()
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// setupStaticFiles configures static file serving
func (s *HTTPServerAdapter) setupStaticFiles() {
	if s.config.StaticDir == "" {
		return
	}
	s.router.Static("/static", s.config.StaticDir)
}
