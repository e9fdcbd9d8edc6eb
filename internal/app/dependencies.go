package app

import (
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherwidget.app/internal/adapters/api"
	"weatherwidget.app/internal/adapters/external"
	"weatherwidget.app/internal/adapters/infrastructure"
	"weatherwidget.app/internal/adapters/view"
	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/logger"
)

type DependencyContainer struct {
	config     DependencyConfig
	registry   *prometheus.Registry
	fileLogger *infrastructure.FileLoggerAdapter
	presenter  *view.Presenter
	ports      *ports.ApplicationPorts
}

type DependencyConfig struct {
	Weather config.WeatherConfig
	Log     config.LogConfig

	// Optional overrides, mostly for tests and the terminal client
	HTTPClient external.HTTPClient
	LogOutput  io.Writer
}

func NewDependencyContainer(depConfig DependencyConfig, appConfig *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:   depConfig,
		registry: prometheus.NewRegistry(),
	}

	if err := container.initializePorts(appConfig); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(appConfig *config.Config) error {
	appLogger := infrastructure.NewSlogLoggerAdapter(logger.NewWithOptions(logger.Options{
		Level:  c.config.Log.Level,
		Format: c.config.Log.Format.String(),
		Output: c.config.LogOutput,
	}))

	// Provider request logs also go to a dedicated file when enabled
	var providerLogger ports.Logger = appLogger
	if c.config.Weather.EnableLogging && c.config.Weather.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(infrastructure.FileLoggerParams{
			Path:      c.config.Weather.LogFilePath,
			Component: "weather_provider",
		})
		if err != nil {
			appLogger.Warn("Failed to create file logger, provider logs go to the main log only",
				ports.F("path", c.config.Weather.LogFilePath),
				ports.F("error", err.Error()))
		} else {
			c.fileLogger = fileLogger
			providerLogger = infrastructure.NewMultiLogger(appLogger, fileLogger)
			appLogger.Info("File logging enabled", ports.F("path", c.config.Weather.LogFilePath))
		}
	}

	if err := c.registry.Register(collectors.NewGoCollector()); err != nil {
		return fmt.Errorf("register go collector: %w", err)
	}
	if err := c.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return fmt.Errorf("register process collector: %w", err)
	}
	metrics := infrastructure.NewPrometheusMetricsCollector(c.registry)

	provider := external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  c.config.Weather.OpenWeatherMapKey,
		BaseURL: c.config.Weather.OpenWeatherMapBaseURL,
		Units:   c.config.Weather.Units,
		Timeout: c.config.Weather.Timeout(),
		Client:  c.config.HTTPClient,
		Logger:  providerLogger,
	})
	provider = external.NewWeatherProviderMetricsDecorator(provider, metrics)
	if c.config.Weather.EnableLogging {
		provider = external.NewWeatherProviderLoggingDecorator(provider, providerLogger)
		appLogger.Debug("Weather provider logging enabled")
	}

	configProvider := infrastructure.NewConfigProviderAdapter(appConfig)

	widget := configProvider.GetWidgetConfig()
	c.presenter = view.NewPresenter(view.NewIconTable(widget.IconBasePath), widget.Location)

	c.ports = &ports.ApplicationPorts{
		WeatherProvider: provider,
		ConfigProvider:  configProvider,
		Logger:          appLogger,
		Metrics:         metrics,
	}
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Presenter returns the shared view presenter. It holds no per-widget state.
func (c *DependencyContainer) Presenter() *view.Presenter {
	return c.presenter
}

// MetricsHandler serves the container's Prometheus registry
func (c *DependencyContainer) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// NewPipeline builds a widget pipeline that renders into renderer
func (c *DependencyContainer) NewPipeline(renderer weather.Renderer) (*weather.Pipeline, error) {
	return weather.NewPipeline(weather.PipelineDependencies{
		Provider: c.ports.WeatherProvider,
		Renderer: renderer,
		Config:   c.ports.ConfigProvider,
		Logger:   c.ports.Logger,
		Metrics:  c.ports.Metrics,
	})
}

// SessionFactory builds an in-memory view and its pipeline for each new widget session
func (c *DependencyContainer) SessionFactory() api.SessionFactory {
	return func(id string) (*api.WidgetSession, error) {
		state := view.NewState(c.presenter)
		pipeline, err := c.NewPipeline(state)
		if err != nil {
			return nil, fmt.Errorf("create pipeline for session %s: %w", id, err)
		}
		return &api.WidgetSession{ID: id, Pipeline: pipeline, View: state}, nil
	}
}

// Cleanup releases resources held by the container
func (c *DependencyContainer) Cleanup() error {
	if c.fileLogger != nil {
		return c.fileLogger.Close()
	}
	return nil
}
