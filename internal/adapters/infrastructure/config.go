package infrastructure

import (
	"time"

	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetAppConfig returns application configuration
func (c *ConfigProviderAdapter) GetAppConfig() ports.AppConfig {
	return ports.AppConfig{
		BaseURL: c.config.AppBaseURL,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetWidgetConfig returns widget configuration
func (c *ConfigProviderAdapter) GetWidgetConfig() ports.WidgetConfig {
	return ports.WidgetConfig{
		DefaultPlace:  c.config.Widget.DefaultPlace,
		ForecastLimit: c.config.Widget.ForecastLimit,
		IconBasePath:  c.config.Widget.IconBasePath,
		SessionTTL:    time.Duration(c.config.Widget.SessionTTLMinutes) * time.Minute,
		Location:      c.config.Widget.Location(),
	}
}

// GetProviderConfig describes the weather provider without exposing the API key
func (c *ConfigProviderAdapter) GetProviderConfig() ports.ProviderConfig {
	return ports.ProviderConfig{
		BaseURL: c.config.Weather.OpenWeatherMapBaseURL,
		Units:   c.config.Weather.Units,
		Timeout: c.config.Weather.Timeout(),
		HasKey:  c.config.Weather.OpenWeatherMapKey != "",
	}
}
