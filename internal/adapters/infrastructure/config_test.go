package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"weatherwidget.app/internal/config"
)

func TestConfigProviderAdapter(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 9090},
		Weather: config.WeatherConfig{
			OpenWeatherMapKey:     "secret",
			OpenWeatherMapBaseURL: "http://localhost:8081/data/2.5",
			Units:                 "metric",
			TimeoutSeconds:        7,
		},
		Widget: config.WidgetConfig{
			DefaultPlace:      "Lahore",
			ForecastLimit:     5,
			IconBasePath:      "/static/icons",
			SessionTTLMinutes: 30,
			Timezone:          "UTC",
		},
		AppBaseURL: "http://localhost:9090",
	}

	adapter := NewConfigProviderAdapter(cfg)

	assert.Equal(t, 9090, adapter.GetServerConfig().Port)
	assert.Equal(t, "http://localhost:9090", adapter.GetAppConfig().BaseURL)

	widget := adapter.GetWidgetConfig()
	assert.Equal(t, "Lahore", widget.DefaultPlace)
	assert.Equal(t, 5, widget.ForecastLimit)
	assert.Equal(t, 30*time.Minute, widget.SessionTTL)
	assert.Equal(t, time.UTC, widget.Location)

	provider := adapter.GetProviderConfig()
	assert.Equal(t, "http://localhost:8081/data/2.5", provider.BaseURL)
	assert.Equal(t, 7*time.Second, provider.Timeout)
	assert.True(t, provider.HasKey)
}
