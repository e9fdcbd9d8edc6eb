package external

import (
	"context"
	"time"

	"weatherwidget.app/internal/ports"
)

// WeatherProviderMetricsDecorator records call counts and latency for each provider endpoint
type WeatherProviderMetricsDecorator struct {
	provider ports.WeatherProvider
	metrics  ports.MetricsCollector
}

// NewWeatherProviderMetricsDecorator creates a new metrics decorator for weather providers
func NewWeatherProviderMetricsDecorator(provider ports.WeatherProvider, metrics ports.MetricsCollector) ports.WeatherProvider {
	return &WeatherProviderMetricsDecorator{
		provider: provider,
		metrics:  metrics,
	}
}

// GetCurrentConditions records the /weather call
func (d *WeatherProviderMetricsDecorator) GetCurrentConditions(ctx context.Context, place string) (*ports.CurrentConditionsData, error) {
	start := time.Now()
	data, err := d.provider.GetCurrentConditions(ctx, place)
	d.metrics.RecordProviderCall(ctx, "weather", err == nil, time.Since(start))
	return data, err
}

// GetForecast records the /forecast call
func (d *WeatherProviderMetricsDecorator) GetForecast(ctx context.Context, place string) (*ports.ForecastData, error) {
	start := time.Now()
	data, err := d.provider.GetForecast(ctx, place)
	d.metrics.RecordProviderCall(ctx, "forecast", err == nil, time.Since(start))
	return data, err
}

// GetProviderName returns the wrapped provider's name
func (d *WeatherProviderMetricsDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
