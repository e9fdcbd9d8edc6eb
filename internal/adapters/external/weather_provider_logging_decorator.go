package external

import (
	"context"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetCurrentConditions wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetCurrentConditions(ctx context.Context, place string) (*ports.CurrentConditionsData, error) {
	d.logStarted("weather", place)

	startTime := time.Now()
	data, err := d.provider.GetCurrentConditions(ctx, place)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailed("weather", place, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", d.provider.GetProviderName()),
		ports.F("place", place),
		ports.F("endpoint", "weather"),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", data.Temperature),
		ports.F("category", data.Category),
		ports.F("description", data.Description))

	return data, nil
}

// GetForecast wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetForecast(ctx context.Context, place string) (*ports.ForecastData, error) {
	d.logStarted("forecast", place)

	startTime := time.Now()
	data, err := d.provider.GetForecast(ctx, place)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailed("forecast", place, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", d.provider.GetProviderName()),
		ports.F("place", place),
		ports.F("endpoint", "forecast"),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("points", len(data.Points)))

	return data, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

func (d *WeatherProviderLoggingDecorator) logStarted(endpoint, place string) {
	d.logger.Info("Weather API request started",
		ports.F("provider", d.provider.GetProviderName()),
		ports.F("place", place),
		ports.F("endpoint", endpoint),
		ports.F("event", "request"))
}

// logFailed logs an unknown place at warn level and everything else as an error
func (d *WeatherProviderLoggingDecorator) logFailed(endpoint, place string, duration time.Duration, err error) {
	fields := []ports.Field{
		ports.F("provider", d.provider.GetProviderName()),
		ports.F("place", place),
		ports.F("endpoint", endpoint),
		ports.F("event", "error"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("error", err.Error()),
	}

	if errors.IsNotFoundError(err) {
		d.logger.Warn("Weather API place not found", fields...)
		return
	}
	d.logger.Error("Weather API request failed", fields...)
}
