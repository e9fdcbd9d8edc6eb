package ports

import (
	"context"
	"time"
)

// CurrentConditionsData is the provider-neutral shape of a current-conditions response
type CurrentConditionsData struct {
	Place       string
	Country     string
	Category    string
	Description string
	Temperature float64
	FeelsLike   float64
	Humidity    int
	WindSpeed   float64
	CloudCover  int
	Pressure    int
	Visibility  int
	ObservedAt  time.Time
}

// ForecastPointData is a single 3-hour forecast entry
type ForecastPointData struct {
	Time        time.Time
	Category    string
	Description string
	Temperature float64
}

// ForecastData holds forecast points in provider order
type ForecastData struct {
	Place  string
	Points []ForecastPointData
}

// WeatherProvider defines the contract for the remote weather service
type WeatherProvider interface {
	GetCurrentConditions(ctx context.Context, place string) (*CurrentConditionsData, error)
	GetForecast(ctx context.Context, place string) (*ForecastData, error)
	GetProviderName() string
}
