package weather

import (
	"fmt"
	"strings"
	"time"

	"weatherwidget.app/pkg/validation"
)

// DefaultForecastLimit is the number of forecast points a widget displays
const DefaultForecastLimit = 5

// ConditionCategory is the provider's coarse weather classification ("Rain", "Clear", ...)
type ConditionCategory string

const (
	CategoryClear        ConditionCategory = "Clear"
	CategoryClouds       ConditionCategory = "Clouds"
	CategoryRain         ConditionCategory = "Rain"
	CategorySnow         ConditionCategory = "Snow"
	CategoryThunderstorm ConditionCategory = "Thunderstorm"
	CategoryDrizzle      ConditionCategory = "Drizzle"
	CategoryMist         ConditionCategory = "Mist"
	CategoryFog          ConditionCategory = "Fog"
	CategoryHaze         ConditionCategory = "Haze"
	CategorySmoke        ConditionCategory = "Smoke"
	CategoryDust         ConditionCategory = "Dust"
	CategorySand         ConditionCategory = "Sand"
	CategoryAsh          ConditionCategory = "Ash"
	CategorySquall       ConditionCategory = "Squall"
	CategoryTornado      ConditionCategory = "Tornado"
)

// Query is a request for weather at a free-text place
type Query struct {
	Place string
}

// NewQuery trims raw and reports whether it names a place at all
func NewQuery(raw string) (Query, bool) {
	place, ok := validation.TrimAndValidate(raw)
	return Query{Place: place}, ok
}

// CurrentConditions represents the observed weather at a place
type CurrentConditions struct {
	Place       string
	Country     string
	Temperature float64
	Category    ConditionCategory
	Description string
	Humidity    int
	WindSpeed   float64
	FeelsLike   float64
	CloudCover  int
	Pressure    int
	Visibility  int // meters
	ObservedAt  time.Time
}

// ForecastPoint represents one 3-hour forecast entry
type ForecastPoint struct {
	Time        time.Time
	Category    ConditionCategory
	Description string
	Temperature float64
}

// IsValid validates current conditions decoded from a provider payload
func (c *CurrentConditions) IsValid() error {
	if strings.TrimSpace(c.Place) == "" {
		return fmt.Errorf("place cannot be empty")
	}
	if c.Temperature < -273.15 {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if c.Humidity < 0 || c.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if c.CloudCover < 0 || c.CloudCover > 100 {
		return fmt.Errorf("cloud cover must be between 0 and 100")
	}
	if c.Visibility < 0 {
		return fmt.Errorf("visibility cannot be negative")
	}
	return nil
}

// String returns a string representation of the conditions
func (c *CurrentConditions) String() string {
	return fmt.Sprintf("%s, %s: %.1f°C, %s", c.Place, c.Country, c.Temperature, c.Description)
}

// TruncateForecast returns at most limit points, preserving order.
// A non-positive limit yields DefaultForecastLimit points.
func TruncateForecast(points []ForecastPoint, limit int) []ForecastPoint {
	if limit <= 0 {
		limit = DefaultForecastLimit
	}
	if len(points) > limit {
		points = points[:limit]
	}
	out := make([]ForecastPoint, len(points))
	copy(out, points)
	return out
}
