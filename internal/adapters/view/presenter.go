package view

import (
	"time"

	"weatherwidget.app/internal/core/weather"
)

// CurrentView is the display-ready current conditions panel
type CurrentView struct {
	Location    string `json:"location"`
	Temperature string `json:"temperature"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IconURL     string `json:"iconUrl"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"windSpeed"`
	FeelsLike   string `json:"feelsLike"`
	CloudCover  string `json:"cloudCover"`
	Pressure    string `json:"pressure"`
	Visibility  string `json:"visibility"`
}

// ForecastItemView is one display-ready forecast entry
type ForecastItemView struct {
	Time        string `json:"time"`
	IconURL     string `json:"iconUrl"`
	IconAlt     string `json:"iconAlt"`
	Temperature string `json:"temperature"`
}

// ClockView carries the render-time date line and background bucket
type ClockView struct {
	DateLine   string    `json:"dateLine"`
	Background TimeOfDay `json:"background"`
}

// Presenter converts weather entities into view models
type Presenter struct {
	icons *IconTable
	loc   *time.Location
	now   func() time.Time
}

// PresenterOption configures a Presenter
type PresenterOption func(*Presenter)

// WithClock overrides the time source used for the date line and background
func WithClock(now func() time.Time) PresenterOption {
	return func(p *Presenter) {
		p.now = now
	}
}

// NewPresenter creates a presenter. A nil loc means time.Local.
func NewPresenter(icons *IconTable, loc *time.Location, opts ...PresenterOption) *Presenter {
	if icons == nil {
		icons = NewIconTable("")
	}
	if loc == nil {
		loc = time.Local
	}
	p := &Presenter{icons: icons, loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Current formats current conditions
func (p *Presenter) Current(c weather.CurrentConditions) CurrentView {
	location := c.Place
	if c.Country != "" {
		location += ", " + c.Country
	}

	return CurrentView{
		Location:    location,
		Temperature: FormatTemperature(c.Temperature),
		Description: c.Description,
		Category:    string(c.Category),
		IconURL:     p.icons.URL(c.Category),
		Humidity:    FormatPercent(c.Humidity),
		WindSpeed:   FormatWindSpeed(c.WindSpeed),
		FeelsLike:   FormatTemperature(c.FeelsLike),
		CloudCover:  FormatPercent(c.CloudCover),
		Pressure:    FormatPressure(c.Pressure),
		Visibility:  FormatVisibility(c.Visibility),
	}
}

// Forecast formats forecast points in the order given
func (p *Presenter) Forecast(points []weather.ForecastPoint) []ForecastItemView {
	items := make([]ForecastItemView, 0, len(points))
	for _, pt := range points {
		items = append(items, ForecastItemView{
			Time:        FormatHour(pt.Time, p.loc),
			IconURL:     p.icons.URL(pt.Category),
			IconAlt:     pt.Description,
			Temperature: FormatTemperature(pt.Temperature),
		})
	}
	return items
}

// Clock returns the date line and background for the current time
func (p *Presenter) Clock() ClockView {
	now := p.now()
	return ClockView{
		DateLine:   FormatDateLine(now, p.loc),
		Background: TimeOfDayAt(now, p.loc),
	}
}
