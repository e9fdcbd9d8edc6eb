package view

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"weatherwidget.app/internal/core/weather"
)

const notFoundMessage = "Place not found. Check the spelling and try again."

// Terminal is a weather.Renderer that prints the widget as text
type Terminal struct {
	presenter *Presenter

	mu  sync.Mutex
	out io.Writer
}

var _ weather.Renderer = (*Terminal)(nil)

// NewTerminal writes rendered output to out
func NewTerminal(out io.Writer, presenter *Presenter) *Terminal {
	return &Terminal{
		presenter: presenter,
		out:       out,
	}
}

// ShowLoading is a no-op; the terminal prints only results
func (t *Terminal) ShowLoading(visible bool) {}

func (t *Terminal) ShowCurrent(current weather.CurrentConditions) {
	cv := t.presenter.Current(current)
	clock := t.presenter.Clock()

	header := fmt.Sprintf("Weather for %s", cv.Location)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", clock.DateLine)
	fmt.Fprintf(&b, "%s\n%s\n", header, strings.Repeat("-", len([]rune(header))))
	fmt.Fprintf(&b, "Conditions:  %s\n", titleCase(cv.Description))
	fmt.Fprintf(&b, "Temperature: %s\n", cv.Temperature)
	fmt.Fprintf(&b, "Feels Like:  %s\n", cv.FeelsLike)
	fmt.Fprintf(&b, "Humidity:    %s\n", cv.Humidity)
	fmt.Fprintf(&b, "Wind Speed:  %s\n", cv.WindSpeed)
	fmt.Fprintf(&b, "Cloud Cover: %s\n", cv.CloudCover)
	fmt.Fprintf(&b, "Pressure:    %s\n", cv.Pressure)
	fmt.Fprintf(&b, "Visibility:  %s\n", cv.Visibility)

	t.write(b.String())
}

func (t *Terminal) ShowForecast(points []weather.ForecastPoint) {
	items := t.presenter.Forecast(points)
	if len(items) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("\nForecast\n--------\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%-6s %5s  %s\n", item.Time, item.Temperature, titleCase(points[i].Description))
	}

	t.write(b.String())
}

func (t *Terminal) ShowNotFound() {
	t.write(notFoundMessage + "\n")
}

// HideNotFound is a no-op; printed output cannot be retracted
func (t *Terminal) HideNotFound() {}

func (t *Terminal) write(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = io.WriteString(t.out, s)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
