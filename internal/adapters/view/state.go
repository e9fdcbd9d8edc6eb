package view

import (
	"sync"

	"weatherwidget.app/internal/core/weather"
)

// WidgetView is a point-in-time copy of everything the widget displays
type WidgetView struct {
	Loading  bool               `json:"loading"`
	NotFound bool               `json:"notFound"`
	Current  *CurrentView       `json:"current,omitempty"`
	Forecast []ForecastItemView `json:"forecast"`
	Clock    ClockView          `json:"clock"`
}

// State is a weather.Renderer that keeps the widget's view in memory.
// It is safe for concurrent use.
type State struct {
	presenter *Presenter

	mu       sync.RWMutex
	loading  bool
	notFound bool
	current  *CurrentView
	forecast []ForecastItemView
}

var _ weather.Renderer = (*State)(nil)

// NewState creates an empty widget view
func NewState(presenter *Presenter) *State {
	return &State{presenter: presenter}
}

func (s *State) ShowLoading(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = visible
}

// ShowCurrent replaces the current conditions panel
func (s *State) ShowCurrent(current weather.CurrentConditions) {
	cv := s.presenter.Current(current)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &cv
}

// ShowForecast replaces all forecast items
func (s *State) ShowForecast(points []weather.ForecastPoint) {
	items := s.presenter.Forecast(points)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.forecast = items
}

func (s *State) ShowNotFound() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notFound = true
}

func (s *State) HideNotFound() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notFound = false
}

// Snapshot returns a copy of the view with a fresh clock
func (s *State) Snapshot() WidgetView {
	clock := s.presenter.Clock()

	s.mu.RLock()
	defer s.mu.RUnlock()

	v := WidgetView{
		Loading:  s.loading,
		NotFound: s.notFound,
		Forecast: make([]ForecastItemView, len(s.forecast)),
		Clock:    clock,
	}
	copy(v.Forecast, s.forecast)
	if s.current != nil {
		cv := *s.current
		v.Current = &cv
	}
	return v
}
