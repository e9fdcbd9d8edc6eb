package weather

import (
	"context"
	"fmt"
	"sync"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// Pipeline turns a place name into rendered current conditions and forecast, or into
// the not-found panel. One Pipeline backs one widget.
//
// Every Submit takes the next generation number and cancels the run it replaces.
// Renders from a run whose generation is no longer current are dropped, so results
// always belong to the most recent query regardless of response arrival order.
type Pipeline struct {
	provider      ports.WeatherProvider
	renderer      Renderer
	logger        ports.Logger
	metrics       ports.MetricsCollector
	forecastLimit int

	mu         sync.Mutex
	generation uint64
	state      State
	cancel     context.CancelFunc
}

type PipelineDependencies struct {
	Provider ports.WeatherProvider
	Renderer Renderer
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
}

func NewPipeline(deps PipelineDependencies) (*Pipeline, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Renderer == nil {
		return nil, errors.NewValidationError("renderer is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	limit := deps.Config.GetWidgetConfig().ForecastLimit
	if limit <= 0 {
		limit = DefaultForecastLimit
	}

	return &Pipeline{
		provider:      deps.Provider,
		renderer:      deps.Renderer,
		logger:        deps.Logger,
		metrics:       deps.Metrics,
		forecastLimit: limit,
		state:         StateIdle,
	}, nil
}

// run is one in-flight Submit
type run struct {
	ctx        context.Context
	generation uint64
	place      string
}

// Submit queries place and renders the result. Blank input is ignored without
// touching the widget. Submit blocks until the run finishes or is superseded.
func (p *Pipeline) Submit(ctx context.Context, place string) Result {
	query, ok := NewQuery(place)
	if !ok {
		return Result{Generation: p.Generation(), Outcome: OutcomeIgnored}
	}

	r, done := p.begin(ctx, query.Place)
	defer done()

	p.logger.Debug("Weather query started",
		ports.F("place", r.place),
		ports.F("generation", r.generation))

	data, err := p.provider.GetCurrentConditions(r.ctx, r.place)
	if err == nil && data == nil {
		err = errors.NewExternalAPIError("empty current conditions from provider", nil)
	}
	if err == nil {
		current := newCurrentConditions(data)
		if validErr := current.IsValid(); validErr != nil {
			err = errors.NewExternalAPIError("invalid current conditions from provider", validErr)
		} else {
			return p.showResults(r, current)
		}
	}

	return p.fail(r, err)
}

// Dismiss closes the not-found panel and returns the widget to Idle.
// It reports whether the panel was open.
func (p *Pipeline) Dismiss() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateNotFound {
		return false
	}

	p.renderer.HideNotFound()
	p.state = StateIdle
	p.logger.Debug("Not-found panel dismissed", ports.F("generation", p.generation))
	return true
}

// State returns the widget's current state
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Generation returns the generation of the most recent non-blank Submit
func (p *Pipeline) Generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}

// Close cancels any in-flight run
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Pipeline) begin(ctx context.Context, place string) (run, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.generation++
	p.cancel = cancel
	p.state = StateLoading
	p.renderer.ShowLoading(true)

	r := run{ctx: runCtx, generation: p.generation, place: place}
	return r, func() {
		p.finish(r)
		cancel()
	}
}

// render runs fn while r is still the current run. It reports false and drops fn
// when a newer Submit has taken over.
func (p *Pipeline) render(r run, fn func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if r.generation != p.generation {
		p.metrics.RecordStaleRender(r.ctx)
		p.logger.Debug("Dropping render from superseded query",
			ports.F("place", r.place),
			ports.F("generation", r.generation),
			ports.F("current_generation", p.generation))
		return false
	}
	fn()
	return true
}

func (p *Pipeline) isCurrent(r run) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return r.generation == p.generation
}

func (p *Pipeline) showResults(r run, current CurrentConditions) Result {
	shown := p.render(r, func() {
		p.renderer.HideNotFound()
		p.renderer.ShowCurrent(current)
		p.state = StateShown
	})
	if !shown {
		return p.superseded(r)
	}

	result := Result{Generation: r.generation, Place: r.place, Outcome: OutcomeShown}

	forecast, err := p.provider.GetForecast(r.ctx, r.place)
	if err != nil {
		// A newer Submit cancels this run's context, which surfaces here as a fetch error
		if !p.isCurrent(r) {
			return p.superseded(r)
		}
		result.ForecastErr = errors.NewForecastUnavailableError(
			fmt.Sprintf("forecast for %q unavailable", r.place), err)
		p.logger.Warn("Forecast unavailable, keeping current conditions",
			ports.F("place", r.place),
			ports.F("generation", r.generation),
			ports.F("error", err.Error()))
		p.metrics.RecordQueryOutcome(r.ctx, OutcomeShown.String())
		return result
	}

	points := TruncateForecast(newForecastPoints(forecast), p.forecastLimit)
	if !p.render(r, func() { p.renderer.ShowForecast(points) }) {
		return p.superseded(r)
	}

	p.metrics.RecordQueryOutcome(r.ctx, OutcomeShown.String())
	p.logger.Debug("Weather query rendered",
		ports.F("place", r.place),
		ports.F("generation", r.generation),
		ports.F("temperature", current.Temperature),
		ports.F("forecast_points", len(points)))
	return result
}

func (p *Pipeline) fail(r run, err error) Result {
	kind := Classify(err)

	shown := p.render(r, func() {
		p.renderer.ShowNotFound()
		p.renderer.ShowLoading(false)
		p.state = StateNotFound
	})
	if !shown {
		return p.superseded(r)
	}

	p.metrics.RecordQueryOutcome(r.ctx, OutcomeQueryFailed.String())
	p.logger.Info("Weather query failed",
		ports.F("place", r.place),
		ports.F("generation", r.generation),
		ports.F("failure", kind.String()),
		ports.F("error", err.Error()))

	return Result{
		Generation: r.generation,
		Place:      r.place,
		Outcome:    OutcomeQueryFailed,
		Failure:    kind,
		Err:        fmt.Errorf("current conditions for %q: %w", r.place, err),
	}
}

func (p *Pipeline) superseded(r run) Result {
	p.metrics.RecordQueryOutcome(r.ctx, OutcomeSuperseded.String())
	return Result{Generation: r.generation, Place: r.place, Outcome: OutcomeSuperseded}
}

// finish hides the loading indicator if r is still current
func (p *Pipeline) finish(r run) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if r.generation != p.generation {
		return
	}
	p.renderer.ShowLoading(false)
	p.cancel = nil
}

func newCurrentConditions(data *ports.CurrentConditionsData) CurrentConditions {
	return CurrentConditions{
		Place:       data.Place,
		Country:     data.Country,
		Temperature: data.Temperature,
		Category:    ConditionCategory(data.Category),
		Description: data.Description,
		Humidity:    data.Humidity,
		WindSpeed:   data.WindSpeed,
		FeelsLike:   data.FeelsLike,
		CloudCover:  data.CloudCover,
		Pressure:    data.Pressure,
		Visibility:  data.Visibility,
		ObservedAt:  data.ObservedAt,
	}
}

func newForecastPoints(data *ports.ForecastData) []ForecastPoint {
	if data == nil {
		return nil
	}
	points := make([]ForecastPoint, 0, len(data.Points))
	for _, pt := range data.Points {
		points = append(points, ForecastPoint{
			Time:        pt.Time,
			Category:    ConditionCategory(pt.Category),
			Description: pt.Description,
			Temperature: pt.Temperature,
		})
	}
	return points
}
