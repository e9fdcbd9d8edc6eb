package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

const (
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultProviderTimeout       = 10 * time.Second
	metricUnits                  = "metric"
	notFoundCode                 = "404"
	maxErrorBodyBytes            = 512
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	units   string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Units   string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

// responseCode is the "cod" field, which the API sends as a number on some
// endpoints and as a string on others
type responseCode string

func (c *responseCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = responseCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cod is neither string nor number: %w", err)
	}
	*c = responseCode(n.String())
	return nil
}

type openWeatherMapCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// openWeatherMapCurrentResponse represents the /weather response
type openWeatherMapCurrentResponse struct {
	Cod     responseCode `json:"cod"`
	Message string       `json:"message"`
	Name    string       `json:"name"`
	Dt      int64        `json:"dt"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []openWeatherMapCondition `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Visibility int `json:"visibility"`
}

// openWeatherMapForecastResponse represents the /forecast response
type openWeatherMapForecastResponse struct {
	Cod     responseCode    `json:"cod"`
	Message json.RawMessage `json:"message"`
	City    struct {
		Name string `json:"name"`
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []openWeatherMapCondition `json:"weather"`
	} `json:"list"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) ports.WeatherProvider {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	units := params.Units
	if units == "" {
		units = metricUnits
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultProviderTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		units:   units,
		client:  client,
		logger:  params.Logger,
	}
}

// GetCurrentConditions retrieves current conditions from OpenWeatherMap
func (p *OpenWeatherMapProviderAdapter) GetCurrentConditions(ctx context.Context, place string) (*ports.CurrentConditionsData, error) {
	if strings.TrimSpace(place) == "" {
		return nil, errors.NewValidationError("place cannot be empty")
	}

	var apiResp openWeatherMapCurrentResponse
	if err := p.get(ctx, "weather", place, &apiResp); err != nil {
		return nil, err
	}
	if apiResp.Cod == notFoundCode {
		return nil, errors.NewNotFoundError(fmt.Sprintf("place %q not found", place))
	}
	if apiResp.Cod != "" && apiResp.Cod != "200" {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap returned code %s", apiResp.Cod), nil)
	}

	category, description := "", ""
	if len(apiResp.Weather) > 0 {
		category = apiResp.Weather[0].Main
		description = apiResp.Weather[0].Description
	}

	observedAt := time.Now()
	if apiResp.Dt > 0 {
		observedAt = time.Unix(apiResp.Dt, 0)
	}

	return &ports.CurrentConditionsData{
		Place:       apiResp.Name,
		Country:     apiResp.Sys.Country,
		Category:    category,
		Description: description,
		Temperature: apiResp.Main.Temp,
		FeelsLike:   apiResp.Main.FeelsLike,
		Humidity:    apiResp.Main.Humidity,
		WindSpeed:   apiResp.Wind.Speed,
		CloudCover:  apiResp.Clouds.All,
		Pressure:    apiResp.Main.Pressure,
		Visibility:  apiResp.Visibility,
		ObservedAt:  observedAt,
	}, nil
}

// GetForecast retrieves the 3-hour forecast from OpenWeatherMap in provider order
func (p *OpenWeatherMapProviderAdapter) GetForecast(ctx context.Context, place string) (*ports.ForecastData, error) {
	if strings.TrimSpace(place) == "" {
		return nil, errors.NewValidationError("place cannot be empty")
	}

	var apiResp openWeatherMapForecastResponse
	if err := p.get(ctx, "forecast", place, &apiResp); err != nil {
		return nil, err
	}
	if apiResp.Cod == notFoundCode {
		return nil, errors.NewNotFoundError(fmt.Sprintf("forecast for %q not found", place))
	}
	if apiResp.Cod != "" && apiResp.Cod != "200" {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap returned code %s", apiResp.Cod), nil)
	}

	points := make([]ports.ForecastPointData, 0, len(apiResp.List))
	for _, item := range apiResp.List {
		pt := ports.ForecastPointData{
			Time:        time.Unix(item.Dt, 0),
			Temperature: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			pt.Category = item.Weather[0].Main
			pt.Description = item.Weather[0].Description
		}
		points = append(points, pt)
	}

	return &ports.ForecastData{Place: apiResp.City.Name, Points: points}, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

// get performs GET {base}/{endpoint}?q=place and decodes the JSON body into out.
// HTTP 404 maps to a not-found error; every other failure is an external API error.
func (p *OpenWeatherMapProviderAdapter) get(ctx context.Context, endpoint, place string, out interface{}) error {
	query := url.Values{}
	query.Set("q", place)
	query.Set("units", p.units)
	query.Set("appid", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/"+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return errors.NewExternalAPIError("failed to build OpenWeatherMap request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return errors.NewNotFoundError(fmt.Sprintf("place %q not found", place))
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		p.logger.Debug("OpenWeatherMap error response",
			ports.F("endpoint", endpoint),
			ports.F("status", resp.StatusCode),
			ports.F("body", string(body)))
		return errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("failed to decode OpenWeatherMap response", err)
	}
	return nil
}
