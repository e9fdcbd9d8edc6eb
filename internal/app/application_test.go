package app

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/config"
)

const currentPakistanJSON = `{
	"weather": [{"main": "Clear", "description": "clear sky"}],
	"main": {"temp": 21.4, "feels_like": 20.6, "humidity": 38, "pressure": 1014},
	"visibility": 10000,
	"wind": {"speed": 3.6},
	"clouds": {"all": 0},
	"dt": 1792262400,
	"sys": {"country": "PK"},
	"name": "Pakistan",
	"cod": 200
}`

// fakeOpenWeatherMap serves /weather and /forecast and counts forecast calls
type fakeOpenWeatherMap struct {
	forecastCalls atomic.Int32
}

func (f *fakeOpenWeatherMap) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	place := r.URL.Query().Get("q")
	w.Header().Set("Content-Type", "application/json")

	if place == "Nonexistentville" {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"cod": "404", "message": "city not found"}`)
		return
	}

	switch r.URL.Path {
	case "/weather":
		_, _ = io.WriteString(w, currentPakistanJSON)
	case "/forecast":
		f.forecastCalls.Add(1)
		items := make([]string, 40)
		for i := range items {
			items[i] = fmt.Sprintf(`{"dt": %d, "main": {"temp": %d}, "weather": [{"main": "Rain", "description": "light rain"}]}`,
				1792262400+i*10800, 15+i)
		}
		fmt.Fprintf(w, `{"cod": "200", "cnt": 40, "list": [%s]}`, strings.Join(items, ","))
	default:
		http.NotFound(w, r)
	}
}

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Weather: config.WeatherConfig{
			OpenWeatherMapKey:     "test-key",
			OpenWeatherMapBaseURL: baseURL,
			Units:                 "metric",
			TimeoutSeconds:        2,
			EnableLogging:         true,
			LogFilePath:           filepath.Join(t.TempDir(), "weather_providers.log"),
		},
		Widget: config.WidgetConfig{
			DefaultPlace:      "Pakistan",
			ForecastLimit:     5,
			IconBasePath:      "/static/icons",
			SessionTTLMinutes: 60,
			Timezone:          "UTC",
		},
		Log:        config.LogConfig{Level: "error", Format: config.LogFormatJSON},
		AppBaseURL: "http://localhost:8080",
	}
}

func setupApplication(t *testing.T) (*Application, *fakeOpenWeatherMap) {
	t.Helper()

	fake := &fakeOpenWeatherMap{}
	upstream := httptest.NewServer(fake)
	t.Cleanup(upstream.Close)

	cfg := testConfig(t, upstream.URL)
	deps, err := NewDependencyContainer(DependencyConfig{
		Weather:   cfg.Weather,
		Log:       cfg.Log,
		LogOutput: io.Discard,
	}, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Cleanup() })

	application, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	t.Cleanup(application.Sessions().Close)

	return application, fake
}

func search(t *testing.T, router http.Handler, place string, cookies []*http.Cookie) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(fmt.Sprintf(`{"place":%q}`, place)))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestApplication_SearchRendersCurrentAndForecast(t *testing.T) {
	application, fake := setupApplication(t)

	w, body := search(t, application.GetRouter(), "Pakistan", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "shown", body["state"])

	view := body["view"].(map[string]interface{})
	current := view["current"].(map[string]interface{})
	assert.Equal(t, "21°C", current["temperature"])
	assert.Equal(t, "/static/icons/clear.png", current["iconUrl"])
	assert.Equal(t, "10.0 km", current["visibility"])
	assert.Len(t, view["forecast"], 5)
	assert.Equal(t, int32(1), fake.forecastCalls.Load())
}

func TestApplication_UnknownPlaceSkipsForecast(t *testing.T) {
	application, fake := setupApplication(t)

	w, body := search(t, application.GetRouter(), "Nonexistentville", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "not_found", body["state"])
	assert.Equal(t, true, body["view"].(map[string]interface{})["notFound"])
	assert.Equal(t, int32(0), fake.forecastCalls.Load())
}

func TestApplication_MetricsExposeProviderCalls(t *testing.T) {
	application, _ := setupApplication(t)
	router := application.GetRouter()

	search(t, router, "Pakistan", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `weather_provider_requests_total{endpoint="weather",outcome="success"} 1`)
	assert.Contains(t, w.Body.String(), `weather_widget_queries_total{outcome="shown"} 1`)
}

func TestApplication_Health(t *testing.T) {
	application, _ := setupApplication(t)

	w := httptest.NewRecorder()
	application.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["weatherAPI"]["status"])
	assert.Equal(t, "healthy", body["sessions"]["status"])
	assert.Equal(t, "healthy", body["config"]["status"])
}
