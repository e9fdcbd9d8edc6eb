package external

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/mocks"
	"weatherwidget.app/pkg/errors"
)

const pakistanCurrentJSON = `{
	"coord": {"lon": 69.3451, "lat": 30.3753},
	"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
	"main": {"temp": 21.4, "feels_like": 20.6, "humidity": 38, "pressure": 1014},
	"visibility": 10000,
	"wind": {"speed": 3.6},
	"clouds": {"all": 0},
	"dt": 1792262400,
	"sys": {"country": "PK"},
	"name": "Pakistan",
	"cod": 200
}`

const notFoundJSON = `{"cod": "404", "message": "city not found"}`

func forecastJSON(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(
			`{"dt": %d, "main": {"temp": %.1f}, "weather": [{"main": "Clouds", "description": "scattered clouds %d"}]}`,
			1792262400+int64(i)*10800, 10.0+float64(i), i)
	}
	return fmt.Sprintf(`{"cod": "200", "message": 0, "cnt": %d, "list": [%s], "city": {"name": "Lahore"}}`,
		n, strings.Join(items, ","))
}

// Helper function to set up logger mock with variadic argument expectations
func setupLoggerMockOpenWeatherMap(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	return mockLogger
}

func newTestProvider(t *testing.T, baseURL string) *OpenWeatherMapProviderAdapter {
	t.Helper()
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "test-api-key",
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Logger:  setupLoggerMockOpenWeatherMap(t),
	})
	return provider.(*OpenWeatherMapProviderAdapter)
}

func TestOpenWeatherMapProvider_GetCurrentConditions_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Pakistan", r.URL.Query().Get("q"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(pakistanCurrentJSON))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	provider := newTestProvider(t, mockServer.URL)

	data, err := provider.GetCurrentConditions(context.Background(), "Pakistan")

	require.NoError(t, err)
	assert.Equal(t, "Pakistan", data.Place)
	assert.Equal(t, "PK", data.Country)
	assert.Equal(t, "Clear", data.Category)
	assert.Equal(t, "clear sky", data.Description)
	assert.Equal(t, 21.4, data.Temperature)
	assert.Equal(t, 20.6, data.FeelsLike)
	assert.Equal(t, 38, data.Humidity)
	assert.Equal(t, 1014, data.Pressure)
	assert.Equal(t, 3.6, data.WindSpeed)
	assert.Equal(t, 0, data.CloudCover)
	assert.Equal(t, 10000, data.Visibility)
	assert.Equal(t, int64(1792262400), data.ObservedAt.Unix())
}

func TestOpenWeatherMapProvider_EncodesPlace(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "São Paulo, BR&x=1", r.URL.Query().Get("q"))
		assert.NotContains(t, r.URL.RawQuery, " ")
		_, _ = w.Write([]byte(pakistanCurrentJSON))
	}))
	defer mockServer.Close()

	provider := newTestProvider(t, mockServer.URL+"/")

	_, err := provider.GetCurrentConditions(context.Background(), "São Paulo, BR&x=1")
	assert.NoError(t, err)
}

func TestOpenWeatherMapProvider_GetCurrentConditions_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"HTTP404", http.StatusNotFound},
		{"CodInBodyWithOKStatus", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Nonexistentville", r.URL.Query().Get("q"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(notFoundJSON))
			}))
			defer mockServer.Close()

			provider := newTestProvider(t, mockServer.URL)

			data, err := provider.GetCurrentConditions(context.Background(), "Nonexistentville")

			assert.Nil(t, data)
			assert.True(t, errors.IsNotFoundError(err))
		})
	}
}

func TestOpenWeatherMapProvider_GetCurrentConditions_TransportFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		errMsg  string
	}{
		{
			name: "Unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
			},
			errMsg: "OpenWeatherMap returned status 401",
		},
		{
			name: "ServerError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			errMsg: "OpenWeatherMap returned status 500",
		},
		{
			name: "MalformedJSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"main": `))
			},
			errMsg: "failed to decode OpenWeatherMap response",
		},
		{
			name: "UnexpectedCod",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"cod": "429", "message": "too many requests"}`))
			},
			errMsg: "OpenWeatherMap returned code 429",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockServer := httptest.NewServer(tt.handler)
			defer mockServer.Close()

			provider := newTestProvider(t, mockServer.URL)

			data, err := provider.GetCurrentConditions(context.Background(), "London")

			assert.Nil(t, data)
			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errors.ExternalAPIError, appErr.Type)
			assert.Contains(t, appErr.Message, tt.errMsg)
		})
	}
}

func TestOpenWeatherMapProvider_ConnectionRefused(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := mockServer.URL
	mockServer.Close()

	provider := newTestProvider(t, baseURL)

	_, err := provider.GetCurrentConditions(context.Background(), "London")
	assert.Equal(t, errors.ExternalAPIError, errors.TypeOf(err))
}

func TestOpenWeatherMapProvider_RespectsContextCancellation(t *testing.T) {
	release := make(chan struct{})
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer mockServer.Close()
	defer close(release)

	provider := newTestProvider(t, mockServer.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := provider.GetCurrentConditions(ctx, "London")
	assert.Equal(t, errors.ExternalAPIError, errors.TypeOf(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOpenWeatherMapProvider_EmptyPlace(t *testing.T) {
	provider := newTestProvider(t, "http://127.0.0.1:0")

	_, err := provider.GetCurrentConditions(context.Background(), "  ")
	assert.True(t, errors.IsValidationError(err))

	_, err = provider.GetForecast(context.Background(), "")
	assert.True(t, errors.IsValidationError(err))
}

func TestOpenWeatherMapProvider_GetForecast_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "Lahore", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("appid"))
		_, _ = w.Write([]byte(forecastJSON(40)))
	}))
	defer mockServer.Close()

	provider := newTestProvider(t, mockServer.URL)

	data, err := provider.GetForecast(context.Background(), "Lahore")

	require.NoError(t, err)
	assert.Equal(t, "Lahore", data.Place)
	require.Len(t, data.Points, 40)
	for i, pt := range data.Points {
		assert.Equal(t, 1792262400+int64(i)*10800, pt.Time.Unix())
		assert.Equal(t, 10.0+float64(i), pt.Temperature)
		assert.Equal(t, "Clouds", pt.Category)
	}
	assert.Equal(t, "scattered clouds 0", data.Points[0].Description)
}

func TestOpenWeatherMapProvider_GetForecast_EmptyList(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(forecastJSON(0)))
	}))
	defer mockServer.Close()

	provider := newTestProvider(t, mockServer.URL)

	data, err := provider.GetForecast(context.Background(), "Lahore")

	require.NoError(t, err)
	assert.Empty(t, data.Points)
}

func TestOpenWeatherMapProvider_GetForecast_NotFound(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(notFoundJSON))
	}))
	defer mockServer.Close()

	provider := newTestProvider(t, mockServer.URL)

	data, err := provider.GetForecast(context.Background(), "Nonexistentville")

	assert.Nil(t, data)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResponseCode_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected responseCode
		wantErr  bool
	}{
		{`200`, "200", false},
		{`"200"`, "200", false},
		{`"404"`, "404", false},
		{`null`, "", false},
		{`true`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var c responseCode
			err := c.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestOpenWeatherMapProvider_GetProviderName(t *testing.T) {
	provider := newTestProvider(t, "")
	assert.Equal(t, "openweathermap", provider.GetProviderName())
	assert.Equal(t, defaultOpenWeatherMapBaseURL, provider.baseURL)
}
