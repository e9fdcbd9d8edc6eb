package external

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"weatherwidget.app/internal/mocks"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

func TestWeatherProviderLoggingDecorator_CurrentConditions(t *testing.T) {
	testProvider := &testWeatherProvider{
		name:    "test-provider",
		current: &ports.CurrentConditionsData{Place: "TestCity", Temperature: 22.0, Category: "Clear", Description: "clear sky"},
	}
	testLogger := &testLogger{}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.GetCurrentConditions(context.Background(), "TestCity")

	assert.NoError(t, err)
	assert.Equal(t, 22.0, result.Temperature)
	assert.Equal(t, 2, len(testLogger.entries))

	requestLog := testLogger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weather API request started", requestLog.message)
	assert.Equal(t, "test-provider", requestLog.fields["provider"])
	assert.Equal(t, "TestCity", requestLog.fields["place"])
	assert.Equal(t, "weather", requestLog.fields["endpoint"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := testLogger.entries[1]
	assert.Equal(t, "INFO", responseLog.level)
	assert.Equal(t, "Weather API request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, 22.0, responseLog.fields["temperature"])
	assert.Equal(t, "Clear", responseLog.fields["category"])
	assert.Contains(t, responseLog.fields, "duration_ms")

	assert.Equal(t, "logged(test-provider)", decorator.GetProviderName())
}

func TestWeatherProviderLoggingDecorator_Forecast(t *testing.T) {
	testProvider := &testWeatherProvider{
		name:     "test-provider",
		forecast: &ports.ForecastData{Place: "TestCity", Points: make([]ports.ForecastPointData, 40)},
	}
	testLogger := &testLogger{}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.GetForecast(context.Background(), "TestCity")

	assert.NoError(t, err)
	assert.Len(t, result.Points, 40)
	assert.Equal(t, 2, len(testLogger.entries))
	assert.Equal(t, "forecast", testLogger.entries[0].fields["endpoint"])
	assert.Equal(t, 40, testLogger.entries[1].fields["points"])
}

func TestWeatherProviderLoggingDecorator_ErrorHandling(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedLevel string
		expectedMsg   string
	}{
		{
			name:          "TransportFailure",
			err:           stderrors.New("API rate limit exceeded"),
			expectedLevel: "ERROR",
			expectedMsg:   "Weather API request failed",
		},
		{
			name:          "NotFound",
			err:           errors.NewNotFoundError("city not found"),
			expectedLevel: "WARN",
			expectedMsg:   "Weather API place not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testProvider := &testWeatherProvider{name: "error-provider", err: tt.err}
			testLogger := &testLogger{}

			decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

			result, err := decorator.GetCurrentConditions(context.Background(), "InvalidCity")

			assert.Equal(t, tt.err, err)
			assert.Nil(t, result)
			assert.Equal(t, 2, len(testLogger.entries))

			errorLog := testLogger.entries[1]
			assert.Equal(t, tt.expectedLevel, errorLog.level)
			assert.Equal(t, tt.expectedMsg, errorLog.message)
			assert.Equal(t, "error-provider", errorLog.fields["provider"])
			assert.Equal(t, "InvalidCity", errorLog.fields["place"])
			assert.Equal(t, "error", errorLog.fields["event"])
			assert.Equal(t, tt.err.Error(), errorLog.fields["error"])
			assert.Contains(t, errorLog.fields, "duration_ms")
		})
	}
}

func TestWeatherProviderLoggingDecorator_DurationTracking(t *testing.T) {
	testProvider := &testWeatherProvider{
		name:    "slow-provider",
		current: &ports.CurrentConditionsData{Place: "SlowCity", Temperature: 20.0},
		delay:   10 * time.Millisecond,
	}
	testLogger := &testLogger{}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	_, err := decorator.GetCurrentConditions(context.Background(), "SlowCity")
	assert.NoError(t, err)

	duration, ok := testLogger.entries[1].fields["duration_ms"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
}

func TestWeatherProviderMetricsDecorator(t *testing.T) {
	mockMetrics := mocks.NewMetricsCollector(t)
	mockMetrics.EXPECT().RecordProviderCall(mock.Anything, "weather", true, mock.AnythingOfType("time.Duration")).Once()
	mockMetrics.EXPECT().RecordProviderCall(mock.Anything, "forecast", false, mock.AnythingOfType("time.Duration")).Once()

	testProvider := &testWeatherProvider{
		name:        "metered",
		current:     &ports.CurrentConditionsData{Place: "Oslo"},
		forecastErr: stderrors.New("timeout"),
	}

	decorator := NewWeatherProviderMetricsDecorator(testProvider, mockMetrics)

	_, err := decorator.GetCurrentConditions(context.Background(), "Oslo")
	assert.NoError(t, err)
	_, err = decorator.GetForecast(context.Background(), "Oslo")
	assert.EqualError(t, err, "timeout")
	assert.Equal(t, "metered", decorator.GetProviderName())
}

// Test helper structs
type testWeatherProvider struct {
	name        string
	current     *ports.CurrentConditionsData
	forecast    *ports.ForecastData
	err         error
	forecastErr error
	delay       time.Duration
}

func (p *testWeatherProvider) wait(ctx context.Context) error {
	if p.delay == 0 {
		return nil
	}
	select {
	case <-time.After(p.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *testWeatherProvider) GetCurrentConditions(ctx context.Context, place string) (*ports.CurrentConditionsData, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.current, nil
}

func (p *testWeatherProvider) GetForecast(ctx context.Context, place string) (*ports.ForecastData, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.forecastErr != nil {
		return nil, p.forecastErr
	}
	return p.forecast, nil
}

func (p *testWeatherProvider) GetProviderName() string {
	return p.name
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}

func BenchmarkWeatherProviderLoggingDecorator(b *testing.B) {
	testProvider := &testWeatherProvider{
		name:    "benchmark-provider",
		current: &ports.CurrentConditionsData{Place: "BenchmarkCity", Temperature: 20.0},
	}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, &testLogger{})

	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = decorator.GetCurrentConditions(context.Background(), "BenchmarkCity")
		}
	})
}
