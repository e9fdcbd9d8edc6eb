package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"weatherwidget.app/pkg/errors"
)

func TestNewQuery(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		ok       bool
	}{
		{"Plain", "Pakistan", "Pakistan", true},
		{"TrimsWhitespace", "  New York \t", "New York", true},
		{"Empty", "", "", false},
		{"WhitespaceOnly", "   \n", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := NewQuery(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, q.Place)
		})
	}
}

func TestCurrentConditions_IsValid(t *testing.T) {
	valid := func() CurrentConditions {
		return CurrentConditions{
			Place:       "Lahore",
			Country:     "PK",
			Temperature: 21.4,
			Category:    CategoryClear,
			Description: "clear sky",
			Humidity:    40,
			CloudCover:  0,
			Visibility:  10000,
		}
	}

	tests := []struct {
		name   string
		mutate func(c *CurrentConditions)
		errMsg string
	}{
		{name: "Valid", mutate: func(c *CurrentConditions) {}},
		{name: "EmptyPlace", mutate: func(c *CurrentConditions) { c.Place = "  " }, errMsg: "place cannot be empty"},
		{name: "BelowAbsoluteZero", mutate: func(c *CurrentConditions) { c.Temperature = -274 }, errMsg: "temperature cannot be below absolute zero"},
		{name: "AtAbsoluteZero", mutate: func(c *CurrentConditions) { c.Temperature = -273.15 }},
		{name: "HumidityTooHigh", mutate: func(c *CurrentConditions) { c.Humidity = 101 }, errMsg: "humidity must be between 0 and 100"},
		{name: "NegativeCloudCover", mutate: func(c *CurrentConditions) { c.CloudCover = -1 }, errMsg: "cloud cover must be between 0 and 100"},
		{name: "NegativeVisibility", mutate: func(c *CurrentConditions) { c.Visibility = -5 }, errMsg: "visibility cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.IsValid()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.errMsg)
		})
	}
}

func TestCurrentConditions_String(t *testing.T) {
	c := CurrentConditions{Place: "Lahore", Country: "PK", Temperature: 21.44, Description: "clear sky"}
	assert.Equal(t, "Lahore, PK: 21.4°C, clear sky", c.String())
}

func TestTruncateForecast(t *testing.T) {
	makePoints := func(n int) []ForecastPoint {
		base := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
		points := make([]ForecastPoint, n)
		for i := range points {
			points[i] = ForecastPoint{Time: base.Add(time.Duration(i) * 3 * time.Hour), Temperature: float64(i)}
		}
		return points
	}

	tests := []struct {
		name     string
		count    int
		limit    int
		expected int
	}{
		{"Empty", 0, 5, 0},
		{"FewerThanLimit", 3, 5, 3},
		{"ExactlyLimit", 5, 5, 5},
		{"FullProviderPayload", 40, 5, 5},
		{"NonPositiveLimitUsesDefault", 40, 0, DefaultForecastLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := makePoints(tt.count)
			out := TruncateForecast(in, tt.limit)

			assert.Len(t, out, tt.expected)
			for i := range out {
				assert.Equal(t, in[i], out[i], "order must match provider order")
			}
		})
	}
}

func TestTruncateForecast_DoesNotAliasInput(t *testing.T) {
	in := []ForecastPoint{{Temperature: 1}, {Temperature: 2}}
	out := TruncateForecast(in, 5)
	out[0].Temperature = 99
	assert.Equal(t, 1.0, in[0].Temperature)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, FailureNone, Classify(nil))
	assert.Equal(t, FailureNotFound, Classify(errors.NewNotFoundError("city not found")))
	assert.Equal(t, FailureTransport, Classify(errors.NewExternalAPIError("status 500", nil)))
	assert.Equal(t, FailureTransport, Classify(assert.AnError))
	assert.Equal(t, FailureForecastUnavailable, Classify(errors.NewForecastUnavailableError("down", nil)))
}

func TestStateAndOutcomeNames(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "shown", StateShown.String())
	assert.Equal(t, "not_found", StateNotFound.String())

	text, err := StateNotFound.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "not_found", string(text))

	assert.Equal(t, "query_failed", OutcomeQueryFailed.String())
	assert.Equal(t, "superseded", OutcomeSuperseded.String())
	assert.Equal(t, "transport", FailureTransport.String())
}
