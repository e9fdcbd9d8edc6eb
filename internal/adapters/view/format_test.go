package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{21.4, "21°C"},
		{21.5, "22°C"},
		{-0.4, "0°C"},
		{-2.5, "-2°C"},
		{-2.6, "-3°C"},
		{0, "0°C"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatTemperature(tt.in), "input %v", tt.in)
	}
}

func TestFormatStats(t *testing.T) {
	assert.Equal(t, "4 km/h", FormatWindSpeed(3.6))
	assert.Equal(t, "0 km/h", FormatWindSpeed(0.2))
	assert.Equal(t, "38%", FormatPercent(38))
	assert.Equal(t, "1014 hPa", FormatPressure(1014))
	assert.Equal(t, "10.0 km", FormatVisibility(10000))
	assert.Equal(t, "2.5 km", FormatVisibility(2500))
	assert.Equal(t, "0.0 km", FormatVisibility(0))
}

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{0, "12 AM"},
		{1, "1 AM"},
		{11, "11 AM"},
		{12, "12 PM"},
		{15, "3 PM"},
		{23, "11 PM"},
	}
	for _, tt := range tests {
		ts := time.Date(2026, 10, 17, tt.hour, 30, 0, 0, time.UTC)
		assert.Equal(t, tt.expected, FormatHour(ts, time.UTC))
	}
}

func TestFormatHour_UsesLocation(t *testing.T) {
	karachi := time.FixedZone("PKT", 5*60*60)
	ts := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "2 PM", FormatHour(ts, karachi))
}

func TestFormatDateLine(t *testing.T) {
	ts := time.Date(2026, 10, 17, 23, 5, 0, 0, time.UTC)
	assert.Equal(t, "Saturday, October 17, 2026 at 11:05 PM", FormatDateLine(ts, time.UTC))
}

func TestTimeOfDayAt(t *testing.T) {
	tests := []struct {
		hour     int
		expected TimeOfDay
	}{
		{4, Night},
		{5, Morning},
		{11, Morning},
		{12, Afternoon},
		{16, Afternoon},
		{17, Evening},
		{19, Evening},
		{20, Night},
		{0, Night},
	}
	for _, tt := range tests {
		ts := time.Date(2026, 10, 17, tt.hour, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.expected, TimeOfDayAt(ts, time.UTC), "hour %d", tt.hour)
	}
}
