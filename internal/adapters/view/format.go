package view

import (
	"fmt"
	"math"
	"time"
)

// TimeOfDay buckets the local hour for background selection
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

const dateLineLayout = "Monday, January 2, 2006 at 03:04 PM"

// roundHalfUp rounds .5 toward positive infinity
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// FormatTemperature renders degrees Celsius as a whole number, e.g. "21°C"
func FormatTemperature(celsius float64) string {
	return fmt.Sprintf("%d°C", roundHalfUp(celsius))
}

// FormatWindSpeed renders the provider wind speed rounded, e.g. "4 km/h"
func FormatWindSpeed(speed float64) string {
	return fmt.Sprintf("%d km/h", roundHalfUp(speed))
}

func FormatPercent(v int) string {
	return fmt.Sprintf("%d%%", v)
}

func FormatPressure(hPa int) string {
	return fmt.Sprintf("%d hPa", hPa)
}

// FormatVisibility converts meters to kilometers at one decimal, e.g. "10.0 km"
func FormatVisibility(meters int) string {
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}

// FormatHour renders the hour of t in loc on a 12-hour clock: "12 AM", "3 PM", "12 PM"
func FormatHour(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	hour := t.Hour()
	switch {
	case hour == 0:
		return "12 AM"
	case hour == 12:
		return "12 PM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// FormatDateLine renders the long-form date shown above the search box
func FormatDateLine(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(dateLineLayout)
}

// TimeOfDayAt classifies the local hour: morning [5,12), afternoon [12,17), evening [17,20), night otherwise
func TimeOfDayAt(t time.Time, loc *time.Location) TimeOfDay {
	if loc != nil {
		t = t.In(loc)
	}
	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 20:
		return Evening
	default:
		return Night
	}
}
