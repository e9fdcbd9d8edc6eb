package weather

import (
	"weatherwidget.app/pkg/errors"
)

// State is the visual state of a widget
type State int

const (
	StateIdle State = iota
	StateLoading
	StateShown
	StateNotFound
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateShown:
		return "shown"
	case StateNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so states serialize by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome describes how a single submitted query ended
type Outcome int

const (
	// OutcomeIgnored means the place was blank and nothing happened
	OutcomeIgnored Outcome = iota
	// OutcomeShown means current conditions were rendered
	OutcomeShown
	// OutcomeQueryFailed covers both an unknown place and a failed current-conditions fetch
	OutcomeQueryFailed
	// OutcomeSuperseded means a newer query took over before this one finished rendering
	OutcomeSuperseded
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeShown:
		return "shown"
	case OutcomeQueryFailed:
		return "query_failed"
	case OutcomeSuperseded:
		return "superseded"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// FailureKind distinguishes why a fetch failed even though the widget shows one panel for both
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureNotFound
	FailureTransport
	FailureForecastUnavailable
)

// String returns the string representation of the failure kind
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureNotFound:
		return "not_found"
	case FailureTransport:
		return "transport"
	case FailureForecastUnavailable:
		return "forecast_unavailable"
	default:
		return "unknown"
	}
}

// Classify maps a fetch error onto the failure taxonomy.
// Anything that is not an explicit provider not-found is a transport failure.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	switch errors.TypeOf(err) {
	case errors.NotFoundError:
		return FailureNotFound
	case errors.ForecastUnavailableError:
		return FailureForecastUnavailable
	default:
		return FailureTransport
	}
}

// Result reports what a Submit call did
type Result struct {
	Generation  uint64
	Place       string
	Outcome     Outcome
	Failure     FailureKind
	Err         error
	ForecastErr error
}
