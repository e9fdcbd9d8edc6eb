package infrastructure

import (
	"context"

	"weatherwidget.app/internal/ports"
)

// WeatherAPIHealthChecker implements weather API health checking
type WeatherAPIHealthChecker struct {
	provider ports.WeatherProvider
	config   ports.ProviderConfig
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(provider ports.WeatherProvider, config ports.ProviderConfig) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{provider: provider, config: config}
}

// Check reports whether the provider is wired and has a credential.
// It does not call the remote API.
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    "healthy",
		Details: map[string]interface{}{
			"baseURL":   w.config.BaseURL,
			"units":     w.config.Units,
			"timeout":   w.config.Timeout.String(),
			"keyLoaded": w.config.HasKey,
		},
	}

	switch {
	case w.provider == nil:
		status.Status = "unhealthy"
		status.Error = "weather provider is not available"
	case !w.config.HasKey:
		status.Status = "unhealthy"
		status.Error = "weather provider API key is not configured"
	default:
		status.Details["provider"] = w.provider.GetProviderName()
	}

	return status
}

// SessionCounter reports the number of live widget sessions
type SessionCounter interface {
	Count() int
}

// SessionHealthChecker reports on active widget sessions
type SessionHealthChecker struct {
	sessions SessionCounter
}

// NewSessionHealthChecker creates a new session health checker
func NewSessionHealthChecker(sessions SessionCounter) *SessionHealthChecker {
	return &SessionHealthChecker{sessions: sessions}
}

// Check reports the active session count
func (s *SessionHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	if s.sessions == nil {
		return ports.HealthStatus{
			Component: "sessions",
			Status:    "unhealthy",
			Error:     "session store is not available",
		}
	}
	return ports.HealthStatus{
		Component: "sessions",
		Status:    "healthy",
		Details: map[string]interface{}{
			"active": s.sessions.Count(),
		},
	}
}
