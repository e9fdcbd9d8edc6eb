package infrastructure

import (
	"context"

	"weatherwidget.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	weatherAPIChecker ports.WeatherAPIHealthChecker
	sessionChecker    ports.SessionHealthChecker
	configProvider    ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	WeatherAPIChecker ports.WeatherAPIHealthChecker
	SessionChecker    ports.SessionHealthChecker
	ConfigProvider    ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		weatherAPIChecker: config.WeatherAPIChecker,
		sessionChecker:    config.SessionChecker,
		configProvider:    config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.weatherAPIChecker != nil {
		results["weatherAPI"] = s.weatherAPIChecker.Check(ctx)
	}

	if s.sessionChecker != nil {
		results["sessions"] = s.sessionChecker.Check(ctx)
	}

	if s.configProvider != nil {
		appConfig := s.configProvider.GetAppConfig()
		widgetConfig := s.configProvider.GetWidgetConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details: map[string]interface{}{
				"appBaseURL":    appConfig.BaseURL,
				"defaultPlace":  widgetConfig.DefaultPlace,
				"forecastLimit": widgetConfig.ForecastLimit,
			},
		}
	}

	return results
}
