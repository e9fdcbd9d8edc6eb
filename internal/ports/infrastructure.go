package ports

import (
	"context"
	"time"
)

// WidgetConfig represents widget behavior configuration
type WidgetConfig struct {
	DefaultPlace  string
	ForecastLimit int
	IconBasePath  string
	SessionTTL    time.Duration
	Location      *time.Location
}

// AppConfig represents application configuration
type AppConfig struct {
	BaseURL string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// ProviderConfig describes the configured weather provider without exposing its credential
type ProviderConfig struct {
	BaseURL string
	Units   string
	Timeout time.Duration
	HasKey  bool
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWidgetConfig() WidgetConfig
	GetAppConfig() AppConfig
	GetServerConfig() ServerConfig
	GetProviderConfig() ProviderConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordProviderCall(ctx context.Context, endpoint string, success bool, duration time.Duration)
	RecordQueryOutcome(ctx context.Context, outcome string)
	RecordStaleRender(ctx context.Context)
}
