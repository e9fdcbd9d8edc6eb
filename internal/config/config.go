package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherwidget.app/pkg/errors"
)

const (
	maxPortNumber        = 65535
	maxForecastLimit     = 40
	maxTimeoutSeconds    = 120
	maxSessionTTLMinutes = 1440
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig  `split_words:"true"`
	Weather    WeatherConfig `split_words:"true"`
	Widget     WidgetConfig  `split_words:"true"`
	Log        LogConfig     `split_words:"true"`
	AppBaseURL string        `envconfig:"APP_URL" default:"http://localhost:8080"`
}

type ServerConfig struct {
	Port      int    `envconfig:"SERVER_PORT" default:"8080"`
	StaticDir string `envconfig:"SERVER_STATIC_DIR" default:"./public/static"`
}

type WeatherConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	Units                 string `envconfig:"WEATHER_UNITS" default:"metric"`
	TimeoutSeconds        int    `envconfig:"WEATHER_TIMEOUT_SECONDS" default:"10"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_providers.log"`
}

// Timeout returns the provider HTTP timeout
func (w WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

type WidgetConfig struct {
	DefaultPlace      string `envconfig:"WIDGET_DEFAULT_PLACE" default:"Pakistan"`
	ForecastLimit     int    `envconfig:"WIDGET_FORECAST_LIMIT" default:"5"`
	IconBasePath      string `envconfig:"WIDGET_ICON_BASE_PATH" default:"/static/icons"`
	SessionTTLMinutes int    `envconfig:"WIDGET_SESSION_TTL_MINUTES" default:"60"`
	Timezone          string `envconfig:"WIDGET_TIMEZONE" default:"Local"`
}

// Location resolves Timezone. Validate guarantees it loads.
func (w WidgetConfig) Location() *time.Location {
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// LogFormat represents the output format of the application log
type LogFormat int

const (
	LogFormatUnknown LogFormat = iota
	LogFormatJSON
	LogFormatText
)

// String returns the string representation of log format
func (f LogFormat) String() string {
	switch f {
	case LogFormatJSON:
		return "json"
	case LogFormatText:
		return "text"
	default:
		return "unknown"
	}
}

// IsValid checks if the log format is valid
func (f LogFormat) IsValid() bool {
	return f == LogFormatJSON || f == LogFormatText
}

// LogFormatFromString converts string to LogFormat enum
func LogFormatFromString(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	case "text":
		return LogFormatText
	default:
		return LogFormatUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (f *LogFormat) UnmarshalText(text []byte) error {
	*f = LogFormatFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (f LogFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

type LogConfig struct {
	Level  string    `envconfig:"LOG_LEVEL" default:"info"`
	Format LogFormat `envconfig:"LOG_FORMAT" default:"json"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Widget.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.validateAppBaseURL(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAppBaseURL() error {
	if c.AppBaseURL == "" {
		return errors.NewConfigurationError("APP_URL cannot be empty", nil)
	}
	if !isHTTPURL(c.AppBaseURL) {
		return errors.NewConfigurationError("APP_URL must start with http:// or https://", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.OpenWeatherMapKey == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY must be configured", nil)
	}
	if !isHTTPURL(w.OpenWeatherMapBaseURL) {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.Units != "metric" {
		return errors.NewConfigurationError("WEATHER_UNITS must be metric", nil)
	}
	if w.TimeoutSeconds < 1 || w.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("WEATHER_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when WEATHER_ENABLE_LOGGING is set", nil)
	}
	return nil
}

func (w *WidgetConfig) Validate() error {
	if strings.TrimSpace(w.DefaultPlace) == "" {
		return errors.NewConfigurationError("WIDGET_DEFAULT_PLACE cannot be empty", nil)
	}
	if w.ForecastLimit < 1 || w.ForecastLimit > maxForecastLimit {
		return errors.NewConfigurationError("WIDGET_FORECAST_LIMIT must be between 1 and 40", nil)
	}
	if w.IconBasePath == "" {
		return errors.NewConfigurationError("WIDGET_ICON_BASE_PATH cannot be empty", nil)
	}
	if w.SessionTTLMinutes < 1 || w.SessionTTLMinutes > maxSessionTTLMinutes {
		return errors.NewConfigurationError("WIDGET_SESSION_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if _, err := time.LoadLocation(w.Timezone); err != nil {
		return errors.NewConfigurationError("WIDGET_TIMEZONE must be a valid IANA time zone", err)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	if !l.Format.IsValid() {
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
	return nil
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
