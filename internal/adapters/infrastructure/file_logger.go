package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// FileLoggerAdapter appends provider request logs to a file as JSON lines
type FileLoggerAdapter struct {
	file      *os.File
	component string
	mutex     sync.Mutex
}

// FileLoggerParams holds parameters for creating a file logger
type FileLoggerParams struct {
	Path      string
	Component string
}

// NewFileLoggerAdapter opens (or creates) the log file in append mode
func NewFileLoggerAdapter(params FileLoggerParams) (*FileLoggerAdapter, error) {
	if params.Path == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(params.Path), 0755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	file, err := os.OpenFile(params.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to open log file", err)
	}

	return &FileLoggerAdapter{
		file:      file,
		component: params.Component,
	}, nil
}

// Debug logs a debug message to file
func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry("DEBUG", msg, fields...)
}

// Info logs an info message to file
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry("INFO", msg, fields...)
}

// Warn logs a warning message to file
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry("WARN", msg, fields...)
}

// Error logs an error message to file
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry("ERROR", msg, fields...)
}

// Close closes the underlying file
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

func (f *FileLoggerAdapter) writeLogEntry(level, msg string, fields ...ports.Field) {
	logEntry := make(map[string]interface{}, len(fields)+4)
	for _, field := range fields {
		logEntry[field.Key] = field.Value
	}
	logEntry["timestamp"] = time.Now().Format(time.RFC3339)
	logEntry["level"] = level
	logEntry["message"] = msg
	if f.component != "" {
		logEntry["component"] = f.component
	}

	line, err := json.Marshal(logEntry)
	if err != nil {
		line, _ = json.Marshal(map[string]string{
			"timestamp": time.Now().Format(time.RFC3339),
			"level":     "ERROR",
			"message":   "failed to marshal log entry: " + err.Error(),
		})
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return
	}
	if _, err := f.file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
