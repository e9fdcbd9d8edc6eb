package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewWithOptions_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Level: "warn", Output: &buf})

	log.Info("dropped")
	log.WithField("place", "London").Warn("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "London", entry["place"])
}

func TestNewWithOptions_Text(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Format: "text", Output: &buf})

	log.WithFields(map[string]interface{}{"generation": 3}).Info("query started")

	assert.Contains(t, buf.String(), "msg=\"query started\"")
	assert.Contains(t, buf.String(), "generation=3")
}
