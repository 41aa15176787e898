package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"travelbot/internal/config"

	"github.com/rs/zerolog"
)

func TestInitWithWriter_JSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	if err := InitWithWriter(config.LoggingConfig{Level: "debug", Format: "json"}, &buf); err != nil {
		t.Fatalf("InitWithWriter() error: %v", err)
	}

	Logger.Info().Str("intent", "greeting").Msg("classified")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["intent"] != "greeting" || entry["message"] != "classified" {
		t.Errorf("Unexpected log entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("Expected timestamp field")
	}
}

func TestInitWithWriter_LevelFilter(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	if err := InitWithWriter(config.LoggingConfig{Level: "warn", Format: "json"}, &buf); err != nil {
		t.Fatalf("InitWithWriter() error: %v", err)
	}

	Logger.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn level, got %q", buf.String())
	}
}

func TestInitWithWriter_Invalid(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		name string
		cfg  config.LoggingConfig
	}{
		{name: "Bad level", cfg: config.LoggingConfig{Level: "loud", Format: "json"}},
		{name: "Bad format", cfg: config.LoggingConfig{Level: "info", Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := InitWithWriter(tt.cfg, &bytes.Buffer{}); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
