package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		input string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{" WARN ", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"chatty", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			log := New(tt.input, FormatText, &bytes.Buffer{})
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "JSON", &buf)

	log.WithField("report_id", "abc").Info("report created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "report created", entry["msg"])
	assert.Equal(t, "abc", entry["report_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", FormatText, &buf)

	log.WithField("backend", "memory").Info("store opened")

	assert.Contains(t, buf.String(), `msg="store opened"`)
	assert.Contains(t, buf.String(), "backend=memory")
}

func TestLevelFiltersLowerEntries(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", FormatText, &buf)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.NotPanics(t, func() { log.Error("nowhere") })
}
