package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level, format string
		want          zapcore.Level
	}{
		{"debug", "console", zapcore.DebugLevel},
		{"warn", "json", zapcore.WarnLevel},
		{"", "", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		l, err := New(tt.level, tt.format)
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(tt.want))
		if tt.want > zapcore.DebugLevel {
			assert.False(t, l.Core().Enabled(tt.want-1))
		}
	}
}

func TestNew_RejectsUnknownValues(t *testing.T) {
	_, err := New("nonsense", "json")
	assert.Error(t, err)

	_, err = New("info", "xml")
	assert.ErrorContains(t, err, `log format "xml"`)
}

func TestNewWithWriter_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "info", FormatJSON)
	require.NoError(t, err)

	l.Info("hello")
	require.NoError(t, l.Sync())

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "info", line["level"])
	assert.Contains(t, line, "timestamp")
}
