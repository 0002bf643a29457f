package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNew(t *testing.T) {
	logger := New("debug")
	require.NotNil(t, logger)
	require.NotNil(t, logger.Logger)
}

func TestNamed(t *testing.T) {
	logger := Default()
	child := logger.Named("triage")
	require.NotNil(t, child)
	assert.NotSame(t, logger.Logger, child.Logger)
}
