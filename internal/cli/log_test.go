package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("resolving") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("scan failed") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("probe") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("probe") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Resolved serde")

	out := buf.String()
	assert.Contains(t, out, "Resolved serde")
	assert.Regexp(t, `\(\d+(\.\d+)?m?s\)`, out)
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), custom)
	require.Same(t, custom, loggerFromContext(ctx))

	loggerFromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestLoggerFromContextDefault(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))
}
