package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLogger(t *testing.T) {
	l := Noop()
	require.NotNil(t, l)

	// All methods should be safe no-ops
	l.Debug("debug %d", 1)
	l.Info("info %s", "msg")
	l.Warn("warn")
	l.Error("error %v", nil)
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %d", 42)
	l.Info("fetched %d series", 7)
	l.Warn("throttled")
	l.Error("query failed: %s", "timeout")

	require.Len(t, l.Messages, 4)
	assert.Equal(t, LogMessage{Level: "debug", Message: "debug 42"}, l.Messages[0])
	assert.Equal(t, LogMessage{Level: "info", Message: "fetched 7 series"}, l.Messages[1])
	assert.Equal(t, LogMessage{Level: "warn", Message: "throttled"}, l.Messages[2])
	assert.Equal(t, LogMessage{Level: "error", Message: "query failed: timeout"}, l.Messages[3])
}

func TestBufferLoggerHasMessage(t *testing.T) {
	l := NewBufferLogger()
	l.Error("query failed: timeout")

	assert.True(t, l.HasMessage("error", "timeout"))
	assert.False(t, l.HasMessage("info", "timeout"))
	assert.False(t, l.HasMessage("error", "refused"))
}

func TestNewWritesToFile(t *testing.T) {
	path := t.TempDir() + "/vigil.log"

	l, err := New("collector", path)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("hello")
}
