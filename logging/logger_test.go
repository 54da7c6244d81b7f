package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtrace/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logging.Level{
		"debug": logging.LevelDebug,
		"INFO":  logging.LevelInfo,
		"":      logging.LevelInfo,
		"warn":  logging.LevelWarn,
		"Error": logging.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrBadLevel)
}

func TestNewLogger_JSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewLogger(logging.Config{
		Level: logging.LevelWarn, Format: "json", Output: &buf, Component: "search",
	})
	l.Info("dropped")
	l.Warn("kept", "algo", "ucs")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "ucs", rec["algo"])
	assert.Equal(t, "search", rec["component"])
	assert.Equal(t, "WARN", rec["level"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	l := logging.With(logging.NewLogger(logging.Config{Output: &buf}), "run", "r1")
	l.Info("hello", "n", 3)
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "n=3")
	assert.Contains(t, buf.String(), "run=r1")
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, logging.NoOpLogger{}, logging.OrNop(nil))
	var buf bytes.Buffer
	l := logging.NewLogger(logging.Config{Output: &buf})
	assert.Same(t, l, logging.OrNop(l))
	// NoOpLogger accepts anything silently
	logging.NoOpLogger{}.Error("x", "k", 1)
	assert.Equal(t, logging.NoOpLogger{}, logging.With(logging.NoOpLogger{}, "k", 1))
}
