package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, LevelWarn, "test")

	log.Debugf("debug %d", 1)
	log.Infof("info %d", 2)
	log.Warnf("warn %d", 3)
	log.Errorf("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "warn 3")
	assert.Contains(t, out, "error 4")
	assert.Contains(t, out, "component=test")
}

func TestLogger_Fatalf(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, LevelInfo, "test").(*logger)

	code := -1
	l.exit = func(c int) { code = c }

	l.Fatalf("boom: %s", "disk")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "level=FATAL")
	assert.Contains(t, buf.String(), "boom: disk")
}

func TestParseLevel(t *testing.T) {
	testCases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"fatal":   LevelFatal,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}

	for in, want := range testCases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Errorf("ignored %v", 42)
	})
}
