package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/ordishs/gotime/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 2, 3, 4, 789000000, time.UTC)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := New("TEST", WithWriter(&buf), WithColour(false), withClock(fixedClock))

	logger.Infof("Hello %s", "world")

	line := buf.String()
	assert.Regexp(t, `^2024-03-01 02:03:04\.789 \| logger_test\.go:\d+\s+\| TEST \| INFO  \| Hello world\n$`, line)
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	logger := New("TEST", WithWriter(&buf), WithColour(false), WithTimestamps(false), WithLevel(WARN))

	logger.Debugf("debug")
	logger.Infof("info")
	assert.Empty(t, buf.String())

	logger.Warnf("warn")
	logger.Errorf("error")
	assert.Contains(t, buf.String(), "| WARN  | warn")
	assert.Contains(t, buf.String(), "| ERROR | error")

	buf.Reset()
	logger.SetLevel(DEBUG)
	assert.Equal(t, DEBUG, logger.GetLevel())

	logger.Debugf("debug")
	assert.Contains(t, buf.String(), "| DEBUG | debug")
}

func TestLoggerTimestampPattern(t *testing.T) {
	var buf bytes.Buffer

	logger := New("TEST",
		WithWriter(&buf),
		WithColour(false),
		WithTimestampPattern(formatter.EpochSeconds),
		withClock(fixedClock),
	)

	logger.Infof("x")

	require.NotEmpty(t, buf.String())
	assert.Regexp(t, `^1709258584 \|`, buf.String())
}

func TestLoggerColour(t *testing.T) {
	var buf bytes.Buffer

	logger := New("TEST", WithWriter(&buf), WithTimestamps(false))
	logger.Errorf("boom")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "boom")
}

func TestLoggerOutputFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := New("PKG", WithWriter(&buf), WithColour(false), WithTimestamps(false), WithOutputFormat("[%[3]s %[2]s]"))
	logger.Infof("message")

	assert.Equal(t, "[INFO  PKG] message\n", buf.String())
}

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, DEBUG, NewLevelFromString("debug"))
	assert.Equal(t, WARN, NewLevelFromString(" Warn "))
	assert.Equal(t, FATAL, NewLevelFromString("FATAL"))
	assert.Equal(t, INFO, NewLevelFromString("nonsense"))

	for ll, name := range levelNames {
		assert.Equal(t, name, ll.String())
		assert.Equal(t, ll, NewLevelFromString(name))
	}
}
