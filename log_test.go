package gotime

import (
	"testing"

	"github.com/ordishs/gotime/logger"
	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	l := Log("TEST")

	assert.Same(t, l, Log("TEST"))
	assert.Equal(t, logger.INFO, l.GetLevel())

	l.Infof("Hello world")
	l.Errorf("Hello world")
}

func TestLogWithLevel(t *testing.T) {
	l := Log("TEST_DEBUG", logger.DEBUG)
	assert.Equal(t, logger.DEBUG, l.GetLevel())
}
