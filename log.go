package gotime

import (
	"sync"

	"github.com/ordishs/gotime/formatter"
	"github.com/ordishs/gotime/logger"
)

var (
	mu      sync.Mutex
	loggers = make(map[string]*logger.Logger)
)

// Log returns the logger for packageName, creating it from the settings on
// first use. The level can be forced with logLevelOption.
func Log(packageName string, logLevelOption ...logger.Level) *logger.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, found := loggers[packageName]; found {
		return l
	}

	var ll logger.Level

	if len(logLevelOption) > 0 {
		ll = logLevelOption[0]
	} else {
		logLevelSetting, _ := Config().Get("logLevel", "INFO")
		ll = logger.NewLevelFromString(logLevelSetting)
	}

	outputFormat, _ := Config().Get("logger_output_format", logger.DefaultOutputFormat)
	pattern, _ := Config().GetPattern("logger_timestamp_pattern", formatter.YearMonthDayHourMinuteSecondMillis)

	l := logger.New(packageName,
		logger.WithLevel(ll),
		logger.WithColour(Config().GetBool("logger_colour", true)),
		logger.WithTimestamps(Config().GetBool("logger_show_timestamps", true)),
		logger.WithTimestampPattern(pattern),
		logger.WithOutputFormat(outputFormat),
	)

	loggers[packageName] = l

	return l
}
