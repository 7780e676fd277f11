package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mgutz/ansi"
	"github.com/ordishs/gotime/formatter"
)

// New returns a Logger for packageName. By default it logs at INFO, in
// colour, to stderr, with a millisecond UTC timestamp.
func New(packageName string, options ...Option) *Logger {
	l := &Logger{
		packageName:   packageName,
		colour:        true,
		showTimestamp: true,
		outputFormat:  DefaultOutputFormat,
		timestamps:    formatter.New(formatter.YearMonthDayHourMinuteSecondMillis),
		now:           time.Now,
		level:         INFO,
	}

	WithWriter(os.Stderr)(l)

	for _, o := range options {
		o(l)
	}

	return l
}

// Debugf Comment
func (l *Logger) Debugf(msg string, args ...interface{}) {
	l.output(DEBUG, msg, args...)
}

// Infof comment
func (l *Logger) Infof(msg string, args ...interface{}) {
	l.output(INFO, msg, args...)
}

// Warnf comment
func (l *Logger) Warnf(msg string, args ...interface{}) {
	l.output(WARN, msg, args...)
}

// Errorf comment
func (l *Logger) Errorf(msg string, args ...interface{}) {
	l.output(ERROR, msg, args...)
}

// Fatalf logs and exits the process.
func (l *Logger) Fatalf(msg string, args ...interface{}) {
	l.output(FATAL, msg, args...)
	os.Exit(1)
}

func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) SetLevel(ll Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = ll
}

func (l *Logger) Enabled(ll Level) bool {
	return ll >= l.GetLevel()
}

func (l *Logger) output(ll Level, msg string, args ...interface{}) {
	if !l.Enabled(ll) {
		return
	}

	// We want the level to be 5 chars.
	level := fmt.Sprintf("%-5s", ll.String())
	if l.colour {
		level = ansi.Color(level, levelColours[ll])
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "???"
		line = 0
	}

	fileLine := fmt.Sprintf("%s:%d", filepath.Base(file), line)

	var b []byte

	if l.showTimestamp {
		b = l.timestamps.AppendFormat(b, l.now(), l.timestamps.ActivePattern())
		b = append(b, ' ')
	}

	b = fmt.Appendf(b, l.outputFormat, fileLine, l.packageName, level)
	b = append(b, ' ')
	b = fmt.Appendf(b, msg, args...)

	l.out.Print(strings.TrimSuffix(string(b), "\n"))
}
