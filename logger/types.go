package logger

import (
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ordishs/gotime/formatter"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var (
	levelNames = map[Level]string{
		DEBUG: "DEBUG",
		INFO:  "INFO",
		WARN:  "WARN",
		ERROR: "ERROR",
		FATAL: "FATAL",
	}

	levelValues = map[string]Level{
		"DEBUG": DEBUG,
		"INFO":  INFO,
		"WARN":  WARN,
		"ERROR": ERROR,
		"FATAL": FATAL,
	}

	levelColours = map[Level]string{
		DEBUG: "blue",
		INFO:  "green",
		WARN:  "yellow",
		ERROR: "red",
		FATAL: "cyan",
	}
)

func (ll Level) String() string {
	return levelNames[ll]
}

// NewLevelFromString accepts any case. Unknown names give INFO.
func NewLevelFromString(s string) Level {
	ll, ok := levelValues[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return INFO
	}

	return ll
}

// DefaultOutputFormat takes file:line, package name and level.
const DefaultOutputFormat = "| %-20s| %-5s| %s |"

// Logger comment
type Logger struct {
	packageName   string
	colour        bool
	showTimestamp bool
	outputFormat  string
	timestamps    formatter.Formatter
	out           *log.Logger
	now           func() time.Time

	mu    sync.RWMutex
	level Level
}

type Option func(*Logger)

func WithLevel(ll Level) Option {
	return func(l *Logger) {
		l.level = ll
	}
}

func WithColour(enabled bool) Option {
	return func(l *Logger) {
		l.colour = enabled
	}
}

func WithTimestamps(enabled bool) Option {
	return func(l *Logger) {
		l.showTimestamp = enabled
	}
}

// WithTimestampPattern sets the pattern used for the timestamp prefix.
func WithTimestampPattern(p formatter.Pattern) Option {
	return func(l *Logger) {
		l.timestamps = l.timestamps.WithPattern(p)
	}
}

func WithOutputFormat(format string) Option {
	return func(l *Logger) {
		if format != "" {
			l.outputFormat = format
		}
	}
}

func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.out = log.New(w, "", 0)
	}
}

func withClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}
