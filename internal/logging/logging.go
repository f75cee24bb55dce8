// Package logging provides the leveled logger injected into Hexpage
// components.
package logging

import (
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the logging capability passed to components at construction.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type Level = log.Level

const (
	LevelDebug = log.DebugLevel
	LevelInfo  = log.InfoLevel
	LevelWarn  = log.WarnLevel
	LevelError = log.ErrorLevel
	// LevelNone sits above every charm level, so nothing passes the filter.
	LevelNone Level = math.MaxInt32
)

var ErrUnknownLevel = log.ErrInvalidLevel

// ParseLevel accepts debug, info, warn (or warning), error, and none (or off),
// case-insensitive. An empty string parses as LevelInfo.
func ParseLevel(s string) (Level, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "":
		return LevelInfo, nil
	case "none", "off":
		return LevelNone, nil
	case "warning":
		return LevelWarn, nil
	default:
		return log.ParseLevel(name)
	}
}

type charmLogger struct {
	l *log.Logger
}

// New returns a Logger that writes timestamped messages at level and above to
// w. A nil writer or LevelNone yields Nop().
func New(w io.Writer, level Level) Logger {
	if w == nil || level == LevelNone {
		return Nop()
	}
	return &charmLogger{l: log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})}
}

// Scoped returns a Logger that prefixes every message with scope, e.g. "page".
// Loggers that were not built by New are returned unchanged.
func Scoped(l Logger, scope string) Logger {
	cl, ok := l.(*charmLogger)
	if !ok {
		return l
	}
	return &charmLogger{l: cl.l.WithPrefix(scope)}
}

func (c *charmLogger) Debug(format string, args ...any) { c.l.Debugf(format, args...) }
func (c *charmLogger) Info(format string, args ...any)  { c.l.Infof(format, args...) }
func (c *charmLogger) Warn(format string, args ...any)  { c.l.Warnf(format, args...) }
func (c *charmLogger) Error(format string, args ...any) { c.l.Errorf(format, args...) }

type nop struct{}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }
