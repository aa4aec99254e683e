package log

import (
	"fmt"
	"strings"
)

type level byte

const (
	levelDebug level = 1 << iota
	levelInfo
	levelWarn
	levelError
)

type filter struct {
	next    Logger
	allowed level
}

// Option sets a parameter for the filter.
type Option func(*filter)

// NewFilter wraps next and implements filtering. See the commentary on the
// Option functions for a detailed description of how to configure levels.
// If no options are provided, all leveled log events created with Debug,
// Info, Warn or Error helper methods are squelched.
func NewFilter(next Logger, options ...Option) Logger {
	l := &filter{next: next}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *filter) Debug(msg string, keyvals ...any) {
	if l.allowed&levelDebug != 0 {
		l.next.Debug(msg, keyvals...)
	}
}

func (l *filter) Info(msg string, keyvals ...any) {
	if l.allowed&levelInfo != 0 {
		l.next.Info(msg, keyvals...)
	}
}

func (l *filter) Warn(msg string, keyvals ...any) {
	if l.allowed&levelWarn != 0 {
		l.next.Warn(msg, keyvals...)
	}
}

func (l *filter) Error(msg string, keyvals ...any) {
	if l.allowed&levelError != 0 {
		l.next.Error(msg, keyvals...)
	}
}

func (l *filter) With(keyvals ...any) Logger {
	return &filter{next: l.next.With(keyvals...), allowed: l.allowed}
}

func (l *filter) Impl() any {
	return l.next.Impl()
}

// AllowLevel returns an option for the given level or error if no option
// exists for such level.
func AllowLevel(lvl string) (Option, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return AllowDebug(), nil
	case "info":
		return AllowInfo(), nil
	case "warn":
		return AllowWarn(), nil
	case "error":
		return AllowError(), nil
	case "none":
		return AllowNone(), nil
	default:
		return nil, fmt.Errorf("expected either \"info\", \"debug\", \"warn\", \"error\" or \"none\" level, given %s", lvl)
	}
}

// AllowAll is an alias for AllowDebug.
func AllowAll() Option {
	return AllowDebug()
}

// AllowDebug allows error, warn, info and debug level log events to pass.
func AllowDebug() Option {
	return allowed(levelError | levelWarn | levelInfo | levelDebug)
}

// AllowInfo allows error, warn and info level log events to pass.
func AllowInfo() Option {
	return allowed(levelError | levelWarn | levelInfo)
}

// AllowWarn allows error and warn level log events to pass.
func AllowWarn() Option {
	return allowed(levelError | levelWarn)
}

// AllowError allows only error level log events to pass.
func AllowError() Option {
	return allowed(levelError)
}

// AllowNone allows no leveled log events to pass.
func AllowNone() Option {
	return allowed(0)
}

func allowed(allowed level) Option {
	return func(l *filter) { l.allowed = allowed }
}
