package signal

import (
	"fmt"
	"os"
	"sync"

	"github.com/zerodha/logf"
)

// Logger is the engine-wide logging contract (§2.1). Every system that
// takes a Logger treats it as optional: a nil Logger is replaced with
// NewNopLogger() rather than triggering a panic, so tests and
// library-style embedding never need to wire a real sink.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger backs Logger with logf, the structured leveled logger
// used across this stack. Printf-style callers (the bulk of this engine's
// hot-path warnings) are adapted into logf's field-based API by folding
// the formatted message into a single "msg" field.
type DefaultLogger struct {
	mu     sync.Mutex
	debug  bool
	prefix string
	sink   logf.Logger
}

// NewDefaultLogger builds a DefaultLogger writing to stderr with an
// optional prefix field attached to every line.
func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	opts := logf.Opts{
		Writer:          os.Stderr,
		EnableColor:     true,
		EnableCaller:    false,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		Level:           logf.InfoLevel,
	}
	if debug {
		opts.Level = logf.DebugLevel
	}
	sink := logf.New(opts)
	if prefix != "" {
		sink = sink.WithFields(logf.Fields{"component": prefix})
	}
	return &DefaultLogger{debug: debug, prefix: prefix, sink: sink}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
	if enabled {
		l.sink.SetLevel(logf.DebugLevel)
	} else {
		l.sink.SetLevel(logf.InfoLevel)
	}
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	l.sink.Debug(fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.sink.Info(fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.sink.Warn(fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.sink.Error(fmt.Sprintf(format, args...))
}

type nopLogger struct{}

// NewNopLogger returns a Logger that discards everything. Never returns
// nil; safe as a fallback default wherever a caller-supplied Logger is
// absent.
func NewNopLogger() Logger { return &nopLogger{} }

func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}
