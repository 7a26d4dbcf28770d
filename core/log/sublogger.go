// Package log provides the SubLogger facade every kernel and adapter
// package logs through. It keeps the teacher's named-subsystem-logger
// shape (Global, Conn, Wss, Http) but backs each SubLogger with a
// go.uber.org/zap SugaredLogger instead of a hand-rolled multiwriter, so
// structured fields survive into whatever sink the deployment wires up.
package log

import (
	"sync"

	"go.uber.org/zap"
)

// SubLogger is a named logging facade. Kernel code never talks to zap
// directly; it calls Info/Debug/Warn/Error on a SubLogger, whose name tags
// every entry with the subsystem that wrote it. All SubLoggers share the
// one backend set by SetBackend; there is no per-subsystem level.
type SubLogger struct {
	name string
	sc   *zap.SugaredLogger
}

var (
	baseOnce   sync.Once
	baseLogger *zap.Logger

	// Global, Conn, Wss, and Http mirror the teacher's per-subsystem sub
	// loggers: Global for adapter/connector wiring, Conn for signer and
	// session lifecycle events, Wss for WebSocket frames, Http for REST
	// requests.
	Global *SubLogger
	Conn   *SubLogger
	Wss    *SubLogger
	Http   *SubLogger
)

func base() *zap.Logger {
	baseOnce.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		baseLogger = l
	})
	return baseLogger
}

// NewSubLogger builds a new logger with the given name on the current
// backend. Nothing is registered: each call returns a fresh SubLogger.
func NewSubLogger(name string) *SubLogger {
	return &SubLogger{name: name, sc: base().Sugar().Named(name)}
}

// SetBackend replaces the zap.Logger every SubLogger is derived from. Call
// once at process startup before any SubLogger is used, e.g. to switch to
// zap.NewDevelopment() or a custom zapcore for test capture.
func SetBackend(l *zap.Logger) {
	baseLogger = l
	baseOnce.Do(func() {}) // ensure Do never re-runs and clobbers l
	Global = NewSubLogger("GLOBAL")
	Conn = NewSubLogger("CONN")
	Wss = NewSubLogger("WSS")
	Http = NewSubLogger("HTTP")
}

func init() {
	Global = NewSubLogger("GLOBAL")
	Conn = NewSubLogger("CONN")
	Wss = NewSubLogger("WSS")
	Http = NewSubLogger("HTTP")
}

func (s *SubLogger) Info(args ...interface{})            { s.sc.Info(args...) }
func (s *SubLogger) Infof(format string, args ...interface{}) { s.sc.Infof(format, args...) }
func (s *SubLogger) Debug(args ...interface{})            { s.sc.Debug(args...) }
func (s *SubLogger) Debugf(format string, args ...interface{}) { s.sc.Debugf(format, args...) }
func (s *SubLogger) Warn(args ...interface{})             { s.sc.Warn(args...) }
func (s *SubLogger) Warnf(format string, args ...interface{}) { s.sc.Warnf(format, args...) }
func (s *SubLogger) Error(args ...interface{})            { s.sc.Error(args...) }
func (s *SubLogger) Errorf(format string, args ...interface{}) { s.sc.Errorf(format, args...) }

// With returns a derived SubLogger carrying the given structured fields on
// every subsequent call, e.g. Conn.With("exchange", "binance").
func (s *SubLogger) With(keysAndValues ...interface{}) *SubLogger {
	return &SubLogger{name: s.name, sc: s.sc.With(keysAndValues...)}
}
