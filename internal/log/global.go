package log

import (
	"log/slog"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[Logger]

// SetDefaultLogger installs logger as the logger of packages that were
// given none. It also becomes slog's default so third-party libraries
// logging through slog share its level and output. A nil logger restores
// the built-in default.
func SetDefaultLogger(logger *Logger) {
	if logger == nil {
		logger = Default()
	}
	defaultLogger.Store(logger)
	slog.SetDefault(logger.Logger)
}

// DefaultLogger returns the logger set by SetDefaultLogger, or a
// warn-level stderr logger before the first call.
func DefaultLogger() *Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := Default()
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	return defaultLogger.Load()
}
