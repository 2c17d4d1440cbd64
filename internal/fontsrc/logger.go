// internal/fontsrc/logger.go
package fontsrc

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the package logger. It is a no-op logger unless
// SetLogger was called.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger replaces the package logger. A nil logger restores the no-op
// default. Safe to call while fonts are being resolved.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
