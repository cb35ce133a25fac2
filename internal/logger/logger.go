package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var _logger atomic.Pointer[zap.Logger]

func init() {
	_logger.Store(zap.NewNop())
}

// Set replaces the package logger. nil restores the no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	_logger.Store(l)
}

func Sync() {
	_ = _logger.Load().Sync()
}

func Error(message string, field ...zap.Field) {
	_logger.Load().Error(message, field...)
}
