package textfmt

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's logger.
// This must be called before any formatting call.
func SetLogger(l *zap.Logger) {
	logger = l
}

// LogNotifier returns a Notifier that logs every invalid sequence found while
// decoding text of charset cs.
func LogNotifier(cs Charset) Notifier {
	l := Logger().With(zap.String("charset", cs.Name()))
	return func() {
		l.Debug("invalid sequence replaced")
	}
}
