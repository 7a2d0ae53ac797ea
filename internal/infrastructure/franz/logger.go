package franz

import (
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"
)

// slogLogger пускает внутренние логи franz-go в slog.
type slogLogger struct {
	log   *slog.Logger
	level kgo.LogLevel
}

func newLogger(log *slog.Logger, level string) *slogLogger {
	if log == nil {
		log = slog.Default()
	}
	return &slogLogger{log: log.With("component", "franz"), level: parseLevel(level)}
}

func parseLevel(level string) kgo.LogLevel {
	switch level {
	case "none":
		return kgo.LogLevelNone
	case "error":
		return kgo.LogLevelError
	case "info":
		return kgo.LogLevelInfo
	case "debug":
		return kgo.LogLevelDebug
	default:
		return kgo.LogLevelWarn
	}
}

func (l *slogLogger) Level() kgo.LogLevel { return l.level }

func (l *slogLogger) Log(level kgo.LogLevel, msg string, keyvals ...any) {
	switch level {
	case kgo.LogLevelError:
		l.log.Error(msg, keyvals...)
	case kgo.LogLevelWarn:
		l.log.Warn(msg, keyvals...)
	case kgo.LogLevelInfo:
		l.log.Info(msg, keyvals...)
	case kgo.LogLevelDebug:
		l.log.Debug(msg, keyvals...)
	}
}
