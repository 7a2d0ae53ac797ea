package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config — настройки логгера. Переменные: BRIDGE_LOG_LEVEL, BRIDGE_LOG_FILE.
type Config struct {
	Level string `envconfig:"LEVEL" default:"info"`
	File  string `envconfig:"FILE" default:""` // пусто — только stderr
}

// logWriter возвращает writer в stderr и, если задан path, ещё и в файл.
// При ошибке открытия файла возвращает только stderr.
func logWriter(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// New возвращает текстовый логгер по конфигу.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(logWriter(cfg.File), cfg.Level)
}

// NewWithWriter возвращает текстовый логгер с заданным уровнем (debug, info, warn, error) поверх w.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel переводит строку в slog.Level; неизвестное значение — Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
