package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init configures the global logger. Development gets human-readable text,
// everything else gets JSON for log aggregation.
func Init(env string) {
	var handler slog.Handler

	switch env {
	case "production":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// L returns the configured logger, initializing a default one if Init
// was never called (tests, one-off commands).
func L() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) { L().Debug(msg, args...) }
func Info(msg string, args ...any)  { L().Info(msg, args...) }
func Warn(msg string, args ...any)  { L().Warn(msg, args...) }
func Error(msg string, args ...any) { L().Error(msg, args...) }

// Fatal logs at error level and exits. Startup failures only.
func Fatal(msg string, args ...any) {
	L().Error(msg, args...)
	os.Exit(1)
}
