package log

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with a component tag stamped on every record.
type Logger struct {
	*slog.Logger
	component string
}

type Config struct {
	Level  slog.Level
	Format string // "text" or "json"
}

func DefaultConfig() Config {
	return Config{Level: slog.LevelInfo, Format: "text"}
}

func New(config Config) *Logger {
	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger:    slog.New(handler),
		component: "app",
	}
}

// WithComponent returns a logger whose records carry the given component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}

func (l *Logger) Component() string {
	return l.component
}

// SetDefault installs this logger as the process-wide slog default.
func SetDefault(logger *Logger) {
	slog.SetDefault(logger.Logger)
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
