package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level представляет уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String возвращает строковое представление уровня логирования
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает уровень из конфигурации, неизвестные значения дают Info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// levelFatal лежит выше slog.LevelError, чтобы обработчик не отбросил его
const levelFatal = slog.Level(12)

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	case LevelFatal:
		return levelFatal
	default:
		return slog.LevelInfo
	}
}

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

type logger struct {
	log  *slog.Logger
	exit func(code int)
}

func NewLogger(out io.Writer, level Level, component string) Logger {
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level.slog(),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == levelFatal {
					a.Value = slog.StringValue(LevelFatal.String())
				}
			}

			return a
		},
	})

	return &logger{
		log:  slog.New(handler).With(slog.String("component", component)),
		exit: os.Exit,
	}
}

// DefaultLogger возвращает логгер по умолчанию
func DefaultLogger() Logger {
	return NewLogger(os.Stderr, LevelInfo, "offerhub")
}

// Nop возвращает логгер, который ничего не пишет
func Nop() Logger {
	return NewLogger(io.Discard, LevelFatal, "")
}

func (l *logger) Debugf(format string, args ...any) {
	l.logf(slog.LevelDebug, format, args...)
}

func (l *logger) Infof(format string, args ...any) {
	l.logf(slog.LevelInfo, format, args...)
}

func (l *logger) Warnf(format string, args ...any) {
	l.logf(slog.LevelWarn, format, args...)
}

func (l *logger) Errorf(format string, args ...any) {
	l.logf(slog.LevelError, format, args...)
}

// Fatalf логирует сообщение и завершает программу
func (l *logger) Fatalf(format string, args ...any) {
	l.logf(levelFatal, format, args...)
	l.exit(1)
}

func (l *logger) logf(level slog.Level, format string, args ...any) {
	ctx := context.Background()
	if !l.log.Enabled(ctx, level) {
		return
	}

	l.log.Log(ctx, level, fmt.Sprintf(format, args...))
}
