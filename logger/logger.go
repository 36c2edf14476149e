package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID retrieves the request id from ctx, or "" when absent.
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// Init installs the default slog logger writing to stdout.
func Init(level, format string) *slog.Logger {
	return InitWithWriter(os.Stdout, level, format)
}

func InitWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

func withRequestID(ctx context.Context, args []slog.Attr) []slog.Attr {
	if id := RequestID(ctx); id != "" {
		args = append(args, slog.String("request_id", id))
	}
	return args
}

func Info(ctx context.Context, msg string, args ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelInfo, msg, withRequestID(ctx, args)...)
}

func Debug(ctx context.Context, msg string, args ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelDebug, msg, withRequestID(ctx, args)...)
}

func Warn(ctx context.Context, msg string, args ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelWarn, msg, withRequestID(ctx, args)...)
}

func Error(ctx context.Context, msg string, err error, args ...slog.Attr) {
	args = append(args, slog.Any("error", err))
	slog.LogAttrs(ctx, slog.LevelError, msg, withRequestID(ctx, args)...)
}
