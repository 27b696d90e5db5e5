package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

var (
	mu  sync.RWMutex
	log *slog.Logger
)

// Init настраивает глобальный логгер по окружению из конфига.
// development - text/debug, test - text/warn без source, остальное - json/info.
func Init(env string) {
	InitWithWriter(env, os.Stdout)
}

func InitWithWriter(env string, w io.Writer) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo, AddSource: true}

	var base slog.Handler
	switch env {
	case "development":
		opts.Level = slog.LevelDebug
		base = slog.NewTextHandler(w, opts)
	case "test":
		opts.Level = slog.LevelWarn
		opts.AddSource = false
		base = slog.NewTextHandler(w, opts)
	default:
		base = slog.NewJSONHandler(w, opts)
	}

	l := slog.New(contextHandler{base})

	mu.Lock()
	log = l
	mu.Unlock()
	slog.SetDefault(l)
}

func GetLogger() *slog.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init("development")
	return GetLogger()
}

func Debug(msg string, args ...any) { GetLogger().Debug(msg, args...) }
func Info(msg string, args ...any)  { GetLogger().Info(msg, args...) }
func Warn(msg string, args ...any)  { GetLogger().Warn(msg, args...) }

// Fatal пишет ошибку и завершает процесс; только для старта приложения
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

// RequestLog - итоговая запись по HTTP запросу. Уровень зависит от статуса.
func RequestLog(ctx context.Context, method, path string, status int, duration time.Duration, size int, clientIP string) {
	level := slog.LevelInfo
	msg := "http request"
	switch {
	case status >= 500:
		level, msg = slog.LevelError, "http request failed"
	case status >= 400:
		level, msg = slog.LevelWarn, "http request rejected"
	}

	GetLogger().Log(ctx, level, msg,
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Int("size_bytes", size),
		slog.String("client_ip", clientIP),
	)
}

// IdentityLog логирует обращение к провайдеру аутентификации.
// Токены и пароли сюда не передаются.
func IdentityLog(ctx context.Context, operation string, status int, duration time.Duration, err error) {
	args := []any{
		slog.String("operation", operation),
		slog.Int("status", status),
		slog.Int64("duration_ms", duration.Milliseconds()),
	}
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
		GetLogger().WarnContext(ctx, "identity call failed", args...)
		return
	}
	GetLogger().DebugContext(ctx, "identity call", args...)
}
