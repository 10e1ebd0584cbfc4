package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQuery = 200 * time.Millisecond

// gormLogger routes gorm's statement log into slog. Missing rows are expected
// on lookups and are never logged as failures.
type gormLogger struct {
	log   *slog.Logger
	level gormlogger.LogLevel
	slow  time.Duration
	since func(time.Time) time.Duration
}

func newGormSlogLogger(log *slog.Logger, cfg *config.Config) gormlogger.Interface {
	l := &gormLogger{log: log, level: gormlogger.Warn, slow: defaultSlowQuery, since: time.Since}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = gormlogger.Info
	}
	if cfg.Database.SlowQueryThreshold > 0 {
		l.slow = cfg.Database.SlowQueryThreshold
	}

	return l
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *gormLogger) Info(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, format, args)
}

func (l *gormLogger) Warn(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, format, args)
}

func (l *gormLogger) Error(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, format, args)
}

func (l *gormLogger) printf(ctx context.Context, min gormlogger.LogLevel, level slog.Level, format string, args []any) {
	if l.level < min {
		return
	}
	l.log.Log(ctx, level, "gorm: "+fmt.Sprintf(format, args...))
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := l.since(begin)
	level, msg, extra := l.classify(elapsed, err)
	if msg == "" {
		return
	}

	statement, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", statement),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}
	l.log.LogAttrs(ctx, level, msg, attrs...)
}

// classify picks the log line for a finished statement; an empty message
// means the statement is not logged at the current level.
func (l *gormLogger) classify(elapsed time.Duration, err error) (slog.Level, string, slog.Attr) {
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		return slog.LevelError, "Query failed", slog.String("error", err.Error())
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		return slog.LevelWarn, "Slow query", slog.Duration("threshold", l.slow)
	case l.level >= gormlogger.Info:
		return slog.LevelInfo, "Query", slog.Attr{}
	default:
		return slog.LevelDebug, "", slog.Attr{}
	}
}
