package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one detailed line per request when env.debug is on.
// Regular access logging is slog-echo's job.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	quiet  []string
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	quiet := []string{"/health"}
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		quiet = append(quiet, cfg.Metrics.Path)
	}

	return &LoggerMiddleware{logger: logger, debug: cfg.Env.Debug, quiet: quiet}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.debug {
		return next
	}

	return func(c echo.Context) error {
		if slices.Contains(m.quiet, c.Request().URL.Path) {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// The error handler commits the final status.
			c.Error(err)
		}

		req := c.Request()
		status := c.Response().Status
		attrs := []slog.Attr{
			slog.String("method", req.Method),
			slog.String("route", c.Path()),
			slog.String("uri", req.URL.RequestURI()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
		}
		if userID, ok := deliverycontext.GetUserID(c); ok {
			attrs = append(attrs, slog.String("user_id", userID.String()))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
			LogAttrs(req.Context(), levelForStatus(status), "HTTP request", attrs...)

		return nil
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
