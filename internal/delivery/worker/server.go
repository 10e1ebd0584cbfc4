// Package worker is the order-event consumer process: a Pub/Sub push
// endpoint plus the stale-order sweeper.
package worker

import (
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/middleware"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	Metrics     *metrics.Recorder `optional:"true"`
	// Taken so fx constructs the sweeper, which starts with the app.
	Sweeper *StaleOrderSweeper
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params.Cfg, params.Logger, params.PushHandler, params.Metrics)

	return delivery.NewEchoServer(params.Lc, params.Logger, "order worker", params.Cfg.Worker.Port, e, nil), nil
}

// NewEcho builds the worker's routes. Push deliveries are acked by status
// code, so no JSON error envelope is involved.
func NewEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler, recorder *metrics.Recorder) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		slogecho.NewWithFilters(logger, slogecho.IgnorePath("/health")),
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if recorder != nil && cfg.Metrics != nil && cfg.Metrics.Enabled {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(recorder.Handler()))
	}
	e.POST("/push", push.HandlePush)

	return e
}
