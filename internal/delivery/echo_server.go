package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer runs an echo instance until the fx app stops.
type EchoServer struct {
	name   string
	addr   string
	echo   *echo.Echo
	h2c    *http2.Server
	logger *slog.Logger
}

// NewEchoServer listens on every interface at port. A non-nil h2c enables
// cleartext HTTP/2 alongside HTTP/1.1.
func NewEchoServer(lc fx.Lifecycle, logger *slog.Logger, name string, port int, e *echo.Echo, h2c *http2.Server) *EchoServer {
	s := &EchoServer{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		echo:   e,
		h2c:    h2c,
		logger: logger,
	}
	lc.Append(fx.Hook{OnStop: s.shutdown})

	return s
}

// Serve blocks until the listener fails or Shutdown is called.
func (s *EchoServer) Serve(_ context.Context) error {
	s.logger.Info("Starting "+s.name, slog.String("host_port", s.addr))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s stopped", s.name)
	}

	return nil
}

func (s *EchoServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down " + s.name)

	return errors.WithStack(s.echo.Shutdown(ctx))
}
