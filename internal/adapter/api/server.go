package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"bazarbd/internal/adapter/api/middleware"
	"bazarbd/internal/adapter/api/router"
	"bazarbd/pkg/config"
)

type ServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config      *config.Config
	Logger      *slog.Logger
	Handlers    router.Handlers
	Auth        *middleware.AuthMiddleware
	Admin       *middleware.AdminMiddleware
	RateLimiter *middleware.RateLimiter
}

// NewEcho builds the Echo instance with the common middleware stack and all
// routes mounted.
func NewEcho(logger *slog.Logger, handlers router.Handlers, middlewares router.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.CORS())

	router.Setup(e, handlers, middlewares)
	return e
}

// NewServer registers the HTTP server with the fx lifecycle. The listener
// starts on application start and drains on stop within the configured
// shutdown timeout.
func NewServer(p ServerParams) *echo.Echo {
	e := NewEcho(p.Logger, p.Handlers, router.Middlewares{
		Auth:      p.Auth,
		Admin:     p.Admin,
		RateLimit: p.RateLimiter.Middleware(),
	})

	addr := net.JoinHostPort("", p.Config.ServerPort)

	p.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting HTTP server", "addr", addr, "database", p.Config.DatabaseDriver)
			go func() {
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("HTTP server stopped", "error", err)
					_ = p.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			defer cancel()

			p.Logger.Info("shutting down HTTP server")
			return errors.WithStack(e.Shutdown(ctx))
		},
	})

	return e
}
