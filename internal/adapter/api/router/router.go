package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"bazarbd/internal/adapter/api/handler"
	"bazarbd/internal/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	fx.In

	Health        *handler.HealthHandler
	Product       *handler.ProductHandler
	Watchlist     *handler.WatchlistHandler
	User          *handler.UserHandler
	Order         *handler.OrderHandler
	Payment       *handler.PaymentHandler
	Advertisement *handler.AdvertisementHandler
	Review        *handler.ReviewHandler
	Newsletter    *handler.NewsletterHandler
}

// Middlewares groups the route-level middleware. Admin routes run Auth then
// Admin; RateLimit guards public write endpoints.
type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	Admin     *middleware.AdminMiddleware
	RateLimit echo.MiddlewareFunc
}

func (m Middlewares) adminChain() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{m.Auth.Authenticate, m.Admin.AdminOnly}
}

func (m Middlewares) limit() echo.MiddlewareFunc {
	if m.RateLimit == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return m.RateLimit
}

func Setup(e *echo.Echo, h Handlers, m Middlewares) {
	SetupHealthRouter(e, h.Health)
	SetupProductRouter(e, h.Product, m)
	SetupWatchlistRouter(e, h.Watchlist, m)
	SetupUserRouter(e, h.User, m)
	SetupOrderRouter(e, h.Order, m)
	SetupPaymentRouter(e, h.Payment, m)
	SetupAdvertisementRouter(e, h.Advertisement, m)
	SetupReviewRouter(e, h.Review, m)
	SetupNewsletterRouter(e, h.Newsletter, m)
}
