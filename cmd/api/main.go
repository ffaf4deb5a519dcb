package main

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"bazarbd/internal/adapter/api"
	"bazarbd/internal/adapter/api/handler"
	"bazarbd/internal/adapter/api/middleware"
	"bazarbd/internal/domain/repository"
	"bazarbd/internal/domain/service"
	"bazarbd/internal/infrastructure/database"
	"bazarbd/internal/infrastructure/firebase"
	"bazarbd/internal/infrastructure/payment"
	"bazarbd/internal/infrastructure/storage"
	"bazarbd/internal/usecase"
	"bazarbd/pkg/config"
	"bazarbd/pkg/logger"
)

func main() {
	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log.With("component", "fx")}
		}),

		fx.Provide(
			config.Load,
			logger.New,
			database.New,
			storage.New,
			newPaymentGateway,
			newTokenVerifier,
		),

		fx.Provide(
			newProductUseCase,
			usecase.NewWatchlistUseCase,
			usecase.NewUserUseCase,
			usecase.NewReviewUseCase,
			usecase.NewOrderUseCase,
			usecase.NewNewsletterUseCase,
			newAdvertisementUseCase,
			newPaymentUseCase,
		),

		fx.Provide(
			newHealthHandler,
			handler.NewProductHandler,
			handler.NewWatchlistHandler,
			handler.NewUserHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			newAdvertisementHandler,
			handler.NewReviewHandler,
			handler.NewNewsletterHandler,
		),

		fx.Provide(
			newAuthMiddleware,
			newAdminMiddleware,
			newRateLimiter,
			api.NewServer,
		),

		fx.Invoke(func(*echo.Echo) {}),
	).Run()
}

func newPaymentGateway(cfg *config.Config, log *slog.Logger) service.PaymentGateway {
	if cfg.PaymentGatewayKey == "" {
		log.Warn("PAYMENT_GATEWAY_KEY is not set; payment intents will fail")
	}
	return payment.NewStripeGateway(cfg.PaymentGatewayKey)
}

// newTokenVerifier returns nil when authentication is disabled so the auth
// middleware passes every request through.
func newTokenVerifier(cfg *config.Config, log *slog.Logger) (middleware.TokenVerifier, error) {
	if !cfg.AuthEnabled {
		log.Warn("AUTH_ENABLED is off; protected routes are open")
		return nil, nil
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase auth")
	}
	return firebase.NewFirebaseAuthClient(client), nil
}

func newProductUseCase(repo repository.ProductRepository, cfg *config.Config, log *slog.Logger) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(repo, cfg.SearchLocation, log)
}

func newAdvertisementUseCase(
	adRepo repository.AdvertisementRepository,
	userRepo repository.UserRepository,
	images service.ImageStore,
	cfg *config.Config,
	log *slog.Logger,
) *usecase.AdvertisementUseCase {
	return usecase.NewAdvertisementUseCase(adRepo, userRepo, images, cfg.ImageFolder, log)
}

func newPaymentUseCase(gateway service.PaymentGateway, cfg *config.Config) *usecase.PaymentUseCase {
	return usecase.NewPaymentUseCase(gateway, cfg.PaymentCurrency)
}

func newHealthHandler(cfg *config.Config) *handler.HealthHandler {
	return handler.NewHealthHandler(cfg.DatabaseDriver)
}

func newAdvertisementHandler(uc *usecase.AdvertisementUseCase, cfg *config.Config) *handler.AdvertisementHandler {
	return handler.NewAdvertisementHandler(uc, cfg.MaxImageSize)
}

func newAuthMiddleware(verifier middleware.TokenVerifier, cfg *config.Config) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(verifier, cfg.AuthEnabled)
}

func newAdminMiddleware(users *usecase.UserUseCase, auth *middleware.AuthMiddleware) *middleware.AdminMiddleware {
	return middleware.NewAdminMiddleware(users, auth)
}

func newRateLimiter(cfg *config.Config, log *slog.Logger) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, log)
}
