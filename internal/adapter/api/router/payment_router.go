package router

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/adapter/api/handler"
)

func SetupPaymentRouter(e *echo.Echo, paymentHandler *handler.PaymentHandler, m Middlewares) {
	e.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent, m.limit())
}
