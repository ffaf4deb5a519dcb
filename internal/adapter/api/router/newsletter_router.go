package router

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/adapter/api/handler"
)

func SetupNewsletterRouter(e *echo.Echo, newsletterHandler *handler.NewsletterHandler, m Middlewares) {
	e.POST("/newsletter", newsletterHandler.Subscribe, m.limit())
	e.GET("/newsletter", newsletterHandler.ListSubscribers, m.adminChain()...)
}
