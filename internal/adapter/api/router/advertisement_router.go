package router

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/adapter/api/handler"
)

func SetupAdvertisementRouter(e *echo.Echo, adHandler *handler.AdvertisementHandler, m Middlewares) {
	ads := e.Group("/advertisements")

	ads.POST("", adHandler.CreateAdvertisement, m.limit())
	ads.GET("", adHandler.ListAdvertisements)
	ads.PUT("/:id", adHandler.UpdateAdvertisement)
	ads.DELETE("/:id", adHandler.DeleteAdvertisement)

	ads.PATCH("/:id", adHandler.UpdateStatus, m.adminChain()...)
}
