package router

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/adapter/api/handler"
)

func SetupOrderRouter(e *echo.Echo, orderHandler *handler.OrderHandler, m Middlewares) {
	e.POST("/orders", orderHandler.PlaceOrder, m.limit())
	e.GET("/orders", orderHandler.GetBuyerOrders)
	e.GET("/all-orders", orderHandler.GetAllOrders, m.adminChain()...)
}
