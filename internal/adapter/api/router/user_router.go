package router

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/adapter/api/handler"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, m Middlewares) {
	users := e.Group("/users")

	users.POST("", userHandler.Register, m.limit())
	users.GET("/:email", userHandler.GetByEmail)

	users.GET("", userHandler.SearchUsers, m.adminChain()...)
	users.PATCH("/role/:id", userHandler.UpdateRole, m.adminChain()...)
}
