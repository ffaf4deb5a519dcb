package router

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/adapter/api/handler"
)

func SetupWatchlistRouter(e *echo.Echo, watchlistHandler *handler.WatchlistHandler, m Middlewares) {
	watchlist := e.Group("/watchlist")

	watchlist.POST("", watchlistHandler.AddToWatchlist, m.limit())
	watchlist.GET("", watchlistHandler.GetUserWatchlist)
	watchlist.GET("/all", watchlistHandler.GetAllWatchlist, m.adminChain()...)
	watchlist.DELETE("/:id", watchlistHandler.RemoveFromWatchlist)
}
