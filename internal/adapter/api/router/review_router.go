package router

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/adapter/api/handler"
)

func SetupReviewRouter(e *echo.Echo, reviewHandler *handler.ReviewHandler, m Middlewares) {
	reviews := e.Group("/reviews")

	reviews.POST("", reviewHandler.CreateReview, m.limit())
	reviews.GET("", reviewHandler.GetReviews)
	reviews.GET("/:productId", reviewHandler.GetProductReviews)
}
