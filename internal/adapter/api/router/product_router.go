package router

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/adapter/api/handler"
)

func SetupProductRouter(e *echo.Echo, productHandler *handler.ProductHandler, m Middlewares) {
	products := e.Group("/products")

	products.POST("", productHandler.CreateProduct)
	products.GET("", productHandler.GetLatestProducts)
	products.GET("/vendor", productHandler.GetVendorProducts)
	products.GET("/all", productHandler.GetAllProducts)
	products.GET("/all-no-limit", productHandler.GetAllApprovedProducts)
	products.GET("/search", productHandler.SearchProducts)
	products.GET("/:id/price-history", productHandler.GetPriceHistory)
	products.GET("/:id", productHandler.GetProduct)
	products.PUT("/:id", productHandler.UpdateProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)

	products.PATCH("/approve/:id", productHandler.ApproveProduct, m.adminChain()...)
	products.PATCH("/reject/:id", productHandler.RejectProduct, m.adminChain()...)
}
