package router

import (
	"github.com/labstack/echo/v4"

	"mapmarket/internal/adapter/api/handler"
	"mapmarket/internal/adapter/api/middleware"
)

func SetupSellerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	sellerHandler := handler.GetSellerHandler()

	sellers := e.Group("/v1/sellers")
	sellers.POST("/fetch", sellerHandler.FetchSellersByCriteria)
	sellers.GET("/:seller_id", sellerHandler.GetSingleSeller)

	authenticated := e.Group("/v1/sellers")
	authenticated.Use(authMiddleware.Authenticate)
	authenticated.POST("/register", sellerHandler.RegisterSeller)
	authenticated.GET("/me", sellerHandler.FetchSellerRegistration)
	authenticated.DELETE("/me", sellerHandler.DeleteSeller)
}
