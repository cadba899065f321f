package router

import (
	"github.com/labstack/echo/v4"

	"mapmarket/internal/adapter/api/handler"
	"mapmarket/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.POST("/authenticate", userHandler.AuthenticateUser)
	users.GET("/:uid", userHandler.GetUser)

	authenticated := e.Group("/v1/users")
	authenticated.Use(authMiddleware.Authenticate)
	authenticated.GET("/me", userHandler.AutoLoginUser)
	authenticated.DELETE("/:uid", userHandler.DeleteUser)
}
