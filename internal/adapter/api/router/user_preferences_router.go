package router

import (
	"github.com/labstack/echo/v4"

	"mapmarket/internal/adapter/api/handler"
	"mapmarket/internal/adapter/api/middleware"
)

func SetupUserPreferencesRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	preferencesHandler := handler.GetUserPreferencesHandler()

	preferences := e.Group("/v1/user-preferences")
	preferences.GET("/:user_settings_id", preferencesHandler.GetUserPreferences)

	authenticated := e.Group("/v1/user-preferences")
	authenticated.Use(authMiddleware.Authenticate)
	authenticated.GET("/me", preferencesHandler.FetchUserPreferences)
	authenticated.POST("/add", preferencesHandler.AddUserPreferences)
	authenticated.DELETE("/me", preferencesHandler.DeleteUserPreferences)
	authenticated.GET("/location/me", preferencesHandler.GetUserLocation)
}
