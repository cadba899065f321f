package router

import (
	"github.com/labstack/echo/v4"

	"mapmarket/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupUserRouter(e, authMiddleware)
	SetupUserPreferencesRouter(e, authMiddleware)
	SetupSellerRouter(e, authMiddleware)
	SetupReviewFeedbackRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
