package router

import (
	"github.com/labstack/echo/v4"

	"mapmarket/internal/adapter/api/handler"
	"mapmarket/internal/adapter/api/middleware"
)

func SetupReviewFeedbackRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewFeedbackHandler()

	reviews := e.Group("/v1/review-feedback")
	reviews.GET("/:review_receiver_id", reviewHandler.GetReviews)
	reviews.GET("/single/:review_id", reviewHandler.GetSingleReviewById)

	authenticated := e.Group("/v1/review-feedback")
	authenticated.Use(authMiddleware.Authenticate)
	authenticated.POST("/add", reviewHandler.AddReview)
}
