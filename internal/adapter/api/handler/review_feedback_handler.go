package handler

import (
	"github.com/labstack/echo/v4"

	"mapmarket/internal/adapter/api/middleware"
	"mapmarket/internal/domain/entity"
	"mapmarket/internal/usecase"
	"mapmarket/pkg/errors"
	"mapmarket/pkg/logger"
	"mapmarket/pkg/response"
)

type ReviewFeedbackHandler struct {
	reviewUseCase *usecase.ReviewFeedbackUseCase
	uploader      ImageUploader
}

func NewReviewFeedbackHandler(reviewUseCase *usecase.ReviewFeedbackUseCase, uploader ImageUploader) *ReviewFeedbackHandler {
	return &ReviewFeedbackHandler{
		reviewUseCase: reviewUseCase,
		uploader:      uploader,
	}
}

func (h *ReviewFeedbackHandler) GetReviews(c echo.Context) error {
	receiverID := entity.ActorID(c.Param("review_receiver_id"))
	searchQuery := c.QueryParam("searchQuery")

	reviews, err := h.reviewUseCase.List(c.Request().Context(), receiverID, searchQuery)
	if err != nil {
		return response.Error(c, err)
	}

	logger.Info("Retrieved %d reviews for receiver ID %s", len(reviews), receiverID)
	return response.Success(c, reviews)
}

func (h *ReviewFeedbackHandler) GetSingleReviewById(c echo.Context) error {
	reviewID := c.Param("review_id")

	review, err := h.reviewUseCase.GetByID(c.Request().Context(), reviewID)
	if err != nil {
		return response.Error(c, err)
	}
	if review == nil {
		logger.Warn("Review with ID %s not found", reviewID)
		return response.Error(c, errors.NotFound("Review", nil))
	}

	return response.Success(c, review)
}

type addReviewRequest struct {
	ReceiverID      string `form:"review_receiver_id" validate:"required"`
	Rating          int    `form:"rating" validate:"required,min=1,max=5"`
	Comment         string `form:"comment"`
	ReplyToReviewID string `form:"reply_to_review_id"`
}

func (h *ReviewFeedbackHandler) AddReview(c echo.Context) error {
	authUser := middleware.CurrentUser(c)
	if authUser == nil {
		return response.Error(c, errors.Unauthorized("Unauthorized user", nil))
	}

	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid review form", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	imageURL, err := uploadedImage(c, h.uploader, "reviews")
	if err != nil {
		return response.Error(c, err)
	}

	input := usecase.CreateReviewInput{
		ReceiverID: entity.ActorID(req.ReceiverID),
		Rating:     entity.Rating(req.Rating),
		Comment:    req.Comment,
	}
	if req.ReplyToReviewID != "" {
		input.ReplyToReviewID = &req.ReplyToReviewID
	}

	review, err := h.reviewUseCase.Create(c.Request().Context(), authUser, input, imageURL)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{"newReview": review})
}
