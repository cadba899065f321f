package handler

import (
	"context"
	"io"

	"mapmarket/internal/usecase"
)

// ImageUploader turns an uploaded file into a stored image URL. The Cloud
// Storage client satisfies this; handlers only pass the resulting URL on.
type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
}

var (
	userHandler            *UserHandler
	userPreferencesHandler *UserPreferencesHandler
	sellerHandler          *SellerHandler
	reviewHandler          *ReviewFeedbackHandler
)

func Setup(
	userUseCase *usecase.UserUseCase,
	settingsUseCase *usecase.UserSettingsUseCase,
	sellerUseCase *usecase.SellerUseCase,
	reviewUseCase *usecase.ReviewFeedbackUseCase,
	firebaseAuth usecase.FirebaseAuthClient,
	uploader ImageUploader,
) {
	userHandler = NewUserHandler(userUseCase, firebaseAuth)
	userPreferencesHandler = NewUserPreferencesHandler(settingsUseCase, uploader)
	sellerHandler = NewSellerHandler(sellerUseCase, settingsUseCase, uploader)
	reviewHandler = NewReviewFeedbackHandler(reviewUseCase, uploader)
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetUserPreferencesHandler() *UserPreferencesHandler {
	return userPreferencesHandler
}

func GetSellerHandler() *SellerHandler {
	return sellerHandler
}

func GetReviewFeedbackHandler() *ReviewFeedbackHandler {
	return reviewHandler
}
