package usecase

import (
	"context"
	"strings"
	"time"

	"mapmarket/internal/domain/entity"
	"mapmarket/internal/domain/repository"
	"mapmarket/pkg/errors"
	"mapmarket/pkg/logger"
)

// ReviewFeedbackUseCase creates and reads review feedback and decorates
// ratings with their categorical reaction for display.
type ReviewFeedbackUseCase struct {
	reviewRepo repository.ReviewFeedbackRepository
}

func NewReviewFeedbackUseCase(reviewRepo repository.ReviewFeedbackRepository) *ReviewFeedbackUseCase {
	return &ReviewFeedbackUseCase{
		reviewRepo: reviewRepo,
	}
}

// ReviewFeedbackOutput is a review with its rating resolved through the
// reaction table.
type ReviewFeedbackOutput struct {
	entity.ReviewFeedback
	Reaction entity.Reaction `json:"reaction"`
}

func decorate(review *entity.ReviewFeedback) ReviewFeedbackOutput {
	reaction, _ := entity.ReactionForRating(review.Rating)
	return ReviewFeedbackOutput{
		ReviewFeedback: *review,
		Reaction:       reaction,
	}
}

// List returns every review received by receiverID, optionally narrowed by
// a case-insensitive substring match on the comment.
func (uc *ReviewFeedbackUseCase) List(ctx context.Context, receiverID entity.ActorID, searchQuery string) ([]ReviewFeedbackOutput, error) {
	reviews, err := uc.reviewRepo.ListByReceiver(ctx, receiverID)
	if err != nil {
		logger.Error("Failed to get reviews for receiverID %s: %v", receiverID, err)
		return nil, errors.Internal("Failed to get reviews; please try again later", err)
	}

	query := strings.ToLower(searchQuery)
	output := make([]ReviewFeedbackOutput, 0, len(reviews))
	for _, review := range reviews {
		if query != "" && !strings.Contains(strings.ToLower(review.Comment), query) {
			continue
		}
		output = append(output, decorate(review))
	}
	return output, nil
}

// GetByID returns a single review, or nil when it does not exist.
func (uc *ReviewFeedbackUseCase) GetByID(ctx context.Context, id string) (*ReviewFeedbackOutput, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		logger.Error("Failed to get review for reviewID %s: %v", id, err)
		return nil, errors.Internal("Failed to get review; please try again later", err)
	}
	out := decorate(review)
	return &out, nil
}

type CreateReviewInput struct {
	ReceiverID      entity.ActorID
	Rating          entity.Rating
	Comment         string
	ReplyToReviewID *string
}

// Create validates authorship and persists a new immutable review record.
// Self reviews and out-of-scale ratings are rejected before any write.
func (uc *ReviewFeedbackUseCase) Create(ctx context.Context, giver *entity.User, input CreateReviewInput, imageURL string) (*entity.ReviewFeedback, error) {
	if giver == nil {
		logger.Warn("No authenticated user found for adding review")
		return nil, errors.Unauthorized("Unauthorized user", nil)
	}
	if giver.UID == input.ReceiverID {
		logger.Warn("Attempted self review by user %s", giver.UID)
		return nil, errors.BadRequest("Self review is prohibited", nil)
	}
	if !input.Rating.Valid() {
		return nil, errors.BadRequest("Rating is outside the allowed scale", nil)
	}

	review := &entity.ReviewFeedback{
		ReceiverID:      input.ReceiverID,
		GiverID:         giver.UID,
		ReplyToReviewID: input.ReplyToReviewID,
		Rating:          input.Rating,
		Comment:         input.Comment,
		Image:           imageURL,
		ReviewDate:      time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		logger.Error("Failed to add review for userID %s: %v", giver.UID, err)
		return nil, errors.Internal("Failed to add review; please try again later", err)
	}

	logger.Info("Added new review by user %s for receiver %s", giver.UID, review.ReceiverID)
	return review, nil
}
