package repository

import (
	"context"

	"mapmarket/internal/domain/entity"
)

type ReviewFeedbackRepository interface {
	Create(ctx context.Context, review *entity.ReviewFeedback) error
	GetByID(ctx context.Context, id string) (*entity.ReviewFeedback, error)
	ListByReceiver(ctx context.Context, receiverID entity.ActorID) ([]*entity.ReviewFeedback, error)
}
