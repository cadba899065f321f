package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mapmarket/internal/domain/entity"
	"mapmarket/internal/domain/repository"
	"mapmarket/pkg/errors"
)

type firestoreReviewFeedbackRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewFeedbackRepository(client *firestore.Client) repository.ReviewFeedbackRepository {
	return &firestoreReviewFeedbackRepository{
		client: client,
	}
}

func (r *firestoreReviewFeedbackRepository) Create(ctx context.Context, review *entity.ReviewFeedback) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	_, err := r.client.Collection("reviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewFeedbackRepository) GetByID(ctx context.Context, id string) (*entity.ReviewFeedback, error) {
	doc, err := r.client.Collection("reviews").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.Internal("Failed to get review", err)
	}

	var review entity.ReviewFeedback
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}

	return &review, nil
}

func (r *firestoreReviewFeedbackRepository) ListByReceiver(ctx context.Context, receiverID entity.ActorID) ([]*entity.ReviewFeedback, error) {
	query := r.client.Collection("reviews").Where("receiverId", "==", receiverID.String())
	iter := query.Documents(ctx)

	var reviews []*entity.ReviewFeedback
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reviews", err)
		}

		var review entity.ReviewFeedback
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse review data", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}
