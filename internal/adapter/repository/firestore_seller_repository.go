package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mapmarket/internal/domain/entity"
	"mapmarket/internal/domain/repository"
	"mapmarket/pkg/errors"
)

type firestoreSellerRepository struct {
	client *firestore.Client
}

func NewFirestoreSellerRepository(client *firestore.Client) repository.SellerRepository {
	return &firestoreSellerRepository{
		client: client,
	}
}

// Find applies the compound directory filter. The type-not-equal condition
// runs server side; substring and spherical-cap matching happen client side
// because Firestore supports neither full-text search nor geo containment.
func (r *firestoreSellerRepository) Find(ctx context.Context, filter repository.SellerFilter) ([]*entity.Seller, error) {
	query := r.client.Collection("sellers").Query.
		Where("sellerType", "!=", entity.SellerTypeInactive)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query sellers", err)
	}

	sellers := make([]*entity.Seller, 0, len(docs))
	for _, doc := range docs {
		var seller entity.Seller
		if err := doc.DataTo(&seller); err != nil {
			return nil, errors.Internal("Failed to parse seller data", err)
		}
		if !filter.Matches(&seller) {
			continue
		}
		sellers = append(sellers, &seller)
	}

	return sellers, nil
}

func (r *firestoreSellerRepository) GetByID(ctx context.Context, id entity.ActorID) (*entity.Seller, error) {
	doc, err := r.client.Collection("sellers").Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Seller", err)
		}
		return nil, errors.Internal("Failed to get seller", err)
	}

	var seller entity.Seller
	if err := doc.DataTo(&seller); err != nil {
		return nil, errors.Internal("Failed to parse seller data", err)
	}

	return &seller, nil
}

func (r *firestoreSellerRepository) Upsert(ctx context.Context, seller *entity.Seller) error {
	now := time.Now()
	if seller.CreatedAt.IsZero() {
		seller.CreatedAt = now
	}
	seller.UpdatedAt = now

	_, err := r.client.Collection("sellers").Doc(seller.SellerID.String()).Set(ctx, seller)
	if err != nil {
		return errors.Internal("Failed to upsert seller", err)
	}

	return nil
}

func (r *firestoreSellerRepository) Delete(ctx context.Context, id entity.ActorID) (*entity.Seller, error) {
	seller, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := r.client.Collection("sellers").Doc(id.String()).Delete(ctx); err != nil {
		return nil, errors.Internal("Failed to delete seller", err)
	}

	return seller, nil
}
