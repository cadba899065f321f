package repository

import (
	"context"
	"strings"

	"mapmarket/internal/domain/entity"
)

// SellerFilter is the compound query shape the seller store understands:
// inactive sellers are always excluded, the text query is a case-insensitive
// substring match on name or description, and Origin/RadiusKm (both set)
// restrict results to a spherical cap.
type SellerFilter struct {
	Origin   *entity.GeoPoint
	RadiusKm float64
	Query    string
}

func (f SellerFilter) Geo() bool {
	return f.Origin != nil && f.RadiusKm > 0
}

// Matches is the compound filter predicate. Stores that cannot evaluate
// parts of it server side apply it to fetched candidates instead.
func (f SellerFilter) Matches(seller *entity.Seller) bool {
	if seller.Inactive() {
		return false
	}
	if f.Query != "" {
		query := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(seller.Name), query) &&
			!strings.Contains(strings.ToLower(seller.Description), query) {
			return false
		}
	}
	if f.Geo() && !seller.SellMapCenter.WithinRadiusKm(*f.Origin, f.RadiusKm) {
		return false
	}
	return true
}

type SellerRepository interface {
	Find(ctx context.Context, filter SellerFilter) ([]*entity.Seller, error)
	GetByID(ctx context.Context, id entity.ActorID) (*entity.Seller, error)
	Upsert(ctx context.Context, seller *entity.Seller) error
	Delete(ctx context.Context, id entity.ActorID) (*entity.Seller, error)
}
