package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mapmarket/internal/domain/entity"
)

func activeSeller(name, description string, lat, lng float64) *entity.Seller {
	return &entity.Seller{
		SellerID:      "seller-1",
		Name:          name,
		Description:   description,
		SellerType:    entity.SellerTypeActive,
		SellMapCenter: entity.GeoPoint{Latitude: lat, Longitude: lng},
	}
}

func TestSellerFilter_MatchesTextQuery(t *testing.T) {
	seller := activeSeller("Pi Cafe", "Fresh coffee", 0, 0)

	assert.True(t, SellerFilter{Query: "cafe"}.Matches(seller))
	assert.True(t, SellerFilter{Query: "CAFE"}.Matches(seller))
	assert.True(t, SellerFilter{Query: "coffee"}.Matches(seller), "description should match too")
	assert.False(t, SellerFilter{Query: "bakery"}.Matches(seller))
}

func TestSellerFilter_MatchesGeo(t *testing.T) {
	origin := entity.GeoPoint{Latitude: 0, Longitude: 0}

	near := activeSeller("Near", "", 0, 0.05) // ~5.5km away
	far := activeSeller("Far", "", 0, 1)      // ~111km away

	inTen := SellerFilter{Origin: &origin, RadiusKm: 10}
	assert.True(t, inTen.Matches(near))
	assert.False(t, inTen.Matches(far))
}

func TestSellerFilter_AlwaysExcludesInactive(t *testing.T) {
	inactive := activeSeller("Closed Shop", "", 0, 0)
	inactive.SellerType = entity.SellerTypeInactive

	assert.False(t, SellerFilter{}.Matches(inactive))
	assert.False(t, SellerFilter{Query: "closed"}.Matches(inactive))

	origin := entity.GeoPoint{Latitude: 0, Longitude: 0}
	assert.False(t, SellerFilter{Origin: &origin, RadiusKm: 100}.Matches(inactive))
}

func TestSellerFilter_NoCriteriaMatchesActive(t *testing.T) {
	assert.True(t, SellerFilter{}.Matches(activeSeller("Any", "", 45, 90)))
}

func TestSellerFilter_CombinedCriteria(t *testing.T) {
	origin := entity.GeoPoint{Latitude: 0, Longitude: 0}
	seller := activeSeller("Pi Cafe", "", 0, 0.05)

	both := SellerFilter{Origin: &origin, RadiusKm: 10, Query: "cafe"}
	assert.True(t, both.Matches(seller))

	wrongText := SellerFilter{Origin: &origin, RadiusKm: 10, Query: "bakery"}
	assert.False(t, wrongText.Matches(seller))

	tooSmall := SellerFilter{Origin: &origin, RadiusKm: 1, Query: "cafe"}
	assert.False(t, tooSmall.Matches(seller))
}

func TestSellerFilter_Geo(t *testing.T) {
	origin := entity.GeoPoint{}
	assert.False(t, SellerFilter{}.Geo())
	assert.False(t, SellerFilter{Origin: &origin}.Geo())
	assert.False(t, SellerFilter{RadiusKm: 5}.Geo())
	assert.True(t, SellerFilter{Origin: &origin, RadiusKm: 5}.Geo())
}
