package entity

import (
	"time"
)

// Seller types. Inactive sellers keep their profile but never surface in
// search results.
const (
	SellerTypeActive   = "activeSeller"
	SellerTypeInactive = "inactiveSeller"
	SellerTypeTest     = "testSeller"
	SellerTypeOther    = "other"
)

// InitialAverageRating is assigned to newly registered sellers.
const InitialAverageRating = 5.0

// Seller is a business profile keyed by its owner's actor id.
type Seller struct {
	SellerID           ActorID   `json:"seller_id" firestore:"sellerId"`
	Name               string    `json:"name" firestore:"name"`
	Description        string    `json:"description" firestore:"description"`
	SellerType         string    `json:"seller_type" firestore:"sellerType"`
	Image              string    `json:"image" firestore:"image"`
	Address            string    `json:"address" firestore:"address"`
	SellMapCenter      GeoPoint  `json:"sell_map_center" firestore:"sellMapCenter"`
	AverageRating      float64   `json:"average_rating" firestore:"averageRating"`
	OrderOnlineEnabled bool      `json:"order_online_enabled_pref" firestore:"orderOnlineEnabled"`
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (s *Seller) Inactive() bool {
	return s.SellerType == SellerTypeInactive
}

// SellerWithSettings is the read-time enrichment of a seller with its
// owner's settings. It is assembled per request and never persisted.
type SellerWithSettings struct {
	Seller
	TrustMeterRating int `json:"trust_meter_rating"`
	// TrustMeterLevel is the bucketed display level for TrustMeterRating.
	TrustMeterLevel int     `json:"trust_meter_level"`
	UserName        string  `json:"user_name"`
	FindMe          string  `json:"findme"`
	Email           *string `json:"email"`
	PhoneNumber     *string `json:"phone_number"`
}

// SellerProfile is the three-way view returned by a single-seller lookup.
// Any subset of the fields may be present; a profile with only settings or
// only an identity is still a valid result.
type SellerProfile struct {
	SellerShopInfo *Seller       `json:"sellerShopInfo"`
	SellerSettings *UserSettings `json:"sellerSettings"`
	SellerInfo     *User         `json:"sellerInfo"`
}

func (p *SellerProfile) Empty() bool {
	return p.SellerShopInfo == nil && p.SellerSettings == nil && p.SellerInfo == nil
}
