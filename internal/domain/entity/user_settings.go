package entity

import (
	"time"
)

// UserSettings holds per-actor preferences and contact/trust metadata.
// Its ID is the owning actor's id; there is at most one document per actor.
type UserSettings struct {
	ID               ActorID   `json:"user_settings_id" firestore:"id"`
	UserName         string    `json:"user_name" firestore:"userName"`
	Email            *string   `json:"email" firestore:"email"`
	PhoneNumber      *string   `json:"phone_number" firestore:"phoneNumber"`
	Image            string    `json:"image,omitempty" firestore:"image,omitempty"`
	FindMe           string    `json:"findme,omitempty" firestore:"findMe,omitempty"`
	TrustMeterRating int       `json:"trust_meter_rating" firestore:"trustMeterRating"`
	SearchMapCenter  *GeoPoint `json:"search_map_center,omitempty" firestore:"searchMapCenter,omitempty"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updated_at" firestore:"updatedAt"`
}
