package entity

import (
	"time"
)

// User is the identity record issued by the external auth collaborator.
// It is created lazily on first authentication and never re-keyed.
type User struct {
	UID         ActorID   `json:"uid" firestore:"uid"`
	Username    string    `json:"username" firestore:"username"`
	DisplayName string    `json:"user_name" firestore:"displayName"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
