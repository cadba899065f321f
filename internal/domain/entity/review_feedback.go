package entity

import (
	"time"
)

// ReviewFeedback is one append-only review of a receiver by a giver.
// Records are immutable once created and outlive the actors involved.
type ReviewFeedback struct {
	ID              string    `json:"_id" firestore:"id"`
	ReceiverID      ActorID   `json:"review_receiver_id" firestore:"receiverId"`
	GiverID         ActorID   `json:"review_giver_id" firestore:"giverId"`
	ReplyToReviewID *string   `json:"reply_to_review_id" firestore:"replyToReviewId"`
	Rating          Rating    `json:"rating" firestore:"rating"`
	Comment         string    `json:"comment" firestore:"comment"`
	Image           string    `json:"image" firestore:"image"`
	ReviewDate      time.Time `json:"review_date" firestore:"reviewDate"`
}

// SelfReview reports whether the review targets its own author.
func (r *ReviewFeedback) SelfReview() bool {
	return r.GiverID == r.ReceiverID
}
