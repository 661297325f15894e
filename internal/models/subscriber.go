package models

import "time"

// Subscriber is a newsletter signup. Duplicate emails are allowed; each
// subscribe call inserts a new record.
type Subscriber struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	SubscribedAt time.Time `json:"subscribed_at" bson:"subscribedAt"`
}
