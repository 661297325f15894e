package models

import "time"

// Order is the immutable record of a successful checkout. Items is the cart
// snapshot submitted at checkout time; Total is recomputed server-side.
type Order struct {
	ID             string     `json:"id" bson:"_id,omitempty"`
	UserID         string     `json:"user_id" bson:"user_id"`
	Username       string     `json:"username" bson:"username"`
	Items          []CartLine `json:"items" bson:"items"`
	Total          float64    `json:"total" bson:"total"`
	IdempotencyKey string     `json:"-" bson:"idempotency_key,omitempty"`
	CreatedAt      time.Time  `json:"created_at" bson:"createdAt"`
}

// CheckoutRequest is the request body for POST /checkout.
type CheckoutRequest struct {
	Items          []CartLine `json:"items"`
	Total          float64    `json:"total"`
	IdempotencyKey string     `json:"idempotency_key,omitempty"`
}
