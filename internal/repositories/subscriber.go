package repositories

import (
	"context"
	"fmt"
	"time"

	"book-commerce-platform/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SubscriberRepository handles newsletter signups in the "subscribers"
// collection. No uniqueness is enforced; repeated signups insert repeated
// records, matching the documented behavior.
type SubscriberRepository struct {
	collection *mongo.Collection
}

// NewSubscriberRepository creates a new subscriber repository.
func NewSubscriberRepository(db *mongo.Database) *SubscriberRepository {
	return &SubscriberRepository{collection: db.Collection("subscribers")}
}

// Insert persists a subscriber with the current timestamp.
func (r *SubscriberRepository) Insert(ctx context.Context, email string) error {
	sub := models.Subscriber{
		Email:        email,
		SubscribedAt: time.Now(),
	}
	if _, err := r.collection.InsertOne(ctx, sub); err != nil {
		return fmt.Errorf("failed to insert subscriber: %w", err)
	}
	return nil
}
