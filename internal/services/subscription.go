package services

import (
	"context"
	"strings"

	"book-commerce-platform/internal/models"
)

// SubscriptionService handles newsletter signups. There is no email format
// validation and no duplicate check; each call inserts a record.
type SubscriptionService struct {
	subscriberRepo SubscriberRepository
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(subscriberRepo SubscriberRepository) *SubscriptionService {
	return &SubscriptionService{subscriberRepo: subscriberRepo}
}

// Subscribe persists the email with the current timestamp.
func (s *SubscriptionService) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.ErrMissingField
	}
	return s.subscriberRepo.Insert(ctx, email)
}
