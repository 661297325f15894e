package services

import (
	"context"
	"fmt"
	"math"

	"book-commerce-platform/internal/models"
)

// totalTolerance absorbs float rounding between client and server sums.
const totalTolerance = 0.01

// CheckoutService validates cart snapshots and persists them as orders.
type CheckoutService struct {
	orderRepo OrderRepository
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(orderRepo OrderRepository) *CheckoutService {
	return &CheckoutService{orderRepo: orderRepo}
}

// Checkout validates the submitted cart snapshot, recomputes its total and
// persists an order for the authenticated identity, returning the order id.
// The claimed total is cross-checked against the recomputed one rather than
// trusted. When an idempotency key is supplied, a replay with the same key
// returns the previously created order's id without inserting a duplicate.
// Clearing the cart remains the caller's responsibility.
func (s *CheckoutService) Checkout(ctx context.Context, identity *models.Identity, lines []models.CartLine, claimedTotal float64, idempotencyKey string) (string, error) {
	if identity == nil || identity.UserID == "" {
		return "", models.ErrMissingToken
	}
	if len(lines) == 0 {
		return "", models.ErrEmptyCart
	}
	if math.IsNaN(claimedTotal) || math.IsInf(claimedTotal, 0) {
		return "", models.ErrInvalidPayload
	}
	for _, line := range lines {
		if !line.Valid() {
			return "", models.ErrInvalidPayload
		}
	}

	total := models.LinesTotal(lines)
	if math.Abs(total-claimedTotal) > totalTolerance {
		return "", models.ErrTotalMismatch
	}

	if idempotencyKey != "" {
		existing, err := s.orderRepo.FindByIdempotencyKey(ctx, identity.UserID, idempotencyKey)
		if err != nil {
			return "", fmt.Errorf("failed to check idempotency key: %w", err)
		}
		if existing != nil {
			return existing.ID, nil
		}
	}

	order := &models.Order{
		UserID:         identity.UserID,
		Username:       identity.Username,
		Items:          lines,
		Total:          total,
		IdempotencyKey: idempotencyKey,
	}

	id, err := s.orderRepo.Insert(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to place order: %w", err)
	}
	return id, nil
}

// OrdersForUser returns the caller's orders, newest first.
func (s *CheckoutService) OrdersForUser(ctx context.Context, userID string) ([]*models.Order, error) {
	if userID == "" {
		return nil, models.ErrMissingToken
	}
	return s.orderRepo.FindByUser(ctx, userID)
}
