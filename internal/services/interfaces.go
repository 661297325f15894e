package services

import (
	"context"
	"time"

	"book-commerce-platform/internal/models"
)

// UserRepository interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// BookRepository interface for catalog data operations
type BookRepository interface {
	Insert(ctx context.Context, book *models.Book) (string, error)
	ListAll(ctx context.Context) ([]*models.Book, error)
}

// OrderRepository interface for order data operations
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) (string, error)
	FindByUser(ctx context.Context, userID string) ([]*models.Order, error)
	FindByIdempotencyKey(ctx context.Context, userID, key string) (*models.Order, error)
}

// SubscriberRepository interface for newsletter signups
type SubscriberRepository interface {
	Insert(ctx context.Context, email string) error
}

// TokenIssuer issues and verifies bearer tokens carrying a user identity.
type TokenIssuer interface {
	Issue(userID, username string) (string, time.Time, error)
	Verify(token string) (*models.Identity, error)
}
