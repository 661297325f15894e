package handlers

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"book-commerce-platform/internal/models"
)

// In-memory repositories backing the wire-level tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	next  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, username, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[username]; exists {
		return nil, models.ErrDuplicateUser
	}
	r.next++
	user := &models.User{
		ID:           fmt.Sprintf("user-%d", r.next),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	r.users[username] = user
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, exists := r.users[username]
	if !exists {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

type fakeBookRepo struct {
	mu    sync.Mutex
	books []*models.Book
	next  int
}

func (r *fakeBookRepo) Insert(_ context.Context, book *models.Book) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	stored := *book
	stored.ID = fmt.Sprintf("book-%d", r.next)
	// Creation order stands in for the timestamp; later inserts sort first.
	stored.CreatedAt = time.Now().Add(time.Duration(r.next) * time.Millisecond)
	r.books = append(r.books, &stored)
	return stored.ID, nil
}

func (r *fakeBookRepo) ListAll(_ context.Context) ([]*models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Book, len(r.books))
	copy(out, r.books)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders []*models.Order
	next   int
}

func (r *fakeOrderRepo) Insert(_ context.Context, order *models.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	stored := *order
	stored.ID = fmt.Sprintf("order-%d", r.next)
	stored.CreatedAt = time.Now().Add(time.Duration(r.next) * time.Millisecond)
	r.orders = append(r.orders, &stored)
	return stored.ID, nil
}

func (r *fakeOrderRepo) FindByUser(_ context.Context, userID string) ([]*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeOrderRepo) FindByIdempotencyKey(_ context.Context, userID, key string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.UserID == userID && o.IdempotencyKey == key {
			return o, nil
		}
	}
	return nil, nil
}

type fakeSubscriberRepo struct {
	mu     sync.Mutex
	emails []string
}

func (r *fakeSubscriberRepo) Insert(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emails = append(r.emails, email)
	return nil
}
