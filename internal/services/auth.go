package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"book-commerce-platform/internal/models"
	"book-commerce-platform/internal/utils"
)

// AuthService handles registration, login and token authentication.
type AuthService struct {
	userRepo UserRepository
	tokens   TokenIssuer
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Register creates a new user account and returns the generated id.
// The password is bcrypt-hashed before it reaches the store; the plaintext
// is never persisted or logged.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", models.ErrMissingField
	}

	// Pre-check for a friendly error; the unique index on username is what
	// actually closes the race between concurrent registrations.
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return "", models.ErrDuplicateUser
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, username, hash)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

// Login verifies the credentials and issues a bearer token bound to the
// user's id and username.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, models.ErrMissingField
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	ok, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, models.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{
		Token:     token,
		Username:  user.Username,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate verifies a bearer token and yields the embedded identity.
func (s *AuthService) Authenticate(token string) (*models.Identity, error) {
	if token == "" {
		return nil, models.ErrMissingToken
	}
	return s.tokens.Verify(token)
}
