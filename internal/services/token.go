package services

import (
	"errors"
	"time"

	"book-commerce-platform/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set bound to an issued token.
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens with a fixed
// expiry.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new token service.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue signs a token carrying the user's id and username.
func (s *TokenService) Issue(userID, username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := TokenClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify parses and validates a token, returning the embedded identity.
// Bad signatures, wrong signing methods and expired tokens all surface as
// models.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*models.Identity, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrInvalidToken
	}

	if claims.UserID == "" || claims.Username == "" {
		return nil, models.ErrInvalidToken
	}

	return &models.Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}
