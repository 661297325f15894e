package models

import (
	"strings"
	"time"
)

// User represents a registered account. Accounts are immutable after
// registration; there is no profile editing.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password"`
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"`
}

// Credentials is the request body for both /register and /login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that both fields are present.
func (c *Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return ErrMissingField
	}
	return nil
}

// Identity is the authenticated principal extracted from a verified token.
type Identity struct {
	UserID   string
	Username string
}
