package cart

import (
	"encoding/json"
	"fmt"
	"time"
)

// Session is the client-held identity: the logged-in username and the
// bearer token with its expiry. It lives only in the local store.
type Session struct {
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the token's lifetime has passed.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// SaveSession persists the session under KeySession.
func SaveSession(store Store, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	return store.Set(KeySession, string(data))
}

// LoadSession returns the persisted session, or nil when absent. An
// expired session is dropped from the store and reported as absent.
func LoadSession(store Store) (*Session, error) {
	data, found, err := store.Get(KeySession)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if session.Expired() {
		_ = store.Delete(KeySession)
		return nil, nil
	}
	return &session, nil
}

// ClearSession removes the persisted session (logout).
func ClearSession(store Store) error {
	return store.Delete(KeySession)
}
