package cart

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"book-commerce-platform/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

// Fixed keys the cart and session are persisted under, matching the
// original browser localStorage layout.
const (
	KeyCart    = "cart"
	KeySession = "currentUser"
)

// Store is the local key-value store the client persists state into.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// SQLiteStore is a file-backed Store, the desktop analog of browser
// localStorage.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the kv store at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize local store: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the value stored under key, with found reporting presence.
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// PersistTo registers a persistence observer on the model: every mutation
// writes the full snapshot to the store under KeyCart. Write failures are
// logged, not surfaced; the in-memory cart stays authoritative.
func PersistTo(m *Model, store Store) {
	m.OnChange(func(lines []models.CartLine) {
		data, err := json.Marshal(lines)
		if err != nil {
			log.Printf("failed to serialize cart: %v", err)
			return
		}
		if err := store.Set(KeyCart, string(data)); err != nil {
			log.Printf("failed to persist cart: %v", err)
		}
	})
}

// RestoreFrom loads the persisted snapshot, if any, into the model.
// Called at startup before observers are attached.
func RestoreFrom(m *Model, store Store) error {
	data, found, err := store.Get(KeyCart)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(data), &lines); err != nil {
		return fmt.Errorf("failed to decode persisted cart: %w", err)
	}
	m.Restore(lines)
	return nil
}
