package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"book-commerce-platform/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client wraps the REST backend. Checkout calls are single-flighted per
// cart and stamped with an idempotency key that survives retries of a
// failed attempt, so a duplicate submission cannot produce two orders.
type Client struct {
	baseURL    string
	httpClient *http.Client

	sfg      singleflight.Group
	mu       sync.Mutex
	attempts map[*Model]string
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		attempts:   map[*Model]string{},
	}
}

// Register creates an account and returns the new user's id.
func (c *Client) Register(ctx context.Context, username, password string) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	err := c.post(ctx, "/register", "", models.Credentials{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Login authenticates and returns a session holding the bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var resp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	err := c.post(ctx, "/login", "", models.Credentials{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &Session{
		Username:  resp.Username,
		Token:     resp.Token,
		ExpiresAt: time.Now().Add(2 * time.Hour),
	}, nil
}

// Books fetches the catalog, newest first.
func (c *Client) Books(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := c.get(ctx, "/books", "", &books); err != nil {
		return nil, err
	}
	return books, nil
}

// AddBook inserts a catalog record and returns its id. Requires auth.
func (c *Client) AddBook(ctx context.Context, token string, req models.BookCreateRequest) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/add-book", token, req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Subscribe signs the email up for the newsletter.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	return c.post(ctx, "/subscribe", "", map[string]string{"email": email}, nil)
}

// Orders fetches the caller's orders, newest first. Requires auth.
func (c *Client) Orders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, "/orders", token, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Checkout submits the cart's current snapshot. Concurrent calls for the
// same cart collapse into one request; a retry after a failed attempt
// reuses the attempt's idempotency key. Clearing the cart after success is
// the caller's responsibility.
func (c *Client) Checkout(ctx context.Context, token string, m *Model) (string, error) {
	key := fmt.Sprintf("%p", m)

	v, err, _ := c.sfg.Do(key, func() (interface{}, error) {
		lines := m.Snapshot()
		if len(lines) == 0 {
			return nil, models.ErrEmptyCart
		}

		req := models.CheckoutRequest{
			Items:          lines,
			Total:          models.LinesTotal(lines),
			IdempotencyKey: c.attemptKey(m),
		}

		var resp struct {
			OrderID string `json:"orderId"`
		}
		if err := c.post(ctx, "/checkout", token, req, &resp); err != nil {
			return nil, err
		}

		c.finishAttempt(m)
		return resp.OrderID, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// attemptKey returns the cart's pending idempotency key, minting one for a
// new attempt.
func (c *Client) attemptKey(m *Model) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if key, ok := c.attempts[m]; ok {
		return key
	}
	key := uuid.NewString()
	c.attempts[m] = key
	return key
}

func (c *Client) finishAttempt(m *Model) {
	c.mu.Lock()
	delete(c.attempts, m)
	c.mu.Unlock()
}

func (c *Client) post(ctx context.Context, path, token string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
