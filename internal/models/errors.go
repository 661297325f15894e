package models

import "errors"

// Common errors used throughout the application
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("wrong password")
	ErrMissingToken       = errors.New("no token provided")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrMissingField       = errors.New("missing required field")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidPayload     = errors.New("invalid cart data")
	ErrTotalMismatch      = errors.New("order total does not match items")
	ErrIndexOutOfRange    = errors.New("cart index out of range")
)
