package domain

import (
	"errors"
	"fmt"
)

var (
	// Wallet errors
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrDestinationNotFound = errors.New("wallet with account number does not exist")
	ErrSelfTransfer        = errors.New("cannot transfer to your own wallet")
	ErrInvalidAmount       = errors.New("amount must be positive")

	// User errors
	ErrUserExists         = errors.New("user with email or phone number already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email address or password")

	// Auth errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrUnauthorized = errors.New("unauthorized")
)

// PersistenceError wraps an underlying store failure. The ledger store
// returns it whenever an entry pair could not be written or a balance could
// not be read.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("ledger persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a PersistenceError for the given operation.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
