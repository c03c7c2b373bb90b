package domain

import "time"

// User represents a registered wallet holder. The account number doubles as
// the user's wallet identity in the ledger; no separate account record
// exists.
type User struct {
	ID             string
	Email          string
	FirstName      string
	LastName       string
	PhoneNumber    string
	HashedPassword string
	AccountNumber  string
	IsApproved     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AuthenticatedUser is the resolved caller identity attached to a request
// context by the auth middleware. It is always threaded as an explicit
// context value, never stored on a shared service instance.
type AuthenticatedUser struct {
	ID            string
	Email         string
	FirstName     string
	LastName      string
	AccountNumber string
}
