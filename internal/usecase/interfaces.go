package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obinna/walletcore/internal/domain"
)

// LedgerRepository defines durable, append-only storage for ledger entries.
type LedgerRepository interface {
	// AddEntries persists all given entries as a single atomic unit: either
	// every row becomes visible or none does. Entry content is trusted; the
	// wallet constructs balanced pairs.
	AddEntries(ctx context.Context, entries []domain.LedgerEntry) error

	// GetBalance returns sum(credit) - sum(debit) over the account's
	// non-reversed, non-deleted entries. Accounts with no entries yield zero.
	GetBalance(ctx context.Context, accountNumber string) (decimal.Decimal, error)
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.User, error)
	FindExisting(ctx context.Context, email, phoneNumber string) (*domain.User, error)
	SetApproved(ctx context.Context, id string, approved bool) error
}

// IDGenerator generates unique references and identifiers.
type IDGenerator interface {
	Generate() string
}

// TokenIssuer issues signed authentication tokens for a user.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// BlacklistChecker looks an identity (email or phone number) up against an
// external blacklist provider.
type BlacklistChecker interface {
	IsBlacklisted(ctx context.Context, identity string) (bool, error)
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
