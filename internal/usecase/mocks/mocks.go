package mocks

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obinna/walletcore/internal/domain"
)

// MockLedgerRepository is an in-memory LedgerRepository. It appends entry
// batches atomically under a mutex, so concurrent wallet tests exercise the
// same store one process would share in production.
type MockLedgerRepository struct {
	mu      sync.Mutex
	entries []domain.LedgerEntry

	AddEntriesFunc func(ctx context.Context, entries []domain.LedgerEntry) error
	GetBalanceFunc func(ctx context.Context, accountNumber string) (decimal.Decimal, error)
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{}
}

func (m *MockLedgerRepository) AddEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	if m.AddEntriesFunc != nil {
		return m.AddEntriesFunc(ctx, entries)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entries...)

	return nil
}

func (m *MockLedgerRepository) GetBalance(ctx context.Context, accountNumber string) (decimal.Decimal, error) {
	if m.GetBalanceFunc != nil {
		return m.GetBalanceFunc(ctx, accountNumber)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	balance := decimal.Zero
	for _, e := range m.entries {
		if e.AccountNumber != accountNumber || !e.Active() {
			continue
		}
		balance = balance.Add(e.Credit).Sub(e.Debit)
	}

	return balance, nil
}

// Entries returns a copy of everything persisted so far.
func (m *MockLedgerRepository) Entries() []domain.LedgerEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.LedgerEntry, len(m.entries))
	copy(out, m.entries)

	return out
}

// EntriesByReference groups persisted entries by reference.
func (m *MockLedgerRepository) EntriesByReference() map[string][]domain.LedgerEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	grouped := make(map[string][]domain.LedgerEntry)
	for _, e := range m.entries {
		grouped[e.Reference] = append(grouped[e.Reference], e)
	}

	return grouped
}

// MockUserRepository is an in-memory UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc              func(ctx context.Context, user *domain.User) error
	FindByEmailFunc         func(ctx context.Context, email string) (*domain.User, error)
	FindByAccountNumberFunc func(ctx context.Context, accountNumber string) (*domain.User, error)
	FindExistingFunc        func(ctx context.Context, email, phoneNumber string) (*domain.User, error)
	SetApprovedFunc         func(ctx context.Context, id string, approved bool) error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *user
	m.users[user.ID] = &clone

	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}

	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.User, error) {
	if m.FindByAccountNumberFunc != nil {
		return m.FindByAccountNumberFunc(ctx, accountNumber)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.AccountNumber == accountNumber {
			clone := *u
			return &clone, nil
		}
	}

	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindExisting(ctx context.Context, email, phoneNumber string) (*domain.User, error) {
	if m.FindExistingFunc != nil {
		return m.FindExistingFunc(ctx, email, phoneNumber)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email || u.PhoneNumber == phoneNumber {
			clone := *u
			return &clone, nil
		}
	}

	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	if m.SetApprovedFunc != nil {
		return m.SetApprovedFunc(ctx, id, approved)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsApproved = approved

	return nil
}

// MockIDGenerator generates sequential IDs.
type MockIDGenerator struct {
	counter atomic.Int64

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}

	return fmt.Sprintf("id-%04d", m.counter.Add(1))
}

// MockTokenIssuer issues predictable tokens.
type MockTokenIssuer struct {
	IssueFunc func(user *domain.User) (string, error)
}

func NewMockTokenIssuer() *MockTokenIssuer {
	return &MockTokenIssuer{}
}

func (m *MockTokenIssuer) Issue(user *domain.User) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(user)
	}

	return "token-" + user.ID, nil
}

// MockBlacklistChecker answers lookups from a fixed set of listed
// identities.
type MockBlacklistChecker struct {
	mu     sync.Mutex
	listed map[string]bool
	calls  []string

	IsBlacklistedFunc func(ctx context.Context, identity string) (bool, error)
}

func NewMockBlacklistChecker(listed ...string) *MockBlacklistChecker {
	set := make(map[string]bool, len(listed))
	for _, id := range listed {
		set[id] = true
	}

	return &MockBlacklistChecker{listed: set}
}

func (m *MockBlacklistChecker) IsBlacklisted(ctx context.Context, identity string) (bool, error) {
	if m.IsBlacklistedFunc != nil {
		return m.IsBlacklistedFunc(ctx, identity)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, identity)

	return m.listed[identity], nil
}

// Calls returns the identities looked up so far.
func (m *MockBlacklistChecker) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.calls))
	copy(out, m.calls)

	return out
}

// MockCache is an in-memory Cache without expiry.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	if !ok {
		return nil, nil
	}

	return v, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value

	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)

	return nil
}
