package dto

import (
	"time"

	"github.com/obinna/walletcore/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// UserResponse represents a user in API responses. The hashed password never
// leaves the persistence layer.
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	PhoneNumber   string    `json:"phone_number"`
	AccountNumber string    `json:"account_number"`
	IsApproved    bool      `json:"is_approved"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		PhoneNumber:   u.PhoneNumber,
		AccountNumber: u.AccountNumber,
		IsApproved:    u.IsApproved,
		CreatedAt:     u.CreatedAt,
	}
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// BalanceResponse represents a wallet balance in API responses.
type BalanceResponse struct {
	AccountNumber    string          `json:"account_number"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	LedgerBalance    decimal.Decimal `json:"ledger_balance"`
}

// BalanceFromDomain converts a domain balance to a response.
func BalanceFromDomain(b *domain.AccountBalance) *BalanceResponse {
	return &BalanceResponse{
		AccountNumber:    b.AccountNumber,
		AvailableBalance: b.AvailableBalance,
		LedgerBalance:    b.LedgerBalance,
	}
}
