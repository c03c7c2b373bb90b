package dto

import (
	"github.com/obinna/walletcore/internal/domain"
	"github.com/obinna/walletcore/internal/usecase"
	"github.com/shopspring/decimal"
)

// RegisterRequest represents a request to register a new user.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

// Validate checks required registration fields.
func (r *RegisterRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		Email:       r.Email,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FundRequest represents a request to fund the caller's wallet.
type FundRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// Validate rejects non-positive amounts before any ledger work happens.
func (r *FundRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	return nil
}

// WithdrawRequest represents a request to withdraw from the caller's wallet.
type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// Validate rejects non-positive amounts before any ledger work happens.
func (r *WithdrawRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	return nil
}

// TransferRequest represents a request to transfer to another wallet.
type TransferRequest struct {
	ReceiverAccountNumber string          `json:"receiver_account_number"`
	Amount                decimal.Decimal `json:"amount"`
}

// Validate rejects non-positive amounts and missing destinations.
func (r *TransferRequest) Validate() error {
	if r.ReceiverAccountNumber == "" {
		return domain.ErrDestinationNotFound
	}
	if !r.Amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	return nil
}
