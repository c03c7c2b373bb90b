package usecase

import (
	"context"

	"github.com/obinna/walletcore/internal/domain"
)

// LedgerUseCase is the thin business-facing wrapper over the ledger store.
// It adds no locking and no validation beyond presence; the wallet layer owns
// pair construction and concurrency.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// GetAccountBalance returns the derived balance for an account. Available and
// ledger balances are both set to the store aggregate; the read has no side
// effects and is safe to repeat.
func (uc *LedgerUseCase) GetAccountBalance(ctx context.Context, accountNumber string) (*domain.AccountBalance, error) {
	balance, err := uc.ledgerRepo.GetBalance(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	return &domain.AccountBalance{
		AccountNumber:    accountNumber,
		AvailableBalance: balance,
		LedgerBalance:    balance,
	}, nil
}

// AddLedgerEntry persists a batch of entries, delegating atomicity to the
// store. Failures propagate unchanged.
func (uc *LedgerUseCase) AddLedgerEntry(ctx context.Context, entries []domain.LedgerEntry) error {
	return uc.ledgerRepo.AddEntries(ctx, entries)
}
