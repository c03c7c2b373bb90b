package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/obinna/walletcore/internal/domain"
)

// LedgerService is the slice of ledger behavior the wallet depends on.
type LedgerService interface {
	GetAccountBalance(ctx context.Context, accountNumber string) (*domain.AccountBalance, error)
	AddLedgerEntry(ctx context.Context, entries []domain.LedgerEntry) error
}

// WalletUseCase orchestrates funding, withdrawal and peer transfer against
// the double-entry ledger. Withdraw and transfer hold the per-account lock
// across their whole check-then-write sequence; that lock is the only device
// preventing two concurrent debits from both passing the balance check.
type WalletUseCase struct {
	ledger   LedgerService
	locks    *AccountLock
	idGen    IDGenerator
	accounts SystemAccounts
	log      zerolog.Logger
}

// NewWalletUseCase creates a new WalletUseCase.
func NewWalletUseCase(ledger LedgerService, locks *AccountLock, idGen IDGenerator, accounts SystemAccounts, log zerolog.Logger) *WalletUseCase {
	return &WalletUseCase{
		ledger:   ledger,
		locks:    locks,
		idGen:    idGen,
		accounts: accounts,
		log:      log,
	}
}

// FundWallet credits an account and books the matching debit against the
// funding contra-account. No lock is taken and no precondition applies:
// credits are unconditionally valid here, and a withdrawal racing this fund
// can at worst see the pre-funding balance and reject conservatively.
func (uc *WalletUseCase) FundWallet(ctx context.Context, accountNumber string, amount decimal.Decimal) domain.ServiceResult {
	// Account limits, whenever they are implemented, get checked here.

	reference := uc.idGen.Generate()
	now := time.Now().UTC()
	description := fmt.Sprintf("Funding of account %s", accountNumber)

	entries := []domain.LedgerEntry{
		{
			Reference:       reference,
			AccountNumber:   accountNumber,
			TransactionType: domain.TransactionFunding,
			Description:     description,
			Credit:          amount,
			Debit:           decimal.Zero,
			TransactionDate: now,
		},
		{
			Reference:       reference,
			AccountNumber:   uc.accounts.Funding,
			TransactionType: domain.TransactionFunding,
			Description:     description,
			Credit:          decimal.Zero,
			Debit:           amount,
			TransactionDate: now,
		},
	}

	if err := uc.ledger.AddLedgerEntry(ctx, entries); err != nil {
		uc.log.Error().Err(err).Str("account_number", accountNumber).Msg("could not fund user wallet")
		return domain.InternalResult(fmt.Sprintf("Could not fund user wallet: %v", err))
	}

	return domain.SuccessResult("Wallet successfully funded", nil)
}

// WithdrawFromWallet debits an account after a balance check, booking the
// matching credit against the withdrawal contra-account. The account lock is
// held from before the balance read until after the pair is written.
func (uc *WalletUseCase) WithdrawFromWallet(ctx context.Context, accountNumber string, amount decimal.Decimal) domain.ServiceResult {
	unlock := uc.locks.Lock(accountNumber)
	defer unlock()

	balance, err := uc.ledger.GetAccountBalance(ctx, accountNumber)
	if err != nil {
		uc.log.Error().Err(err).Str("account_number", accountNumber).Msg("could not withdraw from user wallet")
		return domain.InternalResult(fmt.Sprintf("Could not withdraw from user wallet: %v", err))
	}

	if balance.AvailableBalance.LessThan(amount) {
		return domain.FailureResult("Insufficient funds", domain.CodeBadRequest)
	}

	reference := uc.idGen.Generate()
	now := time.Now().UTC()
	description := fmt.Sprintf("Withdrawal from account %s", accountNumber)

	entries := []domain.LedgerEntry{
		{
			Reference:       reference,
			AccountNumber:   accountNumber,
			TransactionType: domain.TransactionWithdrawal,
			Description:     description,
			Credit:          decimal.Zero,
			Debit:           amount,
			TransactionDate: now,
		},
		{
			Reference:       reference,
			AccountNumber:   uc.accounts.Withdrawal,
			TransactionType: domain.TransactionWithdrawal,
			Description:     description,
			Credit:          amount,
			Debit:           decimal.Zero,
			TransactionDate: now,
		},
	}

	if err := uc.ledger.AddLedgerEntry(ctx, entries); err != nil {
		uc.log.Error().Err(err).Str("account_number", accountNumber).Msg("could not withdraw from user wallet")
		return domain.InternalResult(fmt.Sprintf("Could not withdraw from user wallet: %v", err))
	}

	// The actual payout to an external bank account runs elsewhere; a failed
	// payout would need a reversal pair, which is not implemented.

	return domain.SuccessResult("Wallet withdrawal successful", nil)
}

// TransferBetweenWallets moves funds between two user wallets. Only the
// source account is locked: that serializes debits draining the source, but
// a symmetric pair of opposing transfers may still interleave. Destination
// existence and source != destination are enforced by the caller before the
// lock is taken.
func (uc *WalletUseCase) TransferBetweenWallets(ctx context.Context, sourceAccountNumber, destinationAccountNumber string, amount decimal.Decimal) domain.ServiceResult {
	unlock := uc.locks.Lock(sourceAccountNumber)
	defer unlock()

	balance, err := uc.ledger.GetAccountBalance(ctx, sourceAccountNumber)
	if err != nil {
		uc.log.Error().Err(err).Str("account_number", sourceAccountNumber).Msg("could not transfer funds between wallets")
		return domain.InternalResult(fmt.Sprintf("Could not transfer funds between wallets: %v", err))
	}

	if balance.AvailableBalance.LessThan(amount) {
		return domain.FailureResult("Insufficient funds", domain.CodeBadRequest)
	}

	reference := uc.idGen.Generate()
	now := time.Now().UTC()
	description := fmt.Sprintf("Transfer between accounts - %s >> %s", sourceAccountNumber, destinationAccountNumber)

	// Both legs land on user wallets; no contra-account is involved.
	entries := []domain.LedgerEntry{
		{
			Reference:       reference,
			AccountNumber:   destinationAccountNumber,
			TransactionType: domain.TransactionWalletTransfer,
			Description:     description,
			Credit:          amount,
			Debit:           decimal.Zero,
			TransactionDate: now,
		},
		{
			Reference:       reference,
			AccountNumber:   sourceAccountNumber,
			TransactionType: domain.TransactionWalletTransfer,
			Description:     description,
			Credit:          decimal.Zero,
			Debit:           amount,
			TransactionDate: now,
		},
	}

	if err := uc.ledger.AddLedgerEntry(ctx, entries); err != nil {
		uc.log.Error().Err(err).Str("account_number", sourceAccountNumber).Msg("could not transfer funds between wallets")
		return domain.InternalResult(fmt.Sprintf("Could not transfer funds between wallets: %v", err))
	}

	return domain.SuccessResult("Wallet transfer successful", nil)
}
