package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionFunding        TransactionType = "funding"
	TransactionWithdrawal     TransactionType = "withdrawal"
	TransactionWalletTransfer TransactionType = "wallet_transfer"
	TransactionTransfer       TransactionType = "transfer"
	TransactionPayment        TransactionType = "payment"
)

// LedgerEntry is one immutable row of the double-entry ledger. Every logical
// operation writes exactly two entries sharing one Reference, with the pair's
// credits equal to its debits. Balances are derived from entry history; there
// is no stored balance anywhere.
type LedgerEntry struct {
	ID              int64
	Reference       string
	AccountNumber   string
	TransactionType TransactionType
	Description     string
	Credit          decimal.Decimal
	Debit           decimal.Decimal
	IsReversed      bool
	IsDeleted       bool
	TransactionDate time.Time
}

// Active reports whether the entry counts toward the balance aggregate.
func (e *LedgerEntry) Active() bool {
	return !e.IsReversed && !e.IsDeleted
}

// AccountBalance is the derived balance of a wallet account. Available and
// ledger balances are identical until holds are modeled.
type AccountBalance struct {
	AccountNumber    string
	AvailableBalance decimal.Decimal
	LedgerBalance    decimal.Decimal
}

// PairBalanced reports whether the entries form a balanced double-entry pair:
// exactly two rows, one shared reference, credits equal to debits.
func PairBalanced(entries []LedgerEntry) bool {
	if len(entries) != 2 {
		return false
	}

	if entries[0].Reference != entries[1].Reference {
		return false
	}

	credits := entries[0].Credit.Add(entries[1].Credit)
	debits := entries[0].Debit.Add(entries[1].Debit)

	return credits.Equal(debits)
}
