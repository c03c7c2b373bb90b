package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/obinna/walletcore/internal/domain"
)

// LedgerRepository implements usecase.LedgerRepository on PostgreSQL. The
// ledger table is insert-only; balances are always derived by aggregation.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

const insertEntrySQL = `
	INSERT INTO ledger (
		reference, account_number, transaction_type, description,
		credit, debit, is_reversed, is_deleted, transaction_date
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// AddEntries persists all entries in one transaction: all rows or none.
func (r *LedgerRepository) AddEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.NewPersistenceError("begin", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		_, err := tx.Exec(ctx, insertEntrySQL,
			e.Reference,
			e.AccountNumber,
			string(e.TransactionType),
			e.Description,
			decimalToNumeric(e.Credit),
			decimalToNumeric(e.Debit),
			e.IsReversed,
			e.IsDeleted,
			timeToPgTimestamptz(e.TransactionDate),
		)
		if err != nil {
			return domain.NewPersistenceError("insert", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.NewPersistenceError("commit", err)
	}

	return nil
}

const balanceSQL = `
	SELECT COALESCE(SUM(credit), 0) - COALESCE(SUM(debit), 0)
	FROM ledger
	WHERE account_number = $1
	  AND is_reversed = false
	  AND is_deleted = false
`

// GetBalance returns the derived balance for an account. Accounts with no
// entries aggregate to zero, not an error.
func (r *LedgerRepository) GetBalance(ctx context.Context, accountNumber string) (decimal.Decimal, error) {
	var n pgtype.Numeric
	if err := r.pool.QueryRow(ctx, balanceSQL, accountNumber).Scan(&n); err != nil {
		return decimal.Zero, domain.NewPersistenceError("balance", err)
	}

	return numericToDecimal(n), nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
