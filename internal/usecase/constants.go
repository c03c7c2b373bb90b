package usecase

import "time"

const (
	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour

	// BlacklistVerdictTTL is how long a blacklist lookup verdict stays cached.
	BlacklistVerdictTTL = 12 * time.Hour
)

// SystemAccounts holds the well-known contra-account numbers used as the
// second leg of funding and withdrawal entry pairs. Peer transfers book both
// legs against user wallets and never touch these.
type SystemAccounts struct {
	Funding    string
	Withdrawal string
}

// DefaultSystemAccounts mirror the fixed account codes assigned to each
// transaction type.
var DefaultSystemAccounts = SystemAccounts{
	Funding:    "001",
	Withdrawal: "002",
}
