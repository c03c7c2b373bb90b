package integration

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/obinna/walletcore/tests/testutil"
)

func TestConcurrentWithdrawalsNoOverdraft(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	walletUC, ledgerUC := newWalletUseCase(testDB)

	testDB.TruncateAll(ctx)
	alice := testDB.CreateTestUser(ctx, "alice@example.com")

	// Balance allows exactly 10 withdrawals of 10
	if result := walletUC.FundWallet(ctx, alice.AccountNumber, decimal.NewFromInt(100)); !result.Success {
		t.Fatalf("fund failed: %+v", result)
	}

	numWithdrawals := 50
	amount := decimal.NewFromInt(10)

	var (
		wg           sync.WaitGroup
		successCount atomic.Int32
		rejectCount  atomic.Int32
	)

	wg.Add(numWithdrawals)
	for i := 0; i < numWithdrawals; i++ {
		go func() {
			defer wg.Done()

			result := walletUC.WithdrawFromWallet(ctx, alice.AccountNumber, amount)
			if result.Success {
				successCount.Add(1)
			} else {
				rejectCount.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := successCount.Load(); got != 10 {
		t.Errorf("successful withdrawals = %d, want 10", got)
	}
	if got := rejectCount.Load(); got != 40 {
		t.Errorf("rejected withdrawals = %d, want 40", got)
	}

	balance, err := ledgerUC.GetAccountBalance(ctx, alice.AccountNumber)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !balance.AvailableBalance.Equal(decimal.Zero) {
		t.Errorf("final balance = %s, want 0", balance.AvailableBalance)
	}
	if balance.AvailableBalance.IsNegative() {
		t.Error("balance must never go negative")
	}
}

func TestConcurrentFundsAllLand(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	walletUC, ledgerUC := newWalletUseCase(testDB)

	testDB.TruncateAll(ctx)
	alice := testDB.CreateTestUser(ctx, "alice@example.com")

	numFunds := 20
	amount := decimal.NewFromInt(5)

	var wg sync.WaitGroup
	wg.Add(numFunds)
	for i := 0; i < numFunds; i++ {
		go func() {
			defer wg.Done()
			walletUC.FundWallet(ctx, alice.AccountNumber, amount)
		}()
	}
	wg.Wait()

	balance, err := ledgerUC.GetAccountBalance(ctx, alice.AccountNumber)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if want := decimal.NewFromInt(100); !balance.AvailableBalance.Equal(want) {
		t.Errorf("balance = %s, want %s", balance.AvailableBalance, want)
	}
}
