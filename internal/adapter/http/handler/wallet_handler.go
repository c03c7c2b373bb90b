package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/obinna/walletcore/internal/adapter/http/dto"
	"github.com/obinna/walletcore/internal/adapter/http/middleware"
	"github.com/obinna/walletcore/internal/domain"
	"github.com/obinna/walletcore/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletOperations exposes the wallet operations bound to an authenticated
// caller.
type WalletOperations interface {
	FundWallet(ctx context.Context, caller domain.AuthenticatedUser, amount decimal.Decimal) domain.ServiceResult
	WithdrawFromWallet(ctx context.Context, caller domain.AuthenticatedUser, amount decimal.Decimal) domain.ServiceResult
	TransferToWallet(ctx context.Context, caller domain.AuthenticatedUser, receiverAccountNumber string, amount decimal.Decimal) domain.ServiceResult
}

// BalanceReader reads derived account balances.
type BalanceReader interface {
	GetAccountBalance(ctx context.Context, accountNumber string) (*domain.AccountBalance, error)
}

// WalletHandler handles wallet endpoints.
type WalletHandler struct {
	wallet   WalletOperations
	balances BalanceReader
	metrics  *metrics.Metrics
	log      zerolog.Logger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallet WalletOperations, balances BalanceReader, m *metrics.Metrics, log zerolog.Logger) *WalletHandler {
	return &WalletHandler{wallet: wallet, balances: balances, metrics: m, log: log}
}

// Fund credits the caller's wallet from the funding contra account.
func (h *WalletHandler) Fund(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.FundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "amount must be positive", "")
		return
	}

	result := h.wallet.FundWallet(r.Context(), caller, req.Amount)
	h.record("fund", req.Amount, result)
	writeResult(w, result)
}

// Withdraw debits the caller's wallet into the withdrawal contra account.
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "amount must be positive", "")
		return
	}

	result := h.wallet.WithdrawFromWallet(r.Context(), caller, req.Amount)
	h.record("withdraw", req.Amount, result)
	writeResult(w, result)
}

// Transfer moves funds from the caller's wallet to another wallet.
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "receiver account and a positive amount are required", "")
		return
	}

	result := h.wallet.TransferToWallet(r.Context(), caller, req.ReceiverAccountNumber, req.Amount)
	h.record("transfer", req.Amount, result)
	writeResult(w, result)
}

// Balance returns the caller's derived wallet balance.
func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	balance, err := h.balances.GetAccountBalance(r.Context(), caller.AccountNumber)
	if err != nil {
		h.log.Error().Err(err).Str("account", caller.AccountNumber).Msg("balance read failed")
		writeError(w, http.StatusInternalServerError, "could not read balance", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(balance))
}

func (h *WalletHandler) record(operation string, amount decimal.Decimal, result domain.ServiceResult) {
	if h.metrics == nil {
		return
	}

	outcome := "success"
	if !result.Success {
		outcome = "failure"
		h.metrics.WalletFailures.WithLabelValues(result.Message).Inc()
	}

	h.metrics.WalletOperations.WithLabelValues(operation, outcome).Inc()
	if result.Success {
		f, _ := amount.Float64()
		h.metrics.OperationAmount.WithLabelValues(operation).Observe(f)
	}
}
