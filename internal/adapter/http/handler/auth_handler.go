package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/obinna/walletcore/internal/adapter/http/dto"
	"github.com/obinna/walletcore/internal/adapter/http/middleware"
	"github.com/obinna/walletcore/internal/domain"
	"github.com/obinna/walletcore/internal/infrastructure/metrics"
	"github.com/obinna/walletcore/internal/usecase"
	"github.com/rs/zerolog"
)

// UserService exposes the user operations the auth endpoints need.
type UserService interface {
	Register(ctx context.Context, input usecase.RegisterUserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	CheckAgainstBlacklist(ctx context.Context, email, phoneNumber string) error
}

// AuthHandler handles registration and login.
type AuthHandler struct {
	users   UserService
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users UserService, m *metrics.Metrics, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{users: users, metrics: m, log: log}
}

// Register creates a new user and kicks off the blacklist check. The user is
// created unapproved and becomes approved once the check comes back clean.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "email and password are required", "")
		return
	}

	user, err := h.users.Register(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "registration failed", err.Error())
		return
	}

	if err := h.users.CheckAgainstBlacklist(r.Context(), user.Email, user.PhoneNumber); err != nil {
		h.log.Warn().Err(err).Str("user_id", user.ID).Msg("blacklist check failed")
	}

	writeJSON(w, http.StatusCreated, dto.UserFromDomain(user))
}

// Login authenticates a user and returns a signed token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.recordAuth("failure")
		writeError(w, mapDomainError(err), "invalid credentials", "")
		return
	}
	h.recordAuth("success")

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

func (h *AuthHandler) recordAuth(status string) {
	if h.metrics != nil {
		h.metrics.AuthAttempts.WithLabelValues(status).Inc()
	}
}

// GetCurrentUser returns the identity of the authenticated caller.
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.UserResponse{
		ID:            caller.ID,
		Email:         caller.Email,
		FirstName:     caller.FirstName,
		LastName:      caller.LastName,
		AccountNumber: caller.AccountNumber,
	})
}
