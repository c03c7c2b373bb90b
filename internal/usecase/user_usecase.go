package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/obinna/walletcore/internal/domain"
)

// WalletService is the slice of wallet behavior the user layer depends on.
type WalletService interface {
	FundWallet(ctx context.Context, accountNumber string, amount decimal.Decimal) domain.ServiceResult
	WithdrawFromWallet(ctx context.Context, accountNumber string, amount decimal.Decimal) domain.ServiceResult
	TransferBetweenWallets(ctx context.Context, sourceAccountNumber, destinationAccountNumber string, amount decimal.Decimal) domain.ServiceResult
}

// UserUseCase handles registration, login and the caller-facing wallet
// operations. It resolves the authenticated caller's account number from the
// value handed to it, runs the pre-lock business checks, and delegates the
// money movement to the wallet.
type UserUseCase struct {
	userRepo  UserRepository
	wallet    WalletService
	tokens    TokenIssuer
	blacklist BlacklistChecker
	cache     Cache
	idGen     IDGenerator
	log       zerolog.Logger
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(
	userRepo UserRepository,
	wallet WalletService,
	tokens TokenIssuer,
	blacklist BlacklistChecker,
	cache Cache,
	idGen IDGenerator,
	log zerolog.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:  userRepo,
		wallet:    wallet,
		tokens:    tokens,
		blacklist: blacklist,
		cache:     cache,
		idGen:     idGen,
		log:       log,
	}
}

// RegisterUserInput represents input for registering a user.
type RegisterUserInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// Register creates a new user with a hashed password and a fresh wallet
// account number. The new user starts unapproved until the blacklist check
// completes.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	existing, err := uc.userRepo.FindExisting(ctx, input.Email, input.PhoneNumber)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uc.idGen.Generate(),
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		PhoneNumber:    input.PhoneNumber,
		HashedPassword: hashed,
		AccountNumber:  generateAccountNumber(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = ""

	return user, nil
}

// Login verifies credentials and issues a signed token carrying the user's
// account number.
func (uc *UserUseCase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	user.HashedPassword = ""

	return user, token, nil
}

// FundWallet funds the authenticated caller's wallet.
func (uc *UserUseCase) FundWallet(ctx context.Context, caller domain.AuthenticatedUser, amount decimal.Decimal) domain.ServiceResult {
	return uc.wallet.FundWallet(ctx, caller.AccountNumber, amount)
}

// WithdrawFromWallet withdraws from the authenticated caller's wallet.
func (uc *UserUseCase) WithdrawFromWallet(ctx context.Context, caller domain.AuthenticatedUser, amount decimal.Decimal) domain.ServiceResult {
	return uc.wallet.WithdrawFromWallet(ctx, caller.AccountNumber, amount)
}

// TransferToWallet moves funds from the caller's wallet to another user's.
// Destination existence and self-transfer are rejected here, before the
// wallet takes any lock.
func (uc *UserUseCase) TransferToWallet(ctx context.Context, caller domain.AuthenticatedUser, receiverAccountNumber string, amount decimal.Decimal) domain.ServiceResult {
	recipient, err := uc.userRepo.FindByAccountNumber(ctx, receiverAccountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.FailureResult(domain.ErrDestinationNotFound.Error(), domain.CodeBadRequest)
		}

		uc.log.Error().Err(err).Msg("could not complete transfer at this time")

		return domain.InternalResult(fmt.Sprintf("Could not complete transfer at this time: %v", err))
	}

	if recipient.AccountNumber == caller.AccountNumber {
		return domain.FailureResult(domain.ErrSelfTransfer.Error(), domain.CodeBadRequest)
	}

	return uc.wallet.TransferBetweenWallets(ctx, caller.AccountNumber, receiverAccountNumber, amount)
}

// CheckAgainstBlacklist looks the user's email and phone number up against
// the external blacklist and approves the user when neither is listed. It
// runs in the background after registration.
func (uc *UserUseCase) CheckAgainstBlacklist(ctx context.Context, email, phoneNumber string) error {
	user, err := uc.userRepo.FindExisting(ctx, email, phoneNumber)
	if err != nil {
		return err
	}

	emailListed, err := uc.lookupIdentity(ctx, email)
	if err != nil {
		return err
	}

	phoneListed, err := uc.lookupIdentity(ctx, phoneNumber)
	if err != nil {
		return err
	}

	if !emailListed && !phoneListed {
		if err := uc.userRepo.SetApproved(ctx, user.ID, true); err != nil {
			return err
		}
	}

	// The user gets an email about the approval outcome either way; that
	// notification path lives outside this service.

	return nil
}

func (uc *UserUseCase) lookupIdentity(ctx context.Context, identity string) (bool, error) {
	key := "blacklist:" + identity

	if cached, err := uc.cache.Get(ctx, key); err == nil && cached != nil {
		return string(cached) == "listed", nil
	}

	listed, err := uc.blacklist.IsBlacklisted(ctx, identity)
	if err != nil {
		return false, err
	}

	verdict := "clear"
	if listed {
		verdict = "listed"
	}

	if err := uc.cache.Set(ctx, key, []byte(verdict), BlacklistVerdictTTL); err != nil {
		uc.log.Warn().Err(err).Str("identity", identity).Msg("could not cache blacklist verdict")
	}

	return listed, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// generateAccountNumber derives a fresh 10-character wallet account number.
func generateAccountNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return raw[:10]
}
