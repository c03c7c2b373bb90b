package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/obinna/walletcore/internal/domain"
	"github.com/obinna/walletcore/internal/infrastructure/auth"
)

func testUser() *domain.User {
	return &domain.User{
		ID:            "user-1",
		Email:         "ada@example.com",
		FirstName:     "Ada",
		LastName:      "Eze",
		AccountNumber: "a1b2c3d4e5",
	}
}

func TestJWTManager_IssueAndVerify(t *testing.T) {
	manager := auth.NewJWTManager("secret", time.Hour)

	token, err := manager.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("UserID = %s, want user-1", claims.UserID)
	}
	if claims.AccountNumber != "a1b2c3d4e5" {
		t.Errorf("AccountNumber = %s, want a1b2c3d4e5", claims.AccountNumber)
	}
}

func TestJWTManager_VerifyExpired(t *testing.T) {
	manager := auth.NewJWTManager("secret", -time.Minute)

	token, err := manager.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := manager.Verify(token); !errors.Is(err, domain.ErrExpiredToken) {
		t.Errorf("Verify expired token: err = %v, want ErrExpiredToken", err)
	}
}

func TestJWTManager_VerifyWrongSecret(t *testing.T) {
	issuer := auth.NewJWTManager("secret", time.Hour)
	verifier := auth.NewJWTManager("other", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("Verify with wrong secret: err = %v, want ErrInvalidToken", err)
	}
}

func TestJWTManager_VerifyGarbage(t *testing.T) {
	manager := auth.NewJWTManager("secret", time.Hour)

	if _, err := manager.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("Verify garbage: err = %v, want ErrInvalidToken", err)
	}
}
