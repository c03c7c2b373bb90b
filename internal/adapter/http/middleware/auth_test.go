package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/obinna/walletcore/internal/domain"
	"github.com/obinna/walletcore/internal/infrastructure/auth"
)

func TestAuthMiddleware(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.Issue(&domain.User{
		ID:            "user-1",
		Email:         "ada@example.com",
		AccountNumber: "a1b2c3d4e5",
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	var gotCaller domain.AuthenticatedUser
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCaller, gotOK = CallerFromContext(r.Context())
	})
	wrapped := Auth(jwtManager)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCaller bool
	}{
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK, wantCaller: true},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCaller, gotOK = domain.AuthenticatedUser{}, false

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			wrapped.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if gotOK != tt.wantCaller {
				t.Fatalf("caller in context = %v, want %v", gotOK, tt.wantCaller)
			}
			if tt.wantCaller && gotCaller.AccountNumber != "a1b2c3d4e5" {
				t.Errorf("caller account = %q", gotCaller.AccountNumber)
			}
		})
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	expired := auth.NewJWTManager("test-secret", -time.Minute)
	token, err := expired.Issue(&domain.User{ID: "user-1"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	wrapped := Auth(auth.NewJWTManager("test-secret", time.Hour))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
