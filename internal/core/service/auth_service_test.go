package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hublead/marketplace-api/internal/core/domain"
)

func TestAuthService_Register_Buyer(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	account, err := svc.Register(context.Background(), "ana@example.com", "s3nh4forte", domain.RoleBuyer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Role != domain.RoleBuyer {
		t.Errorf("role: want buyer, got %q", account.Role)
	}
	if account.CreditBalance != 0 {
		t.Errorf("buyers have no credits, got %d", account.CreditBalance)
	}
	if account.PasswordHash == "s3nh4forte" {
		t.Error("password must be stored hashed")
	}
}

func TestAuthService_Register_SupplierGetsWelcomeCredits(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	account, err := svc.Register(context.Background(), "forn@example.com", "s3nh4forte", domain.RoleSupplier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Entitlement != domain.EntitlementStandard {
		t.Errorf("new suppliers start standard, got %q", account.Entitlement)
	}
	if account.CreditBalance != domain.WelcomeCredits {
		t.Errorf("welcome bonus: want %d, got %d", domain.WelcomeCredits, account.CreditBalance)
	}
}

func TestAuthService_Register_RejectsBadInput(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	cases := []struct {
		name     string
		email    string
		password string
		role     string
	}{
		{"empty email", "", "s3nh4forte", domain.RoleBuyer},
		{"short password", "a@b.com", "12345", domain.RoleBuyer},
		{"admin not self-service", "a@b.com", "s3nh4forte", domain.RoleAdmin},
		{"unknown role", "a@b.com", "s3nh4forte", "reseller"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.email, tc.password, tc.role)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "dup@example.com", "s3nh4forte", domain.RoleBuyer); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), "dup@example.com", "outrasenha", domain.RoleBuyer)
	if !errors.Is(err, domain.ErrAccountExists) {
		t.Errorf("expected ErrAccountExists, got %v", err)
	}
}

func TestAuthService_Login_ReturnsTokenWithClaims(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	created, err := svc.Register(context.Background(), "forn@example.com", "s3nh4forte", domain.RoleSupplier)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, account, err := svc.Login(context.Background(), "forn@example.com", "s3nh4forte")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if account.ID != created.ID {
		t.Errorf("account mismatch: %q vs %q", account.ID, created.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["sub"] != created.ID {
		t.Errorf("sub claim: want %q, got %v", created.ID, claims["sub"])
	}
	if claims["role"] != domain.RoleSupplier {
		t.Errorf("role claim: want supplier, got %v", claims["role"])
	}
	if claims["entitlement"] != string(domain.EntitlementStandard) {
		t.Errorf("entitlement claim: want standard, got %v", claims["entitlement"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "ana@example.com", "s3nh4forte", domain.RoleBuyer); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, _, err := svc.Login(context.Background(), "ana@example.com", "errada123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownAccount(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "s3nh4forte")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthService_Login_NormalizesEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Ana@Example.com", "s3nh4forte", domain.RoleBuyer); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "  ANA@example.COM ", "s3nh4forte"); err != nil {
		t.Errorf("login with differently-cased email must succeed, got %v", err)
	}
}
