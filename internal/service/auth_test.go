package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"clinicdesk/config"
	"clinicdesk/internal/domain"
	"clinicdesk/internal/repository"
)

func newAuthService() *AuthServiceImpl {
	repos := repository.NewMemoryRepositories()
	return NewAuthService(repos.Auth, repos.User, config.JWTConfig{
		SigningKey:      "test-signing-key",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}, zap.NewNop())
}

func register(t *testing.T, svc *AuthServiceImpl) string {
	t.Helper()
	id, err := svc.Register(context.Background(), domain.RegisterRequest{
		FirstName: "Eve",
		LastName:  "Morgan",
		Email:     "eve.morgan@example.test",
		Phone:     "+15557778888",
		Password:  "s3cret-pass",
		Role:      domain.UserRoleDoctor,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return id
}

func TestLoginAndParseToken(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()
	userID := register(t, svc)

	tokens, err := svc.Login(ctx, domain.LoginRequest{
		Login:    "eve.morgan@example.test",
		Password: "s3cret-pass",
	}, "test-agent", "127.0.0.1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	parsedID, role, err := svc.ParseToken(ctx, tokens.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if parsedID != userID {
		t.Errorf("token user %s, want %s", parsedID, userID)
	}
	if role != domain.UserRoleDoctor {
		t.Errorf("token role %s, want doctor", role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService()
	register(t, svc)

	if _, err := svc.Login(context.Background(), domain.LoginRequest{
		Login:    "eve.morgan@example.test",
		Password: "wrong-pass",
	}, "test-agent", "127.0.0.1"); err == nil {
		t.Fatal("login succeeded with a wrong password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()
	register(t, svc)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "eve.morgan@example.test",
		Phone:     "+15550009999",
		Password:  "another-pass",
		Role:      domain.UserRolePatient,
	})
	if err == nil {
		t.Fatal("registration succeeded with a duplicate email")
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()
	register(t, svc)

	tokens, err := svc.Login(ctx, domain.LoginRequest{
		Login:    "eve.morgan@example.test",
		Password: "s3cret-pass",
	}, "test-agent", "127.0.0.1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.RefreshTokens(ctx, tokens.RefreshToken, "test-agent", "127.0.0.1")
	if err != nil {
		t.Fatalf("RefreshTokens: %v", err)
	}
	if refreshed.RefreshToken == "" || refreshed.AccessToken == "" {
		t.Fatal("refresh returned empty tokens")
	}

	// the old refresh token is dead after rotation
	if _, err := svc.RefreshTokens(ctx, tokens.RefreshToken, "test-agent", "127.0.0.1"); err == nil {
		t.Fatal("old refresh token still accepted")
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()
	register(t, svc)

	tokens, err := svc.Login(ctx, domain.LoginRequest{
		Login:    "eve.morgan@example.test",
		Password: "s3cret-pass",
	}, "test-agent", "127.0.0.1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(ctx, tokens.RefreshToken); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.RefreshTokens(ctx, tokens.RefreshToken, "test-agent", "127.0.0.1"); err == nil {
		t.Fatal("refresh token survived logout")
	}
}
