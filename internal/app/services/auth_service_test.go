package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/placement/internal/app/models"
	"github.com/campushq/placement/internal/app/models/dto"
	"github.com/campushq/placement/internal/pkg/apperrors"
	"github.com/campushq/placement/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserStore, *fakeTokenStore) {
	t.Helper()
	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "placement.test",
	})
	svc := NewAuthService(users, tokens, jwtService, zerolog.Nop())
	return svc, users, tokens
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username: "student1",
		Password: "passw0rd1",
		Name:     "Asha Kulkarni",
		Email:    "asha@example.com",
		Branch:   "Computer Engineering",
		Division: "A",
		PRN:      "PRN001",
	}
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	user, err := svc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.RoleType != models.RoleStudent {
		t.Errorf("RoleType = %v, want %v", user.RoleType, models.RoleStudent)
	}
	if user.ProfileComplete {
		t.Error("ProfileComplete = true for a fresh account, want false")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerRequest()); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := svc.Register(ctx, registerRequest())
	if !errors.Is(err, apperrors.ErrUsernameExists) {
		t.Fatalf("second Register() error = %v, want %v", err, apperrors.ErrUsernameExists)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"too short", "ab1"},
		{"no digit", "passwords"},
		{"no letter", "123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newAuthFixture(t)
			req := registerRequest()
			req.Password = tt.password

			_, err := svc.Register(context.Background(), req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("Register() error = %v, want %v", err, apperrors.ErrValidationFailed)
			}
		})
	}
}

func TestLoginAndRefresh(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerRequest()); err != nil {
		t.Fatal(err)
	}

	user, tokens, err := svc.Login(ctx, "student1", "passw0rd1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Username != "student1" {
		t.Errorf("Username = %q, want student1", user.Username)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("Login() returned empty tokens")
	}

	refreshed, err := svc.RefreshToken(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}
	if refreshed.RefreshToken == tokens.RefreshToken {
		t.Error("RefreshToken() reissued the same refresh token")
	}

	// The exchanged token is single-use.
	if _, err := svc.RefreshToken(ctx, tokens.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Errorf("reuse error = %v, want %v", err, apperrors.ErrTokenRevoked)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerRequest()); err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Login(ctx, "student1", "wrongpass1"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want %v", err, apperrors.ErrInvalidCredentials)
	}

	// Unknown users produce the same error as wrong passwords.
	if _, _, err := svc.Login(ctx, "nobody", "passw0rd1"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want %v", err, apperrors.ErrInvalidCredentials)
	}
}

func TestLogoutRevokesTokens(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerRequest())
	if err != nil {
		t.Fatal(err)
	}

	_, tokens, err := svc.Login(ctx, "student1", "passw0rd1")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Logout(ctx, user.ID); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	if _, err := svc.RefreshToken(ctx, tokens.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Errorf("RefreshToken() after logout error = %v, want %v", err, apperrors.ErrTokenRevoked)
	}
}
