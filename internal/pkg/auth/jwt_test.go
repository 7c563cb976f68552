package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/campushq/placement/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "placement.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       7,
		Username: "student1",
		RoleType: models.RoleStudent,
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testJWTService(time.Hour)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("GenerateTokenPair() returned empty token")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}
	if refreshExpiresIn != 86400 {
		t.Errorf("refreshExpiresIn = %d, want 86400", refreshExpiresIn)
	}

	claims, err := svc.ValidateToken(accessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 7 || claims.Username != "student1" || claims.RoleType != "STUDENT" {
		t.Errorf("claims = %+v, want user fields echoed back", claims)
	}
	if claims.Issuer != "placement.test" {
		t.Errorf("Issuer = %q, want placement.test", claims.Issuer)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)

	accessToken, _, _, _, err := svc.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	_, err = svc.ValidateToken(accessToken)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("ValidateToken() error = %v, want %v", err, ErrExpiredToken)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := testJWTService(time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "placement.test",
	})

	accessToken, _, _, _, err := svc.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Fatal("ValidateToken() with wrong secret succeeded, want error")
	}
}

func TestValidateAndExtractClaimsRejectsEmptyIdentity(t *testing.T) {
	svc := testJWTService(time.Hour)

	user := testUser()
	user.ID = 0
	accessToken, _, _, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ValidateAndExtractClaims(accessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("ValidateAndExtractClaims() error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
