package services

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	InitJWT("test_secret_key", time.Hour, 24*time.Hour)

	token, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	userID, err := ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("expected subject user-123, got %q", userID)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	InitJWT("test_secret_key", -time.Minute, 24*time.Hour)

	token, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ValidateAccessToken(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestRefreshTokenNotAcceptedAsAccess(t *testing.T) {
	InitJWT("test_secret_key", time.Hour, 24*time.Hour)

	refresh, err := GenerateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	if _, err := ValidateAccessToken(refresh); err != ErrWrongTokenType {
		t.Errorf("expected ErrWrongTokenType, got %v", err)
	}

	// And the other way around
	access, _ := GenerateToken("user-123")
	if _, err := ValidateRefreshToken(access); err != ErrWrongTokenType {
		t.Errorf("expected ErrWrongTokenType for access-as-refresh, got %v", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	InitJWT("test_secret_key", time.Hour, 24*time.Hour)

	token, _ := GenerateToken("user-123")

	InitJWT("a_different_secret", time.Hour, 24*time.Hour)
	if _, err := ValidateAccessToken(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong-secret token, got %v", err)
	}
}

func TestMissingSecret(t *testing.T) {
	InitJWT("", time.Hour, 24*time.Hour)

	if _, err := GenerateToken("user-123"); err != ErrSecretNotConfigured {
		t.Errorf("expected ErrSecretNotConfigured from generate, got %v", err)
	}
	if _, err := ValidateAccessToken("whatever"); err != ErrSecretNotConfigured {
		t.Errorf("expected ErrSecretNotConfigured from validate, got %v", err)
	}
}

func TestTokenExpiry(t *testing.T) {
	InitJWT("test_secret_key", time.Hour, 24*time.Hour)

	token, _ := GenerateToken("user-123")

	expiry, err := TokenExpiry(token)
	if err != nil {
		t.Fatalf("TokenExpiry failed: %v", err)
	}

	until := time.Until(expiry)
	if until < 59*time.Minute || until > 61*time.Minute {
		t.Errorf("expected expiry about an hour out, got %v", until)
	}
}
