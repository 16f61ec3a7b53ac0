package security_test

import (
	"testing"

	"github.com/rkhatri/vastra-backend/pkg/config"
	"github.com/rkhatri/vastra-backend/pkg/security"
)

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := config.PasswordConfig{BcryptCost: 4, MinLength: 6}

	hash, err := security.HashPassword("very-secure-password", cfg)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword returned empty string")
	}

	if !security.VerifyPassword("very-secure-password", hash) {
		t.Fatal("VerifyPassword failed for the correct password")
	}
	if security.VerifyPassword("bogus-password", hash) {
		t.Fatal("VerifyPassword returned true for incorrect password")
	}
}

func TestHashPasswordEnforcesMinLength(t *testing.T) {
	cfg := config.PasswordConfig{BcryptCost: 4, MinLength: 6}
	if _, err := security.HashPassword("short", cfg); err == nil {
		t.Fatal("expected error for password below minimum length")
	}
}

func TestOneTimeTokenDigestRoundTrip(t *testing.T) {
	token, digest, err := security.NewOneTimeToken(32)
	if err != nil {
		t.Fatalf("NewOneTimeToken returned error: %v", err)
	}
	if token == "" || digest == "" {
		t.Fatal("expected non-empty token and digest")
	}
	if security.HashToken(token) != digest {
		t.Fatal("digest does not match rehashed token")
	}
	if security.HashToken("other-token") == digest {
		t.Fatal("different tokens should not collide")
	}
}
