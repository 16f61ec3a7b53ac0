package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rkhatri/vastra-backend/pkg/config"
)

// HashPassword returns a bcrypt hash for the provided password, enforcing the
// configured minimum length before hashing.
func HashPassword(password string, cfg config.PasswordConfig) (string, error) {
	if len(password) < minLength(cfg) {
		return "", fmt.Errorf("password must be at least %d characters", minLength(cfg))
	}
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword returns true when the password matches the bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewOneTimeToken returns a random token and its sha256 hex digest. The raw
// value goes out in email; only the digest is persisted.
func NewOneTimeToken(byteLen int) (token string, digest string, err error) {
	if byteLen <= 0 {
		byteLen = 32
	}
	raw := make([]byte, byteLen)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generating token: %w", err)
	}
	token = base64.RawURLEncoding.EncodeToString(raw)
	return token, HashToken(token), nil
}

// HashToken returns the sha256 hex digest used to compare one-time tokens.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func minLength(cfg config.PasswordConfig) int {
	if cfg.MinLength <= 0 {
		return 6
	}
	return cfg.MinLength
}
