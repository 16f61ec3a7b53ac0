package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rkhatri/vastra-backend/pkg/enums"
)

// User is an account that can authenticate against the API.
type User struct {
	ID                    uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name                  string         `gorm:"column:name;not null"`
	Email                 string         `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash          string         `gorm:"column:password_hash;not null"`
	Role                  enums.UserRole `gorm:"column:role;not null;default:customer"`
	EmailVerified         bool           `gorm:"column:email_verified;not null;default:false"`
	VerifyTokenHash       *string        `gorm:"column:verify_token_hash"`
	VerifyTokenExpiresAt  *time.Time     `gorm:"column:verify_token_expires_at"`
	ResetTokenHash        *string        `gorm:"column:reset_token_hash"`
	ResetTokenExpiresAt   *time.Time     `gorm:"column:reset_token_expires_at"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
