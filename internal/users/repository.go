package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

// Repository exposes user persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user and returns the persisted model.
func (r *Repository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByEmail retrieves the user matching the provided email. Lookups are
// case-insensitive; the unique index on lower(email) matches.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID loads a user by their UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByVerifyTokenHash loads the user holding an outstanding email
// verification token digest.
func (r *Repository) FindByVerifyTokenHash(ctx context.Context, digest string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "verify_token_hash = ?", digest).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByResetTokenHash loads the user holding an outstanding password reset
// token digest.
func (r *Repository) FindByResetTokenHash(ctx context.Context, digest string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "reset_token_hash = ?", digest).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update saves the full user row.
func (r *Repository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
