package payment

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

// Repository persists gateway payment orders.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new payment order row.
func (r *Repository) Create(ctx context.Context, row *models.PaymentOrder) (*models.PaymentOrder, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindByIDForUser loads one order scoped to its owner.
func (r *Repository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*models.PaymentOrder, error) {
	var row models.PaymentOrder
	err := r.db.WithContext(ctx).
		First(&row, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByUser returns the user's orders newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PaymentOrder, error) {
	var rows []models.PaymentOrder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
