package invoice

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

// Repository persists invoices.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new invoice row.
func (r *Repository) Create(ctx context.Context, row *models.Invoice) (*models.Invoice, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindByID loads one invoice with the supplier expanded when it still exists.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var row models.Invoice
	if err := r.db.WithContext(ctx).Preload("Wholesaler").First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns invoices newest first, optionally scoped to one supplier.
func (r *Repository) List(ctx context.Context, wholesalerID *uuid.UUID) ([]models.Invoice, error) {
	q := r.db.WithContext(ctx).Preload("Wholesaler").Order("created_at DESC")
	if wholesalerID != nil {
		q = q.Where("wholesaler_id = ?", *wholesalerID)
	}
	var rows []models.Invoice
	err := q.Find(&rows).Error
	return rows, err
}

// Update saves the full invoice row.
func (r *Repository) Update(ctx context.Context, row *models.Invoice) (*models.Invoice, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes an invoice by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Invoice{}).Error
}
