package wholesaler

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

// Repository persists wholesalers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new wholesaler row.
func (r *Repository) Create(ctx context.Context, row *models.Wholesaler) (*models.Wholesaler, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindByID loads one wholesaler.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Wholesaler, error) {
	var row models.Wholesaler
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns all wholesalers, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Wholesaler, error) {
	var rows []models.Wholesaler
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// Update saves the full wholesaler row.
func (r *Repository) Update(ctx context.Context, row *models.Wholesaler) (*models.Wholesaler, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes a wholesaler by ID. Variant and invoice references are left
// in place; reads render the missing supplier as null.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Wholesaler{}).Error
}
