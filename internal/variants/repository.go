package variant

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
	"github.com/rkhatri/vastra-backend/pkg/enums"
)

// Repository persists garment variants.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new variant row.
func (r *Repository) Create(ctx context.Context, row *models.GarmentVariant) (*models.GarmentVariant, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindByID loads one variant scoped to a kind, with the supplier expanded
// when it still exists.
func (r *Repository) FindByID(ctx context.Context, kind enums.VariantKind, id uuid.UUID) (*models.GarmentVariant, error) {
	var row models.GarmentVariant
	err := r.db.WithContext(ctx).
		Preload("Wholesaler").
		First(&row, "id = ? AND kind = ?", id, kind).
		Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns variants of a kind ordered by most recently updated,
// optionally scoped to one parent product.
func (r *Repository) List(ctx context.Context, kind enums.VariantKind, parentID *uuid.UUID) ([]models.GarmentVariant, error) {
	q := r.db.WithContext(ctx).
		Preload("Wholesaler").
		Where("kind = ?", kind).
		Order("updated_at DESC")
	if parentID != nil {
		q = q.Where("parent_product_id = ?", *parentID)
	}
	var rows []models.GarmentVariant
	err := q.Find(&rows).Error
	return rows, err
}

// Update saves the full variant row.
func (r *Repository) Update(ctx context.Context, row *models.GarmentVariant) (*models.GarmentVariant, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes a variant by ID within its kind.
func (r *Repository) Delete(ctx context.Context, kind enums.VariantKind, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND kind = ?", id, kind).
		Delete(&models.GarmentVariant{}).
		Error
}
